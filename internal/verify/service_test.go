package verify_test

import (
	"context"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/meridian-health/meridian/internal/verify"
	_ "github.com/meridian-health/meridian/testing"
)

type capturedMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	sent []capturedMail
}

func (m *fakeMailer) Send(ctx context.Context, to, subject, body string) error {
	m.sent = append(m.sent, capturedMail{To: to, Subject: subject, Body: body})
	return nil
}

var codePattern = regexp.MustCompile(`\b(\d{6})\b`)

func newService(t *testing.T, owner string) (*verify.Service, *fakeMailer) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := verify.NewStore(client, 10*time.Minute, 5)
	mailer := &fakeMailer{}
	logger := slog.New(slog.DiscardHandler)
	return verify.NewService(store, mailer, logger, owner, 10*time.Minute), mailer
}

func TestRequestAndConfirm(t *testing.T) {
	service, mailer := newService(t, "founder@meridian.example")
	ctx := context.Background()

	reference, err := service.RequestCode(ctx, "Visitor@Example.com")
	require.NoError(t, err)
	require.NotEmpty(t, reference)

	require.Len(t, mailer.sent, 1)
	require.Equal(t, "visitor@example.com", mailer.sent[0].To)
	match := codePattern.FindStringSubmatch(mailer.sent[0].Body)
	require.NotNil(t, match, "code email should contain a six-digit code")

	require.NoError(t, service.Confirm(ctx, "visitor@example.com", match[1]))

	// The owner hears about the successful verification.
	require.Len(t, mailer.sent, 2)
	require.Equal(t, "founder@meridian.example", mailer.sent[1].To)
	require.Contains(t, mailer.sent[1].Body, "visitor@example.com")
}

func TestConfirmWrongCode(t *testing.T) {
	service, mailer := newService(t, "founder@meridian.example")
	ctx := context.Background()

	_, err := service.RequestCode(ctx, "visitor@example.com")
	require.NoError(t, err)

	require.ErrorIs(t, service.Confirm(ctx, "visitor@example.com", "000000"), verify.ErrCodeMismatch)
	// No owner notification for failed attempts.
	require.Len(t, mailer.sent, 1)
}

func TestConfirmWithoutRequest(t *testing.T) {
	service, _ := newService(t, "")

	err := service.Confirm(context.Background(), "visitor@example.com", "123456")
	require.ErrorIs(t, err, verify.ErrNoCode)
}

func TestNoOwnerConfigured(t *testing.T) {
	service, mailer := newService(t, "")
	ctx := context.Background()

	_, err := service.RequestCode(ctx, "visitor@example.com")
	require.NoError(t, err)
	match := codePattern.FindStringSubmatch(mailer.sent[0].Body)
	require.NotNil(t, match)

	require.NoError(t, service.Confirm(ctx, "visitor@example.com", match[1]))
	require.Len(t, mailer.sent, 1)
}

func TestRequestReplacesOutstandingCode(t *testing.T) {
	service, mailer := newService(t, "")
	ctx := context.Background()

	_, err := service.RequestCode(ctx, "visitor@example.com")
	require.NoError(t, err)
	first := codePattern.FindStringSubmatch(mailer.sent[0].Body)[1]

	_, err = service.RequestCode(ctx, "visitor@example.com")
	require.NoError(t, err)
	second := codePattern.FindStringSubmatch(mailer.sent[1].Body)[1]

	if first != second {
		require.Error(t, service.Confirm(ctx, "visitor@example.com", first))
	}
	require.NoError(t, service.Confirm(ctx, "visitor@example.com", second))
}
