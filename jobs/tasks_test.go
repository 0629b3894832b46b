package jobs_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	"github.com/meridian-health/meridian/jobs"
	_ "github.com/meridian-health/meridian/testing"
)

type stubDeliverer struct {
	sent []jobs.SendEmailPayload
	err  error
}

func (d *stubDeliverer) Send(ctx context.Context, to, subject, body string) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, jobs.SendEmailPayload{To: to, Subject: subject, Body: body})
	return nil
}

func TestEmailJobDelivers(t *testing.T) {
	deliverer := &stubDeliverer{}
	job := jobs.NewEmailJob(deliverer, slog.New(slog.DiscardHandler))

	task, err := jobs.NewSendEmailTask(jobs.SendEmailPayload{
		To:      "visitor@example.com",
		Subject: "Your verification code",
		Body:    "123456",
	})
	require.NoError(t, err)

	require.NoError(t, job.Handle(context.Background(), task))
	require.Len(t, deliverer.sent, 1)
	require.Equal(t, "visitor@example.com", deliverer.sent[0].To)
}

func TestEmailJobSkipsMalformedPayload(t *testing.T) {
	job := jobs.NewEmailJob(&stubDeliverer{}, slog.New(slog.DiscardHandler))

	task := asynq.NewTask(jobs.TaskTypeSendEmail, []byte("{"))
	require.ErrorIs(t, job.Handle(context.Background(), task), asynq.SkipRetry)
}

func TestEmailJobPropagatesTransportError(t *testing.T) {
	wantErr := errors.New("relay down")
	job := jobs.NewEmailJob(&stubDeliverer{err: wantErr}, slog.New(slog.DiscardHandler))

	task, err := jobs.NewSendEmailTask(jobs.SendEmailPayload{To: "visitor@example.com"})
	require.NoError(t, err)
	require.ErrorIs(t, job.Handle(context.Background(), task), wantErr)
}

type stubWarmer struct {
	calls int
	err   error
}

func (w *stubWarmer) Warm(ctx context.Context) error {
	w.calls++
	return w.err
}

func TestWarmupJob(t *testing.T) {
	warmer := &stubWarmer{}
	job := jobs.NewWarmupJob(warmer, slog.New(slog.DiscardHandler))

	task, err := jobs.NewReportWarmupTask()
	require.NoError(t, err)
	require.NoError(t, job.Handle(context.Background(), task))
	require.Equal(t, 1, warmer.calls)

	warmer.err = errors.New("redis gone")
	require.Error(t, job.Handle(context.Background(), task))
}
