package verify

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// Mailer delivers a message to one recipient. Satisfied by the jobs
// queue client so requests return before SMTP is touched.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Service implements the email verification flow guarding the data
// room: a visitor requests a code, receives it by email and exchanges
// it for access.
type Service struct {
	store  *Store
	mailer Mailer
	logger *slog.Logger

	// ownerEmail, when set, receives a notification for every
	// successful verification.
	ownerEmail string
	codeTTL    time.Duration
}

// NewService constructs the verification service.
func NewService(store *Store, mailer Mailer, logger *slog.Logger, ownerEmail string, codeTTL time.Duration) *Service {
	return &Service{
		store:      store,
		mailer:     mailer,
		logger:     logger,
		ownerEmail: ownerEmail,
		codeTTL:    codeTTL,
	}
}

// RequestCode issues a fresh code for the address and emails it. The
// returned reference identifies the request in logs without exposing
// the address.
func (s *Service) RequestCode(ctx context.Context, email string) (string, error) {
	email = NormalizeEmail(email)
	code, err := generateCode()
	if err != nil {
		return "", fmt.Errorf("verify: generate code: %w", err)
	}
	if err := s.store.SaveCode(ctx, email, code); err != nil {
		return "", fmt.Errorf("verify: save code: %w", err)
	}

	reference := uuid.NewString()
	body := fmt.Sprintf(
		"Your Meridian Health verification code is %s.\n\nThe code expires in %d minutes. If you did not request access, ignore this email.",
		code, int(s.codeTTL.Minutes()),
	)
	if err := s.mailer.Send(ctx, email, "Your verification code", body); err != nil {
		return "", fmt.Errorf("verify: send code: %w", err)
	}
	s.logger.Info("verification code issued", slog.String("reference", reference))
	return reference, nil
}

// Confirm checks a submitted code. On success the owner is notified
// that the address now has data room access; notification failures are
// logged, not surfaced.
func (s *Service) Confirm(ctx context.Context, email, code string) error {
	email = NormalizeEmail(email)
	if err := s.store.Check(ctx, email, code); err != nil {
		return err
	}
	if s.ownerEmail != "" {
		body := fmt.Sprintf("%s verified their address and can now view the plan.", email)
		if err := s.mailer.Send(ctx, s.ownerEmail, "New data room visitor", body); err != nil {
			s.logger.Warn("owner notification", slog.Any("error", err))
		}
	}
	return nil
}

// generateCode draws a uniform six-digit code from crypto/rand.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
