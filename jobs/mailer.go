package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/cenkalti/backoff/v5"
)

// SMTPMailer delivers mail over plain SMTP with exponential-backoff
// retries. Local development points it at Mailpit; production at a
// relay.
type SMTPMailer struct {
	addr   string
	from   string
	logger *slog.Logger
}

// NewSMTPMailer constructs the mailer.
func NewSMTPMailer(host string, port int, from string, logger *slog.Logger) *SMTPMailer {
	return &SMTPMailer{
		addr:   fmt.Sprintf("%s:%d", host, port),
		from:   from,
		logger: logger,
	}
}

// Send delivers one plain-text message, retrying transient transport
// failures up to four times.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	msg := buildMessage(m.from, to, subject, body)
	operation := func() (struct{}, error) {
		return struct{}{}, smtp.SendMail(m.addr, nil, m.from, []string{to}, msg)
	}
	_, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(4),
	)
	if err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return []byte(b.String())
}
