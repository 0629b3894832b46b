package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskTypeSendEmail is the task type for sending transactional emails.
	TaskTypeSendEmail = "mail:send"
	// TaskTypeReportWarmup is the task type for rebuilding the report cache.
	TaskTypeReportWarmup = "report:warmup"
)

// SendEmailPayload describes the information required to send an email.
type SendEmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// NewSendEmailTask constructs an Asynq task.
func NewSendEmailTask(payload SendEmailPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeSendEmail, data), nil
}

// Deliverer hands a message to the mail transport.
type Deliverer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// EmailJob processes TaskTypeSendEmail tasks.
type EmailJob struct {
	mailer Deliverer
	logger *slog.Logger
}

// NewEmailJob constructs the email job handler.
func NewEmailJob(mailer Deliverer, logger *slog.Logger) *EmailJob {
	return &EmailJob{mailer: mailer, logger: logger}
}

// Handle delivers one queued email. Malformed payloads are dropped;
// transport errors surface so Asynq retries the task.
func (j *EmailJob) Handle(ctx context.Context, t *asynq.Task) error {
	var payload SendEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	if err := j.mailer.Send(ctx, payload.To, payload.Subject, payload.Body); err != nil {
		j.logger.Warn("send email", slog.Any("error", err))
		return err
	}
	j.logger.Info("email delivered", slog.String("subject", payload.Subject))
	return nil
}

// NewReportWarmupTask constructs the cache warmup task.
func NewReportWarmupTask() (*asynq.Task, error) {
	return asynq.NewTask(TaskTypeReportWarmup, nil), nil
}

// Warmer rebuilds the report view-model cache.
type Warmer interface {
	Warm(ctx context.Context) error
}

// WarmupJob processes TaskTypeReportWarmup tasks.
type WarmupJob struct {
	warmer Warmer
	logger *slog.Logger
}

// NewWarmupJob constructs the warmup job handler.
func NewWarmupJob(warmer Warmer, logger *slog.Logger) *WarmupJob {
	return &WarmupJob{warmer: warmer, logger: logger}
}

// Handle rebuilds every cached report view model.
func (j *WarmupJob) Handle(ctx context.Context, t *asynq.Task) error {
	if err := j.warmer.Warm(ctx); err != nil {
		j.logger.Warn("report warmup", slog.Any("error", err))
		return err
	}
	j.logger.Info("report cache warmed")
	return nil
}
