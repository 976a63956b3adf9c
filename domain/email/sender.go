package email

import (
	"context"
	"log/slog"

	"github.com/gogetwell/website/pkg/logger"
)

// Sender delivers one message.
type Sender interface {
	Send(ctx context.Context, opts SendOptions) (*SendResult, error)
}

type SendOptions struct {
	To      string
	ToName  string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// SendResult describes the outcome. Delivery failures are reported here
// rather than as an error.
type SendResult struct {
	Success   bool
	MessageID string
	Error     string
}

// NewSender returns the Mailgun sender when mail is active and a logging
// stand-in otherwise.
func NewSender(log *slog.Logger, cfg *Config) Sender {
	log = log.With(logger.Scope("email"))
	if !cfg.Active() {
		log.Info("mail transport inactive, messages are only logged")
		return &noOpSender{log: log}
	}
	log.Info("mail transport: mailgun",
		slog.String("domain", cfg.MailgunDomain),
		slog.String("from", cfg.FromEmail))
	return NewMailgunSender(cfg, log)
}

type noOpSender struct {
	log *slog.Logger
}

func (s *noOpSender) Send(_ context.Context, opts SendOptions) (*SendResult, error) {
	s.log.Info("email not sent",
		slog.String("to", opts.To),
		slog.String("subject", opts.Subject))
	return &SendResult{Success: true, MessageID: "noop-" + opts.To}, nil
}
