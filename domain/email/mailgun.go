package email

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"time"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/gogetwell/website/pkg/logger"
)

const sendTimeout = 30 * time.Second

// MailgunSender delivers through the Mailgun HTTP API.
type MailgunSender struct {
	cfg    *Config
	log    *slog.Logger
	client mailgun.Mailgun
}

func NewMailgunSender(cfg *Config, log *slog.Logger) *MailgunSender {
	return &MailgunSender{
		cfg:    cfg,
		log:    log.With(logger.Scope("email.mailgun")),
		client: mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey),
	}
}

// address renders "Name <addr>", quoting the name when needed.
func address(name, addr string) string {
	if name == "" {
		return addr
	}
	return (&mail.Address{Name: name, Address: addr}).String()
}

// Send reports configuration and delivery problems in the result. Only a
// cancelled caller is returned as an error.
func (s *MailgunSender) Send(ctx context.Context, opts SendOptions) (*SendResult, error) {
	if !s.cfg.Enabled {
		s.log.Warn("email sending is disabled (EMAIL_ENABLED=false)")
		return &SendResult{Error: "Email sending is disabled"}, nil
	}
	if err := s.validate(); err != nil {
		s.log.Error("email configuration invalid", logger.Error(err))
		return &SendResult{Error: err.Error()}, nil
	}

	msg := s.client.NewMessage(
		address(s.cfg.FromName, s.cfg.FromEmail),
		opts.Subject,
		opts.Text,
		address(opts.ToName, opts.To),
	)
	if opts.HTML != "" {
		msg.SetHtml(opts.HTML)
	}
	if opts.ReplyTo != "" {
		msg.SetReplyTo(opts.ReplyTo)
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	_, id, err := s.client.Send(ctx, msg)
	switch {
	case err == nil:
		s.log.Info("email sent", slog.String("to", opts.To), slog.String("message_id", id))
		return &SendResult{Success: true, MessageID: id}, nil
	case ctx.Err() == context.Canceled:
		return nil, ctx.Err()
	default:
		s.log.Error("mailgun send failed", slog.String("to", opts.To), logger.Error(err))
		return &SendResult{Error: err.Error()}, nil
	}
}

func (s *MailgunSender) validate() error {
	required := []struct{ env, value string }{
		{"MAILGUN_DOMAIN", s.cfg.MailgunDomain},
		{"MAILGUN_API_KEY", s.cfg.MailgunAPIKey},
		{"EMAIL_FROM_ADDRESS", s.cfg.FromEmail},
		{"EMAIL_FROM_NAME", s.cfg.FromName},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s is required", r.env)
		}
	}
	return nil
}
