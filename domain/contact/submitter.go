package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gogetwell/website/domain/email"
	"github.com/gogetwell/website/pkg/logger"
)

// Message is one validated submission on its way out.
type Message struct {
	ID        uuid.UUID
	Fields    Fields
	ClientKey string
	CreatedAt time.Time
}

// NewMessage stamps fields with a fresh id.
func NewMessage(fields Fields, clientKey string) Message {
	return Message{
		ID:        uuid.New(),
		Fields:    fields,
		ClientKey: clientKey,
		CreatedAt: time.Now().UTC(),
	}
}

// Receipt acknowledges a delivered submission.
type Receipt struct {
	ID        uuid.UUID `json:"id"`
	MessageID string    `json:"messageId,omitempty"`
}

// Submitter delivers a message. Failures the visitor should see carry a
// *SubmitError.
type Submitter interface {
	Submit(ctx context.Context, msg Message) (Receipt, error)
}

// SubmitError is a rejected submission, optionally with a human readable
// detail from the receiving side.
type SubmitError struct {
	Detail string
	Err    error
}

func (e *SubmitError) Error() string {
	switch {
	case e.Detail != "" && e.Err != nil:
		return fmt.Sprintf("submission rejected: %s: %v", e.Detail, e.Err)
	case e.Detail != "":
		return "submission rejected: " + e.Detail
	case e.Err != nil:
		return fmt.Sprintf("submission rejected: %v", e.Err)
	}
	return "submission rejected"
}

func (e *SubmitError) Unwrap() error { return e.Err }

// Detail extracts the visitor-facing detail from err, if any.
func Detail(err error) string {
	var serr *SubmitError
	if errors.As(err, &serr) {
		return serr.Detail
	}
	return ""
}

// SimulatedSubmitter stands in for a real endpoint: it waits Delay and
// accepts everything.
type SimulatedSubmitter struct {
	Delay time.Duration
}

func (s SimulatedSubmitter) Submit(ctx context.Context, msg Message) (Receipt, error) {
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Receipt{}, ctx.Err()
	case <-timer.C:
	}
	return Receipt{ID: msg.ID}, nil
}

const (
	notificationTemplate = "contact_notification"
	notificationLayout   = "base"
)

// MailSubmitter forwards submissions to the site's inbox.
type MailSubmitter struct {
	sender    email.Sender
	templates *email.TemplateService
	recipient string
	siteName  string
	log       *slog.Logger
}

func NewMailSubmitter(sender email.Sender, templates *email.TemplateService, recipient, siteName string, log *slog.Logger) *MailSubmitter {
	return &MailSubmitter{
		sender:    sender,
		templates: templates,
		recipient: recipient,
		siteName:  siteName,
		log:       log.With(logger.Scope("contact.mail")),
	}
}

func (m *MailSubmitter) Submit(ctx context.Context, msg Message) (Receipt, error) {
	subject := msg.Fields.Subject
	if subject == "" {
		subject = "New contact request"
	}
	subject = fmt.Sprintf("[%s] %s", m.siteName, subject)

	rendered, err := m.templates.Render(notificationTemplate, email.TemplateContext{
		"title":        subject,
		"siteName":     m.siteName,
		"fullName":     msg.Fields.FullName,
		"email":        msg.Fields.Email,
		"subject":      msg.Fields.Subject,
		"message":      msg.Fields.Message,
		"submissionId": msg.ID.String(),
	}, notificationLayout)
	if err != nil {
		return Receipt{}, fmt.Errorf("render contact notification: %w", err)
	}

	result, err := m.sender.Send(ctx, email.SendOptions{
		To:      m.recipient,
		ReplyTo: msg.Fields.Email,
		Subject: subject,
		HTML:    rendered.HTML,
		Text:    rendered.Text,
	})
	if err != nil {
		return Receipt{}, err
	}
	if !result.Success {
		m.log.Warn("contact notification rejected",
			slog.String("submission_id", msg.ID.String()),
			slog.String("error", result.Error))
		return Receipt{}, &SubmitError{Detail: result.Error}
	}

	return Receipt{ID: msg.ID, MessageID: result.MessageID}, nil
}
