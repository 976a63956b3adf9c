package contact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/gogetwell/website/pkg/logger"
)

// SubmissionStatus is the outcome recorded for an archived attempt.
type SubmissionStatus string

const (
	StatusDelivered SubmissionStatus = "delivered"
	StatusFailed    SubmissionStatus = "failed"
)

// Submission is one archived submission attempt.
type Submission struct {
	bun.BaseModel `bun:"table:contact_submissions,alias:cs"`

	ID        uuid.UUID        `bun:"id,pk,type:uuid"`
	FullName  string           `bun:"full_name,notnull"`
	Email     string           `bun:"email,notnull"`
	Subject   *string          `bun:"subject"`
	Message   string           `bun:"message,notnull"`
	ClientKey string           `bun:"client_key,notnull"`
	Status    SubmissionStatus `bun:"status,notnull"`
	MessageID *string          `bun:"message_id"`
	LastError *string          `bun:"last_error"`
	CreatedAt time.Time        `bun:"created_at,notnull,default:now()"`
}

// Archive keeps a record of submissions.
type Archive interface {
	Record(ctx context.Context, sub *Submission) error
}

// NewArchive stores submissions in Postgres when a database is configured.
func NewArchive(db *bun.DB, log *slog.Logger) Archive {
	if db == nil {
		return nopArchive{}
	}
	return &BunArchive{db: db, log: log.With(logger.Scope("contact.archive"))}
}

type nopArchive struct{}

func (nopArchive) Record(context.Context, *Submission) error { return nil }

// BunArchive writes submissions with bun.
type BunArchive struct {
	db  bun.IDB
	log *slog.Logger
}

func (a *BunArchive) Record(ctx context.Context, sub *Submission) error {
	_, err := a.db.NewInsert().
		Model(sub).
		On("CONFLICT (id) DO UPDATE").
		Set("status = EXCLUDED.status").
		Set("message_id = EXCLUDED.message_id").
		Set("last_error = EXCLUDED.last_error").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("insert contact submission: %w", err)
	}
	return nil
}

// ArchivingSubmitter records every attempt made through Next. Archive
// failures are logged and never change the submission's outcome.
type ArchivingSubmitter struct {
	Next    Submitter
	Archive Archive
	Log     *slog.Logger
}

func (s *ArchivingSubmitter) Submit(ctx context.Context, msg Message) (Receipt, error) {
	receipt, err := s.Next.Submit(ctx, msg)

	sub := submissionFor(msg)
	if err != nil {
		sub.Status = StatusFailed
		sub.LastError = strPtr(err.Error())
	} else {
		sub.Status = StatusDelivered
		if receipt.MessageID != "" {
			sub.MessageID = strPtr(receipt.MessageID)
		}
	}

	// The visitor may have left; the record is still worth keeping.
	archiveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if aerr := s.Archive.Record(archiveCtx, sub); aerr != nil {
		s.Log.Warn("failed to archive contact submission",
			slog.String("submission_id", msg.ID.String()),
			logger.Error(aerr))
	}

	return receipt, err
}

func submissionFor(msg Message) *Submission {
	sub := &Submission{
		ID:        msg.ID,
		FullName:  msg.Fields.FullName,
		Email:     msg.Fields.Email,
		Message:   msg.Fields.Message,
		ClientKey: msg.ClientKey,
		CreatedAt: msg.CreatedAt,
	}
	if msg.Fields.Subject != "" {
		sub.Subject = strPtr(msg.Fields.Subject)
	}
	return sub
}

func strPtr(s string) *string { return &s }
