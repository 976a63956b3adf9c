package contact

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/gogetwell/website/domain/email"
	"github.com/gogetwell/website/internal/config"
	"github.com/gogetwell/website/pkg/apperror"
	"github.com/gogetwell/website/pkg/logger"
	"github.com/gogetwell/website/pkg/tracing"
)

// ErrRateLimited is wrapped in the SubmitError returned when a client
// submits too often.
var ErrRateLimited = errors.New("contact submissions rate limited")

const rateLimitedDetail = "Too many messages. Please wait a minute and try again."

// Service validates, throttles and delivers contact submissions. It is
// shared by the form POST, the JSON endpoint and live sessions.
type Service struct {
	submitter Submitter
	kind      string
	limiter   *RateLimiter
	timeout   time.Duration
	log       *slog.Logger
}

// NewService picks the mail submitter when Mailgun is active and the
// simulated one otherwise, and archives every attempt.
func NewService(cfg *config.Config, emailCfg *email.Config, sender email.Sender, templates *email.TemplateService, archive Archive, limiter *RateLimiter, log *slog.Logger) *Service {
	log = log.With(logger.Scope("contact"))

	var next Submitter
	kind := "simulated"
	if emailCfg.Active() {
		next = NewMailSubmitter(sender, templates, cfg.Contact.Recipient, cfg.Site.Name, log)
		kind = "mail"
	} else {
		next = SimulatedSubmitter{Delay: cfg.Contact.SimulatedDelay}
	}
	log.Info("contact submissions configured",
		slog.String("submitter", kind),
		slog.Duration("timeout", cfg.Contact.Timeout))

	return &Service{
		submitter: &ArchivingSubmitter{Next: next, Archive: archive, Log: log},
		kind:      kind,
		limiter:   limiter,
		timeout:   cfg.Contact.Timeout,
		log:       log,
	}
}

// NewServiceWith builds a Service around an explicit submitter.
func NewServiceWith(submitter Submitter, limiter *RateLimiter, timeout time.Duration, log *slog.Logger) *Service {
	return &Service{
		submitter: submitter,
		kind:      "custom",
		limiter:   limiter,
		timeout:   timeout,
		log:       log.With(logger.Scope("contact")),
	}
}

// Submit delivers fields on behalf of clientKey.
func (s *Service) Submit(ctx context.Context, clientKey string, fields Fields) (Receipt, error) {
	ctx, span := tracing.Start(ctx, "contact.submit",
		attribute.String("contact.submitter", s.kind),
	)
	defer span.End()

	fields = fields.Trimmed()
	if err := fields.Validate(); err != nil {
		submissionsTotal.WithLabelValues(resultInvalid).Inc()
		tracing.RecordError(span, err)
		return Receipt{}, err
	}

	if s.limiter != nil && !s.limiter.Allow(clientKey) {
		submissionsTotal.WithLabelValues(resultRateLimited).Inc()
		s.log.Warn("contact submission rate limited", slog.String("client", clientKey))
		err := &SubmitError{Detail: rateLimitedDetail, Err: ErrRateLimited}
		tracing.RecordError(span, err)
		return Receipt{}, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	msg := NewMessage(fields, clientKey)
	span.SetAttributes(attribute.String("contact.submission_id", msg.ID.String()))

	start := time.Now()
	receipt, err := s.submitter.Submit(ctx, msg)
	submitDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		submissionsTotal.WithLabelValues(resultLabel(err)).Inc()
		tracing.RecordError(span, err)
		if !errors.Is(err, context.Canceled) {
			s.log.Error("contact submission failed",
				slog.String("submission_id", msg.ID.String()),
				logger.Error(err))
		}
		return Receipt{}, err
	}

	submissionsTotal.WithLabelValues(resultDelivered).Inc()
	s.log.Info("contact submission delivered",
		slog.String("submission_id", msg.ID.String()),
		slog.String("message_id", receipt.MessageID))
	return receipt, nil
}

func resultLabel(err error) string {
	var serr *SubmitError
	switch {
	case errors.Is(err, context.Canceled):
		return resultCanceled
	case errors.As(err, &serr):
		return resultRejected
	default:
		return resultError
	}
}

// APIError maps a Submit failure onto the HTTP error envelope.
func APIError(err error) *apperror.Error {
	var verr *ValidationError
	var serr *SubmitError
	switch {
	case errors.As(err, &verr):
		details := map[string]any{}
		if len(verr.Missing) > 0 {
			details["missing"] = verr.Missing
		}
		if len(verr.Invalid) > 0 {
			details["invalid"] = verr.Invalid
		}
		return apperror.ErrValidation.WithDetails(details).WithInternal(err)
	case errors.Is(err, ErrRateLimited):
		return apperror.ErrTooManyRequests.WithMessage(rateLimitedDetail)
	case errors.As(err, &serr):
		e := apperror.ErrBadGateway.WithInternal(err)
		if serr.Detail != "" {
			e = e.WithMessage(serr.Detail)
		}
		return e
	case errors.Is(err, context.DeadlineExceeded):
		return apperror.ErrBadGateway.WithMessage("Submission timed out").WithInternal(err)
	}
	return apperror.ErrInternal.WithInternal(err)
}
