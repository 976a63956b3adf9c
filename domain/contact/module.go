package contact

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/gogetwell/website/internal/config"
	"github.com/gogetwell/website/pkg/logger"
)

var Module = fx.Module("contact",
	fx.Provide(
		newRateLimiter,
		NewArchive,
		NewService,
		NewHandler,
	),
	fx.Invoke(RegisterRoutes),
	fx.Invoke(RegisterLimiterPruning),
)

// RegisterRoutes registers the JSON endpoint. The form POST lives with the
// page because it re-renders it.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.POST("/api/contact", h.Submit)
}

func newRateLimiter(cfg *config.Config) *RateLimiter {
	return NewRateLimiter(cfg.Contact.RatePerMinute, cfg.Contact.RateBurst)
}

const (
	pruneInterval = time.Minute
	pruneIdle     = 10 * time.Minute
)

// RegisterLimiterPruning drops idle client buckets in the background.
func RegisterLimiterPruning(lc fx.Lifecycle, limiter *RateLimiter, log *slog.Logger) {
	log = log.With(logger.Scope("contact.ratelimit"))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(pruneInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						if n := limiter.Prune(pruneIdle); n > 0 {
							log.Debug("pruned idle rate limiters", slog.Int("removed", n))
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
