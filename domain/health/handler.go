// Package health exposes liveness and readiness probes.
package health

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"

	"github.com/gogetwell/website/internal/config"
	"github.com/gogetwell/website/internal/version"
)

const probeTimeout = 5 * time.Second

// Check statuses. Only StatusUnhealthy fails the probes.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	StatusDisabled  = "disabled"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db      Pinger
	cfg     *config.Config
	startAt time.Time
}

// NewHandler creates a health handler. pool is nil when the submission
// archive is not configured.
func NewHandler(pool *pgxpool.Pool, cfg *config.Config) *Handler {
	h := &Handler{cfg: cfg, startAt: time.Now()}
	if pool != nil {
		h.db = pool
	}
	return h
}

type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func (c Check) failed() bool { return c.Status == StatusUnhealthy }

// archive pings the submission database, if there is one.
func (h *Handler) archive(ctx context.Context) Check {
	if h.db == nil {
		return Check{Status: StatusDisabled}
	}
	if err := h.db.Ping(ctx); err != nil {
		return Check{Status: StatusUnhealthy, Message: err.Error()}
	}
	return Check{Status: StatusHealthy}
}

// mail reports which transport contact submissions go through. It never
// fails the probe: without Mailgun the form falls back to the simulated
// submitter.
func (h *Handler) mail() Check {
	e := h.cfg.Email
	if e.Enabled && e.IsConfigured() {
		return Check{Status: StatusHealthy, Message: "mailgun"}
	}
	return Check{Status: StatusDisabled, Message: "simulated"}
}

func (h *Handler) checks(ctx context.Context) (map[string]Check, bool) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	checks := map[string]Check{
		"database": h.archive(ctx),
		"mail":     h.mail(),
	}
	for _, c := range checks {
		if c.failed() {
			return checks, false
		}
	}
	return checks, true
}

// Health reports every check with uptime and version.
func (h *Handler) Health(c echo.Context) error {
	checks, ok := h.checks(c.Request().Context())

	resp := HealthResponse{
		Status:    StatusHealthy,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startAt).Round(time.Second).String(),
		Version:   version.Version,
		Checks:    checks,
	}
	code := http.StatusOK
	if !ok {
		resp.Status = StatusUnhealthy
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, resp)
}

// Healthz is the liveness probe.
func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Ready fails only while a configured archive is unreachable.
func (h *Handler) Ready(c echo.Context) error {
	if _, ok := h.checks(c.Request().Context()); !ok {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status":  "not_ready",
			"message": "Database connection failed",
		})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}

type DebugInfo struct {
	Environment  string       `json:"environment"`
	Version      version.Info `json:"version"`
	GoVersion    string       `json:"go_version"`
	Goroutines   int          `json:"goroutines"`
	HeapAllocMB  uint64       `json:"heap_alloc_mb"`
	SysMB        uint64       `json:"sys_mb"`
	NumGC        uint32       `json:"num_gc"`
	LazySections bool         `json:"lazy_sections"`
	Archive      bool         `json:"archive"`
}

// Debug returns runtime information outside production.
func (h *Handler) Debug(c echo.Context) error {
	if h.cfg.Environment == "production" {
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return c.JSON(http.StatusOK, DebugInfo{
		Environment:  h.cfg.Environment,
		Version:      version.Get(),
		GoVersion:    runtime.Version(),
		Goroutines:   runtime.NumGoroutine(),
		HeapAllocMB:  mem.HeapAlloc >> 20,
		SysMB:        mem.Sys >> 20,
		NumGC:        mem.NumGC,
		LazySections: h.cfg.Site.LazySections,
		Archive:      h.cfg.Database.IsConfigured(),
	})
}
