// Package database opens the optional Postgres connection used by the
// contact submission archive. Both providers return nil when POSTGRES_HOST
// is unset, and consumers treat nil as "no archive".
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"go.uber.org/fx"

	"github.com/gogetwell/website/internal/config"
	"github.com/gogetwell/website/pkg/logger"
)

const (
	connectTimeout = 10 * time.Second
	slowQuery      = time.Second
)

var Module = fx.Module("database",
	fx.Provide(
		NewPgxPool,
		NewBunDB,
	),
)

func poolConfig(dc config.DatabaseConfig) (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(dc.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse pgx config: %w", err)
	}
	pc.MaxConns = int32(max(dc.MaxOpenConns, 1))
	pc.MinConns = int32(min(dc.MaxIdleConns, dc.MaxOpenConns))
	pc.MaxConnIdleTime = dc.MaxIdleTime
	return pc, nil
}

// NewPgxPool connects and pings, failing start-up when a configured
// database is unreachable.
func NewPgxPool(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) (*pgxpool.Pool, error) {
	log = log.With(logger.Scope("database"))
	dc := cfg.Database

	if !dc.IsConfigured() {
		log.Info("database not configured, submission archive disabled")
		return nil, nil
	}

	pc, err := poolConfig(dc)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping %s:%d: %w", dc.Host, dc.Port, err)
	}

	log.Info("submission archive connected",
		slog.String("host", dc.Host),
		slog.String("database", dc.Database),
		slog.Int("max_conns", int(pc.MaxConns)),
	)

	lc.Append(fx.StopHook(pool.Close))
	return pool, nil
}

// NewBunDB wraps the pgx pool in bun. The pool owns the connections, so
// stopping only closes the database/sql handle.
func NewBunDB(lc fx.Lifecycle, pool *pgxpool.Pool, cfg *config.Config, log *slog.Logger) *bun.DB {
	if pool == nil {
		return nil
	}

	db := bun.NewDB(stdlib.OpenDBFromPool(pool), pgdialect.New())
	if cfg.Database.QueryDebug {
		db.AddQueryHook(&queryLoggingHook{log: log.With(logger.Scope("bun")), slow: slowQuery})
	}

	lc.Append(fx.StopHook(db.Close))
	return db
}

// queryLoggingHook logs failed queries as errors, slow ones as warnings and
// everything else at debug level.
type queryLoggingHook struct {
	log  *slog.Logger
	slow time.Duration
}

func (h *queryLoggingHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (h *queryLoggingHook) AfterQuery(ctx context.Context, event *bun.QueryEvent) {
	took := time.Since(event.StartTime)
	attrs := []slog.Attr{
		slog.String("query", event.Query),
		slog.Duration("duration", took),
	}

	level, msg := slog.LevelDebug, "query"
	switch {
	case event.Err != nil && !errors.Is(event.Err, sql.ErrNoRows):
		level, msg = slog.LevelError, "query failed"
		attrs = append(attrs, logger.Error(event.Err))
	case took > h.slow:
		level, msg = slog.LevelWarn, "slow query"
	}
	h.log.LogAttrs(ctx, level, msg, attrs...)
}
