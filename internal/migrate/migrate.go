// Package migrate runs the embedded goose migrations.
package migrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
	"github.com/uptrace/bun"
	"go.uber.org/fx"

	"github.com/gogetwell/website/internal/config"
	"github.com/gogetwell/website/migrations"
	"github.com/gogetwell/website/pkg/logger"
)

// Module runs pending migrations on start when the archive is configured.
var Module = fx.Module("migrate",
	fx.Provide(NewMigrator),
	fx.Invoke(runOnStart),
)

// ErrNoDatabase is returned when migrations are requested without a
// configured database.
var ErrNoDatabase = errors.New("database is not configured")

// Migrator handles database migrations.
type Migrator struct {
	db  *sql.DB
	fs  fs.FS
	log *slog.Logger
}

// NewMigrator returns nil when db is nil.
func NewMigrator(db *bun.DB, log *slog.Logger) *Migrator {
	if db == nil {
		return nil
	}
	return newMigrator(db.DB, migrations.FS, log)
}

func newMigrator(db *sql.DB, fsys fs.FS, log *slog.Logger) *Migrator {
	return &Migrator{db: db, fs: fsys, log: log.With(logger.Scope("migrate"))}
}

func (m *Migrator) prepare() error {
	if m == nil || m.db == nil {
		return ErrNoDatabase
	}
	goose.SetBaseFS(m.fs)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	return nil
}

// Up runs all pending migrations.
func (m *Migrator) Up(ctx context.Context) error {
	if err := m.prepare(); err != nil {
		return err
	}
	m.log.Info("running database migrations")
	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	m.log.Info("migrations completed successfully")
	return nil
}

// Down rolls back the last migration.
func (m *Migrator) Down(ctx context.Context) error {
	if err := m.prepare(); err != nil {
		return err
	}
	m.log.Info("rolling back last migration")
	if err := goose.DownContext(ctx, m.db, "."); err != nil {
		return fmt.Errorf("failed to rollback migration: %w", err)
	}
	return nil
}

// Status logs the state of every migration.
func (m *Migrator) Status(ctx context.Context) error {
	if err := m.prepare(); err != nil {
		return err
	}
	goose.SetLogger(slogGooseLogger{m.log})
	if err := goose.StatusContext(ctx, m.db, "."); err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}
	return nil
}

// Version returns the current database version.
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	if err := m.prepare(); err != nil {
		return 0, err
	}
	v, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return 0, fmt.Errorf("failed to get db version: %w", err)
	}
	return v, nil
}

func runOnStart(lc fx.Lifecycle, m *Migrator, cfg *config.Config) {
	if m == nil || !cfg.Database.AutoMigrate {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return m.Up(ctx)
		},
	})
}

// slogGooseLogger adapts goose's printf-style logger.
type slogGooseLogger struct {
	log *slog.Logger
}

func (l slogGooseLogger) Fatalf(format string, v ...any) {
	l.log.Error(fmt.Sprintf(format, v...))
}

func (l slogGooseLogger) Printf(format string, v ...any) {
	l.log.Info(fmt.Sprintf(format, v...))
}
