package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/gogetwell/website/domain/contact"
	"github.com/gogetwell/website/domain/email"
	"github.com/gogetwell/website/domain/health"
	"github.com/gogetwell/website/domain/live"
	"github.com/gogetwell/website/domain/page"
	"github.com/gogetwell/website/internal/config"
	"github.com/gogetwell/website/internal/database"
	"github.com/gogetwell/website/internal/migrate"
	"github.com/gogetwell/website/internal/server"
	"github.com/gogetwell/website/pkg/logger"
	"github.com/gogetwell/website/pkg/tracing"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := newApp()
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}
}

func newApp() *fx.App {
	return fx.New(appOptions())
}

// appOptions is the full module graph served by the site.
func appOptions() fx.Option {
	return fx.Options(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure
		logger.Module,
		config.Module,
		tracing.Module,
		database.Module,
		migrate.Module,
		server.Module,

		// Domain
		health.Module,
		email.Module,
		contact.Module,
		page.Module,
		live.Module,
	)
}
