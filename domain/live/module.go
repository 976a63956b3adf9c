package live

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/gogetwell/website/domain/page"
)

var Module = fx.Module("live",
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
	fx.Invoke(registerShutdown),
)

func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET(page.LivePath, h.Serve)
}

func registerShutdown(lc fx.Lifecycle, h *Handler) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return h.Shutdown(ctx)
		},
	})
}
