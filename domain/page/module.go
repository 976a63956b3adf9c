package page

import (
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var Module = fx.Module("page",
	fx.Provide(
		NewSite,
		NewHandler,
	),
	fx.Invoke(RegisterRoutes),
)

// pageMiddleware applies to HTML responses only; the live socket must not
// be wrapped by a compressing writer.
func pageMiddleware() []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		echo.WrapMiddleware(chimiddleware.Compress(5, "text/html", "application/json")),
		echo.WrapMiddleware(chimiddleware.NoCache),
	}
}

func RegisterRoutes(e *echo.Echo, h *Handler) {
	mw := pageMiddleware()
	e.GET("/", h.Index, mw...)
	e.GET("/sections/:name", h.Section, mw...)
	e.POST("/contact", h.SubmitContact, mw...)
}
