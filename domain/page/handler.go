package page

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	g "maragu.dev/gomponents"

	"github.com/gogetwell/website/domain/contact"
	"github.com/gogetwell/website/domain/notify"
	"github.com/gogetwell/website/pkg/apperror"
	"github.com/gogetwell/website/pkg/logger"
	"github.com/gogetwell/website/pkg/tracing"
)

// Handler serves the page, its lazily loaded sections and the no-script
// contact form.
type Handler struct {
	site    *Site
	contact *contact.Service
	log     *slog.Logger
}

func NewHandler(site *Site, svc *contact.Service, log *slog.Logger) *Handler {
	return &Handler{
		site:    site,
		contact: svc,
		log:     log.With(logger.Scope("page")),
	}
}

// Index handles GET /.
func (h *Handler) Index(c echo.Context) error {
	q := c.QueryParams()
	lazy := h.site.Lazy && !HasStateParams(q)

	_, span := tracing.Start(c.Request().Context(), "page.index",
		attribute.Bool("page.lazy", lazy),
	)
	defer span.End()

	p := h.site.NewPage(ParseViewState(q))
	var toasts []notify.Toast
	if p.Form.Submitted {
		toasts = append(toasts, contact.SuccessToast())
	}
	return render(c, http.StatusOK, Document(p, lazy, toasts...))
}

// Section handles GET /sections/:name with the fragment for one section.
func (h *Handler) Section(c echo.Context) error {
	name := c.Param("name")
	id, err := ParseSection(name)
	if err != nil {
		return apperror.NewNotFound("section", name)
	}

	p := h.site.NewPage(ParseViewState(c.QueryParams()))
	return render(c, http.StatusOK, p.RenderSection(id))
}

// SubmitContact handles the form POST from visitors without script. Success
// redirects to the confirmation; failure re-renders the page with the
// visitor's input kept and a toast explaining what happened.
func (h *Handler) SubmitContact(c echo.Context) error {
	p := h.site.NewPage(ParseViewState(c.QueryParams()))
	p.Form.Submitted = false

	for _, name := range []string{contact.FieldFullName, contact.FieldEmail, contact.FieldSubject, contact.FieldMessage} {
		_ = p.Form.Set(name, c.FormValue(name))
	}

	fields, err := p.Form.Begin()
	if err != nil {
		var verr *contact.ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		return render(c, http.StatusUnprocessableEntity, Document(p, false, contact.ValidationToast()))
	}

	_, err = h.contact.Submit(c.Request().Context(), c.RealIP(), fields)
	toast := p.Form.Complete(err)
	if err != nil {
		status := contact.APIError(err).HTTPStatus
		return render(c, status, Document(p, false, toast))
	}

	return c.Redirect(http.StatusSeeOther, p.State().URL(SectionContact))
}

func render(c echo.Context, status int, node g.Node) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return node.Render(c.Response())
}
