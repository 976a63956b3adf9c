package contact

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gogetwell/website/pkg/apperror"
)

// Handler serves the JSON submission endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// SubmitResponse is returned for an accepted submission.
type SubmitResponse struct {
	Status  string  `json:"status"`
	Receipt Receipt `json:"receipt"`
}

// Submit handles POST /api/contact with {name, email, subject, message}.
func (h *Handler) Submit(c echo.Context) error {
	var fields Fields
	if err := c.Bind(&fields); err != nil {
		return apperror.NewBadRequest("invalid request body").WithInternal(err)
	}

	receipt, err := h.svc.Submit(c.Request().Context(), c.RealIP(), fields)
	if err != nil {
		return APIError(err)
	}

	return c.JSON(http.StatusCreated, SubmitResponse{Status: "submitted", Receipt: receipt})
}
