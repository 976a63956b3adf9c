package contact

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogetwell/website/internal/config"
	"github.com/gogetwell/website/internal/server"
	"github.com/gogetwell/website/pkg/apperror"
)

func newTestEcho(svc *Service) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apperror.HTTPErrorHandler(discard())
	RegisterRoutes(e, NewHandler(svc))
	return e
}

func TestHandlerSubmit(t *testing.T) {
	e := newTestEcho(NewServiceWith(&stubSubmitter{receipt: Receipt{MessageID: "m-1"}}, nil, time.Second, discard()))

	body := `{"name":"Asha Rao","email":"asha@example.com","subject":"","message":"Hi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "submitted", resp.Status)
	assert.Equal(t, "m-1", resp.Receipt.MessageID)
}

func TestHandlerSubmitErrors(t *testing.T) {
	tests := []struct {
		name       string
		submitter  Submitter
		body       string
		wantStatus int
		wantCode   string
	}{
		{"malformed json", &stubSubmitter{}, `{"name":`, http.StatusBadRequest, "bad_request"},
		{"missing fields", &stubSubmitter{}, `{"email":"asha@example.com"}`, http.StatusUnprocessableEntity, "validation_error"},
		{"rejected", &stubSubmitter{err: &SubmitError{Detail: "Mailbox full"}}, `{"name":"A","email":"a@example.com","message":"m"}`, http.StatusBadGateway, "upstream_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(NewServiceWith(tt.submitter, nil, time.Second, discard()))
			req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var envelope struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
			assert.Equal(t, tt.wantCode, envelope.Error.Code)
		})
	}
}

func TestHandlerRateLimitIgnoresForwardedFor(t *testing.T) {
	e := server.NewEcho(server.EchoParams{
		Config: &config.Config{Site: config.SiteConfig{URL: "http://localhost:4002"}},
		Log:    discard(),
	})
	svc := NewServiceWith(&stubSubmitter{}, NewRateLimiter(1, 1), time.Second, discard())
	RegisterRoutes(e, NewHandler(svc))

	body := `{"name":"Asha Rao","email":"asha@example.com","message":"Hi"}`
	var codes []int
	for _, xff := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(echo.HeaderXForwardedFor, xff)
		req.RemoteAddr = "203.0.113.7:5000"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusCreated, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
}
