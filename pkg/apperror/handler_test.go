package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func serve(t *testing.T, method string, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/api/contact", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	HTTPErrorHandler(slog.New(slog.DiscardHandler))(err, c)

	if method == http.MethodHead {
		return rec, nil
	}
	var resp map[string]any
	if jerr := json.Unmarshal(rec.Body.Bytes(), &resp); jerr != nil {
		t.Fatalf("Failed to parse response: %v", jerr)
	}
	return rec, resp["error"].(map[string]any)
}

func TestHTTPErrorHandler_AppError(t *testing.T) {
	rec, errObj := serve(t, http.MethodPost, NewBadRequest("invalid input"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if errObj["code"] != "bad_request" {
		t.Errorf("Code = %v, want bad_request", errObj["code"])
	}
	if errObj["message"] != "invalid input" {
		t.Errorf("Message = %v, want 'invalid input'", errObj["message"])
	}
}

func TestHTTPErrorHandler_WrappedAppErrorWithDetails(t *testing.T) {
	appErr := ErrValidation.WithDetails(map[string]any{"missing": []string{"email"}})
	rec, errObj := serve(t, http.MethodPost, fmt.Errorf("submit: %w", appErr))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("Status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
	if errObj["code"] != "validation_error" {
		t.Errorf("Code = %v, want validation_error", errObj["code"])
	}
	details, ok := errObj["details"].(map[string]any)
	if !ok {
		t.Fatalf("details missing: %v", errObj)
	}
	if fmt.Sprint(details["missing"]) != "[email]" {
		t.Errorf("details.missing = %v", details["missing"])
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantCode string
	}{
		{"bad_request", http.StatusBadRequest, "bad_request"},
		{"not_found", http.StatusNotFound, "not_found"},
		{"method_not_allowed", http.StatusMethodNotAllowed, "method_not_allowed"},
		{"unprocessable_entity", http.StatusUnprocessableEntity, "validation_error"},
		{"too_many_requests", http.StatusTooManyRequests, "rate_limited"},
		{"bad_gateway", http.StatusBadGateway, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, errObj := serve(t, http.MethodGet, echo.NewHTTPError(tt.status, "test message"))

			if rec.Code != tt.status {
				t.Errorf("Status = %d, want %d", rec.Code, tt.status)
			}
			if errObj["code"] != tt.wantCode {
				t.Errorf("Code = %v, want %v", errObj["code"], tt.wantCode)
			}
			if errObj["message"] != "test message" {
				t.Errorf("Message = %v, want 'test message'", errObj["message"])
			}
		})
	}
}

func TestHTTPErrorHandler_UnknownError(t *testing.T) {
	rec, errObj := serve(t, http.MethodGet, errors.New("boom"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", rec.Code)
	}
	if errObj["message"] != "An internal error occurred" {
		t.Errorf("internal details leaked: %v", errObj["message"])
	}
}

func TestHTTPErrorHandler_Head(t *testing.T) {
	rec, _ := serve(t, http.MethodHead, ErrNotFound)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Status = %d, want 404", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("HEAD response should have no body, got %q", rec.Body.String())
	}
}
