package page

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogetwell/website/domain/contact"
	"github.com/gogetwell/website/pkg/apperror"
)

type stubSubmitter struct {
	err   error
	calls int
}

func (s *stubSubmitter) Submit(_ context.Context, msg contact.Message) (contact.Receipt, error) {
	s.calls++
	if s.err != nil {
		return contact.Receipt{}, s.err
	}
	return contact.Receipt{ID: msg.ID}, nil
}

func newTestServer(t *testing.T, sub contact.Submitter) *echo.Echo {
	t.Helper()
	log := slog.New(slog.DiscardHandler)
	e := echo.New()
	e.HTTPErrorHandler = apperror.HTTPErrorHandler(log)
	svc := contact.NewServiceWith(sub, nil, time.Second, log)
	RegisterRoutes(e, NewHandler(testSite(t), svc, log))
	return e
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestIndexLazy(t *testing.T) {
	rec := get(newTestServer(t, &stubSubmitter{}), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Contains(t, rec.Body.String(), `data-lazy-src="/sections/faq"`)
}

func TestIndexOperationsFilter(t *testing.T) {
	rec := get(newTestServer(t, &stubSubmitter{}), "/?filter=operations")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, "data-lazy-src")
	assert.Contains(t, body, "Real-Time Query Handling")
	assert.Contains(t, body, "Multilingual Support")
	assert.Contains(t, body, "Seamless Payment Handling")
	assert.NotContains(t, body, "Custom AI-Powered Website")
	assert.NotContains(t, body, "Medical Report Analysis")
}

func TestIndexRestoredVideoDoesNotAutoplay(t *testing.T) {
	rec := get(newTestServer(t, &stubSubmitter{}), "/?video=play")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `src="https://www.youtube.com/embed/xQl8i2sO_Ls"`)
	assert.NotContains(t, body, "autoplay=1")
}

func TestSectionFragment(t *testing.T) {
	e := newTestServer(t, &stubSubmitter{})

	rec := get(e, "/sections/faq?faq=3")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, `<section id="faq"`), body[:40])
	assert.Contains(t, body, `aria-controls="faq-answer-3"`)
	assert.NotContains(t, body, "<html")

	rec = get(e, "/sections/pricing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func postForm(e *echo.Echo, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

var filledForm = url.Values{
	"fullname": {"Asha Rao"},
	"email":    {"asha@example.com"},
	"subject":  {""},
	"message":  {"We run 3 clinics."},
}

func TestSubmitContactRedirects(t *testing.T) {
	sub := &stubSubmitter{}
	e := newTestServer(t, sub)

	rec := postForm(e, "/contact?filter=analysis", filledForm)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	loc := rec.Header().Get(echo.HeaderLocation)
	assert.Contains(t, loc, "contact=sent")
	assert.Contains(t, loc, "filter=analysis")
	assert.Equal(t, 1, sub.calls)

	rec = get(e, loc)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Thanks for reaching out!")
	assert.Contains(t, rec.Body.String(), "Successfully submitted")
}

func TestSubmitContactFailureKeepsInput(t *testing.T) {
	e := newTestServer(t, &stubSubmitter{err: &contact.SubmitError{Detail: "Mailbox full"}})

	rec := postForm(e, "/contact", filledForm)
	require.Equal(t, http.StatusBadGateway, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `value="Asha Rao"`)
	assert.Contains(t, body, "We run 3 clinics.")
	assert.Contains(t, body, "Mailbox full")
	assert.NotContains(t, body, "Thanks for reaching out!")
}

func TestSubmitContactValidation(t *testing.T) {
	sub := &stubSubmitter{}
	e := newTestServer(t, sub)

	rec := postForm(e, "/contact", url.Values{"email": {"asha@example.com"}})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error submitting form")
	assert.Zero(t, sub.calls)
}
