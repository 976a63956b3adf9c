package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogetwell/website/domain/maps"
	"github.com/gogetwell/website/internal/ui"
)

func renderView(t *testing.T, v View) string {
	t.Helper()
	html, err := ui.String(v.Render())
	require.NoError(t, err)
	return html
}

func testView(form FormState) View {
	return View{
		Form:      form,
		Map:       maps.Widget{Address: "New Delhi, India"},
		Action:    "/contact#contact",
		ResetHref: "/?eager=1#contact",
	}
}

func TestViewIdleForm(t *testing.T) {
	html := renderView(t, testView(FormState{Fields: Fields{FullName: "Asha"}}))

	assert.Contains(t, html, `id="contact"`)
	assert.Contains(t, html, `id="contact-panel"`)
	assert.Contains(t, html, `action="/contact#contact"`)
	assert.Contains(t, html, `name="fullname"`)
	assert.Contains(t, html, `value="Asha"`)
	assert.Contains(t, html, "Send Message")
	assert.NotContains(t, html, "disabled")
	assert.Contains(t, html, "+91 9811396858")
	assert.Contains(t, html, "Sunday: Closed")
	assert.Contains(t, html, "Our Head Office")
	assert.Contains(t, html, "Map visualization unavailable")
}

func TestViewSubmitting(t *testing.T) {
	html := renderView(t, testView(FormState{Submitting: true}))

	assert.Contains(t, html, "disabled")
	assert.Contains(t, html, `aria-busy="true"`)
	assert.Contains(t, html, "Sending...")
}

func TestViewSubmitted(t *testing.T) {
	html, err := ui.String(testView(FormState{Submitted: true}).Panel())
	require.NoError(t, err)

	assert.Contains(t, html, "Thanks for reaching out!")
	assert.Contains(t, html, "Send Another Message")
	assert.Contains(t, html, `data-live="contact.reset"`)
	assert.NotContains(t, html, "<form")
}
