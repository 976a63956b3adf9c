// Package notify models the transient toast notifications shown after a
// contact submission resolves.
package notify

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Severity is the visual level of a toast.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityDanger  Severity = "danger"
	SeverityInfo    Severity = "info"
)

// Toast is one notification. JSON tags match what the browser script expects
// in a live "toast" patch.
type Toast struct {
	Severity Severity `json:"severity"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`
}

func Success(title, message string) Toast {
	return Toast{Severity: SeveritySuccess, Title: title, Message: message}
}

func Danger(title, message string) Toast {
	return Toast{Severity: SeverityDanger, Title: title, Message: message}
}

// RegionID is the element toasts are appended to.
const RegionID = "toast-region"

// Region renders the toast container with any server-side toasts already in
// place. The browser script removes them after a few seconds.
func Region(toasts ...Toast) g.Node {
	return Div(
		ID(RegionID),
		Class("toast toast-end toast-bottom z-50"),
		g.Attr("aria-live", "polite"),
		g.Group(g.Map(toasts, Render)),
	)
}

// Render draws a single toast.
func Render(t Toast) g.Node {
	role := "status"
	if t.Severity == SeverityDanger {
		role = "alert"
	}
	return Div(
		Class("alert alert-"+alertClass(t.Severity)+" shadow-lg"),
		g.Attr("role", role),
		g.Attr("data-toast", string(t.Severity)),
		Div(
			P(Class("font-semibold"), g.Text(t.Title)),
			g.If(t.Message != "", P(Class("text-sm"), g.Text(t.Message))),
		),
	)
}

func alertClass(s Severity) string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityDanger:
		return "error"
	default:
		return "info"
	}
}
