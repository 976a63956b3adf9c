// Package live keeps a page mounted on the server for the lifetime of a
// websocket: browser events mutate the page state and come back as DOM
// patches.
package live

import (
	"github.com/gogetwell/website/domain/contact"
	"github.com/gogetwell/website/domain/notify"
	"github.com/gogetwell/website/domain/page"
)

// Client event types.
const (
	EventScroll        = "scroll"
	EventNavigate      = "navigate"
	EventFilter        = "filter"
	EventFAQ           = "faq"
	EventFAQSearch     = "faq.search"
	EventVideoOpen     = "video.open"
	EventVideoClose    = "video.close"
	EventVideoPlay     = "video.play"
	EventCTA           = "cta"
	EventContactInput  = "contact.input"
	EventContactSubmit = "contact.submit"
	EventContactReset  = "contact.reset"
)

// Event is one message from the browser. Data carries the element's
// data-live-* attributes.
type Event struct {
	Type   string            `json:"type"`
	Data   map[string]string `json:"data,omitempty"`
	Offset int               `json:"offset,omitempty"`
	Fields *contact.Fields   `json:"fields,omitempty"`
}

// Patch operations.
const (
	OpHTML   = "html"
	OpClass  = "class"
	OpScroll = "scroll"
	OpToast  = "toast"
	OpError  = "error"
)

// Patch is one DOM update for the browser script to apply.
type Patch struct {
	Op string `json:"op"`

	// html: replace the element with id Target by HTML.
	Target string `json:"target,omitempty"`
	HTML   string `json:"html,omitempty"`

	// class: toggle Class on every element matching Selector.
	Selector string `json:"selector,omitempty"`
	Class    string `json:"class,omitempty"`
	On       bool   `json:"on,omitempty"`

	Scroll  *page.Scroll  `json:"scroll,omitempty"`
	Toast   *notify.Toast `json:"toast,omitempty"`
	Message string        `json:"message,omitempty"`
}

// Message is what the server writes: the patches produced by one event or
// completion, applied in order.
type Message struct {
	Patches []Patch `json:"patches"`
}

func HTMLPatch(target, html string) Patch {
	return Patch{Op: OpHTML, Target: target, HTML: html}
}

func ClassPatch(selector, class string, on bool) Patch {
	return Patch{Op: OpClass, Selector: selector, Class: class, On: on}
}

func ScrollPatch(s page.Scroll) Patch {
	return Patch{Op: OpScroll, Scroll: &s}
}

func ToastPatch(t notify.Toast) Patch {
	return Patch{Op: OpToast, Toast: &t}
}

func ErrorPatch(message string) Patch {
	return Patch{Op: OpError, Message: message}
}
