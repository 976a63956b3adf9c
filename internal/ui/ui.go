// Package ui holds the small gomponents building blocks shared by the page
// sections.
package ui

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// iconify expects "set:name"; the copy uses "set--name" so icon names
// double as CSS-safe tokens.
func iconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

// Icon renders an iconify glyph. Extra space-separated tokens in iconClass
// are passed through as size classes.
func Icon(iconClass, ariaLabel string) g.Node {
	classes := "iconify inline-block"
	if parts := strings.Fields(iconClass); len(parts) > 1 {
		classes += " " + strings.Join(parts[1:], " ")
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", iconName(iconClass)),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}
	return Span(
		Class(classes),
		g.Attr("data-icon", iconName(iconClass)),
		g.Attr("aria-hidden", "true"),
	)
}

// IconBadge is an icon inside a tinted rounded square.
func IconBadge(icon, color string) g.Node {
	return Span(
		Class(fmt.Sprintf("inline-flex items-center justify-center shrink-0 size-12 rounded-xl bg-%s-500/10 text-%s-600", color, color)),
		Span(
			Class("iconify size-6"),
			g.Attr("data-icon", iconName(icon)),
			g.Attr("aria-hidden", "true"),
		),
	)
}

// Heading is the eyebrow + title + lead paragraph block each section opens with.
func Heading(eyebrow, title, lead string) g.Node {
	return Div(
		Class("text-center mb-12"),
		P(Class("text-sm font-semibold tracking-wide uppercase text-blue-600"), g.Text(eyebrow)),
		H2(Class("mt-2 text-4xl md:text-5xl font-bold tracking-tight"), g.Text(title)),
		g.If(lead != "", P(Class("mt-4 max-w-2xl mx-auto text-xl text-gray-500"), g.Text(lead))),
	)
}

// Live marks an element as a live event source. The browser script sends
// {"type": event, ...data} when it is activated.
func Live(event string, data ...string) g.Node {
	nodes := g.Group{g.Attr("data-live", event)}
	for i := 0; i+1 < len(data); i += 2 {
		nodes = append(nodes, g.Attr("data-live-"+data[i], data[i+1]))
	}
	return nodes
}

// String renders n to a string, for live HTML patches.
func String(n g.Node) (string, error) {
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}
