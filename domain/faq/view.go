package faq

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gogetwell/website/internal/ui"
)

// ListID is replaced when the open entry or the search query changes.
const ListID = "faq-list"

// View renders the FAQ section. ToggleHref builds the no-script link that
// toggles entry i.
type View struct {
	Entries    []Entry
	Accordion  *Accordion
	Query      string
	ToggleHref func(i int) string
}

func (v View) Render() g.Node {
	return Section(
		ID("faq"),
		Class("py-24 px-4 sm:px-6 lg:px-8 relative"),
		Div(
			Class("relative max-w-4xl mx-auto"),
			ui.Heading("Got Questions?", "Frequently Asked Questions",
				"Find answers to common questions about our AI healthcare platform."),
			Div(
				Class("bg-white rounded-2xl shadow-xl p-4 md:p-8"),
				searchBox(v.Query),
				v.List(),
				Div(
					Class("mt-12 pt-8 border-t border-gray-100 text-center"),
					P(Class("text-gray-600"), g.Text("Can't find what you're looking for?")),
					A(
						Href("#contact"),
						Class("mt-4 btn btn-primary"),
						ui.Live("navigate", "section", "contact"),
						g.Text("Contact Our Support Team"),
					),
				),
			),
		),
	)
}

func searchBox(query string) g.Node {
	return g.El("form",
		Class("mb-8 relative"),
		g.Attr("method", "get"),
		g.Attr("action", "/#faq"),
		g.Attr("role", "search"),
		Input(
			Type("search"),
			Name("q"),
			Value(query),
			Class("input input-bordered w-full pl-12"),
			Placeholder("Search frequently asked questions..."),
			g.Attr("aria-label", "Search FAQs"),
			g.Attr("data-live-input", "faq.search"),
			g.Attr("autocomplete", "off"),
		),
	)
}

// List renders the matching entries with their expanded state.
func (v View) List() g.Node {
	matches := Matching(v.Entries, v.Query)

	return Div(
		ID(ListID),
		Class("space-y-2"),
		g.If(len(matches) == 0, P(Class("py-6 text-center text-gray-500"), g.Text("No questions match your search."))),
		g.Group(g.Map(matches, v.item)),
	)
}

func (v View) item(m Match) g.Node {
	open := v.Accordion.IsOpen(m.Index)
	answerID := fmt.Sprintf("faq-answer-%d", m.Index)

	return Div(
		Class("border-b border-gray-200 last:border-0"),
		A(
			Href(v.ToggleHref(m.Index)),
			Class("flex w-full items-center justify-between py-5 text-left font-medium text-gray-900"),
			g.Attr("role", "button"),
			g.Attr("aria-expanded", strconv.FormatBool(open)),
			g.Attr("aria-controls", answerID),
			ui.Live("faq", "index", strconv.Itoa(m.Index)),
			Span(g.Text(m.Question)),
			ui.Icon(chevron(open), ""),
		),
		Div(
			ID(answerID),
			Class("faq-answer pb-5 text-gray-600 leading-relaxed"),
			g.Attr("role", "region"),
			g.If(!open, g.Attr("hidden", "")),
			P(g.Text(m.Answer)),
		),
	)
}

func chevron(open bool) string {
	if open {
		return "lucide--chevron-up size-5"
	}
	return "lucide--chevron-down size-5"
}
