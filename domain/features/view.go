package features

import (
	"strings"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/gogetwell/website/internal/ui"
)

// GridID is replaced wholesale when the filter changes.
const GridID = "features-grid"

// View renders the features section for a selected category. FilterHref
// builds the no-script link for a chip.
type View struct {
	Catalog    *Catalog
	Selected   Category
	FilterHref func(Category) string
}

func (v View) Render() g.Node {
	return Section(
		ID("features"),
		Class("py-24 px-4 sm:px-6 lg:px-8 bg-gray-50"),
		Div(
			Class("max-w-7xl mx-auto"),
			ui.Heading("Our Platform", "Comprehensive Healthcare Solutions",
				"Streamline your healthcare operations with our AI-powered tools designed specifically for medical professionals."),
			v.Grid(),
			Div(
				Class("mt-16 text-center text-sm text-gray-500"),
				g.Text("Trusted by leading healthcare institutions"),
			),
		),
	)
}

// Grid is the chips plus the filtered cards.
func (v View) Grid() g.Node {
	visible := Filter(v.Catalog.Entries, v.Selected)

	return Div(
		ID(GridID),
		Div(
			Class("flex flex-wrap justify-center gap-3 mb-12"),
			g.Attr("role", "tablist"),
			g.Group(g.Map(Categories, v.chip)),
		),
		Div(
			Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8"),
			g.Attr("role", "tabpanel"),
			g.Group(g.Map(visible, card)),
		),
	)
}

func (v View) chip(cat Category) g.Node {
	active := cat == v.Selected
	selected := "false"
	if active {
		selected = "true"
	}
	return A(
		Href(v.FilterHref(cat)),
		c.Classes{
			"px-4 py-2 rounded-full text-sm font-medium transition-all": true,
			"bg-blue-100 text-blue-800 shadow-sm":                     active,
			"bg-gray-100 text-gray-600 hover:bg-gray-200":             !active,
		},
		g.Attr("role", "tab"),
		g.Attr("aria-selected", selected),
		ui.Live("filter", "value", string(cat)),
		g.Text(cat.Label()),
	)
}

func card(e Entry) g.Node {
	return Div(
		Class("group relative bg-white rounded-2xl shadow-sm hover:shadow-xl p-8 transition-all duration-300"),
		g.Attr("data-category", string(e.Category)),
		ui.IconBadge(e.Icon, e.Color),
		H3(Class("mt-6 text-xl font-semibold text-gray-900"), g.Text(e.Title)),
		P(Class("mt-3 text-gray-600 leading-relaxed"), g.Text(e.Description)),
		Div(
			Class("mt-6 pt-4 border-t border-gray-100"),
			Span(Class("text-xs font-medium uppercase tracking-wide text-gray-500"), g.Text(strings.ToLower(e.Category.Label()))),
		),
	)
}
