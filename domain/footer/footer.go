// Package footer is the static site footer.
package footer

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gogetwell/website/internal/ui"
)

type Item struct {
	Text string
	Path string
}

type Column struct {
	Title string
	Links []Item
}

var Columns = []Column{
	{"Product", []Item{
		{"Features", "/#features"},
		{"Pricing", "/pricing"},
		{"Integrations", "/integrations"},
		{"Product Updates", "/updates"},
	}},
	{"Resources", []Item{
		{"Documentation", "/docs"},
		{"Guides", "/guides"},
		{"API Reference", "/api"},
		{"Support", "/support"},
	}},
	{"Company", []Item{
		{"About Us", "/#about"},
		{"Careers", "/careers"},
		{"Contact", "/#contact"},
		{"Blog", "/blog"},
	}},
}

var PolicyLinks = []Item{
	{"Privacy Policy", "/privacy-policy"},
	{"Terms of Service", "/terms-of-service"},
	{"Pricing Policy", "/pricing-policy"},
	{"Editor Policy", "/editor-policy"},
}

// Render draws the footer for the given copyright year.
func Render(siteName string, year int) g.Node {
	return Footer(
		ID("footer"),
		Class("bg-gray-900 text-gray-300"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 pt-16 pb-8"),
			Div(
				Class("grid grid-cols-2 md:grid-cols-5 gap-8"),
				Div(
					Class("col-span-2 space-y-6"),
					P(Class("text-2xl font-bold text-white"), g.Text(siteName)),
					P(Class("text-gray-400"),
						g.Text("Transforming healthcare facilitation with AI-powered solutions for medical tourism and healthcare providers.")),
					newsletter(),
					ui.SocialButtons(),
				),
				g.Group(g.Map(Columns, column)),
			),
			Div(
				Class("mt-12 pt-8 border-t border-gray-800 flex flex-col md:flex-row justify-between gap-4 text-sm"),
				P(g.Text(fmt.Sprintf("© %d %s. All rights reserved.", year, siteName))),
				Div(
					Class("flex flex-wrap gap-6"),
					g.Group(g.Map(PolicyLinks, func(l Item) g.Node {
						return A(Href(l.Path), Class("hover:text-white"), g.Text(l.Text))
					})),
				),
			),
		),
	)
}

func column(c Column) g.Node {
	return Div(
		P(Class("font-semibold text-white"), g.Text(c.Title)),
		Ul(
			Class("mt-4 space-y-2"),
			g.Group(g.Map(c.Links, func(l Item) g.Node {
				return Li(A(Href(l.Path), Class("hover:text-white"), g.Text(l.Text)))
			})),
		),
	)
}

// newsletter has no backing list yet, so the button does nothing.
func newsletter() g.Node {
	return Div(
		P(Class("text-sm font-medium text-white"), g.Text("Subscribe to our newsletter")),
		Div(
			Class("mt-3 join w-full max-w-sm"),
			Input(Type("email"), Placeholder("Your email address"), Class("input input-bordered join-item w-full text-gray-900"),
				g.Attr("aria-label", "Newsletter email")),
			Button(Type("button"), Class("btn btn-primary join-item"), g.Attr("aria-label", "Subscribe"),
				ui.Icon("lucide--arrow-right", "")),
		),
	)
}
