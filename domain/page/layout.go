package page

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gogetwell/website/domain/notify"
)

type PageConfig struct {
	Title       string
	Description string
	URL         string
	OGImage     string
}

// LivePath is where the browser script opens the live session.
const LivePath = "/live"

// Layout is the document shell. The body carries has-hero-section because
// the hero is always mounted on this page.
func Layout(config PageConfig, toasts []notify.Toast, content ...g.Node) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			g.Attr("data-theme", "light"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				g.If(config.URL != "", Meta(g.Attr("property", "og:url"), Content(config.URL))),
				g.If(config.OGImage != "", Meta(g.Attr("property", "og:image"), Content(config.OGImage))),

				Link(Rel("icon"), Type("image/svg+xml"), Href("/static/images/favicon.svg")),
				Link(Rel("stylesheet"), Href("https://cdn.jsdelivr.net/npm/daisyui@4.12.10/dist/full.min.css")),
				Script(Src("https://cdn.tailwindcss.com")),
				Link(Rel("stylesheet"), Href("/static/css/site.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class("has-hero-section bg-white text-gray-900 antialiased"),
				g.Attr("data-live-url", LivePath),
				Div(Class("hcf-profile"), g.Attr("data-profile-slot", "")),
				g.Group(content),
				notify.Region(toasts...),
				Script(Src("/static/js/landing.js"), g.Attr("defer", "")),
			),
		),
	})
}

// Document renders the whole page for p.
func Document(p *Page, lazy bool, toasts ...notify.Toast) g.Node {
	site := p.Site()
	return Layout(
		PageConfig{
			Title:       site.Name + " | AI front office for healthcare agents",
			Description: site.Description,
			URL:         site.URL,
		},
		toasts,
		Main(g.Group(p.Sections(lazy))),
	)
}

// SectionLoader stands in for a section until the browser fetches it.
func SectionLoader(id SectionID) g.Node {
	return Div(
		ID(string(id)),
		Class("min-h-[50vh] flex items-center justify-center"),
		g.Attr("data-lazy-src", "/sections/"+string(id)),
		g.Attr("aria-busy", "true"),
		Span(Class("loading loading-spinner loading-lg text-blue-600"), g.Attr("aria-label", "Loading")),
	)
}
