package hero

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gogetwell/website/internal/ui"
)

// ModalID is replaced whenever the modal state changes.
const ModalID = "hero-video-modal"

type stat struct {
	Value string
	Label string
}

var stats = []stat{
	{"2,100", "qualified doctors"},
	{"1,000", "hospitals"},
	{"800", "treatment plans"},
}

type navLink struct {
	Label   string
	Section string
}

var navLinks = []navLink{
	{"Features", "features"},
	{"About", "about"},
	{"FAQ", "faq"},
	{"Contact", "contact"},
}

// LoginURL is the sign-in page of the product.
const LoginURL = "/hcf/sign-in"

// View renders the hero. ModalHref builds the no-script link that moves
// the modal into the given state.
type View struct {
	Brand     string
	VideoID   string
	Modal     VideoModal
	ModalHref func(VideoModal) string
}

func thumbnailURL(id, quality string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/%s.jpg", id, quality)
}

// EmbedURL is the player URL. Autoplay starts muted.
func EmbedURL(id string, autoplay bool) string {
	if !autoplay {
		return fmt.Sprintf("https://www.youtube.com/embed/%s", id)
	}
	return fmt.Sprintf("https://www.youtube.com/embed/%s?autoplay=1&mute=1", id)
}

func (v View) Render() g.Node {
	opened := VideoModal{Open: true}

	return Section(
		ID("hero"),
		Class("relative min-h-screen overflow-hidden bg-gray-900 text-white"),
		v.nav(),
		Div(
			Class("relative max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 pt-32 pb-20 flex flex-col lg:flex-row items-center gap-12"),
			Div(
				Class("lg:w-1/2 space-y-8"),
				Div(Class("inline-block px-4 py-1 rounded-full bg-blue-500/20 text-blue-400 font-medium text-sm"),
					g.Text("AI-Powered Healthcare Solutions")),
				H1(
					Class("text-4xl md:text-6xl font-bold tracking-tight leading-tight"),
					Span(Class("bg-gradient-to-r from-blue-400 to-purple-500 bg-clip-text text-transparent"), g.Text("AI front office")),
					g.Text(" for healthcare agents"),
				),
				P(Class("text-lg text-gray-300"),
					g.Text("Transform patient engagement and operational efficiency with our AI-powered platform. Create custom healthcare websites, manage patient data, and grow your practice, all in one place.")),
				Div(
					Class("flex flex-wrap gap-4"),
					// Get Started has no destination yet; the live handler swallows it.
					Button(
						Type("button"),
						Class("btn btn-primary gap-2"),
						ui.Live("cta"),
						Span(g.Text("Get Started")),
						ui.Icon("lucide--arrow-right", ""),
					),
					A(
						Href(v.ModalHref(opened)),
						Class("btn btn-ghost gap-2"),
						ui.Live("video.open"),
						ui.Icon("lucide--play-circle size-5", ""),
						g.Text("Watch Demo"),
					),
				),
				Div(
					Class("pt-8 border-t border-white/10"),
					P(Class("text-sm text-gray-400"), g.Text("Trusted by healthcare professionals worldwide")),
					Div(
						Class("mt-4 grid grid-cols-3 gap-6"),
						g.Group(g.Map(stats, func(s stat) g.Node {
							return Div(
								H3(Class("text-3xl font-bold"), g.Text(s.Value), Span(Class("text-blue-400"), g.Text("+"))),
								P(Class("text-gray-300"), g.Text(s.Label)),
							)
						})),
					),
				),
			),
			Div(
				Class("lg:w-1/2 w-full"),
				A(
					Href(v.ModalHref(opened)),
					Class("group relative block rounded-2xl overflow-hidden shadow-2xl"),
					ui.Live("video.open"),
					Img(
						Src(thumbnailURL(v.VideoID, "maxresdefault")),
						Alt("AI Healthcare Dashboard Demo"),
						Class("w-full aspect-video object-cover"),
					),
					Span(
						Class("absolute inset-0 flex items-center justify-center bg-black/30 group-hover:bg-black/10 transition"),
						ui.Icon("lucide--play size-16", "Play demo video"),
					),
				),
			),
		),
		A(
			Href("#features"),
			Class("absolute bottom-8 left-1/2 -translate-x-1/2 flex flex-col items-center text-gray-300"),
			ui.Live("navigate", "section", "features"),
			Span(Class("text-xs mb-2"), g.Text("Explore More")),
			ui.Icon("lucide--chevron-down size-5", ""),
		),
		v.ModalNode(),
	)
}

func (v View) nav() g.Node {
	return Nav(
		Class("absolute top-0 inset-x-0 z-20"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 h-20 flex items-center justify-between"),
			Span(Class("font-bold text-2xl"), g.Text(v.Brand)),
			Div(
				Class("hidden md:flex items-center gap-8"),
				g.Group(g.Map(navLinks, func(l navLink) g.Node {
					return A(
						Href("#"+l.Section),
						Class("text-gray-300 hover:text-white transition"),
						ui.Live("navigate", "section", l.Section),
						g.Text(l.Label),
					)
				})),
				A(Href(LoginURL), Class("btn btn-sm btn-outline"), g.Text("Login")),
			),
		),
	)
}

// ModalNode renders the video dialog, or an empty placeholder while closed.
func (v View) ModalNode() g.Node {
	if !v.Modal.Open {
		return Div(ID(ModalID))
	}

	playing := VideoModal{Open: true, Playing: true}

	var body g.Node
	if v.Modal.Playing {
		body = g.El("iframe",
			Src(EmbedURL(v.VideoID, v.Modal.Autoplay)),
			g.Attr("title", "Product Demo"),
			g.Attr("allow", "accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture"),
			g.Attr("allowfullscreen", ""),
			Class("w-full h-full"),
		)
	} else {
		body = A(
			Href(v.ModalHref(playing)),
			Class("relative block w-full h-full"),
			ui.Live("video.play"),
			Img(Src(thumbnailURL(v.VideoID, "hqdefault")), Alt("YouTube Thumbnail"), Class("w-full h-full object-cover")),
			Span(
				Class("absolute inset-0 flex items-center justify-center"),
				ui.Icon("lucide--play size-16", "Play video"),
			),
		)
	}

	return Div(
		ID(ModalID),
		Class("fixed inset-0 z-50 flex items-center justify-center bg-black/80 p-4"),
		g.Attr("role", "dialog"),
		g.Attr("aria-modal", "true"),
		g.Attr("aria-label", "Product demo video"),
		g.Attr("data-live-backdrop", "video.close"),
		Div(
			Class("relative w-full max-w-4xl aspect-video rounded-xl overflow-hidden bg-black"),
			A(
				Href(v.ModalHref(VideoModal{})),
				Class("absolute top-3 right-3 z-10 btn btn-circle btn-sm"),
				g.Attr("aria-label", "Close video"),
				ui.Live("video.close"),
				g.Text("✕"),
			),
			body,
		),
	)
}
