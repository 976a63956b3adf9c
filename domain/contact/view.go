package contact

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gogetwell/website/domain/maps"
	"github.com/gogetwell/website/internal/ui"
)

// PanelID is the right-hand column swapped between the form and the
// confirmation.
const PanelID = "contact-panel"

const (
	officeAddress = "New Delhi, India"
	phoneDisplay  = "+91 9811396858"
	phoneHref     = "tel:+919811396858"
	emailAddress  = "hello@gogetwell.ai"
)

var officeHours = []string{
	"Monday - Friday: 9:00 AM - 6:00 PM IST",
	"Saturday: 10:00 AM - 4:00 PM IST",
	"Sunday: Closed",
}

// View renders the contact section. Action is where the no-script form
// posts; ResetHref leaves the confirmation without script.
type View struct {
	Form      FormState
	Map       maps.Widget
	Action    string
	ResetHref string
}

func (v View) Render() g.Node {
	return Section(
		ID("contact"),
		Class("py-24 px-4 sm:px-6 lg:px-8 bg-gradient-to-b from-white to-blue-50"),
		Div(
			Class("max-w-7xl mx-auto"),
			ui.Heading("Get In Touch", "Ready to Transform Your Healthcare Practice?",
				"Have questions or need assistance? Our team is here to help you get started with our AI-powered healthcare solutions."),
			Div(
				Class("grid grid-cols-1 lg:grid-cols-5 gap-12 items-start"),
				info(),
				Div(Class("lg:col-span-3"), v.Panel()),
			),
			Div(
				Class("mt-20 bg-white rounded-xl overflow-hidden shadow-lg border border-gray-200"),
				Div(
					Class("px-6 py-4 border-b border-gray-100"),
					H3(Class("text-xl font-bold text-gray-900"), g.Text("Our Head Office")),
					P(Class("text-gray-600"), g.Text(v.Map.Address)),
				),
				v.Map.Render(),
			),
		),
	)
}

// Panel is the form, or the confirmation once a submission succeeded.
func (v View) Panel() g.Node {
	if v.Form.Submitted {
		return Div(ID(PanelID), v.confirmation())
	}
	return Div(ID(PanelID), v.form())
}

func (v View) confirmation() g.Node {
	return Div(
		Class("bg-white rounded-2xl shadow-xl p-8 text-center flex flex-col items-center justify-center"),
		g.Attr("role", "status"),
		Div(Class("bg-green-100 p-4 rounded-full inline-flex mb-6 text-green-600"), ui.Icon("lucide--check size-8", "")),
		H3(Class("text-2xl font-bold text-gray-900 mb-4"), g.Text("Thanks for reaching out!")),
		P(
			Class("text-gray-600 max-w-md mx-auto mb-8"),
			g.Text("We've received your message and will get back to you as soon as possible, typically within 24 hours."),
		),
		A(
			Href(v.ResetHref),
			Class("btn btn-primary"),
			g.Attr("role", "button"),
			ui.Live("contact.reset"),
			g.Text("Send Another Message"),
		),
	)
}

func (v View) form() g.Node {
	busy := v.Form.Submitting
	return Div(
		Class("bg-white rounded-2xl shadow-xl p-6 sm:p-8"),
		H3(Class("text-2xl font-bold text-gray-900 mb-6"), g.Text("Send us a message")),
		g.El("form",
			g.Attr("method", "post"),
			g.Attr("action", v.Action),
			g.Attr("data-live-form", "contact.submit"),
			g.If(busy, g.Attr("aria-busy", "true")),
			Class("space-y-6"),
			field(FieldFullName, "Full Name", "text", "John Doe", "lucide--user", v.Form.Fields.FullName, true),
			field(FieldEmail, "Email Address", "email", "your@email.com", "lucide--mail", v.Form.Fields.Email, true),
			field(FieldSubject, "Subject", "text", "What is this about?", "lucide--tag", v.Form.Fields.Subject, false),
			Div(
				g.El("label",
					g.Attr("for", FieldMessage),
					Class("block text-sm font-medium text-gray-700 mb-1 ml-1"),
					g.Text("Message"),
				),
				Textarea(
					ID(FieldMessage),
					g.Attr("name", FieldMessage),
					g.Attr("rows", "4"),
					g.Attr("placeholder", "How can we help you?"),
					g.Attr("required", ""),
					g.Attr("aria-required", "true"),
					g.Attr("data-live-input", "contact.input"),
					Class("textarea textarea-bordered w-full"),
					g.Text(v.Form.Fields.Message),
				),
			),
			Button(
				Type("submit"),
				Class("btn btn-primary w-full"),
				g.If(busy, g.Attr("disabled", "")),
				g.If(busy, Span(Class("loading loading-spinner"), g.Attr("aria-hidden", "true"))),
				Span(g.Text(submitLabel(busy))),
				g.If(!busy, ui.Icon("lucide--send size-5", "")),
			),
		),
	)
}

func submitLabel(busy bool) string {
	if busy {
		return "Sending..."
	}
	return "Send Message"
}

func field(name, label, kind, placeholder, icon, value string, required bool) g.Node {
	return Div(
		g.El("label",
			g.Attr("for", name),
			Class("block text-sm font-medium text-gray-700 mb-1 ml-1"),
			g.Text(label),
		),
		Div(
			Class("input input-bordered flex items-center gap-2 w-full"),
			ui.Icon(icon+" size-5 text-gray-400", ""),
			Input(
				ID(name),
				Type(kind),
				g.Attr("name", name),
				g.Attr("placeholder", placeholder),
				g.Attr("value", value),
				g.If(required, g.Attr("required", "")),
				g.If(required, g.Attr("aria-required", "true")),
				g.Attr("data-live-input", "contact.input"),
				Class("grow"),
			),
		),
	)
}

func info() g.Node {
	return Div(
		Class("lg:col-span-2 bg-white rounded-2xl shadow-xl overflow-hidden"),
		Div(
			Class("bg-gradient-to-r from-blue-600 to-purple-600 px-8 py-12 text-white"),
			H3(Class("text-2xl font-bold mb-6"), g.Text("Contact Information")),
			P(Class("mb-8 opacity-90"),
				g.Text("Reach out to our team for quick and friendly support with any questions about our AI healthcare platform.")),
			Div(
				Class("space-y-6"),
				infoRow("lucide--map-pin", "Office Location", Span(Class("font-medium"), g.Text(officeAddress))),
				infoRow("lucide--phone", "Phone", A(Href(phoneHref), Class("font-medium hover:text-white/80"), g.Text(phoneDisplay))),
				infoRow("lucide--mail", "Email", A(Href("mailto:"+emailAddress), Class("font-medium hover:text-white/80"), g.Text(emailAddress))),
			),
			Div(
				Class("mt-12 pt-8 border-t border-white/20"),
				P(Class("mb-4 font-medium"), g.Text("Connect With Us")),
				ui.SocialButtons(),
			),
		),
		Div(
			Class("px-8 py-6"),
			H4(Class("font-medium text-gray-900 mb-2"), g.Text("Office Hours")),
			Div(
				Class("text-gray-600 space-y-1"),
				g.Group(g.Map(officeHours, func(line string) g.Node { return P(g.Text(line)) })),
			),
		),
	)
}

func infoRow(icon, label string, value g.Node) g.Node {
	return Div(
		Class("flex items-center gap-4"),
		Div(Class("rounded-full bg-white/20 p-3"), ui.Icon(icon+" size-5", "")),
		Div(
			P(Class("opacity-80 text-sm"), g.Text(label)),
			value,
		),
	)
}
