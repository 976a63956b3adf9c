package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// SocialLink is an external profile shown in the contact and footer blocks.
type SocialLink struct {
	Label string
	Icon  string
	URL   string
}

var Socials = []SocialLink{
	{"Twitter Profile", "lucide--twitter", "https://x.com/gogetwellai"},
	{"LinkedIn Profile", "lucide--linkedin", "https://www.linkedin.com/company/gogetwellai/"},
}

// SocialButtons renders the circular profile links.
func SocialButtons() g.Node {
	return Div(
		Class("flex items-center gap-3"),
		g.Group(g.Map(Socials, func(s SocialLink) g.Node {
			return A(
				Href(s.URL),
				Class("btn btn-sm btn-circle"),
				g.Attr("target", "_blank"),
				g.Attr("rel", "noopener noreferrer"),
				Icon(s.Icon, s.Label),
			)
		})),
	)
}
