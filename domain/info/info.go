// Package info is the "Our Mission & Values" section: three alternating
// image and text blocks followed by headline statistics.
package info

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gogetwell/website/internal/ui"
)

// Point is one of the two icon callouts under a block.
type Point struct {
	Icon        string
	Title       string
	Description string
	Tint        string
}

// Block is a titled block of paragraphs beside an image.
type Block struct {
	Title      string
	Paragraphs []string
	Image      string
	ImageRight bool
	Points     [2]Point
}

type Stat struct {
	Value string
	Label string
}

var Blocks = []Block{
	{
		Title: "About Us",
		Paragraphs: []string{
			"We are a pioneering AI-driven platform focused on revolutionizing the medical tourism industry. By addressing inefficiencies and disorganization, we empower healthcare facilitators to modernize their operations, attract more patients, and deliver seamless, personalized care across borders.",
			"Our cutting-edge solutions are designed to streamline processes and enhance the overall patient experience.",
		},
		Image: "/static/images/about-us.webp",
		Points: [2]Point{
			{"lucide--zap", "Modern Solutions", "Leveraging cutting-edge AI technology to transform healthcare delivery across borders.", "blue"},
			{"lucide--users", "Patient-Centric", "Creating personalized healthcare experiences that prioritize individual patient needs.", "purple"},
		},
	},
	{
		Title: "Our Mission",
		Paragraphs: []string{
			"Our mission is to simplify the complex medical tourism process by leveraging advanced AI tools that optimize healthcare facilitators operations, maximize revenue opportunities, and provide patients with personalized and stress-free treatment journeys.",
			"We strive to become the leading platform for healthcare tourism management and digital transformation.",
		},
		Image:      "/static/images/mission.webp",
		ImageRight: true,
		Points: [2]Point{
			{"lucide--circle-check", "AI-Powered Solutions", "Optimizing healthcare operations with sophisticated artificial intelligence.", "blue"},
			{"lucide--trending-up", "Growth Focus", "Strategically maximizing revenue opportunities and driving business expansion.", "purple"},
		},
	},
	{
		Title: "The Challenges We Solve",
		Paragraphs: []string{
			"Medical tourism, especially in India, is plagued by disorganization and inefficiency. Facilitators often rely on outdated methods, leading to delayed bookings, inadequate patient support, and missed growth opportunities.",
			"Our platform addresses these pain points by streamlining lead management and improving operational efficiency for facilitators and hospitals alike.",
		},
		Image: "/static/images/challenges.webp",
		Points: [2]Point{
			{"lucide--clock", "Efficient Operations", "Creating streamlined booking and management systems for healthcare facilitators.", "blue"},
			{"lucide--messages-square", "Enhanced Patient Support", "Implementing improved communication systems for better patient experiences.", "purple"},
		},
	},
}

var Stats = []Stat{
	{"94%", "Customer Satisfaction"},
	{"45%", "Operational Efficiency Increase"},
	{"3.5x", "Patient Conversion Rate"},
	{"28%", "Cost Reduction"},
}

// Render draws the section. It has no interactive state.
func Render() g.Node {
	return Section(
		ID("about"),
		Class("py-24 px-4 sm:px-6 lg:px-8"),
		Div(
			Class("max-w-7xl mx-auto"),
			ui.Heading("Our Mission & Values", "Transforming Healthcare Facilitation",
				"We're dedicated to revolutionizing medical tourism through AI-powered solutions."),
			Div(Class("space-y-32"), g.Group(g.Map(Blocks, block))),
			Div(
				Class("mt-32 grid grid-cols-2 lg:grid-cols-4 gap-8 text-center"),
				g.Group(g.Map(Stats, func(s Stat) g.Node {
					return Div(
						Class("p-6 rounded-2xl bg-gray-50"),
						P(Class("text-4xl font-bold text-blue-600"), g.Text(s.Value)),
						P(Class("mt-2 text-gray-600"), g.Text(s.Label)),
					)
				})),
			),
		),
	)
}

func block(b Block) g.Node {
	imageOrder := ""
	if b.ImageRight {
		imageOrder = " lg:order-last"
	}
	return Div(
		Class("grid lg:grid-cols-2 gap-12 items-center"),
		Div(
			Class("rounded-2xl overflow-hidden shadow-xl"+imageOrder),
			Img(Src(b.Image), Alt(b.Title), Class("w-full h-full object-cover"), g.Attr("loading", "lazy")),
		),
		Div(
			Class("space-y-6"),
			H3(Class("text-3xl font-bold text-gray-900"), g.Text(b.Title)),
			g.Group(g.Map(b.Paragraphs, func(p string) g.Node {
				return P(Class("text-gray-600 leading-relaxed text-lg"), g.Text(p))
			})),
			Div(
				Class("grid sm:grid-cols-2 gap-6 pt-4"),
				g.Group(g.Map(b.Points[:], point)),
			),
		),
	)
}

func point(p Point) g.Node {
	return Div(
		Class("flex gap-4 p-4 rounded-xl bg-"+p.Tint+"-50"),
		ui.IconBadge(p.Icon, p.Tint),
		Div(
			H4(Class("font-semibold text-gray-900"), g.Text(p.Title)),
			P(Class("text-gray-600"), g.Text(p.Description)),
		),
	)
}
