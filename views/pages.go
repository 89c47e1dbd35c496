package views

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/algotixai/site/content"
	"github.com/algotixai/site/routes"
	"github.com/algotixai/site/ui"
)

// TechStack is the row of technology tiles on the home page.
var TechStack = []ui.TechCard{
	{Logo: "/public/tech/go.svg", Name: "Go", ColorFrom: "from-cyan-400", ColorTo: "to-sky-600"},
	{Logo: "/public/tech/python.svg", Name: "Python", ColorFrom: "from-blue-500", ColorTo: "to-yellow-400"},
	{Logo: "/public/tech/react.svg", Name: "React", ColorFrom: "from-sky-300", ColorTo: "to-cyan-500"},
	{Logo: "/public/tech/aws.svg", Name: "AWS", ColorFrom: "from-orange-400", ColorTo: "to-amber-600"},
	{Logo: "/public/tech/kubernetes.svg", Name: "Kubernetes", ColorFrom: "from-blue-400", ColorTo: "to-indigo-600"},
	{Logo: "/public/tech/pytorch.svg", Name: "PyTorch", ColorFrom: "from-orange-500", ColorTo: "to-red-600"},
}

// HomeLinks are the registry entries the home page points at.
type HomeLinks struct {
	Consultation routes.Entry
	Services     routes.Entry
}

// Home renders the landing page.
func Home(f Frame, links HomeLinks) templ.Component {
	secondary := ui.DefaultButtonStyle()
	secondary.Variant = ui.Secondary
	return Layout(f,
		h.Section(
			h.Class("mx-auto max-w-7xl px-4 py-20 text-center"),
			h.H1(h.Class("text-4xl font-bold tracking-tight sm:text-6xl"), g.Text("Software and AI that move your business forward")),
			h.P(h.Class("mx-auto mt-6 max-w-2xl text-lg text-gray-600"), g.Text(f.Meta.Description)),
			h.Div(
				h.Class("mt-10 flex flex-wrap justify-center gap-4"),
				ui.MustLinkButton(links.Consultation.Path, ui.DefaultButtonStyle(), g.Text(links.Consultation.Title)),
				ui.MustLinkButton(links.Services.Path, secondary, g.Text("Explore "+links.Services.Title)),
			),
		),
		h.Section(
			h.Class("mx-auto max-w-7xl px-4 pb-20"),
			h.H2(h.Class("text-center text-2xl font-semibold"), g.Text("Technologies we work with")),
			h.Div(
				h.Class("mt-8 flex flex-wrap justify-center gap-6"),
				g.Map(TechStack, func(c ui.TechCard) g.Node {
					c.Width, c.Height = "w-40", "h-24"
					c.ImageWidth, c.ImageHeight = 96, 48
					return c.Render()
				}),
			),
		),
	)
}

// ContentPage renders a markdown-backed page.
func ContentPage(f Frame, p content.Page) templ.Component {
	return Layout(f,
		h.Article(
			h.Class("mx-auto max-w-3xl px-4 py-16"),
			h.H1(h.Class("text-4xl font-bold tracking-tight"), g.Text(p.Title)),
			g.If(p.Summary != "", h.P(h.Class("mt-4 text-lg text-gray-600"), g.Text(p.Summary))),
			h.Div(h.Class("prose prose-lg mt-10"), g.Raw(p.HTML)),
		),
	)
}

// Contact renders the contact page. The form hands off to the visitor's
// mail client; nothing is submitted to the server.
func Contact(f Frame) templ.Component {
	site := f.Site
	return Layout(f,
		h.Section(
			h.Class("mx-auto grid max-w-5xl gap-12 px-4 py-16 lg:grid-cols-2"),
			h.Div(
				h.H1(h.Class("text-4xl font-bold tracking-tight"), g.Text("Get in touch")),
				h.P(h.Class("mt-4 text-gray-600"), g.Text(f.Meta.Description)),
				contactList(site),
			),
			h.Form(
				h.ID("contact-form"),
				h.Action("mailto:"+site.Email),
				h.Method("post"),
				g.Attr("enctype", "text/plain"),
				h.Class("space-y-4"),
				field("name", "Name", h.Input(h.ID("name"), h.Name("name"), h.Type("text"), h.Required(), inputClass())),
				field("email", "Email", h.Input(h.ID("email"), h.Name("email"), h.Type("email"), h.Required(), inputClass())),
				field("message", "Message", h.Textarea(h.ID("message"), h.Name("message"), g.Attr("rows", "5"), h.Required(), inputClass())),
				ui.MustButton("submit", ui.DefaultButtonStyle(), g.Text("Send message")),
			),
		),
	)
}

func field(id, label string, control g.Node) g.Node {
	return h.Div(
		h.Label(h.For(id), h.Class("block text-sm font-medium text-gray-700"), g.Text(label)),
		control,
	)
}

func inputClass() g.Node {
	return h.Class("mt-1 block w-full rounded-lg border border-gray-300 px-3 py-2 focus:border-primary focus:outline-none")
}

// NotFound renders the 404 page.
func NotFound(f Frame) templ.Component {
	return Layout(f,
		h.Section(
			h.Class("mx-auto max-w-xl px-4 py-24 text-center"),
			h.P(h.Class("text-sm font-semibold text-primary"), g.Text("404")),
			h.H1(h.Class("mt-2 text-4xl font-bold tracking-tight"), g.Text("Page not found")),
			h.P(h.Class("mt-4 text-gray-600"), g.Text("Sorry, we couldn’t find the page you’re looking for.")),
			h.Div(h.Class("mt-10 flex justify-center"), ui.MustLinkButton("/", ui.DefaultButtonStyle(), g.Text("Go back home"))),
		),
	)
}

// ServerError renders the 5xx page.
func ServerError(f Frame) templ.Component {
	return Layout(f,
		h.Section(
			h.Class("mx-auto max-w-xl px-4 py-24 text-center"),
			h.H1(h.Class("text-4xl font-bold tracking-tight"), g.Text("Something went wrong")),
			h.P(h.Class("mt-4 text-gray-600"), g.Text("Please try again in a moment.")),
		),
	)
}
