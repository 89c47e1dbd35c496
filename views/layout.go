// Package views renders the site's pages. Trees are built with gomponents and
// handed to the server as templ components.
package views

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Layout wraps body in the document shell: head metadata, navbar and footer.
func Layout(f Frame, body ...g.Node) templ.Component {
	return Component(h.Doctype(
		h.HTML(
			h.Lang("en"),
			head(f),
			h.Body(
				h.Class("min-h-screen flex flex-col bg-white text-gray-900 antialiased"),
				Navbar(f.Site, f.Nav),
				h.Main(h.ID("main"), h.Class("flex-1"), g.Group(body)),
				Footer(f.Site, f.Footer),
			),
		),
	))
}

func head(f Frame) g.Node {
	m := f.Meta
	title := m.Title
	if title == "" {
		title = f.Site.Name
	}
	ogType := m.OGType
	if ogType == "" {
		ogType = "website"
	}
	return h.Head(
		h.Meta(h.Charset("utf-8")),
		h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
		h.TitleEl(g.Text(title)),
		g.If(m.Description != "", h.Meta(h.Name("description"), h.Content(m.Description))),
		g.If(m.NoIndex, h.Meta(h.Name("robots"), h.Content("noindex"))),
		g.If(m.URL != "", h.Link(h.Rel("canonical"), h.Href(m.URL))),
		property("og:title", title),
		property("og:description", m.Description),
		property("og:type", ogType),
		property("og:url", m.URL),
		property("og:site_name", f.Site.Name),
		h.Meta(h.Name("twitter:card"), h.Content("summary_large_image")),
		h.Meta(h.Name("twitter:title"), h.Content(title)),
		g.If(m.Description != "", h.Meta(h.Name("twitter:description"), h.Content(m.Description))),
		h.Link(h.Rel("icon"), h.Type("image/svg+xml"), h.Href("/favicon.svg")),
		h.Link(h.Rel("stylesheet"), h.Href("/public/css/site.css")),
		h.Script(h.Src("/public/htmx.min.js"), h.Defer()),
		g.Map(f.JSONLD, func(ld string) g.Node {
			return h.Script(h.Type("application/ld+json"), g.Raw(ld))
		}),
	)
}

func property(name, content string) g.Node {
	if content == "" {
		return nil
	}
	return h.Meta(g.Attr("property", name), h.Content(content))
}
