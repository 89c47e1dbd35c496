package views

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/algotixai/site/nav"
	"github.com/algotixai/site/ui"
)

// Footer renders the hand-authored link columns and the contact block.
func Footer(site SiteConfig, cols []nav.ColumnView) g.Node {
	return h.Footer(
		h.Class("border-t border-gray-100 bg-gray-50"),
		h.Div(
			h.Class("mx-auto grid max-w-7xl gap-8 px-4 py-12 sm:grid-cols-2 lg:grid-cols-4"),
			h.Div(
				ui.Logo("/", "/public/logo.svg", site.Name, ""),
				g.If(site.Description != "", h.P(h.Class("mt-4 text-sm text-gray-600"), g.Text(site.Description))),
				contactList(site),
			),
			g.Map(cols, footerColumn),
		),
		h.P(
			h.Class("border-t border-gray-100 py-6 text-center text-xs text-gray-500"),
			g.Textf("© %s. All rights reserved.", site.Name),
		),
	)
}

func footerColumn(c nav.ColumnView) g.Node {
	return h.Div(
		h.H2(h.Class("text-sm font-semibold uppercase tracking-wide text-gray-900"), g.Text(c.Heading)),
		h.Ul(
			h.Class("mt-4 space-y-2 text-sm"),
			g.Map(c.Links, func(l nav.Link) g.Node { return h.Li(navLink(l, false)) }),
		),
	)
}

func contactList(site SiteConfig) g.Node {
	if site.Email == "" && site.Phone == "" && site.Address == "" {
		return nil
	}
	return h.Ul(
		h.Class("mt-4 space-y-1 text-sm text-gray-600"),
		g.If(site.Email != "", h.Li(h.A(h.Href("mailto:"+site.Email), g.Text(site.Email)))),
		g.If(site.Phone != "", h.Li(h.A(h.Href("tel:"+strings.ReplaceAll(site.Phone, " ", "")), g.Text(site.Phone)))),
		g.If(site.Address != "", h.Li(g.Text(site.Address))),
	)
}
