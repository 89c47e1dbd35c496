package views

import (
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/algotixai/site/nav"
	"github.com/algotixai/site/ui"
)

// NavID is the element id the menu toggle swaps.
const NavID = "site-nav"

// PartialNav is the partial query value that selects the navbar fragment.
const PartialNav = "nav"

const mobileMenuID = "mobile-menu"

// Navbar renders the site header. Without JavaScript the toggle is a plain
// link that reloads the page with the menu flipped; with htmx it swaps the
// header in place.
func Navbar(site SiteConfig, v nav.View) g.Node {
	return h.Header(
		h.ID(NavID),
		h.Class("sticky top-0 z-50 bg-white/90 backdrop-blur border-b border-gray-100"),
		h.Nav(
			h.Aria("label", "Primary"),
			h.Class("mx-auto flex max-w-7xl items-center justify-between gap-6 px-4 py-3"),
			ui.Logo("/", "/public/logo.svg", site.Name, "shrink-0"),
			h.Ul(
				h.Class("hidden lg:flex items-center gap-6"),
				g.Map(v.Links, func(l nav.Link) g.Node { return h.Li(navLink(l, false)) }),
			),
			h.Div(
				h.Class("hidden lg:block"),
				g.Map(v.CallToAction, ctaButton),
			),
			toggle(v),
		),
		g.If(v.Expanded, mobileMenu(v)),
	)
}

// NavbarComponent is Navbar as a standalone fragment for htmx swaps.
func NavbarComponent(site SiteConfig, v nav.View) templ.Component {
	return Component(Navbar(site, v))
}

func navLink(l nav.Link, block bool) g.Node {
	return h.A(
		h.Href(l.Entry.Path),
		h.Class(ui.NavLinkClasses(l.Active, block)),
		g.If(l.Active, h.Aria("current", "page")),
		g.Text(l.Entry.Title),
	)
}

func ctaButton(l nav.Link) g.Node {
	s := ui.DefaultButtonStyle()
	s.Class = "text-sm"
	return ui.MustLinkButton(l.Entry.Path, s, g.If(l.Active, h.Aria("current", "page")), g.Text(l.Entry.Title))
}

func toggle(v nav.View) g.Node {
	label := "Open menu"
	if v.Expanded {
		label = "Close menu"
	}
	return h.A(
		h.Href(v.ToggleHref),
		h.Class("lg:hidden inline-flex items-center rounded-md p-2 text-gray-800 hover:bg-gray-100"),
		g.Attr("role", "button"),
		h.Aria("controls", mobileMenuID),
		h.Aria("expanded", strconv.FormatBool(v.Expanded)),
		h.Aria("label", label),
		hx.Get(partialHref(v.ToggleHref)),
		hx.Target("#"+NavID),
		hx.Swap("outerHTML"),
		hx.PushURL(v.ToggleHref),
		h.Span(h.Class("sr-only"), g.Text(label)),
		g.If(!v.Expanded, g.Text("☰")),
		g.If(v.Expanded, g.Text("✕")),
	)
}

func mobileMenu(v nav.View) g.Node {
	return h.Div(
		h.ID(mobileMenuID),
		h.Class("lg:hidden border-t border-gray-100 px-4 pb-4"),
		h.Ul(
			h.Class("flex flex-col gap-2 pt-2"),
			g.Map(v.Links, func(l nav.Link) g.Node { return h.Li(navLink(l, true)) }),
		),
		h.Div(h.Class("pt-3"), g.Map(v.CallToAction, ctaButton)),
	)
}

func partialHref(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	q := u.Query()
	q.Set("partial", PartialNav)
	u.RawQuery = q.Encode()
	return u.String()
}
