package views

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"

	"github.com/algotixai/site/content"
	"github.com/algotixai/site/nav"
	"github.com/algotixai/site/routes"
)

var testSite = SiteConfig{
	Name:    "AlgotixAI",
	URL:     "https://algotix.ai",
	Email:   "hello@algotix.ai",
	Phone:   "+1 555 0100",
	Address: "1 Market St",
}

func frameFor(t *testing.T, s nav.State) Frame {
	t.Helper()

	r := routes.Default()
	cols, err := nav.ResolveColumns(s, r, []nav.Column{{Heading: "Company", IDs: []routes.ID{routes.AboutUs, routes.Careers}}})
	require.NoError(t, err)
	return Frame{
		Site:   testSite,
		Meta:   PageMeta{Title: "Title", Description: "Description", URL: CanonicalURL(testSite.URL, s.CurrentPath)},
		Nav:    nav.Build(s, r),
		Footer: cols,
		JSONLD: []string{WebsiteJsonLD(testSite)},
	}
}

func TestNavbarHighlightsCurrentPage(t *testing.T) {
	t.Parallel()

	doc := render(t, Component(Navbar(testSite, nav.Build(nav.NewState("/services"), routes.Default()))))

	active := doc.Find(`a[aria-current="page"]`)
	require.Equal(t, 1, active.Length(), "exactly one active link in the collapsed navbar")
	require.Equal(t, "/services", active.AttrOr("href", ""))
	require.Contains(t, active.AttrOr("class", ""), "font-semibold")

	require.Equal(t, 0, doc.Find("#"+mobileMenuID).Length(), "menu starts collapsed")
	require.Equal(t, 1, doc.Find(`a[href="/request-a-consultation"]`).Length(), "call to action rendered once")
	require.Equal(t, 0, doc.Find(`nav ul a[href="/"]`).Length(), "home is not a menu link")
}

func TestNavbarToggleLink(t *testing.T) {
	t.Parallel()

	collapsed := render(t, Component(Navbar(testSite, nav.Build(nav.NewState("/agency"), routes.Default()))))
	toggle := collapsed.Find(`[aria-controls="mobile-menu"]`)
	require.Equal(t, "/agency?menu=open", toggle.AttrOr("href", ""))
	require.Equal(t, "false", toggle.AttrOr("aria-expanded", ""))
	require.Equal(t, "/agency?menu=open&partial=nav", toggle.AttrOr("hx-get", ""))
	require.Equal(t, "#site-nav", toggle.AttrOr("hx-target", ""))

	expanded := render(t, Component(Navbar(testSite, nav.Build(nav.NewState("/agency").Toggle(), routes.Default()))))
	toggle = expanded.Find(`[aria-controls="mobile-menu"]`)
	require.Equal(t, "/agency", toggle.AttrOr("href", ""))
	require.Equal(t, "true", toggle.AttrOr("aria-expanded", ""))
	require.Equal(t, 1, expanded.Find("#mobile-menu").Length())
	require.Equal(t, 2, expanded.Find(`a[href="/agency"][aria-current="page"]`).Length(), "desktop and mobile links both active")
}

func TestLayoutHead(t *testing.T) {
	t.Parallel()

	doc := render(t, Layout(frameFor(t, nav.NewState("/careers"))))

	require.Equal(t, "Title", doc.Find("title").Text())
	require.Equal(t, "https://algotix.ai/careers", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	require.Equal(t, "Description", doc.Find(`meta[name="description"]`).AttrOr("content", ""))
	require.Equal(t, "website", doc.Find(`meta[property="og:type"]`).AttrOr("content", ""))
	require.Equal(t, 0, doc.Find(`meta[name="robots"]`).Length())

	ld := doc.Find(`script[type="application/ld+json"]`)
	require.Equal(t, 1, ld.Length())
	var data map[string]any
	require.NoError(t, json.Unmarshal([]byte(ld.Text()), &data))
	require.Equal(t, "WebSite", data["@type"])

	require.Equal(t, "page", doc.Find(`footer a[href="/careers"]`).AttrOr("aria-current", ""))
	require.Equal(t, 1, doc.Find(`footer a[href="mailto:hello@algotix.ai"]`).Length())
	require.Equal(t, 1, doc.Find(`footer a[href="tel:+15550100"]`).Length())
}

func TestContentPageRendersHTML(t *testing.T) {
	t.Parallel()

	p := content.Page{Slug: "careers", Title: "Careers", Summary: "Join us", HTML: "<h2>Open roles</h2>"}
	doc := render(t, ContentPage(frameFor(t, nav.NewState("/careers")), p))

	require.Equal(t, "Careers", doc.Find("article h1").Text())
	require.Equal(t, "Open roles", doc.Find("article .prose h2").Text())
}

func TestContactForm(t *testing.T) {
	t.Parallel()

	doc := render(t, Contact(frameFor(t, nav.NewState("/contact"))))

	form := doc.Find("#contact-form")
	require.Equal(t, "mailto:hello@algotix.ai", form.AttrOr("action", ""))
	for _, name := range []string{"name", "email", "message"} {
		require.Equal(t, 1, form.Find(`[name="`+name+`"]`).Length(), name)
	}
	require.Equal(t, 1, form.Find(`button[type="submit"]`).Length())
}

func TestHomeLinks(t *testing.T) {
	t.Parallel()

	r := routes.Default()
	links := HomeLinks{Consultation: r.MustLookup(routes.RequestAConsultation), Services: r.MustLookup(routes.Services)}
	doc := render(t, Home(frameFor(t, nav.NewState("/")), links))

	require.GreaterOrEqual(t, doc.Find(`main a[href="/request-a-consultation"]`).Length(), 1)
	require.Equal(t, 1, doc.Find(`main a[href="/services"]`).Length())
	require.Equal(t, len(TechStack), doc.Find(`main img[alt$=" Logo"]`).Length())
}

func TestNotFoundPage(t *testing.T) {
	t.Parallel()

	f := frameFor(t, nav.NewState("/missing"))
	f.Meta.NoIndex = true
	doc := render(t, NotFound(f))

	require.Equal(t, "Page not found", doc.Find("main h1").Text())
	require.Equal(t, "noindex", doc.Find(`meta[name="robots"]`).AttrOr("content", ""))
	require.Equal(t, 0, doc.Find(`a[aria-current="page"]`).Length())
}

func TestCanonicalURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		base, path, want string
	}{
		{"https://algotix.ai", "/", "https://algotix.ai/"},
		{"https://algotix.ai/", "/services", "https://algotix.ai/services"},
		{"https://algotix.ai/site", "/about-us", "https://algotix.ai/site/about-us"},
		{"http://localhost:3000", "", "http://localhost:3000/"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, CanonicalURL(tt.base, tt.path), "%s + %s", tt.base, tt.path)
	}
}

func TestBreadcrumbJsonLD(t *testing.T) {
	t.Parallel()

	crumbs := nav.Breadcrumbs(routes.Default(), "/case-studies")
	var data struct {
		Type  string `json:"@type"`
		Items []struct {
			Position int    `json:"position"`
			Name     string `json:"name"`
			Item     string `json:"item"`
		} `json:"itemListElement"`
	}
	require.NoError(t, json.Unmarshal([]byte(BreadcrumbJsonLD(testSite, crumbs)), &data))
	require.Equal(t, "BreadcrumbList", data.Type)
	require.Len(t, data.Items, 2)
	require.Equal(t, 2, data.Items[1].Position)
	require.Equal(t, "Case Studies", data.Items[1].Name)
	require.Equal(t, "https://algotix.ai/case-studies", data.Items[1].Item)
}

func TestOrganizationJsonLD(t *testing.T) {
	t.Parallel()

	var data map[string]any
	require.NoError(t, json.Unmarshal([]byte(OrganizationJsonLD(testSite)), &data))
	require.Equal(t, "Organization", data["@type"])
	require.Equal(t, "hello@algotix.ai", data["email"])

	data = nil
	require.NoError(t, json.Unmarshal([]byte(OrganizationJsonLD(SiteConfig{Name: "X", URL: "https://x.test"})), &data))
	require.NotContains(t, data, "email")
}

func render(t *testing.T, c templ.Component) *goquery.Document {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	return doc
}
