package site

import (
	"bytes"
	"encoding/xml"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/algotixai/site/content"
	"github.com/algotixai/site/nav"
	"github.com/algotixai/site/routes"
)

func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()

	a := New(SiteConfig{
		URL:      "https://algotix.ai",
		Email:    "hello@algotix.ai",
		LogLevel: "off",
	}, opts...)
	require.NoError(t, a.Setup())
	return a
}

func get(t *testing.T, a *App, target string, header ...string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

func parseHTML(t *testing.T, body []byte) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	require.NoError(t, err)
	return doc
}

func TestEveryRegisteredPageIsServed(t *testing.T) {
	a := newTestApp(t)

	for _, e := range a.Registry.All() {
		rec := get(t, a, e.Path)
		require.Equal(t, http.StatusOK, rec.Code, e.Path)

		title := e.MetaTitle
		if p, ok := a.Content.ForEntry(e); ok && p.SEO.Title != "" {
			title = p.SEO.Title
		}
		doc := parseHTML(t, rec.Body.Bytes())
		require.Equal(t, title, doc.Find("title").Text(), e.Path)
		require.Equal(t, "https://algotix.ai"+e.Path, doc.Find(`link[rel="canonical"]`).AttrOr("href", ""), e.Path)
	}
}

func TestPageHighlightsActiveLink(t *testing.T) {
	a := newTestApp(t)

	rec := get(t, a, "/services")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parseHTML(t, rec.Body.Bytes())

	active := doc.Find(`header a[aria-current="page"]`)
	require.Equal(t, 1, active.Length(), "collapsed navbar has one active link")
	require.Equal(t, "Services", active.Text())

	// Every menu entry is rendered, in registry order.
	var got []string
	doc.Find("header nav ul a").Each(func(_ int, s *goquery.Selection) {
		got = append(got, s.AttrOr("href", ""))
	})
	var want []string
	for _, e := range nav.Menu(a.Registry) {
		if !e.CallToAction {
			want = append(want, e.Path)
		}
	}
	require.Equal(t, want, got)
}

func TestMenuStateFromQuery(t *testing.T) {
	a := newTestApp(t)

	collapsed := parseHTML(t, get(t, a, "/agency").Body.Bytes())
	require.Equal(t, 0, collapsed.Find("#mobile-menu").Length(), "fresh navigation starts collapsed")
	require.Equal(t, "/agency?menu=open", collapsed.Find(`[aria-controls="mobile-menu"]`).AttrOr("href", ""))

	expanded := parseHTML(t, get(t, a, "/agency?menu=open").Body.Bytes())
	require.Equal(t, 1, expanded.Find("#mobile-menu").Length())
	require.Equal(t, "/agency", expanded.Find(`[aria-controls="mobile-menu"]`).AttrOr("href", ""))
	require.Equal(t, "page", expanded.Find(`#mobile-menu a[href="/agency"]`).AttrOr("aria-current", ""))
}

func TestNavPartial(t *testing.T) {
	a := newTestApp(t)

	rec := get(t, a, "/blogs?menu=open&partial=nav", "HX-Request", "true")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.True(t, strings.HasPrefix(body, `<header id="site-nav"`), "partial is only the navbar: %s", body)
	require.NotContains(t, body, "<html")
	require.Contains(t, body, `id="mobile-menu"`)

	// Without the htmx header the full page is served.
	full := get(t, a, "/blogs?menu=open&partial=nav")
	require.Contains(t, full.Body.String(), "<html")
}

func TestNotFound(t *testing.T) {
	a := newTestApp(t)

	rec := get(t, a, "/pricing")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"), "error pages must not be cached")
	doc := parseHTML(t, rec.Body.Bytes())
	require.Equal(t, "Page not found", doc.Find("main h1").Text())
	require.Equal(t, "noindex", doc.Find(`meta[name="robots"]`).AttrOr("content", ""))
	require.Equal(t, 0, doc.Find(`a[aria-current="page"]`).Length())
}

func TestServerError(t *testing.T) {
	a := newTestApp(t, WithCustomRoutes(func(a *App) {
		a.Echo.GET("/boom", func(echo.Context) error { return errors.New("boom") })
	}))

	rec := get(t, a, "/boom")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.Equal(t, "Something went wrong", parseHTML(t, rec.Body.Bytes()).Find("main h1").Text())
}

func TestTrailingSlashRedirect(t *testing.T) {
	a := newTestApp(t)

	rec := get(t, a, "/services/?menu=open")
	require.Equal(t, http.StatusMovedPermanently, rec.Code)
	require.Equal(t, "/services?menu=open", rec.Header().Get("Location"))

	require.Equal(t, http.StatusOK, get(t, a, "/").Code)
}

func TestSitemapListsRegistry(t *testing.T) {
	a := newTestApp(t)

	rec := get(t, a, "/sitemap.xml")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get(echo.HeaderContentType), "application/xml")

	var set sitemapURLSet
	require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &set))
	entries := a.Registry.All()
	require.Len(t, set.URLs, len(entries))
	for i, e := range entries {
		require.Equal(t, "https://algotix.ai"+e.Path, set.URLs[i].Loc)
	}
}

func TestRobots(t *testing.T) {
	a := newTestApp(t)

	rec := get(t, a, "/robots.txt")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Sitemap: https://algotix.ai/sitemap.xml")
	require.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))
}

func TestHealthAndAssets(t *testing.T) {
	a := newTestApp(t)

	rec := get(t, a, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	favicon := get(t, a, "/favicon.svg")
	require.Equal(t, http.StatusOK, favicon.Code)
	require.Contains(t, favicon.Header().Get(echo.HeaderContentType), "image/svg+xml")
	require.Contains(t, favicon.Body.String(), "<svg")
	logo := get(t, a, "/public/logo.svg")
	require.Equal(t, http.StatusOK, logo.Code)
	require.Contains(t, logo.Header().Get("Cache-Control"), "immutable")
}

func TestContentSEOOverride(t *testing.T) {
	a := newTestApp(t)

	doc := parseHTML(t, get(t, a, "/request-a-consultation").Body.Bytes())
	require.Equal(t, "Book a free consultation with AlgotixAI", doc.Find("title").Text())
	require.Equal(t, 1, doc.Find(`script[type="application/ld+json"]`).Length(), "breadcrumb only")
}

func TestSetupRejectsUnknownFooterLink(t *testing.T) {
	a := New(SiteConfig{LogLevel: "off"}, WithFooter(nav.Column{Heading: "Broken", IDs: []routes.ID{"PRICING"}}))
	err := a.Setup()
	require.ErrorIs(t, err, routes.ErrNotFound)
	require.Contains(t, err.Error(), "PRICING")
}

func TestSetupRejectsOrphanContent(t *testing.T) {
	lib, err := content.Load(fstest.MapFS{"pages/pricing.md": {Data: []byte("---\ntitle: Pricing\n---\n")}}, "pages")
	require.NoError(t, err)

	a := New(SiteConfig{LogLevel: "off"}, WithContent(lib))
	require.ErrorIs(t, a.Setup(), routes.ErrNotFound)
}

func TestCustomRegistryWithoutContent(t *testing.T) {
	r := routes.MustNew(
		routes.Entry{ID: "LANDING", Title: "Landing", Path: "/landing", MetaTitle: "Landing page", Description: "A page without markdown copy behind it."},
	)
	lib, err := content.Load(fstest.MapFS{}, "pages")
	require.NoError(t, err)

	a := newTestApp(t, WithRegistry(r), WithContent(lib), WithFooter())
	doc := parseHTML(t, get(t, a, "/landing").Body.Bytes())
	require.Equal(t, "Landing", doc.Find("article h1").Text())
	require.Equal(t, http.StatusNotFound, get(t, a, "/services").Code)
}

func TestPagesAreCached(t *testing.T) {
	a := newTestApp(t)

	get(t, a, "/careers")
	get(t, a, "/careers")
	get(t, a, "/careers?menu=open")
	require.Equal(t, 2, a.Cache.Len())
}

func TestSetupIsIdempotent(t *testing.T) {
	a := newTestApp(t)
	n := len(a.Echo.Routes())

	// serve runs Setup before Start, which runs it again.
	require.NoError(t, a.Setup())
	require.Len(t, a.Echo.Routes(), n)
	require.Equal(t, http.StatusOK, get(t, a, "/services").Code)
}
