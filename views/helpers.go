package views

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"path"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"

	"github.com/algotixai/site/nav"
)

// Component adapts a gomponents tree to templ.Component.
func Component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// CanonicalURL joins a route path onto the site base URL. The route path is
// kept as registered, so "/services" never gains a trailing slash.
func CanonicalURL(base, routePath string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base + routePath
	}
	u.Path = path.Join(u.Path, routePath)
	if u.Path == "" {
		u.Path = "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}

func marshalLD(data map[string]any) string {
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block using cfg values.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     cfg.Name,
		"url":      CanonicalURL(cfg.URL, "/"),
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	return marshalLD(data)
}

// OrganizationJsonLD describes the company and its contact points.
func OrganizationJsonLD(cfg SiteConfig) string {
	data := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     cfg.Name,
		"url":      CanonicalURL(cfg.URL, "/"),
		"logo":     CanonicalURL(cfg.URL, "/public/logo.svg"),
	}
	if cfg.Email != "" {
		data["email"] = cfg.Email
	}
	if cfg.Phone != "" {
		data["telephone"] = cfg.Phone
	}
	if cfg.Address != "" {
		data["address"] = cfg.Address
	}
	return marshalLD(data)
}

// BreadcrumbJsonLD produces a BreadcrumbList for crumbs.
func BreadcrumbJsonLD(cfg SiteConfig, crumbs []nav.Crumb) string {
	items := make([]map[string]any, 0, len(crumbs))
	for i, c := range crumbs {
		items = append(items, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     c.Label,
			"item":     CanonicalURL(cfg.URL, c.Href),
		})
	}
	return marshalLD(map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	})
}
