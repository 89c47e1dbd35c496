package views

import "github.com/algotixai/site/nav"

// SiteConfig holds site-wide settings populated from environment variables.
// Every handler passes this to templates so nothing is hardcoded.
type SiteConfig struct {
	Name        string // SITE_NAME  (default "AlgotixAI")
	URL         string // SITE_URL   (default "http://localhost:3000")
	Description string // SITE_DESCRIPTION
	Email       string // CONTACT_EMAIL
	Phone       string // CONTACT_PHONE
	Address     string // CONTACT_ADDRESS
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	NoIndex     bool
}

// Frame is everything the layout needs around a page body.
type Frame struct {
	Site   SiteConfig
	Meta   PageMeta
	Nav    nav.View
	Footer []nav.ColumnView
	JSONLD []string
}
