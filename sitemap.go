package site

import (
	"encoding/xml"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/algotixai/site/routes"
	"github.com/algotixai/site/views"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// WriteSitemap writes a sitemap listing every registry entry, in registry
// order, with canonical URLs under base.
func WriteSitemap(w io.Writer, base string, r *routes.Registry) error {
	entries := r.All()
	urls := make([]sitemapURL, 0, len(entries))
	for _, e := range entries {
		u := sitemapURL{Loc: views.CanonicalURL(base, e.Path), ChangeFreq: "monthly", Priority: "0.7"}
		if e.Path == "/" {
			u.ChangeFreq, u.Priority = "weekly", "1.0"
		}
		urls = append(urls, u)
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return enc.Encode(sitemap)
}

func (a *App) handleSitemap(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return WriteSitemap(c.Response(), a.Config.URL, a.Registry)
}
