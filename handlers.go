package site

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/algotixai/site/content"
	"github.com/algotixai/site/nav"
	"github.com/algotixai/site/routes"
	"github.com/algotixai/site/views"
)

func (a *App) setupRoutes() {
	e := a.Echo

	// Assets shipped in the binary take precedence over the static dir.
	embedded := echo.WrapHandler(http.StripPrefix("/public/", http.FileServer(http.FS(a.assets))))
	e.GET("/public/logo.svg", embedded)
	e.GET("/public/css/site.css", embedded)
	e.Static("/public", a.Config.StaticDir)

	e.FileFS("/favicon.svg", "favicon.svg", a.assets)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/healthz", handleHealth)

	for _, entry := range a.Registry.All() {
		e.GET(entry.Path, a.pageHandler(entry))
	}
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

func (a *App) pageHandler(entry routes.Entry) echo.HandlerFunc {
	return func(c echo.Context) error {
		s := nav.StateFromRequest(c.Request())
		if isHTMX(c) && c.QueryParam("partial") == views.PartialNav {
			return Render(c, views.NavbarComponent(a.site, nav.Build(s, a.Registry)))
		}
		key := s.CurrentPath + "|menu=" + strconv.FormatBool(s.MenuExpanded)
		body, err := a.Cache.Get(key, func() ([]byte, error) {
			f, err := a.frame(s, entry)
			if err != nil {
				return nil, err
			}
			return renderBytes(c.Request().Context(), a.page(entry, f))
		})
		if err != nil {
			return err
		}
		return c.HTMLBlob(http.StatusOK, body)
	}
}

func (a *App) page(entry routes.Entry, f views.Frame) templ.Component {
	switch entry.ID {
	case routes.Home:
		return views.Home(f, a.homeLinks)
	case routes.Contact:
		return views.Contact(f)
	}
	p, ok := a.Content.ForEntry(entry)
	if !ok {
		p = content.Page{Title: entry.Title, Summary: entry.Description}
	}
	return views.ContentPage(f, p)
}

func (a *App) frame(s nav.State, entry routes.Entry) (views.Frame, error) {
	meta := views.PageMeta{
		Title:       entry.MetaTitle,
		Description: entry.Description,
		URL:         views.CanonicalURL(a.Config.URL, entry.Path),
		OGType:      "website",
	}
	if p, ok := a.Content.ForEntry(entry); ok {
		if p.SEO.Title != "" {
			meta.Title = p.SEO.Title
		}
		if p.SEO.Description != "" {
			meta.Description = p.SEO.Description
		}
	}

	var ld []string
	switch entry.ID {
	case routes.Home:
		ld = append(ld, views.WebsiteJsonLD(a.site), views.OrganizationJsonLD(a.site))
	case routes.Contact:
		ld = append(ld, views.OrganizationJsonLD(a.site))
	}
	if entry.Path != "/" {
		ld = append(ld, views.BreadcrumbJsonLD(a.site, nav.Breadcrumbs(a.Registry, entry.Path)))
	}

	return a.frameWith(s, meta, ld)
}

func (a *App) frameWith(s nav.State, meta views.PageMeta, ld []string) (views.Frame, error) {
	cols, err := nav.ResolveColumns(s, a.Registry, a.footer)
	if err != nil {
		return views.Frame{}, fmt.Errorf("footer: %w", err)
	}
	return views.Frame{
		Site:   a.site,
		Meta:   meta,
		Nav:    nav.Build(s, a.Registry),
		Footer: cols,
		JSONLD: ld,
	}, nil
}

func (a *App) errorFrame(c echo.Context, title string) views.Frame {
	meta := views.PageMeta{Title: title + " | " + a.Config.Name, NoIndex: true}
	f, err := a.frameWith(nav.StateFromRequest(c.Request()), meta, nil)
	if err != nil {
		// Footer ids are checked in Setup; fall back to a bare frame.
		return views.Frame{Site: a.site, Meta: meta, Nav: nav.Build(nav.StateFromRequest(c.Request()), a.Registry)}
	}
	return f
}

func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\nAllow: /\n\nSitemap: " + views.CanonicalURL(a.Config.URL, "/sitemap.xml") + "\n"
	return c.String(http.StatusOK, body)
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	c.Response().Header().Set("Cache-Control", "no-store")
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.errorFrame(c, "Page Not Found")))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.errorFrame(c, "Server Error")))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
