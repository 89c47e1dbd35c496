// Package site serves the AlgotixAI marketing site with Echo.
//
// Every page is a route registry entry: Setup registers one GET handler per
// entry, derives the primary menu and sitemap from the same table, and checks
// that hand-authored footer links and content pages point at registered
// routes before the server accepts a request.
package site

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/algotixai/site/content"
	"github.com/algotixai/site/nav"
	"github.com/algotixai/site/routes"
	"github.com/algotixai/site/views"
)

// App is the site application. It wires together the registry, content,
// page cache, handlers and middleware.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Registry *routes.Registry
	Content  *content.Library
	Cache    *PageCache

	site         views.SiteConfig
	footer       []nav.Column
	homeLinks    views.HomeLinks
	assets       fs.FS
	customRoutes []func(*App)
	ready        bool
}

// New creates an App with the given configuration. Nothing is validated
// until Setup.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		footer: DefaultFooter(),
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	a.site = a.Config.viewConfig()
	a.Cache = NewPageCache(a.Config.PageCacheTTL)
	a.Echo.Logger.SetLevel(a.Config.logLevel())
	return a
}

// Setup checks the route table and the links that refer to it, then
// installs middleware and routes. It is safe to call more than once.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}
	if err := a.Config.Validate(); err != nil {
		return err
	}
	if a.Registry == nil {
		a.Registry = routes.Default()
	}
	if a.Content == nil {
		lib, err := content.Default()
		if err != nil {
			return fmt.Errorf("site: load content: %w", err)
		}
		a.Content = lib
	}
	assets, err := fs.Sub(EmbeddedAssets, "embedded")
	if err != nil {
		return fmt.Errorf("site: embedded assets: %w", err)
	}
	a.assets = assets

	if err := a.check(); err != nil {
		return err
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	return nil
}

func (a *App) check() error {
	for _, w := range routes.Lint(a.Registry) {
		a.Echo.Logger.Warnf("routes: %s", w)
	}

	var ids []routes.ID
	for _, col := range a.footer {
		ids = append(ids, col.IDs...)
	}
	if err := nav.CheckLinks(a.Registry, ids...); err != nil {
		return fmt.Errorf("site: footer: %w", err)
	}
	if err := a.Content.CheckRoutes(a.Registry); err != nil {
		return fmt.Errorf("site: %w", err)
	}

	if _, err := a.Registry.Lookup(routes.Home); err == nil {
		consult, err := a.Registry.Lookup(routes.RequestAConsultation)
		if err != nil {
			return fmt.Errorf("site: home page: %w", err)
		}
		services, err := a.Registry.Lookup(routes.Services)
		if err != nil {
			return fmt.Errorf("site: home page: %w", err)
		}
		a.homeLinks = views.HomeLinks{Consultation: consult, Services: services}
	}
	return nil
}

// Start runs Setup and then serves until the server is shut down.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	a.Echo.Logger.Infof("serving %d routes on %s", a.Registry.Len(), a.Config.Addr)
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}
