package site

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const contentSecurityPolicy = "default-src 'self'; script-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' https: data:; font-src 'self'; connect-src 'self'; form-action 'self' mailto:; frame-ancestors 'none'"

func (a *App) setupMiddleware() {
	e := a.Echo

	e.IPExtractor = echo.ExtractIPFromXFFHeader(
		echo.TrustLoopback(true),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(true),
	)

	e.HTTPErrorHandler = a.httpErrorHandler

	e.Pre(middleware.NonWWWRedirect())

	// Registered paths never end in a slash, so "/services/" is sent to
	// "/services" instead of being treated as a different page.
	e.Pre(middleware.RemoveTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		RedirectCode: http.StatusMovedPermanently,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, "/public/")
		},
	}))

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			c.Logger().Infof("%s %s -> %d (%s)", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))

	e.Use(middleware.Recover())

	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, "/public/")
		},
	}))

	secure := middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: contentSecurityPolicy,
	}
	if a.Config.HSTS {
		secure.HSTSMaxAge = 31536000
	}
	e.Use(middleware.SecureWithConfig(secure))

	e.Use(cacheControlMiddleware)
}

func cacheControlMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		h := c.Response().Header()
		switch {
		case strings.HasPrefix(path, "/public/"):
			h.Set("Cache-Control", "public, max-age=31536000, immutable")
		case path == "/sitemap.xml" || path == "/robots.txt" || path == "/favicon.svg":
			h.Set("Cache-Control", "public, max-age=86400")
		case path == "/healthz":
			h.Set("Cache-Control", "no-store")
		default:
			h.Set("Cache-Control", "public, max-age=3600")
			h.Add("Vary", "HX-Request")
		}
		return next(c)
	}
}
