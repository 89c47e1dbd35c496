package site

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"

	"github.com/algotixai/site/content"
	"github.com/algotixai/site/nav"
	"github.com/algotixai/site/routes"
	"github.com/algotixai/site/views"
)

// SiteConfig holds all configuration for the site.
type SiteConfig struct {
	Name        string `validate:"required"`     // Site name (default "AlgotixAI")
	URL         string `validate:"required,url"` // Canonical URL (default "http://localhost:3000")
	Description string // Site description for meta tags and JSON-LD

	Email   string `validate:"omitempty,email"` // Contact email, also the contact form target
	Phone   string
	Address string

	Addr      string `validate:"required"` // Listen address (default ":3000")
	StaticDir string // Static asset directory (default "public")
	LogLevel  string `validate:"omitempty,oneof=debug info warn error off"`
	HSTS      bool   // Send Strict-Transport-Security

	PageCacheTTL time.Duration // Rendered page cache TTL (default 5min, negative disables)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "AlgotixAI"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Description == "" {
		c.Description = "Cutting-edge software development and AI solutions."
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.PageCacheTTL == 0 {
		c.PageCacheTTL = 5 * time.Minute
	}
}

// Validate checks the config after defaults are applied.
func (c SiteConfig) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("site: invalid config: %w", err)
	}
	return nil
}

func (c SiteConfig) viewConfig() views.SiteConfig {
	return views.SiteConfig{
		Name:        c.Name,
		URL:         c.URL,
		Description: c.Description,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
	}
}

func (c SiteConfig) logLevel() log.Lvl {
	switch c.LogLevel {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}

// LoadConfig reads .env when present and then the environment.
func LoadConfig() (SiteConfig, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return SiteConfig{}, fmt.Errorf("site: load .env: %w", err)
	}
	return ConfigFromEnv()
}

// ConfigFromEnv builds a validated SiteConfig from environment variables.
func ConfigFromEnv() (SiteConfig, error) {
	cfg := SiteConfig{
		Name:        os.Getenv("SITE_NAME"),
		URL:         os.Getenv("SITE_URL"),
		Description: os.Getenv("SITE_DESCRIPTION"),
		Email:       os.Getenv("CONTACT_EMAIL"),
		Phone:       os.Getenv("CONTACT_PHONE"),
		Address:     os.Getenv("CONTACT_ADDRESS"),
		Addr:        os.Getenv("ADDR"),
		StaticDir:   os.Getenv("STATIC_DIR"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
	}
	if cfg.Addr == "" {
		if port := os.Getenv("PORT"); port != "" {
			cfg.Addr = ":" + port
		}
	}
	if v := os.Getenv("HSTS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return SiteConfig{}, fmt.Errorf("site: HSTS: %w", err)
		}
		cfg.HSTS = b
	}
	if v := os.Getenv("PAGE_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return SiteConfig{}, fmt.Errorf("site: PAGE_CACHE_TTL: %w", err)
		}
		cfg.PageCacheTTL = d
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return SiteConfig{}, err
	}
	return cfg, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs during Setup, after the built-in routes.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for static assets, overriding the config.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}

// WithRegistry replaces the default route registry.
func WithRegistry(r *routes.Registry) Option {
	return func(a *App) {
		a.Registry = r
	}
}

// WithContent replaces the embedded page library.
func WithContent(lib *content.Library) Option {
	return func(a *App) {
		a.Content = lib
	}
}

// WithFooter replaces the default footer columns.
func WithFooter(cols ...nav.Column) Option {
	return func(a *App) {
		a.footer = cols
	}
}
