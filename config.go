package bookshelf

import "github.com/eringen/bookshelf/views"

// Config holds all configuration for a bookshelf site.
type Config struct {
	Site views.SiteConfig // Site identity for meta tags, RSS, and JSON-LD

	Addr      string // Listen address (default ":3000")
	BooksDir  string // Markdown source directory (default "books")
	IndexPath string // Generated index path (default "data/books-index.json")
	StaticDir string // Static assets directory (default "static")
}

func (c *Config) setDefaults() {
	if c.Site.Name == "" {
		c.Site.Name = "Bookshelf"
	}
	if c.Site.URL == "" {
		c.Site.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.BooksDir == "" {
		c.BooksDir = "books"
	}
	if c.IndexPath == "" {
		c.IndexPath = "data/books-index.json"
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
}

// WithDefaults returns a copy of the config with defaults filled in.
func (c Config) WithDefaults() Config {
	c.setDefaults()
	return c
}

// ConfigFromEnv builds a Config from environment variables, falling back to
// defaults for anything unset.
func ConfigFromEnv() Config {
	return Config{
		Site: views.SiteConfig{
			Name:        EnvOr("SITE_NAME", ""),
			URL:         EnvOr("SITE_URL", ""),
			Description: EnvOr("SITE_DESCRIPTION", "A personal reading library."),
			Author:      EnvOr("SITE_AUTHOR", ""),
		},
		Addr:      EnvOr("ADDR", ""),
		BooksDir:  EnvOr("BOOKS_DIR", ""),
		IndexPath: EnvOr("INDEX_PATH", ""),
		StaticDir: EnvOr("STATIC_DIR", ""),
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
