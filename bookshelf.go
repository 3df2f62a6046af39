// Package bookshelf serves a personal reading library built with Go, Echo,
// and templ. Books live as markdown files with YAML front matter; a build
// step validates them into a JSON index, and the web app renders that index
// as a browsable, filterable, searchable site.
package bookshelf

import (
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/eringen/bookshelf/library"
	"github.com/eringen/bookshelf/views"
)

// App is the central bookshelf application. It wires together the loaded
// index, handlers, and middleware.
type App struct {
	Config  Config
	Echo    *echo.Echo
	Library *library.Index

	customRoutes []func(*App)
}

// New creates a bookshelf App with the given configuration.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start loads the index, sets up middleware and routes, and starts the
// server. The index is read once; rebuild it and restart to pick up changes.
func (a *App) Start() error {
	idx, err := library.Load(a.Config.IndexPath)
	if err != nil {
		return fmt.Errorf("bookshelf: load index: %w", err)
	}
	a.Library = idx

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Assets the pages depend on ship embedded; a file at the same relative
	// path under StaticDir shadows the embedded copy.
	e.GET("/static/css/site.css", func(c echo.Context) error {
		return a.serveAsset(c, "css/site.css")
	})
	e.GET("/static/js/search.js", func(c echo.Context) error {
		return a.serveAsset(c, "js/search.js")
	})
	e.GET("/static/favicon.svg", a.handleFavicon)
	e.Static("/static", a.Config.StaticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/rss.xml", a.handleFeed)

	e.GET("/", a.handleLibrary)
	e.GET("/timeline/", a.handleTimeline)
	e.GET("/finished/", a.handleFinished)
	e.GET("/wishlist/", a.handleWishlist)
	e.GET("/favorites/", a.handleFavorites)
	e.GET("/books/:slug/", a.handleBook)
}

// shell assembles the page chrome data every view needs.
func (a *App) shell(active string, meta views.PageMeta) views.Shell {
	return views.Shell{
		Site:        a.Config.Site,
		Meta:        meta,
		Active:      active,
		Counts:      a.Library.Counts(),
		GeneratedAt: a.Library.GeneratedAt,
	}
}

// EnvOr returns the value of the environment variable key, or fallback if
// empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
