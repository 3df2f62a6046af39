package bookshelf

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/eringen/bookshelf/library"
	"github.com/eringen/bookshelf/views"
)

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

func (a *App) handleLibrary(c echo.Context) error {
	tag := c.QueryParam("tag")
	query := c.QueryParam("q")

	books := library.FilterByTag(a.Library.Books, tag)
	books = library.Search(books, query)

	if isHTMX(c) {
		return Render(c, views.LibraryResults(books, query, tag))
	}
	shell := a.shell("library", views.PageMeta{
		Title:       "",
		Description: a.Config.Site.Description,
		URL:         BuildURL(a.Config.Site.URL),
	})
	return Render(c, views.MyBooks(shell, books, a.Library.Tags(), tag, query))
}

func (a *App) handleTimeline(c echo.Context) error {
	shell := a.shell("timeline", views.PageMeta{
		Title:       "Timeline",
		Description: "The reading journey, newest first.",
		URL:         BuildURL(a.Config.Site.URL, "timeline"),
	})
	return Render(c, views.Timeline(shell, a.Library.Timeline()))
}

func (a *App) handleFinished(c echo.Context) error {
	query := c.QueryParam("q")
	descending := c.QueryParam("sort") != "asc"

	books := library.Search(a.Library.ByStatus(library.StatusFinished), query)
	books = library.SortFinished(books, descending)

	if isHTMX(c) {
		return Render(c, views.FinishedResults(books, query))
	}
	shell := a.shell("finished", views.PageMeta{
		Title:       "Finished",
		Description: "Every book read to the end, ordered by rating.",
		URL:         BuildURL(a.Config.Site.URL, "finished"),
	})
	return Render(c, views.Finished(shell, books, query, descending))
}

func (a *App) handleWishlist(c echo.Context) error {
	query := c.QueryParam("q")
	books := library.Search(a.Library.ByStatus(library.StatusWishlist), query)

	if isHTMX(c) {
		return Render(c, views.StatusResults(books, query,
			"The wishlist is empty.", "Add a book with status wishlist to start one."))
	}
	shell := a.shell("wishlist", views.PageMeta{
		Title:       "Wishlist",
		Description: "Books to read next.",
		URL:         BuildURL(a.Config.Site.URL, "wishlist"),
	})
	return Render(c, views.Wishlist(shell, books, query))
}

func (a *App) handleFavorites(c echo.Context) error {
	query := c.QueryParam("q")
	books := library.Search(a.Library.Favorites(), query)

	if isHTMX(c) {
		return Render(c, views.StatusResults(books, query,
			"No favorites yet.", "Set favorite: true on a book to pin it here."))
	}
	shell := a.shell("favorites", views.PageMeta{
		Title:       "Favorites",
		Description: "The best of the shelf.",
		URL:         BuildURL(a.Config.Site.URL, "favorites"),
	})
	return Render(c, views.Favorites(shell, books, query))
}

const relatedLimit = 3

func (a *App) handleBook(c echo.Context) error {
	slug := c.Param("slug")
	book, ok := a.Library.BySlug(slug)
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	related := a.Library.Related(book, relatedLimit)

	description := book.Title + " by " + book.Author
	shell := a.shell("library", views.PageMeta{
		Title:       book.Title,
		Description: description,
		URL:         BuildURL(a.Config.Site.URL, "books", book.Slug),
		OGType:      "book",
	})
	return Render(c, views.Detail(shell, book, related))
}

func (a *App) handleFavicon(c echo.Context) error {
	return a.serveAsset(c, "favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	return a.serveAsset(c, "robots.txt")
}

// serveAsset serves the named asset from StaticDir when the file exists
// there, falling back to the embedded copy.
func (a *App) serveAsset(c echo.Context, name string) error {
	onDisk := filepath.Join(a.Config.StaticDir, filepath.FromSlash(name))
	if _, err := os.Stat(onDisk); err == nil {
		return c.File(onDisk)
	}
	data, err := embeddedAssets.ReadFile("embedded/" + name)
	if err != nil {
		return echo.ErrNotFound
	}
	return c.Blob(http.StatusOK, assetContentType(name), data)
}

func assetContentType(name string) string {
	switch path.Ext(name) {
	case ".css":
		return "text/css; charset=utf-8"
	case ".js":
		return "application/javascript; charset=utf-8"
	case ".svg":
		return "image/svg+xml"
	}
	return "text/plain; charset=utf-8"
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.errorShell()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.errorShell()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

// errorShell builds chrome for error pages, tolerating an unloaded index.
func (a *App) errorShell() views.Shell {
	shell := views.Shell{Site: a.Config.Site}
	if a.Library != nil {
		shell.Counts = a.Library.Counts()
		shell.GeneratedAt = a.Library.GeneratedAt
	}
	return shell
}
