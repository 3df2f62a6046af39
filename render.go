package bookshelf

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Render writes a page component as a 200 HTML response. Every handler in
// handlers.go funnels through here so the content type is set in one place.
func Render(c echo.Context, page templ.Component) error {
	return RenderStatus(c, http.StatusOK, page)
}

// RenderStatus writes a page component with an explicit status code. The
// error handler uses it to serve the styled 404 and 500 pages.
func RenderStatus(c echo.Context, code int, page templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return page.Render(c.Request().Context(), c.Response().Writer)
}
