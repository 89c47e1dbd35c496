package site

import (
	"bytes"
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// renderBytes renders cmp into memory so the page cache can keep it.
func renderBytes(ctx context.Context, cmp templ.Component) ([]byte, error) {
	var buf bytes.Buffer
	if err := cmp.Render(ctx, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
