package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders the 404 and 500 pages. Causes of 500s are logged and
// never shown to the user.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if he.Internal != nil {
			err = he.Internal
		}
	}

	page := "errors/500.html"
	switch {
	case code == http.StatusNotFound:
		page = "errors/404.html"
	case code >= http.StatusInternalServerError:
		slog.Error("request failed",
			"method", c.Request().Method,
			"uri", c.Request().RequestURI,
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"error", err,
		)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	if rerr := c.Render(code, page, nil); rerr != nil {
		slog.Error("render error page", "page", page, "error", rerr)
		_ = c.String(code, http.StatusText(code))
	}
}
