package echoServer

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
)

var apiPrefixes = []string{"/auth", "/books", "/users", "/swagger", "/health"}

// ErrorHandler maps errors to the JSON taxonomy. Unknown routes return
// JSON 404 to API clients and the static fallback page to browsers.
// Internal errors are logged with detail but surfaced generically.
func ErrorHandler(staticDir string, log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := any("internal error")
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			msg = he.Message
		}

		if code == http.StatusInternalServerError {
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			log.Error("request failed",
				"err", err,
				"req_id", rid,
				"path", c.Request().URL.Path,
				"method", c.Request().Method,
			)
			msg = "internal error"
		}

		if code == http.StatusNotFound && wantsHTML(c) {
			index := filepath.Join(staticDir, "index.html")
			if _, statErr := os.Stat(index); statErr == nil {
				if fileErr := c.File(index); fileErr == nil {
					return
				}
			}
		}

		_ = c.JSON(code, echo.Map{"message": msg})
	}
}

func wantsHTML(c echo.Context) bool {
	path := c.Request().URL.Path
	for _, p := range apiPrefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return false
		}
	}
	return c.Request().Method == http.MethodGet &&
		strings.Contains(c.Request().Header.Get("Accept"), "text/html")
}
