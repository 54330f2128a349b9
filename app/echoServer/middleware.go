// app/echoServer/middleware.go
package echoServer

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/VirakOTAKU/book-selling-platform/app/echoServer/jwtx"
	"github.com/VirakOTAKU/book-selling-platform/model"
	jwtutil "github.com/VirakOTAKU/book-selling-platform/util/jwt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RegisterMiddlewares(e *echo.Echo) {

	e.Use(middleware.Recover())

	e.Use(middleware.CORS())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))

	e.Use(Slog())
}

func Slog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			lat := time.Since(start).Milliseconds()

			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			slog.Info("http",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", c.Response().Status,
				"latency_ms", lat,
				"req_id", rid,
				"ip", c.RealIP(),
				"ua", c.Request().UserAgent(),
			)
			return err
		}
	}
}

// JWTAuth verifies the token from the Authorization header, falling
// back to the token cookie, and leaves the parsed claims in context.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "header:Authorization:Bearer ,cookie:token",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(jwtutil.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			slog.Warn("auth rejected", "req_id", rid, "ip", c.RealIP(), "err", err)
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		},
	})
}

// RequireRole gates a route on coarse role membership. Ownership of a
// specific record is checked later in the book service, after fetch.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[model.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, err := jwtx.RoleFromContext(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "not authorized for this action")
			}
			return next(c)
		}
	}
}
