package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"kisanbandhu/console/internal/handler"
	"kisanbandhu/console/internal/logger"
	"kisanbandhu/console/internal/service"
)

// Console pages that require a session. Requests without one are sent back
// to the login page instead of getting a JSON 401, so a stale tab lands on
// the login form rather than an error blob.
var guardedPages = []string{
	"/dashboard",
	"/schemes",
	"/addSchemes",
	"/edit-scheme",
	"/edit-translation",
	"/crops",
	"/addCrop",
	"/updateCrop",
	"/editCropPara",
	"/news",
	"/notifications",
}

// RequestLoggerMiddleware logs HTTP requests using logger.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			latency := time.Since(start)

			status := res.Status
			result := "ok"
			if status >= 400 {
				result = "failed"
			}
			fields := []any{
				"module", "http",
				"action", "request",
				"resource", "http",
				"result", result,
				"method", req.Method,
				"path", req.URL.Path,
				"status_code", status,
				"duration_ms", latency.Milliseconds(),
				"remote_ip", c.RealIP(),
				"user_agent", req.UserAgent(),
			}
			switch {
			case status >= 500:
				logger.Error("http request", fields...)
			case status >= 400:
				logger.Warn("http request", fields...)
			default:
				logger.Debug("http request", fields...)
			}

			return nil
		}
	}
}

// SessionMiddleware guards the protected API group. Requests without a
// valid session get a JSON 401.
func SessionMiddleware(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !hasValidSession(c, authService) {
				logger.Warn("auth missing",
					"module", "http",
					"action", "request",
					"resource", "auth",
					"result", "failed",
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"remote_ip", c.RealIP(),
				)
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "not authenticated",
				})
			}
			return next(c)
		}
	}
}

// PageGuardMiddleware redirects unauthenticated requests for guarded
// console pages to the login page. API routes are left to the session
// middleware.
func PageGuardMiddleware(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !isGuardedPage(c.Request().URL.Path) {
				return next(c)
			}
			if !hasValidSession(c, authService) {
				return c.Redirect(http.StatusFound, "/")
			}
			return next(c)
		}
	}
}

func isGuardedPage(requestPath string) bool {
	for _, page := range guardedPages {
		if requestPath == page || strings.HasPrefix(requestPath, page+"/") {
			return true
		}
	}
	return false
}

func hasValidSession(c echo.Context, authService service.AuthService) bool {
	token := handler.SessionToken(c)
	if token == "" {
		return false
	}
	valid, err := authService.ValidateToken(c.Request().Context(), token)
	return err == nil && valid
}
