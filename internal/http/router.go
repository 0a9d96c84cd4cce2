package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"kisanbandhu/console/internal/handler"
	"kisanbandhu/console/internal/service"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth         *handler.AuthHandler
	Language     *handler.LanguageHandler
	Scheme       *handler.SchemeHandler
	Crop         *handler.CropHandler
	News         *handler.NewsHandler
	Notification *handler.NotificationHandler
	Image        *handler.ImageHandler
	Translate    *handler.TranslateHandler
	Dashboard    *handler.DashboardHandler
}

func NewRouter(h Handlers, authService service.AuthService, staticDir string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())
	e.Use(PageGuardMiddleware(authService))

	api := e.Group("/api")
	h.Auth.RegisterPublicRoutes(api)

	protected := api.Group("", SessionMiddleware(authService))
	h.Auth.RegisterRoutes(protected)
	h.Language.RegisterRoutes(protected)
	h.Scheme.RegisterRoutes(protected)
	h.Crop.RegisterRoutes(protected)
	h.News.RegisterRoutes(protected)
	h.Notification.RegisterRoutes(protected)
	h.Image.RegisterRoutes(protected)
	h.Translate.RegisterRoutes(protected)
	h.Dashboard.RegisterRoutes(protected)

	registerStatic(e, staticDir)

	return e
}
