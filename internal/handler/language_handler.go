package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kisanbandhu/console/internal/language"
)

// LanguageHandler serves the supported-language catalog the editors build
// their language pickers from.
type LanguageHandler struct{}

func NewLanguageHandler() *LanguageHandler {
	return &LanguageHandler{}
}

func (h *LanguageHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/languages", h.List)
}

func (h *LanguageHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, language.All())
}
