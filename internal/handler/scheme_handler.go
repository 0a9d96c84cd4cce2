package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kisanbandhu/console/internal/model"
	"kisanbandhu/console/internal/service"
)

type SchemeHandler struct {
	service service.SchemeService
}

type listSchemesRequest struct {
	LanguageCode string `json:"languageCode"`
}

func NewSchemeHandler(service service.SchemeService) *SchemeHandler {
	return &SchemeHandler{service: service}
}

func (h *SchemeHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/schemes/list", h.List)
	g.POST("/schemes", h.Create)
	g.PUT("/schemes/:id", h.Update)
	g.DELETE("/schemes/:id", h.Delete)
	g.GET("/schemes/:id/translations", h.Translations)
	g.PUT("/schemes/:id/translations/:lang", h.UpdateTranslation)
}

// List returns schemes with the requested language's text flattened in.
func (h *SchemeHandler) List(c echo.Context) error {
	var req listSchemesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	schemes, err := h.service.List(c.Request().Context(), req.LanguageCode)
	if err != nil {
		return writeServiceError(c, err)
	}
	if schemes == nil {
		schemes = []model.Scheme{}
	}
	return c.JSON(http.StatusOK, schemes)
}

func (h *SchemeHandler) Create(c echo.Context) error {
	var scheme model.Scheme
	if err := c.Bind(&scheme); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	if err := h.service.Add(c.Request().Context(), scheme); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, okResponse{OK: true})
}

func (h *SchemeHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid scheme id"})
	}
	var scheme model.Scheme
	if err := c.Bind(&scheme); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	scheme.ID = id
	if err := h.service.Update(c.Request().Context(), scheme); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}

func (h *SchemeHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid scheme id"})
	}
	if err := h.service.Delete(c.Request().Context(), id, confirmQuery(c)); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}

func (h *SchemeHandler) Translations(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid scheme id"})
	}
	translations, err := h.service.Translations(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	if translations == nil {
		translations = []model.SchemeTranslation{}
	}
	return c.JSON(http.StatusOK, translations)
}

func (h *SchemeHandler) UpdateTranslation(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid scheme id"})
	}
	var tr model.SchemeTranslation
	if err := c.Bind(&tr); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	tr.LanguageCode = c.Param("lang")
	if err := h.service.UpdateTranslation(c.Request().Context(), id, tr); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}
