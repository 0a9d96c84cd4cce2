package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kisanbandhu/console/internal/model"
	"kisanbandhu/console/internal/service"
)

type CropHandler struct {
	service service.CropService
}

type updateCropRequest struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

type updateParagraphRequest struct {
	LanguageCode  string `json:"language_code"`
	OriginalTitle string `json:"original_title"`
	Title         string `json:"paragraph_title"`
	Content       string `json:"paragraph_content"`
}

type deleteParagraphRequest struct {
	LanguageCode string `json:"language_code"`
	Title        string `json:"paragraph_title"`
}

func NewCropHandler(service service.CropService) *CropHandler {
	return &CropHandler{service: service}
}

func (h *CropHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/crops", h.List)
	g.POST("/crops", h.Create)
	g.GET("/crops/:name", h.Get)
	g.PUT("/crops/:name", h.Update)
	g.DELETE("/crops/:name", h.Delete)

	g.POST("/crops/:name/paragraphs", h.AddParagraph)
	g.PUT("/crops/:name/paragraphs", h.UpdateParagraph)
	g.DELETE("/crops/:name/paragraphs", h.DeleteParagraph)
}

func (h *CropHandler) List(c echo.Context) error {
	crops, err := h.service.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	if crops == nil {
		crops = []model.Crop{}
	}
	return c.JSON(http.StatusOK, crops)
}

// Get returns one crop with the paragraphs of the requested language.
func (h *CropHandler) Get(c echo.Context) error {
	crop, err := h.service.Get(c.Request().Context(), c.Param("name"), c.QueryParam("language"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, crop)
}

func (h *CropHandler) Create(c echo.Context) error {
	var crop model.Crop
	if err := c.Bind(&crop); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	if err := h.service.Add(c.Request().Context(), crop); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, okResponse{OK: true})
}

// Update renames a crop and/or replaces its image. The path carries the
// current name; the body carries the new values.
func (h *CropHandler) Update(c echo.Context) error {
	var req updateCropRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	if err := h.service.Update(c.Request().Context(), c.Param("name"), req.Name, req.ImageURL); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}

func (h *CropHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("name"), confirmQuery(c)); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}

func (h *CropHandler) AddParagraph(c echo.Context) error {
	var para model.CropParagraph
	if err := c.Bind(&para); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	if err := h.service.AddParagraph(c.Request().Context(), c.Param("name"), para); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, okResponse{OK: true})
}

// UpdateParagraph edits a paragraph. The original title identifies the
// record; the new title travels separately so renames work.
func (h *CropHandler) UpdateParagraph(c echo.Context) error {
	var req updateParagraphRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	err := h.service.UpdateParagraph(
		c.Request().Context(),
		c.Param("name"),
		req.LanguageCode,
		req.OriginalTitle,
		req.Title,
		req.Content,
	)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}

func (h *CropHandler) DeleteParagraph(c echo.Context) error {
	var req deleteParagraphRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	err := h.service.DeleteParagraph(
		c.Request().Context(),
		c.Param("name"),
		req.LanguageCode,
		req.Title,
		confirmQuery(c),
	)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}
