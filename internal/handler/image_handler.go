package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kisanbandhu/console/internal/service"
)

type ImageHandler struct {
	service service.ImageService
}

func NewImageHandler(service service.ImageService) *ImageHandler {
	return &ImageHandler{service: service}
}

func (h *ImageHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/images/upload", h.Upload)
	g.GET("/images/upload/:id", h.Progress)
}

// Upload streams a multipart image file to the hosting provider and
// returns the finished upload state with the hosted URL.
func (h *ImageHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "an image file is required"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "could not read the uploaded file"})
	}
	defer src.Close()

	upload, err := h.service.Upload(
		c.Request().Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		src,
		fileHeader.Size,
	)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, upload)
}

// Progress returns the state of a running or finished upload.
func (h *ImageHandler) Progress(c echo.Context) error {
	upload := h.service.Get(c.Param("id"))
	if upload == nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "unknown upload"})
	}
	return c.JSON(http.StatusOK, upload)
}
