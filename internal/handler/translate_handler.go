package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kisanbandhu/console/internal/service"
)

type TranslateHandler struct {
	service service.TranslateService
}

type translateRequest struct {
	// Exactly one of Text or Items is expected.
	Text           string   `json:"text,omitempty"`
	Items          []string `json:"items,omitempty"`
	ContentType    string   `json:"content_type"`
	TargetLanguage string   `json:"target_language"`
}

type translateResponse struct {
	Text  string   `json:"text,omitempty"`
	Items []string `json:"items,omitempty"`
}

type translateStatusResponse struct {
	Enabled   bool   `json:"enabled"`
	Provider  string `json:"provider,omitempty"`
	RateLimit int    `json:"rate_limit"`
}

type translateCheckResponse struct {
	Provider string `json:"provider"`
	Reply    string `json:"reply"`
}

func NewTranslateHandler(service service.TranslateService) *TranslateHandler {
	return &TranslateHandler{service: service}
}

func (h *TranslateHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/translate/status", h.Status)
	g.POST("/translate/check", h.Check)
	g.POST("/translate", h.Translate)
}

// Status tells the editor whether to show translation assistant buttons.
func (h *TranslateHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, translateStatusResponse{
		Enabled:   h.service.Enabled(),
		Provider:  h.service.Provider(),
		RateLimit: h.service.RateLimit(),
	})
}

// Check verifies the assistant can actually reach its provider, so a bad
// API key shows up here instead of on the first real translation.
func (h *TranslateHandler) Check(c echo.Context) error {
	reply, err := h.service.Check(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, translateCheckResponse{
		Provider: h.service.Provider(),
		Reply:    reply,
	})
}

// Translate drafts a translation of a text or an item list. The result is
// a suggestion for the form, never saved directly.
func (h *TranslateHandler) Translate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	ctx := c.Request().Context()
	if len(req.Items) > 0 {
		items, err := h.service.TranslateList(ctx, req.Items, req.ContentType, req.TargetLanguage)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(http.StatusOK, translateResponse{Items: items})
	}

	text, err := h.service.TranslateText(ctx, req.Text, req.ContentType, req.TargetLanguage)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, translateResponse{Text: text})
}
