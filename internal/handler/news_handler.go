package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kisanbandhu/console/internal/model"
	"kisanbandhu/console/internal/service"
)

type NewsHandler struct {
	service service.NewsService
}

type listNewsRequest struct {
	LanguageCode string `json:"languageCode"`
	Page         int    `json:"page"`
	Limit        int    `json:"limit"`
}

type importNewsRequest struct {
	FeedURL string `json:"feed_url"`
}

type extractArticleRequest struct {
	URL string `json:"url"`
}

func NewNewsHandler(service service.NewsService) *NewsHandler {
	return &NewsHandler{service: service}
}

func (h *NewsHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/news/list", h.List)
	g.POST("/news", h.Create)
	g.PUT("/news/:id", h.Update)
	g.DELETE("/news/:id", h.Delete)
	g.POST("/news/import", h.Import)
	g.POST("/news/extract", h.Extract)
}

func (h *NewsHandler) List(c echo.Context) error {
	var req listNewsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	page, err := h.service.List(c.Request().Context(), req.LanguageCode, req.Page, req.Limit)
	if err != nil {
		return writeServiceError(c, err)
	}
	if page.Items == nil {
		page.Items = []model.NewsItem{}
	}
	return c.JSON(http.StatusOK, page)
}

func (h *NewsHandler) Create(c echo.Context) error {
	var item model.NewsItem
	if err := c.Bind(&item); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	created, err := h.service.Add(c.Request().Context(), item)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *NewsHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid news id"})
	}
	var item model.NewsItem
	if err := c.Bind(&item); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	item.ID = id
	if err := h.service.Update(c.Request().Context(), item); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}

func (h *NewsHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid news id"})
	}
	if err := h.service.Delete(c.Request().Context(), id, confirmQuery(c)); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}

// Import fetches a feed and returns its items as unsaved drafts.
func (h *NewsHandler) Import(c echo.Context) error {
	var req importNewsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	drafts, err := h.service.ImportFromFeed(c.Request().Context(), req.FeedURL)
	if err != nil {
		return writeServiceError(c, err)
	}
	if drafts == nil {
		drafts = []service.NewsDraft{}
	}
	return c.JSON(http.StatusOK, drafts)
}

// Extract pulls the readable body out of a web page to prefill the editor.
func (h *NewsHandler) Extract(c echo.Context) error {
	var req extractArticleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	article, err := h.service.FetchArticle(c.Request().Context(), req.URL)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, article)
}
