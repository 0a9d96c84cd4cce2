package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kisanbandhu/console/internal/model"
	"kisanbandhu/console/internal/service"
)

type NotificationHandler struct {
	service service.NotificationService
}

type sendNotificationRequest struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Language string `json:"language"`
}

func NewNotificationHandler(service service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

func (h *NotificationHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/notifications/send", h.Send)
	g.GET("/notifications/history", h.History)
	g.DELETE("/notifications/history", h.ClearHistory)
}

// Send broadcasts a push notification to every device registered for the
// language.
func (h *NotificationHandler) Send(c echo.Context) error {
	var req sendNotificationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	outcome, err := h.service.Send(c.Request().Context(), req.Title, req.Message, req.Language)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, outcome)
}

func (h *NotificationHandler) History(c echo.Context) error {
	records, err := h.service.History(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	if records == nil {
		records = []model.NotificationRecord{}
	}
	return c.JSON(http.StatusOK, records)
}

func (h *NotificationHandler) ClearHistory(c echo.Context) error {
	if err := h.service.ClearHistory(c.Request().Context()); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}
