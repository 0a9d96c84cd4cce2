package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"kisanbandhu/console/internal/imagehost"
	"kisanbandhu/console/internal/service"
	"kisanbandhu/console/internal/upstream"
)

type errorResponse struct {
	Error string `json:"error"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

func writeServiceError(c echo.Context, err error) error {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: vErr.Message})
	}

	// Platform backend and image host errors pass through with the remote
	// message, so the admin sees what the server actually said.
	var upErr *upstream.Error
	if errors.As(err, &upErr) {
		return c.JSON(upstreamStatus(upErr.Status), errorResponse{Error: upErr.Message})
	}
	var imgErr *imagehost.Error
	if errors.As(err, &imgErr) {
		return c.JSON(upstreamStatus(imgErr.Status), errorResponse{Error: imgErr.Message})
	}

	switch {
	case errors.Is(err, service.ErrDuplicateLanguage):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "duplicate language code"})
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
	case errors.Is(err, service.ErrConfirmRequired):
		return c.JSON(http.StatusConflict, errorResponse{Error: "confirmation required"})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
	case errors.Is(err, service.ErrInvalidToken):
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
	case errors.Is(err, service.ErrFetchFailed):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "could not fetch the remote page"})
	case errors.Is(err, service.ErrAssistantDisabled):
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "translation assistant is not configured"})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// upstreamStatus keeps client-error statuses from the remote but folds
// everything else into 502; a remote 500 is not this server's 500.
func upstreamStatus(status int) int {
	if status >= 400 && status < 500 {
		return status
	}
	return http.StatusBadGateway
}

// Error returns a JSON error response with the given status and message.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}
