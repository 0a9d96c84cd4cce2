package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"kisanbandhu/console/internal/service"
)

// AuthCookieName is the session cookie. The middleware reads it; a Bearer
// header works too for scripted clients.
const AuthCookieName = "kb_session"

const authCookieMaxAge = 24 * time.Hour

type AuthHandler struct {
	service service.AuthService
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type statusResponse struct {
	Authenticated bool `json:"authenticated"`
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterPublicRoutes registers the routes reachable without a session.
func (h *AuthHandler) RegisterPublicRoutes(g *echo.Group) {
	g.POST("/auth/login", h.Login)
	g.GET("/auth/status", h.Status)
}

func (h *AuthHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/auth/me", h.Me)
	g.POST("/auth/logout", h.Logout)
}

// Login checks the credential and starts a session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	resp, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return writeServiceError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     AuthCookieName,
		Value:    resp.Token,
		Path:     "/",
		MaxAge:   int(authCookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, resp)
}

// Status reports whether the request carries a valid session. Always 200;
// the login page polls this before deciding what to render.
func (h *AuthHandler) Status(c echo.Context) error {
	token := SessionToken(c)
	if token == "" {
		return c.JSON(http.StatusOK, statusResponse{Authenticated: false})
	}
	ok, err := h.service.ValidateToken(c.Request().Context(), token)
	if err != nil {
		ok = false
	}
	return c.JSON(http.StatusOK, statusResponse{Authenticated: ok})
}

func (h *AuthHandler) Me(c echo.Context) error {
	user, err := h.service.CurrentUser(c.Request().Context(), SessionToken(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// Logout clears the session cookie. The token itself stays valid until it
// expires; the console trusts the cookie as the session boundary.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, okResponse{OK: true})
}

// SessionToken extracts the session token from the cookie or, failing
// that, a Bearer Authorization header.
func SessionToken(c echo.Context) string {
	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	auth := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
