package http_test

import (
	"bytes"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"kisanbandhu/console/internal/handler"
	transport "kisanbandhu/console/internal/http"
	"kisanbandhu/console/internal/network"
	"kisanbandhu/console/internal/repository"
	"kisanbandhu/console/internal/repository/testutil"
	"kisanbandhu/console/internal/service"
	"kisanbandhu/console/internal/service/ai"
	"kisanbandhu/console/internal/upstream/mock"
)

func newTestRouter(t *testing.T, ctrl *gomock.Controller) *httptest.Server {
	t.Helper()

	db := testutil.NewTestDB(t)
	settingsRepo := repository.NewSettingsRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	upstreamMock := mock.NewMockClient(ctrl)
	clients := network.NewClientFactoryForTest(nethttp.DefaultClient)

	authService := service.NewAuthService(settingsRepo, "admin", "secret")

	e := transport.NewRouter(transport.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Language:     handler.NewLanguageHandler(),
		Scheme:       handler.NewSchemeHandler(service.NewSchemeService(upstreamMock)),
		Crop:         handler.NewCropHandler(service.NewCropService(upstreamMock)),
		News:         handler.NewNewsHandler(service.NewNewsService(upstreamMock, clients)),
		Notification: handler.NewNotificationHandler(service.NewNotificationService(upstreamMock, historyRepo)),
		Image:        handler.NewImageHandler(service.NewImageService(nil)),
		Translate:    handler.NewTranslateHandler(service.NewTranslateService(nil, nil)),
		Dashboard:    handler.NewDashboardHandler(service.NewDashboardService(upstreamMock, historyRepo)),
	}, authService, "")

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)
	return server
}

func login(t *testing.T, server *httptest.Server) []*nethttp.Cookie {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"username": "admin", "password": "secret"})
	resp, err := nethttp.Post(server.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	return resp.Cookies()
}

func TestRouter_ProtectedAPIWithoutSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := newTestRouter(t, ctrl)

	resp, err := nethttp.Get(server.URL + "/api/crops")
	require.NoError(t, err)
	defer resp.Body.Close()

	// API routes answer with JSON 401, never a redirect.
	require.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_GuardedPageRedirectsToLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := newTestRouter(t, ctrl)

	client := &nethttp.Client{
		CheckRedirect: func(*nethttp.Request, []*nethttp.Request) error {
			return nethttp.ErrUseLastResponse
		},
	}

	pages := []string{
		"/dashboard",
		"/schemes",
		"/schemes/12",
		"/addSchemes",
		"/edit-scheme/12",
		"/edit-translation/12",
		"/crops",
		"/addCrop",
		"/updateCrop",
		"/editCropPara/wheat",
		"/news",
		"/notifications",
	}
	for _, page := range pages {
		resp, err := client.Get(server.URL + page)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, nethttp.StatusFound, resp.StatusCode, "page %s", page)
		require.Equal(t, "/", resp.Header.Get("Location"), "page %s", page)
	}
}

func TestRouter_LoginSetsSessionCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := newTestRouter(t, ctrl)

	cookies := login(t, server)

	var found bool
	for _, c := range cookies {
		if c.Name == handler.AuthCookieName && c.Value != "" {
			found = true
			require.True(t, c.HttpOnly)
		}
	}
	require.True(t, found, "session cookie not set")
}

func TestRouter_ProtectedAPIWithSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := newTestRouter(t, ctrl)

	cookies := login(t, server)

	req, err := nethttp.NewRequest(nethttp.MethodGet, server.URL+"/api/auth/me", nil)
	require.NoError(t, err)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := nethttp.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var user struct {
		Username string `json:"username"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	require.Equal(t, "admin", user.Username)
}

func TestRouter_LoginWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := newTestRouter(t, ctrl)

	body, _ := json.Marshal(map[string]string{"username": "admin", "password": "nope"})
	resp, err := nethttp.Post(server.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_StatusPublic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := newTestRouter(t, ctrl)

	resp, err := nethttp.Get(server.URL + "/api/auth/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var status struct {
		Authenticated bool `json:"authenticated"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	require.False(t, status.Authenticated)
}

func TestRouter_LanguagesWithSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := newTestRouter(t, ctrl)

	cookies := login(t, server)

	req, err := nethttp.NewRequest(nethttp.MethodGet, server.URL+"/api/languages", nil)
	require.NoError(t, err)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := nethttp.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var languages []struct {
		Code string `json:"code"`
		Name string `json:"name"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&languages))
	require.NotEmpty(t, languages)
	require.Equal(t, "en", languages[0].Code)
}

func TestRouter_BearerHeaderAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := newTestRouter(t, ctrl)

	body, _ := json.Marshal(map[string]string{"username": "admin", "password": "secret"})
	resp, err := nethttp.Post(server.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	var auth struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&auth))
	resp.Body.Close()
	require.NotEmpty(t, auth.Token)

	req, err := nethttp.NewRequest(nethttp.MethodGet, server.URL+"/api/auth/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+auth.Token)

	resp, err = nethttp.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
}

func TestRouter_TranslateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := newTestRouter(t, ctrl)

	cookies := login(t, server)

	req, err := nethttp.NewRequest(nethttp.MethodGet, server.URL+"/api/translate/status", nil)
	require.NoError(t, err)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := nethttp.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var status struct {
		Enabled   bool `json:"enabled"`
		RateLimit int  `json:"rate_limit"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	require.False(t, status.Enabled)
	require.Equal(t, ai.DefaultRateLimit, status.RateLimit)
}

func TestRouter_TranslateCheckDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := newTestRouter(t, ctrl)

	cookies := login(t, server)

	req, err := nethttp.NewRequest(nethttp.MethodPost, server.URL+"/api/translate/check", nil)
	require.NoError(t, err)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := nethttp.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, nethttp.StatusServiceUnavailable, resp.StatusCode)
}
