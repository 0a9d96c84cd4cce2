package upstream_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"kisanbandhu/console/internal/model"
	"kisanbandhu/console/internal/network"
	"kisanbandhu/console/internal/upstream"
)

func newClient(t *testing.T, handler http.Handler) (upstream.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return upstream.New(srv.URL, network.NewClientFactory("")), srv
}

func TestSchemesByLanguage(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/schemes/get", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "hi", req["language_code"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"schemes": []map[string]any{{
				"id":             7,
				"type":           "subsidy",
				"state_or_org":   "Central",
				"status":         "ACTIVE",
				"funding_amount": 5000,
				"name":           "PM-Kisan",
			}},
		})
	}))

	schemes, err := client.SchemesByLanguage(context.Background(), "hi")
	require.NoError(t, err)
	require.Len(t, schemes, 1)
	require.Equal(t, int64(7), schemes[0].ID)
	require.Equal(t, model.Amount(5000), schemes[0].FundingAmount)
	require.Equal(t, "PM-Kisan", schemes[0].Name)
}

func TestDeleteScheme_SendsID(t *testing.T) {
	var got map[string]int64
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/schemes/delete", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, client.DeleteScheme(context.Background(), 42))
	require.Equal(t, int64(42), got["id"])
}

func TestUpdateCrop_Payload(t *testing.T) {
	var got map[string]string
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/crop/update", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))

	err := client.UpdateCrop(context.Background(), "Wheat", "Winter Wheat", "https://img.example/wheat.png")
	require.NoError(t, err)
	require.Equal(t, "Wheat", got["old_name"])
	require.Equal(t, "Winter Wheat", got["new_name"])
	require.Equal(t, "https://img.example/wheat.png", got["image_url"])
}

func TestUpdateCropParagraph_KeyedByOriginalTitle(t *testing.T) {
	var got map[string]string
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/crop/update_para", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))

	err := client.UpdateCropParagraph(context.Background(), "Wheat", "en", "Intro", "Introduction", "updated text")
	require.NoError(t, err)
	require.Equal(t, "Intro", got["paragraph_title"])
	require.Equal(t, "Introduction", got["new_title"])
	require.Equal(t, "updated text", got["new_content"])
}

func TestNews_Pagination(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/news/get", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, float64(2), req["page"])
		require.Equal(t, float64(25), req["limit"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"news":  []map[string]any{{"id": 1, "title": "Rain update", "language_code": "en"}},
			"page":  2,
			"limit": 25,
			"total": 51,
		})
	}))

	page, err := client.News(context.Background(), "en", 2, 25)
	require.NoError(t, err)
	require.Equal(t, 51, page.Total)
	require.Len(t, page.Items, 1)
	require.Equal(t, "Rain update", page.Items[0].Title)
}

func TestSendNotification_ReadsFirstResponse(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/pushNotification/sendall", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "mandi prices", req["title"])
		require.Equal(t, "hi", req["language"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"responses": []map[string]int{{"successCount": 120, "failureCount": 3}},
		})
	}))

	result, err := client.SendNotification(context.Background(), "mandi prices", "updated today", "hi")
	require.NoError(t, err)
	require.Equal(t, 120, result.SuccessCount)
	require.Equal(t, 3, result.FailureCount)
}

func TestErrorMessagePassesThroughVerbatim(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "crop already exists"})
	}))

	err := client.AddCrop(context.Background(), model.Crop{Name: "Wheat"})
	require.Error(t, err)

	var upErr *upstream.Error
	require.ErrorAs(t, err, &upErr)
	require.Equal(t, http.StatusConflict, upErr.Status)
	require.Equal(t, "crop already exists", upErr.Message)
}

func TestErrorMessageFallback(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	err := client.DeleteNews(context.Background(), 1)
	var upErr *upstream.Error
	require.ErrorAs(t, err, &upErr)
	require.Equal(t, "upstream request failed", upErr.Message)
}
