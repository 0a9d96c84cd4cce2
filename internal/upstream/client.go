// Package upstream talks to the Kisan Bandhu platform backend, which owns all
// authoritative scheme, crop, news and push-notification state. The console
// never stores this content; every operation here is a single forwarded HTTP
// call with no retries.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"kisanbandhu/console/internal/model"
	"kisanbandhu/console/internal/network"
)

// Client is the console's view of the platform backend.
type Client interface {
	SchemesByLanguage(ctx context.Context, languageCode string) ([]model.Scheme, error)
	AddScheme(ctx context.Context, scheme model.Scheme) error
	UpdateScheme(ctx context.Context, scheme model.Scheme) error
	DeleteScheme(ctx context.Context, id int64) error
	SchemeTranslations(ctx context.Context, schemeID int64) ([]model.SchemeTranslation, error)
	UpdateSchemeTranslation(ctx context.Context, schemeID int64, tr model.SchemeTranslation) error

	Crops(ctx context.Context) ([]model.Crop, error)
	AddCrop(ctx context.Context, crop model.Crop) error
	UpdateCrop(ctx context.Context, oldName, newName, imageURL string) error
	DeleteCrop(ctx context.Context, name string) error
	CropByName(ctx context.Context, name, languageCode string) (model.Crop, error)
	AddCropParagraph(ctx context.Context, cropName string, para model.CropParagraph) error
	UpdateCropParagraph(ctx context.Context, cropName, languageCode, originalTitle, newTitle, newContent string) error
	DeleteCropParagraph(ctx context.Context, cropName, languageCode, title string) error

	News(ctx context.Context, languageCode string, page, limit int) (NewsPage, error)
	AddNews(ctx context.Context, item model.NewsItem) (model.NewsItem, error)
	UpdateNews(ctx context.Context, item model.NewsItem) error
	DeleteNews(ctx context.Context, id int64) error

	SendNotification(ctx context.Context, title, message, languageCode string) (SendResult, error)
}

// NewsPage is one page of news items with the backend's pagination echo.
type NewsPage struct {
	Items []model.NewsItem `json:"news"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
	Total int              `json:"total"`
}

// SendResult carries the per-send delivery counts of a broadcast.
type SendResult struct {
	SuccessCount int `json:"successCount"`
	FailureCount int `json:"failureCount"`
}

// Error is a non-2xx backend response. The backend's message string passes
// through verbatim so the admin sees exactly what the server said.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("upstream: %d: %s", e.Status, e.Message)
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a platform backend client. Requests carry no client-side
// timeout; cancellation is the caller's context.
func New(baseURL string, clients *network.ClientFactory) Client {
	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: clients.NewHTTPClient(0),
	}
}

func (c *client) SchemesByLanguage(ctx context.Context, languageCode string) ([]model.Scheme, error) {
	var out struct {
		Schemes []model.Scheme `json:"schemes"`
	}
	req := map[string]string{"language_code": languageCode}
	if err := c.postJSON(ctx, "/api/v1/schemes/get", req, &out); err != nil {
		return nil, err
	}
	return out.Schemes, nil
}

func (c *client) AddScheme(ctx context.Context, scheme model.Scheme) error {
	return c.postJSON(ctx, "/api/v1/schemes/add", scheme, nil)
}

func (c *client) UpdateScheme(ctx context.Context, scheme model.Scheme) error {
	return c.postJSON(ctx, "/api/v1/schemes/updateScheme", scheme, nil)
}

func (c *client) DeleteScheme(ctx context.Context, id int64) error {
	return c.postJSON(ctx, "/api/v1/schemes/delete", map[string]int64{"id": id}, nil)
}

func (c *client) SchemeTranslations(ctx context.Context, schemeID int64) ([]model.SchemeTranslation, error) {
	var out struct {
		Schemes []model.SchemeTranslation `json:"schemes"`
	}
	req := map[string]int64{"schemeId": schemeID}
	if err := c.postJSON(ctx, "/api/v1/schemes/getTranslationSchemes", req, &out); err != nil {
		return nil, err
	}
	return out.Schemes, nil
}

func (c *client) UpdateSchemeTranslation(ctx context.Context, schemeID int64, tr model.SchemeTranslation) error {
	req := map[string]any{
		"scheme_id":           schemeID,
		"language_code":       tr.LanguageCode,
		"name":                tr.Name,
		"description":         tr.Description,
		"benefits":            tr.Benefits,
		"eligibility":         tr.Eligibility,
		"application_process": tr.ApplicationProcess,
	}
	return c.postJSON(ctx, "/api/v1/schemes/updateTranslation", req, nil)
}

func (c *client) Crops(ctx context.Context) ([]model.Crop, error) {
	var out struct {
		Crops []model.Crop `json:"crops"`
	}
	if err := c.getJSON(ctx, "/api/v1/crop/all", &out); err != nil {
		return nil, err
	}
	return out.Crops, nil
}

func (c *client) AddCrop(ctx context.Context, crop model.Crop) error {
	return c.postJSON(ctx, "/api/v1/crop/add", crop, nil)
}

func (c *client) UpdateCrop(ctx context.Context, oldName, newName, imageURL string) error {
	req := map[string]string{
		"old_name":  oldName,
		"new_name":  newName,
		"image_url": imageURL,
	}
	return c.postJSON(ctx, "/api/v1/crop/update", req, nil)
}

func (c *client) DeleteCrop(ctx context.Context, name string) error {
	return c.postJSON(ctx, "/api/v1/crop/delete", map[string]string{"name": name}, nil)
}

func (c *client) CropByName(ctx context.Context, name, languageCode string) (model.Crop, error) {
	var out struct {
		Crop model.Crop `json:"crop"`
	}
	req := map[string]string{"name": name, "language_code": languageCode}
	if err := c.postJSON(ctx, "/api/v1/crop/get", req, &out); err != nil {
		return model.Crop{}, err
	}
	return out.Crop, nil
}

func (c *client) AddCropParagraph(ctx context.Context, cropName string, para model.CropParagraph) error {
	req := map[string]string{
		"name":              cropName,
		"language_code":     para.LanguageCode,
		"paragraph_title":   para.Title,
		"paragraph_content": para.Content,
	}
	return c.postJSON(ctx, "/api/v1/crop/add_para", req, nil)
}

func (c *client) UpdateCropParagraph(ctx context.Context, cropName, languageCode, originalTitle, newTitle, newContent string) error {
	// The original title locates the server-side record; the edited title
	// travels separately.
	req := map[string]string{
		"name":            cropName,
		"language_code":   languageCode,
		"paragraph_title": originalTitle,
		"new_title":       newTitle,
		"new_content":     newContent,
	}
	return c.postJSON(ctx, "/api/v1/crop/update_para", req, nil)
}

func (c *client) DeleteCropParagraph(ctx context.Context, cropName, languageCode, title string) error {
	req := map[string]string{
		"name":            cropName,
		"language_code":   languageCode,
		"paragraph_title": title,
	}
	return c.postJSON(ctx, "/api/v1/crop/delete_para", req, nil)
}

func (c *client) News(ctx context.Context, languageCode string, page, limit int) (NewsPage, error) {
	var out NewsPage
	req := map[string]any{
		"language_code": languageCode,
		"page":          page,
		"limit":         limit,
	}
	if err := c.postJSON(ctx, "/api/v1/news/get", req, &out); err != nil {
		return NewsPage{}, err
	}
	return out, nil
}

func (c *client) AddNews(ctx context.Context, item model.NewsItem) (model.NewsItem, error) {
	var out struct {
		News model.NewsItem `json:"news"`
	}
	if err := c.postJSON(ctx, "/api/v1/news/add", item, &out); err != nil {
		return model.NewsItem{}, err
	}
	return out.News, nil
}

func (c *client) UpdateNews(ctx context.Context, item model.NewsItem) error {
	return c.postJSON(ctx, "/api/v1/news/update", item, nil)
}

func (c *client) DeleteNews(ctx context.Context, id int64) error {
	return c.postJSON(ctx, "/api/v1/news/delete", map[string]int64{"id": id}, nil)
}

func (c *client) SendNotification(ctx context.Context, title, message, languageCode string) (SendResult, error) {
	var out struct {
		Responses []SendResult `json:"responses"`
	}
	req := map[string]string{
		"title":    title,
		"message":  message,
		"language": languageCode,
	}
	if err := c.postJSON(ctx, "/api/v1/pushNotification/sendall", req, &out); err != nil {
		return SendResult{}, err
	}
	if len(out.Responses) == 0 {
		return SendResult{}, &Error{Status: http.StatusBadGateway, Message: "empty notification response"}
	}
	return out.Responses[0], nil
}

func (c *client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

func (c *client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Connection failures surface as a gateway error so the console
		// can tell "backend down" apart from its own faults.
		return &Error{Status: http.StatusBadGateway, Message: "platform backend unreachable"}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read upstream response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{Status: resp.StatusCode, Message: errorMessage(data)}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode upstream response: %w", err)
	}
	return nil
}

// errorMessage extracts the backend's error string, falling back to a generic
// message when the body carries none.
func errorMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return "upstream request failed"
}
