package service

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	readability "codeberg.org/readeck/go-readability/v2"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"kisanbandhu/console/internal/config"
	"kisanbandhu/console/internal/language"
	"kisanbandhu/console/internal/model"
	"kisanbandhu/console/internal/network"
	"kisanbandhu/console/internal/upstream"
)

const (
	defaultNewsPage  = 1
	defaultNewsLimit = 25
)

// NewsDraft is an unsaved news item produced by a feed import. Drafts are
// returned to the editor for review; nothing reaches the platform backend
// until the admin saves each one.
type NewsDraft struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Source   string `json:"source"`
	Link     string `json:"link"`
	ImageURL string `json:"image_url"`
	Date     string `json:"date"`
}

// Article is readable text extracted from a web page, used to prefill the
// news editor.
type Article struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NewsService manages news items on the platform backend and provides the
// RSS import and article extraction helpers.
type NewsService interface {
	List(ctx context.Context, languageCode string, page, limit int) (upstream.NewsPage, error)
	Add(ctx context.Context, item model.NewsItem) (model.NewsItem, error)
	Update(ctx context.Context, item model.NewsItem) error
	Delete(ctx context.Context, id int64, confirm bool) error

	// ImportFromFeed fetches an RSS/Atom feed and returns its items as
	// drafts, summaries sanitized to plain text.
	ImportFromFeed(ctx context.Context, feedURL string) ([]NewsDraft, error)
	// FetchArticle extracts the readable body of a web page.
	FetchArticle(ctx context.Context, articleURL string) (Article, error)
}

type newsService struct {
	upstream   upstream.Client
	httpClient *http.Client
	stripper   *bluemonday.Policy
	sanitizer  *bluemonday.Policy
}

// NewNewsService creates a new news service.
func NewNewsService(client upstream.Client, clients *network.ClientFactory) NewsService {
	// The UGC policy keeps article structure for readability parsing; the
	// strict policy reduces feed summaries to plain text for the editor.
	p := bluemonday.UGCPolicy()
	p.AllowElements("article", "section", "header", "footer", "nav", "aside", "main", "figure", "figcaption")
	p.AllowAttrs("id", "class", "lang", "dir").Globally()

	return &newsService{
		upstream:   client,
		httpClient: clients.NewHTTPClient(30 * time.Second),
		stripper:   bluemonday.StrictPolicy(),
		sanitizer:  p,
	}
}

func (s *newsService) List(ctx context.Context, languageCode string, page, limit int) (upstream.NewsPage, error) {
	languageCode = normalizeLanguage(languageCode)
	if languageCode == "" {
		languageCode = language.DefaultCode
	}
	if !language.IsValid(languageCode) {
		return upstream.NewsPage{}, invalidf("language_code", "unknown language code")
	}
	if page < 1 {
		page = defaultNewsPage
	}
	if limit < 1 {
		limit = defaultNewsLimit
	}
	return s.upstream.News(ctx, languageCode, page, limit)
}

func (s *newsService) Add(ctx context.Context, item model.NewsItem) (model.NewsItem, error) {
	cleaned, err := validateNews(item)
	if err != nil {
		return model.NewsItem{}, err
	}
	return s.upstream.AddNews(ctx, cleaned)
}

func (s *newsService) Update(ctx context.Context, item model.NewsItem) error {
	if item.ID == 0 {
		return invalidf("id", "news id is required")
	}
	cleaned, err := validateNews(item)
	if err != nil {
		return err
	}
	return s.upstream.UpdateNews(ctx, cleaned)
}

func (s *newsService) Delete(ctx context.Context, id int64, confirm bool) error {
	if id == 0 {
		return invalidf("id", "news id is required")
	}
	if !confirm {
		return ErrConfirmRequired
	}
	return s.upstream.DeleteNews(ctx, id)
}

func (s *newsService) ImportFromFeed(ctx context.Context, feedURL string) ([]NewsDraft, error) {
	feedURL = strings.TrimSpace(feedURL)
	if !isValidURL(feedURL) {
		return nil, invalidf("feed_url", "a valid feed URL is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, invalidf("feed_url", "a valid feed URL is required")
	}
	req.Header.Set("User-Agent", config.ConsoleUserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch feed: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("%w: fetch feed: HTTP %d", ErrFetchFailed, resp.StatusCode)
	}

	parser := gofeed.NewParser()
	parsed, err := parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse feed: %v", ErrFetchFailed, err)
	}

	source := strings.TrimSpace(parsed.Title)
	drafts := make([]NewsDraft, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		drafts = append(drafts, s.itemToDraft(source, item))
	}
	return drafts, nil
}

func (s *newsService) itemToDraft(source string, item *gofeed.Item) NewsDraft {
	content := item.Content
	if content == "" {
		content = item.Description
	}

	draft := NewsDraft{
		Title:   strings.TrimSpace(html.UnescapeString(s.stripper.Sanitize(item.Title))),
		Content: strings.TrimSpace(html.UnescapeString(s.stripper.Sanitize(content))),
		Source:  source,
		Link:    strings.TrimSpace(item.Link),
	}

	if item.Image != nil {
		draft.ImageURL = strings.TrimSpace(item.Image.URL)
	}
	if draft.ImageURL == "" {
		for _, enc := range item.Enclosures {
			if strings.HasPrefix(enc.Type, "image/") {
				draft.ImageURL = strings.TrimSpace(enc.URL)
				break
			}
		}
	}

	if item.PublishedParsed != nil {
		draft.Date = item.PublishedParsed.UTC().Format("2006-01-02")
	} else if item.UpdatedParsed != nil {
		draft.Date = item.UpdatedParsed.UTC().Format("2006-01-02")
	}
	return draft
}

func (s *newsService) FetchArticle(ctx context.Context, articleURL string) (Article, error) {
	articleURL = strings.TrimSpace(articleURL)
	if !isValidURL(articleURL) {
		return Article{}, invalidf("url", "a valid article URL is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, articleURL, nil)
	if err != nil {
		return Article{}, invalidf("url", "a valid article URL is required")
	}
	req.Header.Set("User-Agent", config.ConsoleUserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return Article{}, fmt.Errorf("%w: fetch article: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Article{}, fmt.Errorf("%w: fetch article: HTTP %d", ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Article{}, fmt.Errorf("%w: read article: %v", ErrFetchFailed, err)
	}

	// Scripts and trackers confuse the readability parser; strip them
	// before handing the document over.
	sanitized := s.sanitizer.Sanitize(string(body))

	parsedURL, err := url.Parse(articleURL)
	if err != nil {
		return Article{}, invalidf("url", "a valid article URL is required")
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(sanitized), parsedURL)
	if err != nil {
		return Article{}, fmt.Errorf("%w: extract article: %v", ErrFetchFailed, err)
	}

	var buf bytes.Buffer
	if err := article.RenderHTML(&buf); err != nil {
		return Article{}, fmt.Errorf("%w: render article: %v", ErrFetchFailed, err)
	}

	content := strings.TrimSpace(html.UnescapeString(s.stripper.Sanitize(buf.String())))
	if content == "" {
		return Article{}, invalidf("url", "no readable content found")
	}

	return Article{
		Title:   pageTitle(string(body)),
		Content: content,
	}, nil
}

var titleTagRe = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)

func pageTitle(doc string) string {
	m := titleTagRe.FindStringSubmatch(doc)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(m[1]))
}

func validateNews(item model.NewsItem) (model.NewsItem, error) {
	item.Title = strings.TrimSpace(item.Title)
	item.Content = strings.TrimSpace(item.Content)
	item.Source = strings.TrimSpace(item.Source)
	item.LanguageCode = normalizeLanguage(item.LanguageCode)
	item.ImageURL = strings.TrimSpace(item.ImageURL)
	item.VideoURL = strings.TrimSpace(item.VideoURL)
	item.Date = strings.TrimSpace(item.Date)

	if item.Title == "" {
		return item, invalidf("title", "title is required")
	}
	if item.Content == "" {
		return item, invalidf("content", "content is required")
	}
	if !language.IsValid(item.LanguageCode) {
		return item, invalidf("language_code", "unknown language code")
	}
	if item.Date == "" {
		item.Date = time.Now().UTC().Format("2006-01-02")
	}
	return item, nil
}

func isValidURL(value string) bool {
	parsed, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}
	return parsed.Scheme == "http" || parsed.Scheme == "https"
}
