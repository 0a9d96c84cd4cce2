package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"kisanbandhu/console/internal/model"
	"kisanbandhu/console/internal/network"
	"kisanbandhu/console/internal/service"
	"kisanbandhu/console/internal/upstream"
	"kisanbandhu/console/internal/upstream/mock"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Krishi Samachar</title>
    <link>https://example.org</link>
    <item>
      <title>Monsoon arrives &amp; sowing begins</title>
      <link>https://example.org/monsoon</link>
      <description>&lt;p&gt;The monsoon reached &lt;b&gt;Kerala&lt;/b&gt; this week.&lt;/p&gt;</description>
      <enclosure url="https://example.org/rain.jpg" type="image/jpeg" length="1000"/>
      <pubDate>Mon, 01 Jun 2026 08:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Second story</title>
      <description>Plain text body.</description>
    </item>
  </channel>
</rss>`

func newNewsService(t *testing.T, upstreamClient upstream.Client, httpClient *http.Client) service.NewsService {
	t.Helper()
	return service.NewNewsService(upstreamClient, network.NewClientFactoryForTest(httpClient))
}

func TestNewsService_List_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upstreamMock := mock.NewMockClient(ctrl)
	svc := newNewsService(t, upstreamMock, http.DefaultClient)
	ctx := context.Background()

	upstreamMock.EXPECT().
		News(ctx, "en", 1, 25).
		Return(upstream.NewsPage{Page: 1, Limit: 25, Total: 0}, nil)

	_, err := svc.List(ctx, "", 0, 0)
	require.NoError(t, err)
}

func TestNewsService_Add_RequiresTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newNewsService(t, mock.NewMockClient(ctrl), http.DefaultClient)

	_, err := svc.Add(context.Background(), model.NewsItem{
		Content:      "Body",
		LanguageCode: "en",
	})
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestNewsService_Add_DefaultsDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upstreamMock := mock.NewMockClient(ctrl)
	svc := newNewsService(t, upstreamMock, http.DefaultClient)
	ctx := context.Background()

	upstreamMock.EXPECT().
		AddNews(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, item model.NewsItem) (model.NewsItem, error) {
			require.NotEmpty(t, item.Date)
			return item, nil
		})

	_, err := svc.Add(ctx, model.NewsItem{
		Title:        "Headline",
		Content:      "Body",
		LanguageCode: "en",
	})
	require.NoError(t, err)
}

func TestNewsService_Delete_RequiresConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newNewsService(t, mock.NewMockClient(ctrl), http.DefaultClient)

	err := svc.Delete(context.Background(), 9, false)
	require.ErrorIs(t, err, service.ErrConfirmRequired)
}

func TestNewsService_ImportFromFeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	svc := newNewsService(t, mock.NewMockClient(ctrl), server.Client())

	drafts, err := svc.ImportFromFeed(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	first := drafts[0]
	require.Equal(t, "Monsoon arrives & sowing begins", first.Title)
	require.Equal(t, "The monsoon reached Kerala this week.", first.Content)
	require.Equal(t, "Krishi Samachar", first.Source)
	require.Equal(t, "https://example.org/monsoon", first.Link)
	require.Equal(t, "https://example.org/rain.jpg", first.ImageURL)
	require.Equal(t, "2026-06-01", first.Date)

	second := drafts[1]
	require.Equal(t, "Second story", second.Title)
	require.Equal(t, "Plain text body.", second.Content)
	require.Empty(t, second.ImageURL)
}

func TestNewsService_ImportFromFeed_BadURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newNewsService(t, mock.NewMockClient(ctrl), http.DefaultClient)

	_, err := svc.ImportFromFeed(context.Background(), "not-a-url")
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestNewsService_ImportFromFeed_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := newNewsService(t, mock.NewMockClient(ctrl), server.Client())

	_, err := svc.ImportFromFeed(context.Background(), server.URL)
	require.ErrorIs(t, err, service.ErrFetchFailed)
}

func TestNewsService_FetchArticle_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	svc := newNewsService(t, mock.NewMockClient(ctrl), server.Client())

	_, err := svc.FetchArticle(context.Background(), server.URL+"/gone")
	require.ErrorIs(t, err, service.ErrFetchFailed)
}

func TestNewsService_FetchArticle_BadURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newNewsService(t, mock.NewMockClient(ctrl), http.DefaultClient)

	_, err := svc.FetchArticle(context.Background(), "ftp://example.org/file")
	require.ErrorIs(t, err, service.ErrInvalid)
}
