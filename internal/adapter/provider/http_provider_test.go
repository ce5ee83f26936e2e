package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viralizza/internal/config/configs"
	"viralizza/internal/core/domain"
	"viralizza/internal/core/port"
)

func newTestProvider(t *testing.T, status int, body string) *HTTPProvider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/views", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-API-Key"))
		assert.Equal(t, "tiktok", r.URL.Query().Get("platform"))
		assert.Equal(t, "https://www.tiktok.com/@a/video/1", r.URL.Query().Get("url"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewHTTPProvider(configs.Provider{
		BaseURL:       srv.URL + "/",
		APIKey:        "secret",
		Timeout:       time.Second,
		RatePerSecond: 100,
		Burst:         10,
	})
}

func TestHTTPProvider_FetchViews(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int64
	}{
		{"flat views", `{"views": 2400}`, 2400},
		{"snake case", `{"view_count": 1900}`, 1900},
		{"string count", `{"viewCount": "12,345"}`, 12345},
		{"play count", `{"playCount": 77}`, 77},
		{"youtube statistics", `{"items":[{"statistics":{"viewCount":"4521"}}]}`, 4521},
		{"wrapped", `{"data":{"stats":{"play_count":3000}}}`, 3000},
		{"abbreviated", `{"data":{"views":"1.2M"}}`, 1_200_000},
		{"abbreviated rounds down", `{"views":"1.2345K"}`, 1234},
		{"abbreviated lower case", `{"views":"15k"}`, 15_000},
		{"abbreviated billions", `{"views":"2.05B"}`, 2_050_000_000},
		{"float", `{"views": 2400.9}`, 2400},
		{"nested count", `{"views":{"count":15}}`, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProvider(t, http.StatusOK, tt.body)
			got, err := p.FetchViews(context.Background(), domain.PlatformTikTok, "https://www.tiktok.com/@a/video/1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHTTPProvider_Unavailable(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"unknown shape", http.StatusOK, `{"likes": 10}`},
		{"negative", http.StatusOK, `{"views": -5}`},
		{"not json", http.StatusOK, `<html>`},
		{"empty items", http.StatusOK, `{"items": []}`},
		{"not found", http.StatusNotFound, ``},
		{"server error", http.StatusBadGateway, `{"views": 10}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProvider(t, tt.status, tt.body)
			_, err := p.FetchViews(context.Background(), domain.PlatformTikTok, "https://www.tiktok.com/@a/video/1")
			assert.ErrorIs(t, err, port.ErrViewsUnavailable)
		})
	}
}

func TestHTTPProvider_CancelledWhileLimited(t *testing.T) {
	p := NewHTTPProvider(configs.Provider{BaseURL: "http://127.0.0.1:1", RatePerSecond: 0.001, Burst: 1})
	require.True(t, p.limiter.Allow())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := p.FetchViews(ctx, domain.PlatformTikTok, "https://www.tiktok.com/@a/video/1")
	assert.Error(t, err)
}
