package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"viralizza/internal/config/configs"
	"viralizza/internal/core/domain"
	"viralizza/internal/core/port"
)

// maxBody caps how much of a provider response is read.
const maxBody = 1 << 20

var _ port.ViewProvider = (*HTTPProvider)(nil)

// HTTPProvider is the adapter to the external view measurement API. All
// knowledge of its response shapes stays in this package.
type HTTPProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
}

// NewHTTPProvider builds a provider client from configuration.
func NewHTTPProvider(cfg configs.Provider) *HTTPProvider {
	perSecond := cfg.RatePerSecond
	if perSecond <= 0 {
		perSecond = 1
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPProvider{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

// FetchViews asks the provider for the current view count of a post. Any
// response without a recognisable count yields port.ErrViewsUnavailable.
func (p *HTTPProvider) FetchViews(ctx context.Context, platform domain.Platform, postURL string) (int64, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return 0, err
	}
	q := url.Values{}
	q.Set("platform", string(platform))
	q.Set("url", postURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/views?"+q.Encode(), nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")
	if p.apiKey != "" {
		req.Header.Set("X-API-Key", p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("provider request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusNoContent:
		return 0, port.ErrViewsUnavailable
	case resp.StatusCode >= 300:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		return 0, fmt.Errorf("provider status %d: %w", resp.StatusCode, port.ErrViewsUnavailable)
	}

	dec := json.NewDecoder(io.LimitReader(resp.Body, maxBody))
	dec.UseNumber()
	var doc any
	if err = dec.Decode(&doc); err != nil {
		return 0, fmt.Errorf("provider response: %w", port.ErrViewsUnavailable)
	}
	views, ok := extractViews(doc)
	if !ok {
		return 0, port.ErrViewsUnavailable
	}
	return views, nil
}
