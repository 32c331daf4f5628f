package voicesdk

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Client is a client for the VoiceLab gateway.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	jar *sessionJar
}

// NewClient creates a gateway client with an empty cookie jar.
func NewClient(baseURL string) *Client {
	jar := &sessionJar{}
	jar.reset()

	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Jar: jar,
			// Generation can take a while for long texts
			Timeout: 2 * time.Minute,
		},
		jar: jar,
	}
}

// resetCookies drops every stored cookie, including the session.
func (c *Client) resetCookies() {
	if c.jar != nil {
		c.jar.reset()
	}
}

// sessionJar is a cookie jar that can be emptied while requests are in flight.
type sessionJar struct {
	mu    sync.RWMutex
	inner http.CookieJar
}

func (j *sessionJar) reset() {
	// cookiejar.New never fails with nil options
	inner, _ := cookiejar.New(nil)

	j.mu.Lock()
	j.inner = inner
	j.mu.Unlock()
}

func (j *sessionJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	j.inner.SetCookies(u, cookies)
}

func (j *sessionJar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.inner.Cookies(u)
}

// GetLiveness calls the liveness probe.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/livez", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetReadiness calls the readiness probe. A degraded gateway returns an
// *APIError with status 503.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/readyz", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
