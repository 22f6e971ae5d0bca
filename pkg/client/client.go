// Package client is a typed HTTP client for the kejaspace API. Read
// accessors are cached with a short freshness window; mutations go
// straight through. Cached entries are never revalidated behind the
// caller's back, Invalidate and Refresh are the only ways to drop
// them.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultCacheTTL matches the freshness window the web frontend uses.
const DefaultCacheTTL = 5 * time.Minute

// APIError carries the HTTP status and the server's error message for
// any non-2xx response, including 404. Callers that want miss-is-nil
// semantics must check StatusCode themselves.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %d %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string

	cache *responseCache
	group singleflight.Group
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) { c.cache = newResponseCache(ttl) }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cache:      newResponseCache(DefaultCacheTTL),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the bearer token used on subsequent requests.
// Pass the empty string to make requests anonymously.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Invalidate drops the cached response for one endpoint, if present.
func (c *Client) Invalidate(path string, query url.Values) {
	c.cache.remove(cacheKey(path, query))
}

// InvalidateAll empties the response cache.
func (c *Client) InvalidateAll() {
	c.cache.clear()
}

// do issues a request and returns the raw response body. Non-2xx
// responses become *APIError with the server's error string.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(data, resp.StatusCode)}
	}

	return data, nil
}

func errorMessage(body []byte, statusCode int) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return http.StatusText(statusCode)
}

// getJSON is the cached GET path. Concurrent calls for the same key
// share one in-flight request via singleflight.
func getJSON[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	var out T

	key := cacheKey(path, query)
	if data, ok := c.cache.get(key); ok {
		err := json.Unmarshal(data, &out)
		return out, err
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		data, err := c.do(ctx, http.MethodGet, path, query, nil)
		if err != nil {
			return nil, err
		}
		c.cache.set(key, data)
		return data, nil
	})
	if err != nil {
		return out, err
	}

	err = json.Unmarshal(v.([]byte), &out)
	return out, err
}

// doJSON issues an uncached request and decodes the response into T.
func doJSON[T any](ctx context.Context, c *Client, method, path string, body interface{}) (T, error) {
	var out T

	data, err := c.do(ctx, method, path, nil, body)
	if err != nil {
		return out, err
	}
	if len(data) == 0 {
		return out, nil
	}

	err = json.Unmarshal(data, &out)
	return out, err
}

func cacheKey(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}
