// ABOUTME: REST client shared by the article, comment, image and favorite services
// ABOUTME: Handles URL building, JSON envelopes, the optional response cache and status mapping

package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"articles-app-client/core/interfaces"
)

// Client talks to the backend REST API on behalf of the service types
type Client struct {
	http    interfaces.HTTPClient
	baseURL string
	cache   interfaces.Cache
	ttl     time.Duration
	logger  interfaces.Logger
}

// Option configures a Client
type Option func(*Client)

// WithCache caches GET responses for ttl and invalidates them on writes
func WithCache(cache interfaces.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.ttl = ttl
	}
}

// WithLogger sets the logger used for cache diagnostics
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a REST client rooted at baseURL, e.g. http://localhost:3000/api
func NewClient(httpClient interfaces.HTTPClient, baseURL string, opts ...Option) *Client {
	c := &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  nopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Articles returns the article resource service
func (c *Client) Articles() *ArticleService {
	return &ArticleService{c: c}
}

// Comments returns the comment resource service
func (c *Client) Comments() *CommentService {
	return &CommentService{c: c}
}

// Images returns the image resource service
func (c *Client) Images() *ImageService {
	return &ImageService{c: c}
}

// Favorites returns the favorite toggle service
func (c *Client) Favorites() *FavoriteService {
	return &FavoriteService{c: c}
}

// endpoint joins escaped path segments onto the base URL
func (c *Client) endpoint(segments ...string) string {
	var b strings.Builder
	b.WriteString(c.baseURL)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// getJSON performs a GET and decodes the body into out. When cacheKey is set
// and a cache is configured, a cached body is used instead of the network.
func (c *Client) getJSON(ctx context.Context, rawURL, cacheKey string, target resource, out interface{}) error {
	if data, ok := c.cached(ctx, cacheKey); ok {
		if err := json.Unmarshal(data, out); err == nil {
			return nil
		}
		c.logger.Warn("Discarding undecodable cache entry", map[string]interface{}{
			"key": cacheKey,
		})
	}

	resp, err := c.http.Get(ctx, rawURL)
	if err != nil {
		return fmt.Errorf("failed to fetch %s %s: %w", target.kind, target.id, err)
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", target.kind, err)
	}

	if err := checkStatus(resp.StatusCode(), body, target); err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", target.kind, err)
	}

	c.store(ctx, cacheKey, body)
	return nil
}

// send performs a write with an optional JSON payload and decodes the
// response into out when out is non-nil
func (c *Client) send(ctx context.Context, method, rawURL string, payload, out interface{}, target resource) error {
	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode %s payload: %w", target.kind, err)
		}
		reader = bytes.NewReader(data)
	}

	var (
		resp interfaces.Response
		err  error
	)
	switch method {
	case http.MethodPost:
		resp, err = c.http.Post(ctx, rawURL, reader)
	case http.MethodPut:
		resp, err = c.http.Put(ctx, rawURL, reader)
	case http.MethodDelete:
		resp, err = c.http.Delete(ctx, rawURL)
	default:
		return fmt.Errorf("unsupported method %s", method)
	}
	if err != nil {
		return fmt.Errorf("failed to %s %s %s: %w", strings.ToLower(method), target.kind, target.id, err)
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", target.kind, err)
	}

	if err := checkStatus(resp.StatusCode(), body, target); err != nil {
		return err
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", target.kind, err)
	}
	return nil
}

func (c *Client) cached(ctx context.Context, key string) ([]byte, bool) {
	if c.cache == nil || key == "" {
		return nil, false
	}

	data, err := c.cache.Get(ctx, key)
	switch {
	case err == nil:
		c.logger.Debug("Response cache hit", map[string]interface{}{"key": key})
		return data, true
	case errors.Is(err, interfaces.ErrCacheMiss):
		c.logger.Debug("Response cache miss", map[string]interface{}{"key": key})
	default:
		c.logger.Warn("Response cache read failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
	return nil, false
}

func (c *Client) store(ctx context.Context, key string, body []byte) {
	if c.cache == nil || key == "" {
		return
	}
	if err := c.cache.Set(ctx, key, body, c.ttl); err != nil {
		c.logger.Warn("Response cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

// invalidate drops cached responses made stale by a write
func (c *Client) invalidate(ctx context.Context, keys ...string) {
	if c.cache == nil {
		return
	}
	for _, key := range keys {
		if err := c.cache.Delete(ctx, key); err != nil {
			c.logger.Warn("Response cache invalidation failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
	}
}

func articleKey(slug string) string  { return "article:" + slug }
func commentsKey(slug string) string { return "comments:" + slug }
func imagesKey(slug string) string   { return "images:" + slug }

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}
