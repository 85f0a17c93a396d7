// ABOUTME: Standard HTTP client implementation with retry logic, auth and rate limiting
// ABOUTME: Provides the transport the REST services use to reach the article backend

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/http2"
	"golang.org/x/time/rate"

	"articles-app-client/core/interfaces"
)

const (
	maxRetries      = 3
	userAgent       = "ArticlesClient/1.0"
	requestIDHeader = "X-Request-ID"
)

// StandardHTTPClient implements the HTTPClient interface using the standard library
type StandardHTTPClient struct {
	client    *http.Client
	token     string
	userAgent string
	limiter   *rate.Limiter
	logger    interfaces.Logger
	http2     bool
}

// Option configures a StandardHTTPClient
type Option func(*StandardHTTPClient)

// WithToken sends "Authorization: Token <token>" on every request
func WithToken(token string) Option {
	return func(c *StandardHTTPClient) {
		c.token = token
	}
}

// WithRateLimit throttles outgoing requests to perSecond with the given burst.
// A non-positive perSecond disables limiting.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *StandardHTTPClient) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithLogger reports retries and failures
func WithLogger(logger interfaces.Logger) Option {
	return func(c *StandardHTTPClient) {
		c.logger = logger
	}
}

// WithUserAgent overrides the default User-Agent
func WithUserAgent(ua string) Option {
	return func(c *StandardHTTPClient) {
		c.userAgent = ua
	}
}

// WithHTTP2 negotiates HTTP/2 over TLS
func WithHTTP2() Option {
	return func(c *StandardHTTPClient) {
		c.http2 = true
	}
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration, opts ...Option) *StandardHTTPClient {
	c := &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.http2 {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		if err := http2.ConfigureTransport(transport); err != nil {
			c.warn("HTTP/2 unavailable, using HTTP/1.1", map[string]interface{}{
				"error": err.Error(),
			})
		}
		c.client.Transport = transport
	}

	return c
}

// Get performs an HTTP GET request, retrying transport errors and 5xx responses
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := c.newRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 100ms, 200ms
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			c.warn("Retrying request", map[string]interface{}{
				"url":        url,
				"attempt":    attempt + 1,
				"request_id": req.Header.Get(requestIDHeader),
				"error":      lastErr.Error(),
			})
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err = c.do(ctx, req)
		if err != nil {
			resp = nil
			lastErr = err
			if ctx.Err() != nil {
				return nil, lastErr
			}
			continue
		}

		// Don't retry on success or 4xx errors
		if resp.StatusCode < 500 {
			break
		}

		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
		// Keep the last 5xx response so callers can read its body
		if attempt < maxRetries-1 {
			resp.Body.Close()
			resp = nil
		}
	}

	if resp == nil {
		return nil, lastErr
	}

	return wrapResponse(resp), nil
}

// Post performs an HTTP POST request with a JSON body
func (c *StandardHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	return c.send(ctx, http.MethodPost, url, body)
}

// Put performs an HTTP PUT request with a JSON body
func (c *StandardHTTPClient) Put(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	return c.send(ctx, http.MethodPut, url, body)
}

// Delete performs an HTTP DELETE request
func (c *StandardHTTPClient) Delete(ctx context.Context, url string) (interfaces.Response, error) {
	return c.send(ctx, http.MethodDelete, url, nil)
}

// send performs a single attempt; writes are never retried
func (c *StandardHTTPClient) send(ctx context.Context, method, url string, body io.Reader) (interfaces.Response, error) {
	req, err := c.newRequest(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}

	return wrapResponse(resp), nil
}

func (c *StandardHTTPClient) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	// Retries of the same request share one ID
	req.Header.Set(requestIDHeader, uuid.New().String())
	if c.token != "" {
		req.Header.Set("Authorization", "Token "+c.token)
	}

	return req, nil
}

func (c *StandardHTTPClient) do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	return c.client.Do(req)
}

func (c *StandardHTTPClient) warn(msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.Warn(msg, fields)
	}
}

func wrapResponse(resp *http.Response) *httpResponse {
	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
