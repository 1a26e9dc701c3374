// ABOUTME: Standard HTTP client implementation with timeout support
// ABOUTME: Performs a single attempt per request; callers decide how to treat the status

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"fale-proxy-api/core/interfaces"
)

// DefaultUserAgent identifies the proxy to upstream servers
const DefaultUserAgent = "FaleProxy/1.0"

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client    *http.Client
	userAgent string
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout.
// A zero timeout leaves the net/http default (no client timeout) in place.
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: DefaultUserAgent,
	}
}

// WithUserAgent overrides the User-Agent header sent upstream
func (c *StandardHTTPClient) WithUserAgent(userAgent string) *StandardHTTPClient {
	if userAgent != "" {
		c.userAgent = userAgent
	}
	return c
}

// WithTransport replaces the underlying round tripper
func (c *StandardHTTPClient) WithTransport(transport http.RoundTripper) *StandardHTTPClient {
	c.client.Transport = transport
	return c
}

// Get performs an HTTP GET request. No retries are attempted.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
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
