// ABOUTME: Fetcher backed by a gocolly collector
// ABOUTME: Builds a fresh collector per request and surfaces upstream errors as domain errors

package collyfetch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"fale-proxy-api/core/domain"
	coreerrors "fale-proxy-api/core/errors"

	"github.com/gocolly/colly"
)

// Config holds configuration for the colly fetcher
type Config struct {
	UserAgent    string
	Timeout      time.Duration
	MaxBodyBytes int
	Transport    http.RoundTripper
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		UserAgent:    "FaleProxy/1.0",
		Timeout:      30 * time.Second,
		MaxBodyBytes: 10 << 20,
	}
}

// Fetcher retrieves pages using colly
type Fetcher struct {
	config Config
}

// NewFetcher creates a colly fetcher, filling unset fields from DefaultConfig
func NewFetcher(cfg Config) *Fetcher {
	defaults := DefaultConfig()
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaults.UserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaults.MaxBodyBytes
	}
	return &Fetcher{config: cfg}
}

// Fetch visits targetURL once and returns the response body
func (f *Fetcher) Fetch(ctx context.Context, targetURL string) (*domain.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// One extra byte distinguishes a body at the cap from one over it
	c := colly.NewCollector(
		colly.UserAgent(f.config.UserAgent),
		colly.MaxBodySize(f.config.MaxBodyBytes+1),
		colly.AllowURLRevisit(),
	)
	c.ParseHTTPErrorResponse = true
	c.SetRequestTimeout(f.config.Timeout)
	if f.config.Transport != nil {
		c.WithTransport(f.config.Transport)
	}

	var page *domain.Page
	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		if r.StatusCode < 200 || r.StatusCode > 299 {
			fetchErr = &coreerrors.ExternalAPIError{
				StatusCode: r.StatusCode,
				Message:    http.StatusText(r.StatusCode),
				API:        hostOf(targetURL),
			}
			return
		}
		if len(r.Body) > f.config.MaxBodyBytes {
			fetchErr = fmt.Errorf("response body exceeds %d bytes", f.config.MaxBodyBytes)
			return
		}
		page = &domain.Page{
			URL:         targetURL,
			StatusCode:  r.StatusCode,
			ContentType: r.Headers.Get("Content-Type"),
			Body:        r.Body,
		}
	})

	c.OnError(func(_ *colly.Response, err error) {
		fetchErr = coreerrors.WrapError(err, "fetch error")
	})

	visitErr := c.Visit(targetURL)
	if fetchErr != nil {
		return nil, fetchErr
	}
	if visitErr != nil {
		return nil, coreerrors.WrapError(visitErr, "failed to visit URL")
	}
	if page == nil {
		return nil, fmt.Errorf("no response received from %s", targetURL)
	}

	return page, nil
}

func hostOf(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		return u.Host
	}
	return rawURL
}
