// ABOUTME: Fetcher backed by the injected HTTPClient abstraction
// ABOUTME: Turns non-2xx responses into ExternalAPIError and caps the body size

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"fale-proxy-api/core/domain"
	coreerrors "fale-proxy-api/core/errors"
	"fale-proxy-api/core/interfaces"
)

// DefaultMaxBodyBytes bounds how much of an upstream body is read
const DefaultMaxBodyBytes int64 = 10 << 20

// Fetcher retrieves pages with a single GET request
type Fetcher struct {
	client       interfaces.HTTPClient
	maxBodyBytes int64
}

// NewFetcher creates a fetcher; maxBodyBytes <= 0 selects DefaultMaxBodyBytes
func NewFetcher(client interfaces.HTTPClient, maxBodyBytes int64) *Fetcher {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &Fetcher{
		client:       client,
		maxBodyBytes: maxBodyBytes,
	}
}

// Fetch performs the GET and returns the page on a 2xx status
func (f *Fetcher) Fetch(ctx context.Context, targetURL string) (*domain.Page, error) {
	resp, err := f.client.Get(ctx, targetURL)
	if err != nil {
		return nil, coreerrors.WrapError(err, "request failed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    http.StatusText(resp.StatusCode()),
			API:        hostOf(targetURL),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), f.maxBodyBytes+1))
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to read response body")
	}
	if int64(len(body)) > f.maxBodyBytes {
		return nil, fmt.Errorf("response body exceeds %d bytes", f.maxBodyBytes)
	}

	return &domain.Page{
		URL:         targetURL,
		StatusCode:  resp.StatusCode(),
		ContentType: resp.Header("Content-Type"),
		Body:        body,
	}, nil
}

func hostOf(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		return u.Host
	}
	return rawURL
}
