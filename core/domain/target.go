// ABOUTME: Target URL domain model for the pages the proxy is allowed to fetch
// ABOUTME: Provides validation of absolute http(s) URLs before any network activity

package domain

import (
	"errors"
	"net/url"
	"strings"
)

var (
	// ErrNotAbsolute is returned for URLs without a scheme or host
	ErrNotAbsolute = errors.New("URL must be absolute")

	// ErrUnsupportedScheme is returned for URLs whose scheme is not http or https
	ErrUnsupportedScheme = errors.New("URL scheme must be http or https")
)

// ParseTargetURL validates raw as an absolute http(s) URL
func ParseTargetURL(raw string) (*url.URL, error) {
	parsedURL, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, err
	}

	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, ErrNotAbsolute
	}

	switch strings.ToLower(parsedURL.Scheme) {
	case "http", "https":
	default:
		return nil, ErrUnsupportedScheme
	}

	return parsedURL, nil
}
