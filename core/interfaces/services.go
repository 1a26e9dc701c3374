// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for fetching remote pages and rewriting their text

package interfaces

import (
	"context"

	"fale-proxy-api/core/domain"
)

// Fetcher retrieves the remote resource identified by a URL.
// Implementations return an error for transport failures and non-2xx responses.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*domain.Page, error)
}

// TextTransformer rewrites the rendered text of an HTML document
type TextTransformer interface {
	// Transform returns the rewritten document and the number of replacements made
	Transform(html string) (string, int, error)
}

// ProxyService fetches a page and returns its rewritten HTML
type ProxyService interface {
	Fetch(ctx context.Context, url string) (string, error)
}
