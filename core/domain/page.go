// ABOUTME: Page domain model for a fetched remote resource
// ABOUTME: Carries the raw upstream body handed to the text transformer

package domain

// Page is a remote resource retrieved by a Fetcher
type Page struct {
	// URL is the address that was requested
	URL string

	// StatusCode is the upstream HTTP status
	StatusCode int

	// ContentType is the upstream Content-Type header
	ContentType string

	// Body is the raw response body
	Body []byte
}
