// ABOUTME: Request DTOs for the fetch API endpoint
// ABOUTME: Defines the structure for proxied page fetch requests

package requests

// FetchRequest represents a request to fetch and rewrite a page.
// URL is optional at the schema level; the handler reports a missing URL itself.
// Unknown properties are accepted and ignored.
type FetchRequest struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	// URL of the page to fetch
	URL string `json:"url,omitempty" required:"false" example:"https://example.com/" doc:"Absolute http(s) URL of the page to fetch"`
}
