// ABOUTME: Fetch handler for the Huma API
// ABOUTME: Proxies a page, rewrites its rendered text and wraps the result in JSON

package handlers

import (
	"context"
	"net/http"
	"strings"

	"fale-proxy-api/api/dto/requests"
	"fale-proxy-api/api/dto/responses"
	"fale-proxy-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// FetchHandler handles proxied fetch requests
type FetchHandler struct {
	proxyService interfaces.ProxyService
}

// NewFetchHandler creates a new fetch handler
func NewFetchHandler(proxyService interfaces.ProxyService) *FetchHandler {
	return &FetchHandler{
		proxyService: proxyService,
	}
}

// RegisterRoutes registers all fetch-related routes
func (h *FetchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "fetchPage",
		Method:      http.MethodPost,
		Path:        "/fetch",
		Summary:     "Fetch and rewrite a page",
		Description: "Fetches the page at url and replaces the configured token in its visible text. Link targets and other attribute values are left unchanged.",
		Tags:        []string{"Proxy"},
	}, h.Fetch)
}

// FetchInput defines the input for the Fetch operation
type FetchInput struct {
	Body *requests.FetchRequest `required:"false"`
}

// FetchOutput defines the output for the Fetch operation
type FetchOutput struct {
	Status int
	Body   responses.FetchResponse
}

// Fetch handles a proxied page fetch
func (h *FetchHandler) Fetch(ctx context.Context, input *FetchInput) (*FetchOutput, error) {
	var rawURL string
	if input.Body != nil {
		rawURL = strings.TrimSpace(input.Body.URL)
	}

	content, err := h.proxyService.Fetch(ctx, rawURL)
	result := toFetchResult(content, err)

	return &FetchOutput{
		Status: result.StatusCode(),
		Body:   responses.NewFetchResponse(result),
	}, nil
}
