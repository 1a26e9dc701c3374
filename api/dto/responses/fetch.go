// ABOUTME: Response DTOs for the fetch API endpoint
// ABOUTME: Shapes a FetchResult into the JSON envelope returned to clients

package responses

import "fale-proxy-api/core/domain"

// FetchResponse is the JSON envelope for /fetch.
// Success and Content are pointers so that a successful empty page still
// reports both keys while the missing-parameter shape carries only error.
type FetchResponse struct {
	Success *bool   `json:"success,omitempty" doc:"Whether the page was fetched and rewritten"`
	Content *string `json:"content,omitempty" doc:"Rewritten HTML document"`
	Error   string  `json:"error,omitempty" doc:"Human-readable failure message"`
}

// NewFetchResponse builds the envelope for a result
func NewFetchResponse(result domain.FetchResult) FetchResponse {
	switch result.Kind() {
	case domain.ResultSucceeded:
		success := true
		content := result.Content()
		return FetchResponse{Success: &success, Content: &content}
	case domain.ResultMissingParameter:
		return FetchResponse{Error: result.Message()}
	default:
		success := false
		return FetchResponse{Success: &success, Error: result.Message()}
	}
}
