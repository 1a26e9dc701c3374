// ABOUTME: FetchResult is the outcome of a single proxied fetch
// ABOUTME: A discriminated result with succeeded, failed and missing-parameter variants

package domain

import "net/http"

// ResultKind discriminates FetchResult variants
type ResultKind int

const (
	// ResultSucceeded carries transformed content
	ResultSucceeded ResultKind = iota

	// ResultFailed carries a fetch failure message
	ResultFailed

	// ResultMissingParameter carries a rejected-input message
	ResultMissingParameter
)

// FetchResult is the outcome of a /fetch request
type FetchResult struct {
	kind    ResultKind
	content string
	message string
}

// Succeeded builds a successful result
func Succeeded(content string) FetchResult {
	return FetchResult{kind: ResultSucceeded, content: content}
}

// Failed builds a fetch failure result
func Failed(message string) FetchResult {
	return FetchResult{kind: ResultFailed, message: message}
}

// MissingParameter builds a rejected-input result
func MissingParameter(message string) FetchResult {
	return FetchResult{kind: ResultMissingParameter, message: message}
}

// Kind returns the result variant
func (r FetchResult) Kind() ResultKind {
	return r.kind
}

// Content returns the transformed HTML; empty unless the result succeeded
func (r FetchResult) Content() string {
	return r.content
}

// Message returns the error message; empty when the result succeeded
func (r FetchResult) Message() string {
	return r.message
}

// StatusCode maps the variant onto an HTTP status
func (r FetchResult) StatusCode() int {
	switch r.kind {
	case ResultSucceeded:
		return http.StatusOK
	case ResultMissingParameter:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
