package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingParameterError_Error(t *testing.T) {
	err := &MissingParameterError{Parameter: "url"}

	expected := "missing required parameter: url"
	if err.Error() != expected {
		t.Errorf("MissingParameterError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestFetchFailureError_Error(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name     string
		err      *FetchFailureError
		expected string
	}{
		{
			name:     "message only",
			err:      &FetchFailureError{Message: "invalid URL"},
			expected: "invalid URL",
		},
		{
			name:     "cause only",
			err:      &FetchFailureError{Err: cause},
			expected: "connection refused",
		},
		{
			name:     "message and cause",
			err:      &FetchFailureError{Message: "failed to fetch", Err: cause},
			expected: "failed to fetch: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestFetchFailureError_Unwrap(t *testing.T) {
	upstream := &ExternalAPIError{StatusCode: 404, Message: "Not Found", API: "example.com"}
	err := &FetchFailureError{URL: "https://example.com", Err: upstream}

	assert.True(t, IsExternalAPI(err), "FetchFailureError should unwrap to its cause")
	assert.True(t, errors.Is(err, upstream))
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "url",
		Message: "scheme must be http or https",
	}

	expected := "validation error on field 'url': scheme must be http or https"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestExternalAPIError_Error(t *testing.T) {
	err := &ExternalAPIError{
		StatusCode: 503,
		Message:    "service unavailable",
		API:        "example.com",
	}

	expected := "external API error from example.com: 503 - service unavailable"
	if err.Error() != expected {
		t.Errorf("ExternalAPIError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestPredicates(t *testing.T) {
	missing := &MissingParameterError{Parameter: "url"}
	fetch := &FetchFailureError{Message: "boom"}
	validation := &ValidationError{Field: "url", Message: "bad"}
	external := &ExternalAPIError{StatusCode: 500}
	plain := errors.New("plain")

	assert.True(t, IsMissingParameter(missing))
	assert.True(t, IsMissingParameter(fmt.Errorf("wrapped: %w", missing)))
	assert.False(t, IsMissingParameter(plain))

	assert.True(t, IsFetchFailure(fetch))
	assert.True(t, IsFetchFailure(fmt.Errorf("wrapped: %w", fetch)))
	assert.False(t, IsFetchFailure(missing))

	assert.True(t, IsValidation(validation))
	assert.False(t, IsValidation(plain))

	assert.True(t, IsExternalAPI(external))
	assert.False(t, IsExternalAPI(fetch))
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	base := &MissingParameterError{Parameter: "url"}
	wrapped := WrapError(base, "handling request")

	if wrapped.Error() != "handling request: missing required parameter: url" {
		t.Errorf("unexpected wrapped message: %v", wrapped)
	}
	if !IsMissingParameter(wrapped) {
		t.Error("wrapped error should still match MissingParameterError")
	}
}
