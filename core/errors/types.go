// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors that the API layer maps onto status codes

package errors

import (
	"errors"
	"fmt"
)

// MissingParameterError represents a required request parameter that was not supplied
type MissingParameterError struct {
	Parameter string
}

// Error implements the error interface
func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing required parameter: %s", e.Parameter)
}

// FetchFailureError represents any failure retrieving or rewriting the remote resource
type FetchFailureError struct {
	URL        string
	StatusCode int // upstream status, 0 when no response was received
	Message    string
	Err        error
}

// Error implements the error interface
func (e *FetchFailureError) Error() string {
	switch {
	case e.Err != nil && e.Message != "":
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Message
	}
}

// Unwrap returns the underlying cause
func (e *FetchFailureError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents a non-successful response from an upstream server
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// IsMissingParameter checks if an error is a MissingParameterError
func IsMissingParameter(err error) bool {
	var missingErr *MissingParameterError
	return errors.As(err, &missingErr)
}

// IsFetchFailure checks if an error is a FetchFailureError
func IsFetchFailure(err error) bool {
	var fetchErr *FetchFailureError
	return errors.As(err, &fetchErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
