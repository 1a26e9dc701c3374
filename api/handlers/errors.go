// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts proxy service outcomes into FetchResult variants

package handlers

import (
	"fale-proxy-api/core/domain"
	"fale-proxy-api/core/errors"
)

// MissingURLMessage is the exact error returned when no URL is supplied
const MissingURLMessage = "URL is required"

// toFetchResult converts a service outcome into the result returned to clients.
// Every error maps onto a variant; nothing escapes as an unhandled fault.
func toFetchResult(content string, err error) domain.FetchResult {
	if err == nil {
		return domain.Succeeded(content)
	}

	if errors.IsMissingParameter(err) {
		return domain.MissingParameter(MissingURLMessage)
	}

	return domain.Failed(err.Error())
}
