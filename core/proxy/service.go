// ABOUTME: Proxy service fetches a remote page and rewrites its rendered text
// ABOUTME: Provides the /fetch business logic independent of the HTTP layer

package proxy

import (
	"context"
	"errors"

	"fale-proxy-api/core/domain"
	coreerrors "fale-proxy-api/core/errors"
	"fale-proxy-api/core/interfaces"
)

// Service fetches pages and returns their rewritten HTML
type Service struct {
	deps        interfaces.Dependencies
	transformer interfaces.TextTransformer
}

// NewService creates a new proxy service instance
func NewService(deps interfaces.Dependencies, transformer interfaces.TextTransformer) *Service {
	return &Service{
		deps:        deps,
		transformer: transformer,
	}
}

// Fetch validates rawURL, retrieves it and returns the transformed document.
// Errors are either *errors.MissingParameterError or *errors.FetchFailureError.
func (s *Service) Fetch(ctx context.Context, rawURL string) (string, error) {
	if rawURL == "" {
		return "", &coreerrors.MissingParameterError{Parameter: "url"}
	}

	target, err := domain.ParseTargetURL(rawURL)
	if err != nil {
		s.deps.Logger.Debug("Rejected target URL", map[string]interface{}{
			"url":   rawURL,
			"error": err.Error(),
		})
		return "", &coreerrors.FetchFailureError{
			URL:     rawURL,
			Message: "invalid URL",
			Err:     &coreerrors.ValidationError{Field: "url", Message: err.Error()},
		}
	}

	if s.deps.Fetcher == nil {
		return "", &coreerrors.FetchFailureError{URL: rawURL, Message: "fetcher not configured"}
	}

	page, err := s.deps.Fetcher.Fetch(ctx, target.String())
	if err != nil {
		s.deps.Logger.Warn("Failed to fetch page", map[string]interface{}{
			"url":   target.String(),
			"error": err.Error(),
		})
		failure := &coreerrors.FetchFailureError{
			URL:     target.String(),
			Message: "failed to fetch content",
			Err:     err,
		}
		var apiErr *coreerrors.ExternalAPIError
		if errors.As(err, &apiErr) {
			failure.StatusCode = apiErr.StatusCode
		}
		return "", failure
	}

	content, replacements, err := s.transformer.Transform(string(page.Body))
	if err != nil {
		s.deps.Logger.Error("Failed to rewrite page", map[string]interface{}{
			"url":   target.String(),
			"error": err.Error(),
		})
		return "", &coreerrors.FetchFailureError{
			URL:        target.String(),
			StatusCode: page.StatusCode,
			Message:    "failed to process content",
			Err:        err,
		}
	}

	s.deps.Logger.Debug("Rewrote page", map[string]interface{}{
		"url":          target.String(),
		"status":       page.StatusCode,
		"content_type": page.ContentType,
		"bytes":        len(page.Body),
		"replacements": replacements,
	})

	return content, nil
}
