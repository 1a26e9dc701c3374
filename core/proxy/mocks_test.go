package proxy

import (
	"context"

	"fale-proxy-api/core/domain"
)

// mockFetcher is a mock implementation of the Fetcher interface
type mockFetcher struct {
	fetchFunc func(ctx context.Context, url string) (*domain.Page, error)
	calls     []string
}

func (m *mockFetcher) Fetch(ctx context.Context, url string) (*domain.Page, error) {
	m.calls = append(m.calls, url)
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, url)
	}
	return &domain.Page{URL: url, StatusCode: 200}, nil
}

// mockTransformer is a mock implementation of the TextTransformer interface
type mockTransformer struct {
	transformFunc func(html string) (string, int, error)
}

func (m *mockTransformer) Transform(html string) (string, int, error) {
	if m.transformFunc != nil {
		return m.transformFunc(html)
	}
	return html, 0, nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	messages []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.messages = append(m.messages, msg) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.messages = append(m.messages, msg) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.messages = append(m.messages, msg) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.messages = append(m.messages, msg) }
