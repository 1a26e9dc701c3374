// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as HTTP communication, HTML parsing, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - fetcher/standard: Fetcher built on the net/http client below
// - fetcher/collyfetch: Fetcher built on a gocolly collector
// - html/goquerydoc: Document parser backed by goquery
// - html/xnetdoc: Document parser backed by golang.org/x/net/html
// - http/standard: Standard library HTTP client with a configurable User-Agent
// - logger/logrusadapter: Structured logger backed by logrus
//
// # HTTP Client
//
// The client makes exactly one attempt per request:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second).
//	    WithUserAgent("FaleProxy/1.0")
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrusadapter.NewLogger(logrusadapter.Options{Level: "debug", Format: "json"})
//	logger.Info("Rewrote page", map[string]interface{}{
//	    "url":          "https://example.com",
//	    "replacements": 3,
//	})
package infrastructure
