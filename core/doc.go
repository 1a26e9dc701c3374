// Package core contains the business logic for the Fale Proxy API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Page, Replacement, FetchResult) and URL validation
// - proxy: Orchestrates fetching a page and rewriting its text
// - rewrite: Replaces a token inside rendered text nodes, never attributes
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (fetcher, HTML parser, logger)
//
// # Usage Example
//
//	import (
//	    "fale-proxy-api/core/domain"
//	    "fale-proxy-api/core/interfaces"
//	    "fale-proxy-api/core/proxy"
//	    "fale-proxy-api/core/rewrite"
//	)
//
//	transformer, err := rewrite.NewTransformer(myParser, domain.DefaultReplacement)
//	if err != nil {
//	    return err
//	}
//
//	deps := interfaces.Dependencies{
//	    Fetcher: myFetcher, // implements interfaces.Fetcher
//	    Logger:  myLogger,  // implements interfaces.Logger
//	}
//
//	html, err := proxy.NewService(deps, transformer).Fetch(ctx, "https://example.com/")
package core
