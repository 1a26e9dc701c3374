// Package api provides the HTTP API layer for the Fale proxy.
// It uses the Huma framework on a chi router for OpenAPI documentation
// and request decoding.
//
// # Architecture
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: request logging and outgoing request logging
//
// The OpenAPI document is served at /openapi.json and the docs UI at /docs.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:         logger,
//	    AllowedOrigins: []string{"*"},
//	})
//
//	handlers.NewFetchHandler(proxyService).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Responses
//
// /fetch always answers with a JSON envelope rather than RFC 7807 problems:
//
//	200 {"success": true, "content": "<html>...</html>"}
//	400 {"error": "URL is required"}
//	500 {"success": false, "error": "invalid URL: ..."}
package api
