// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation, CORS and request logging around the handlers

package api

import (
	"fale-proxy-api/api/middleware"
	"fale-proxy-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const (
	// Title is the API name published in the OpenAPI document
	Title = "Fale Proxy API"

	// Version is the published API version
	Version = "1.0.0"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger         interfaces.Logger
	AllowedOrigins []string
}

// NewConfig returns the Huma configuration shared by the server and tests.
// Response bodies are written exactly as the handlers shape them, so the
// $schema link transformer is not installed.
func NewConfig() huma.Config {
	config := huma.DefaultConfig(Title, Version)
	config.Info.Description = "Fetches remote pages and rewrites a token in their visible text"
	config.CreateHooks = nil
	config.Transformers = nil
	return config
}

// NewAPI creates and configures a new Huma API instance without logging
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	// CORS should be first middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	api := humachi.New(router, NewConfig())

	return api, router
}
