package commands

import (
	"fmt"
	"net/http"

	"fale-proxy-api/api/middleware"
	"fale-proxy-api/core/domain"
	"fale-proxy-api/core/interfaces"
	"fale-proxy-api/core/proxy"
	"fale-proxy-api/core/rewrite"
	"fale-proxy-api/infrastructure/fetcher/collyfetch"
	fetchstd "fale-proxy-api/infrastructure/fetcher/standard"
	"fale-proxy-api/infrastructure/html/goquerydoc"
	"fale-proxy-api/infrastructure/html/xnetdoc"
	stdhttp "fale-proxy-api/infrastructure/http/standard"
	"fale-proxy-api/infrastructure/logger/logrusadapter"
	"fale-proxy-api/pkg/config"
)

// components is the wired object graph shared by serve and rewrite
type components struct {
	transformer *rewrite.Transformer
	proxy       *proxy.Service
}

// loadConfig reads configuration from the environment, applies overrides
// and validates the result
func loadConfig(overrides ...func(*config.Config)) (*config.Config, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	for _, override := range overrides {
		override(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *logrusadapter.Logger {
	return logrusadapter.NewLogger(logrusadapter.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
}

func newParser(cfg *config.Config) interfaces.DocumentParser {
	if cfg.Rewrite.Parser == "xnet" {
		return xnetdoc.NewParser()
	}
	return goquerydoc.NewParser()
}

func newFetcher(cfg *config.Config, logger interfaces.Logger) interfaces.Fetcher {
	transport := &middleware.LoggingRoundTripper{
		Transport: http.DefaultTransport,
		Logger:    logger,
	}

	if cfg.Fetch.Backend == "colly" {
		return collyfetch.NewFetcher(collyfetch.Config{
			UserAgent:    cfg.Fetch.UserAgent,
			Timeout:      cfg.Fetch.Timeout,
			MaxBodyBytes: int(cfg.Fetch.MaxBodyBytes),
			Transport:    transport,
		})
	}

	client := stdhttp.NewStandardHTTPClient(cfg.Fetch.Timeout).
		WithUserAgent(cfg.Fetch.UserAgent).
		WithTransport(transport)
	return fetchstd.NewFetcher(client, cfg.Fetch.MaxBodyBytes)
}

// wire builds the service graph from configuration
func wire(cfg *config.Config, logger interfaces.Logger) (*components, error) {
	transformer, err := rewrite.NewTransformer(newParser(cfg), domain.Replacement{
		Source: cfg.Rewrite.Source,
		Target: cfg.Rewrite.Target,
	})
	if err != nil {
		return nil, err
	}

	deps := interfaces.Dependencies{
		Fetcher: newFetcher(cfg, logger),
		Logger:  logger,
	}

	return &components{
		transformer: transformer,
		proxy:       proxy.NewService(deps, transformer),
	}, nil
}
