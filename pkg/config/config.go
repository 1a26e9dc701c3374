// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, fetching, rewriting and logging

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Fetch contains outbound fetch configuration
	Fetch FetchConfig

	// Rewrite contains text transformer configuration
	Rewrite RewriteConfig

	// Log contains logging configuration
	Log LogConfig

	// loadErrs holds values that could not be decoded from the environment
	loadErrs []error
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `validate:"required,numeric"`

	// CORSAllowedOrigins lists origins allowed by the CORS middleware
	CORSAllowedOrigins []string `validate:"min=1"`
}

// FetchConfig holds outbound fetch configuration
type FetchConfig struct {
	// Backend selects the fetcher implementation (http/colly)
	Backend string `validate:"oneof=http colly"`

	// Timeout bounds each outbound request; zero disables the client timeout
	Timeout time.Duration `validate:"gte=0"`

	// UserAgent is sent with every outbound request
	UserAgent string `validate:"required"`

	// MaxBodyBytes caps how much of an upstream body is read
	MaxBodyBytes int64 `validate:"gt=0"`
}

// RewriteConfig holds text transformer configuration
type RewriteConfig struct {
	// Source is the token replaced in rendered text
	Source string `validate:"required"`

	// Target is the token inserted in its place
	Target string

	// Parser selects the HTML parser (goquery/xnet)
	Parser string `validate:"oneof=goquery xnet"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is the minimum level written
	Level string `validate:"oneof=debug info warn warning error"`

	// Format is text or json
	Format string `validate:"oneof=text json"`
}

const (
	defaultPort         = "8000"
	defaultTimeout      = 30 * time.Second
	defaultMaxBodyBytes = int64(10 << 20)
)

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("port", defaultPort)
	v.SetDefault("cors_allowed_origins", "*")
	v.SetDefault("fetch_backend", "http")
	v.SetDefault("fetch_timeout", defaultTimeout)
	v.SetDefault("fetch_user_agent", "FaleProxy/1.0")
	v.SetDefault("fetch_max_body_bytes", defaultMaxBodyBytes)
	v.SetDefault("rewrite_source", "Yale")
	v.SetDefault("rewrite_target", "Fale")
	v.SetDefault("html_parser", "goquery")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	var loadErrs []error
	timeout := decodeKey[time.Duration](v, "fetch_timeout", &loadErrs)
	maxBodyBytes := decodeKey[int64](v, "fetch_max_body_bytes", &loadErrs)

	cfg := &Config{
		Server: ServerConfig{
			Port:               v.GetString("port"),
			CORSAllowedOrigins: splitList(v.GetString("cors_allowed_origins")),
		},
		Fetch: FetchConfig{
			Backend:      strings.ToLower(v.GetString("fetch_backend")),
			Timeout:      timeout,
			UserAgent:    v.GetString("fetch_user_agent"),
			MaxBodyBytes: maxBodyBytes,
		},
		Rewrite: RewriteConfig{
			Source: v.GetString("rewrite_source"),
			Target: v.GetString("rewrite_target"),
			Parser: strings.ToLower(v.GetString("html_parser")),
		},
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("log_level")),
			Format: strings.ToLower(v.GetString("log_format")),
		},
		loadErrs: loadErrs,
	}

	return cfg, nil
}

// decodeKey decodes key with viper's hooks, recording a failure in errs
func decodeKey[T any](v *viper.Viper, key string, errs *[]error) T {
	var out T
	if err := v.UnmarshalKey(key, &out); err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", strings.ToUpper(key), err))
	}
	return out
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

var validate = validator.New()

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if len(c.loadErrs) > 0 {
		return fmt.Errorf("invalid environment: %w", errors.Join(c.loadErrs...))
	}

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s", fe.Namespace(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
