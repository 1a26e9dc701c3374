package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fale-proxy-api/api"
	"fale-proxy-api/api/handlers"
	"fale-proxy-api/pkg/config"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long:  `Starts the HTTP server exposing POST /fetch, /openapi.json and /docs.`,
	RunE:  runServe,
}

// servePort is shared by serve and the root command, which runs serve by default
var servePort string

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "port to listen on (overrides PORT)")
	rootCmd.Flags().StringVar(&servePort, "port", "", "port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(func(cfg *config.Config) {
		if servePort != "" {
			cfg.Server.Port = servePort
		}
	})
	if err != nil {
		logError("%v", err)
		return err
	}

	logger := newLogger(cfg)
	c, err := wire(cfg, logger)
	if err != nil {
		logError("%v", err)
		return err
	}

	replacement := c.transformer.Replacement()
	logger.Info("Starting Fale Proxy API", map[string]interface{}{
		"port":          cfg.Server.Port,
		"fetch_backend": cfg.Fetch.Backend,
		"html_parser":   cfg.Rewrite.Parser,
		"source":        replacement.Source,
		"target":        replacement.Target,
		"log_level":     logger.Level(),
	})

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:         logger,
		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
	})
	handlers.NewFetchHandler(c.proxy).RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Fetch.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-serverErr:
		if ok && err != nil {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	case <-quit:
	}

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	logger.Info("Server stopped", nil)
	return nil
}
