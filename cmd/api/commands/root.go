// Package commands implements the CLI commands for the Fale proxy.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fale-proxy",
	Short: "Fetch web pages and rewrite Yale to Fale in their visible text",
	Long: `fale-proxy fetches a remote page, replaces a token in its rendered text
while leaving link targets untouched, and returns the rewritten HTML.

Configuration is read from the environment (PORT, FETCH_BACKEND, FETCH_TIMEOUT,
REWRITE_SOURCE, REWRITE_TARGET, HTML_PARSER, LOG_LEVEL, LOG_FORMAT, ...).

Examples:
  # Run the HTTP API (POST /fetch)
  fale-proxy serve --port 3001

  # Rewrite a remote page once and print the HTML
  fale-proxy rewrite --url https://example.com/

  # Rewrite a local file and print the JSON envelope
  fale-proxy rewrite --file page.html --json`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
