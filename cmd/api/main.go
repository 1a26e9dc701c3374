// ABOUTME: Main entry point for the Fale Proxy API
// ABOUTME: Delegates to the cobra command tree (serve by default)

package main

import (
	"os"

	"fale-proxy-api/cmd/api/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
