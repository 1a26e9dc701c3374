package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"fale-proxy-api/api/dto/responses"
	"fale-proxy-api/core/domain"
	coreerrors "fale-proxy-api/core/errors"

	"github.com/spf13/cobra"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite",
	Short: "Rewrite a single page and print the result",
	Long: `Fetches --url (or reads --file, or stdin when neither is given), rewrites
its visible text and prints the HTML. With --json the output is the same
envelope POST /fetch returns.`,
	RunE: runRewrite,
}

func init() {
	flags := rewriteCmd.Flags()
	flags.StringP("url", "u", "", "URL to fetch")
	flags.StringP("file", "f", "", "local HTML file to rewrite")
	flags.Bool("json", false, "print the JSON envelope instead of raw HTML")
	rewriteCmd.MarkFlagsMutuallyExclusive("url", "file")
	rootCmd.AddCommand(rewriteCmd)
}

func runRewrite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
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

	targetURL, _ := cmd.Flags().GetString("url")
	filePath, _ := cmd.Flags().GetString("file")
	asJSON, _ := cmd.Flags().GetBool("json")

	var content string
	switch {
	case targetURL != "":
		content, err = c.proxy.Fetch(cmd.Context(), targetURL)
	default:
		content, err = rewriteLocal(cmd.Context(), c.transformer.Transform, filePath, cmd.InOrStdin())
	}

	out := cmd.OutOrStdout()
	if asJSON {
		result := domain.Succeeded(content)
		if err != nil {
			result = domain.Failed(err.Error())
		}
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		if encErr := enc.Encode(responses.NewFetchResponse(result)); encErr != nil {
			return encErr
		}
		return err
	}

	if err != nil {
		logError("%v", err)
		return err
	}
	_, err = fmt.Fprint(out, content)
	return err
}

// rewriteLocal transforms HTML read from path, or from stdin when path is empty
func rewriteLocal(ctx context.Context, transform func(string) (string, int, error), path string, stdin io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var (
		data []byte
		err  error
	)
	if path != "" {
		data, err = os.ReadFile(path)
	} else {
		data, err = io.ReadAll(stdin)
	}
	if err != nil {
		return "", &coreerrors.FetchFailureError{URL: path, Message: "failed to read input", Err: err}
	}

	out, _, err := transform(string(data))
	if err != nil {
		return "", &coreerrors.FetchFailureError{URL: path, Message: "failed to process content", Err: err}
	}
	return out, nil
}
