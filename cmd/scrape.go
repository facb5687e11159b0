// Package cmd — scrape command.
// One-shot invocation: runs the full pipeline for a single URL and prints
// the invocation result. The serve command exposes the same pipeline over
// HTTP; this is the local equivalent.
package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/docscrape/config"
	"github.com/gaurav-prasanna/docscrape/core"
	"github.com/gaurav-prasanna/docscrape/core/fetch"
	"github.com/gaurav-prasanna/docscrape/core/locate"
	"github.com/gaurav-prasanna/docscrape/core/normalize"
	"github.com/gaurav-prasanna/docscrape/core/pipeline"
	"github.com/gaurav-prasanna/docscrape/logging"
	"github.com/gaurav-prasanna/docscrape/store"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape <url>",
	Short: "Scrape a single documentation page",
	Long: `Scrape fetches the given URL, extracts the primary content section,
converts it to Markdown, stores the artifact, and records its content hash.

Example:
  docscrape scrape https://fragment.dev/docs/install-the-sdk`,
	Args: cobra.ExactArgs(1),
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
	rawURL := args[0]

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://example.com)", rawURL)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logging.New(cfg.LogLevel)
	defer log.Sync()

	ctx := context.Background()

	p, closeStores, err := buildPipeline(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStores()

	result := p.Run(ctx, core.Event{URL: rawURL})
	fmt.Fprintf(os.Stdout, "[%d] %s\n", result.StatusCode, result.Body)
	if result.StatusCode != 200 {
		return fmt.Errorf("scrape failed with status %d", result.StatusCode)
	}
	return nil
}

// buildPipeline assembles the pipeline stages from configuration.
// The returned func closes the hash store.
func buildPipeline(ctx context.Context, cfg config.Config, log *zap.Logger) (*pipeline.Pipeline, func(), error) {
	blobs, err := store.NewMarkdownBlobStore(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing blob store: %w", err)
	}

	hashes, err := store.NewHashStore(cfg.HashDBPath, cfg.HashTable)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing hash store: %w", err)
	}

	p := pipeline.New(
		fetch.New(cfg.FetchTimeout),
		locate.New(),
		normalize.New(),
		blobs,
		hashes,
		cfg.BaseURL,
		log,
	)
	return p, func() { hashes.Close() }, nil
}
