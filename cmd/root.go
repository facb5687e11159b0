// Package cmd implements the CLI commands for docscrape using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "docscrape",
	Short: "docscrape — scrape documentation pages into markdown artifacts",
	Long: `docscrape fetches a documentation page, extracts the primary content
section, converts it to Markdown, stores the artifact in a blob store,
and records a content hash for change detection.

Usage:
  docscrape scrape <url>
  docscrape serve`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
