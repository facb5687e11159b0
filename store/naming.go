// Package store handles persistence for scraped pages: markdown artifacts
// in a blob store and content hash records in a local table.
// Object keys are derived from the page URL so re-scraping a URL always
// lands on the same artifact.
package store

import "strings"

// KeyFromURL converts a page URL into its blob object key.
// The configured docs base prefix is stripped and remaining path
// separators become dashes.
// Example: https://fragment.dev/docs/install-the-sdk → install-the-sdk.md
func KeyFromURL(baseURL, rawURL string) string {
	name := strings.TrimPrefix(rawURL, strings.TrimSuffix(baseURL, "/")+"/")
	name = strings.ReplaceAll(name, "/", "-")
	return name + ".md"
}
