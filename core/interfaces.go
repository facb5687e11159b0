// Package core defines the pipeline interfaces for docscrape.
// Each stage of the pipeline is a clean, testable interface.
package core

import (
	"context"

	"github.com/PuerkitoBio/goquery"
)

// Event is the invocation input: one URL to scrape per invocation.
type Event struct {
	URL string `json:"url"`
}

// Result is the invocation output: a status code plus a human-readable body.
// The body names the failing stage on error; it never carries internal detail.
type Result struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// HashRecord is the change-detection record kept per URL.
// ID mirrors URL; re-scraping a URL overwrites the prior record.
type HashRecord struct {
	ID   string
	URL  string
	Hash string
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Locator finds the subtree holding the page's primary documentation content.
// A missing container or section is a terminal failure, never empty content.
type Locator interface {
	Locate(html string) (*goquery.Selection, error)
}

// Normalizer converts the primary section into Markdown with normalized
// code-block and image formatting. Pure: output depends only on the input tree.
type Normalizer interface {
	Normalize(section *goquery.Selection) (string, error)
}

// BlobStore persists markdown bytes under a URL-derived key.
// Put overwrites unconditionally and is idempotent.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte) error
}

// HashStore upserts the content hash record for a URL.
type HashStore interface {
	Record(ctx context.Context, url, digest string) error
}
