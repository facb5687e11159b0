// Package locate implements the Locator interface.
// The documentation pages place their body in the content pane of a
// two-column layout: a div carrying the basis-full class, with the actual
// content in the first section element inside it.
package locate

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/docscrape/core"
)

const (
	containerSelector = "div.basis-full"
	sectionSelector   = "section"
)

// SectionLocator finds the primary documentation section in a page.
type SectionLocator struct{}

// New creates a SectionLocator.
func New() *SectionLocator {
	return &SectionLocator{}
}

// Locate parses the page and returns the primary section subtree.
// Both lookups are first-match in document order. A missing container or
// section returns ErrContentNotFound: empty content is never synthesized.
func (l *SectionLocator) Locate(html string) (*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	container := doc.Find(containerSelector).First()
	if container.Length() == 0 {
		return nil, fmt.Errorf("no content container in page: %w", core.ErrContentNotFound)
	}

	section := container.Find(sectionSelector).First()
	if section.Length() == 0 {
		return nil, fmt.Errorf("no section in content container: %w", core.ErrContentNotFound)
	}

	return section, nil
}
