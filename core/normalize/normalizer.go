// Package normalize implements the Normalizer interface.
// It rewrites code blocks, inline code, and images in the primary section,
// then serializes the subtree to Markdown with html-to-markdown.
//
// Rewrite order matters: fenced blocks first, then leftover code elements,
// then images. Later passes must never touch output of earlier ones.
package normalize

import (
	"fmt"
	"html"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/docscrape/core"
)

const (
	languageClassPrefix = "language-"
	defaultLanguage     = "bash"

	// inlineCodeTestID marks code elements the docs render as inline
	// snippets rather than standalone blocks.
	inlineCodeTestID = "inline-code"

	// imageAltText replaces whatever alt the page carries. The stored
	// markdown uses one fixed placeholder for every image.
	imageAltText = "Image"
)

// MarkdownNormalizer converts a primary section into Markdown.
type MarkdownNormalizer struct{}

// New creates a MarkdownNormalizer.
func New() *MarkdownNormalizer {
	return &MarkdownNormalizer{}
}

// Normalize rewrites the section in place and serializes it to Markdown.
// Output is a pure function of the section's content.
func (n *MarkdownNormalizer) Normalize(section *goquery.Selection) (string, error) {
	rewritePreBlocks(section)
	rewriteBareCode(section)
	if err := rewriteImages(section); err != nil {
		return "", err
	}

	fragment, err := goquery.OuterHtml(section)
	if err != nil {
		return "", fmt.Errorf("serializing section: %w", err)
	}

	markdown, err := htmltomarkdown.ConvertString(fragment)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return markdown, nil
}

// rewritePreBlocks normalizes every <pre> with a nested <code> into the
// canonical <pre><code class="language-X">text</code></pre> shape so
// serialization emits a fenced block with the resolved language tag.
// The block body is the code element's plain text, verbatim.
// A <pre> without a nested <code> degrades to its plain text content.
func rewritePreBlocks(section *goquery.Selection) {
	section.Find("pre").Each(func(_ int, pre *goquery.Selection) {
		code := pre.Find("code").First()
		if code.Length() == 0 {
			pre.ReplaceWithHtml(html.EscapeString(pre.Text()))
			return
		}

		lang := languageOf(code)
		text := code.Text()
		pre.SetAttr("class", languageClassPrefix+lang)
		pre.SetHtml(fmt.Sprintf(`<code class="%s">%s</code>`,
			languageClassPrefix+lang, html.EscapeString(text)))
	})
}

// rewriteBareCode handles <code> elements not consumed by rewritePreBlocks.
// Elements marked as inline code are flattened to plain text and serialize
// as single-backtick spans. Everything else gets the full fenced-block
// treatment, same language resolution as <pre> blocks.
func rewriteBareCode(section *goquery.Selection) {
	section.Find("code").Each(func(_ int, code *goquery.Selection) {
		if code.ParentsFiltered("pre").Length() > 0 {
			return
		}

		text := code.Text()
		if testid, _ := code.Attr("data-testid"); testid == inlineCodeTestID {
			code.SetText(text)
			return
		}

		lang := languageOf(code)
		code.ReplaceWithHtml(fmt.Sprintf(`<pre><code class="%s">%s</code></pre>`,
			languageClassPrefix+lang, html.EscapeString(text)))
	})
}

// rewriteImages forces the fixed alt placeholder on every image.
// An image with no usable src is malformed input, not an empty reference.
func rewriteImages(section *goquery.Selection) error {
	var rewriteErr error
	section.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		src, ok := img.Attr("src")
		if !ok || strings.TrimSpace(src) == "" {
			rewriteErr = fmt.Errorf("rewriting images: %w", core.ErrMissingImageSource)
			return false
		}
		img.SetAttr("alt", imageAltText)
		img.RemoveAttr("title")
		return true
	})
	return rewriteErr
}

// languageOf resolves the fence language from the element's class list.
// The first language-<X> token wins; with none present the docs' snippets
// are shell commands, so bash is the default.
func languageOf(code *goquery.Selection) string {
	class, _ := code.Attr("class")
	for _, token := range strings.Fields(class) {
		if lang := strings.TrimPrefix(token, languageClassPrefix); lang != "" && lang != token {
			return lang
		}
	}
	return defaultLanguage
}
