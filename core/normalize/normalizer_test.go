package normalize

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/docscrape/core"
)

// sectionFromHTML parses a fixture and returns its first section element.
func sectionFromHTML(t *testing.T, html string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	sel := doc.Find("section").First()
	if sel.Length() == 0 {
		t.Fatal("fixture has no section element")
	}
	return sel
}

func normalizeHTML(t *testing.T, html string) string {
	t.Helper()
	md, err := New().Normalize(sectionFromHTML(t, html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return md
}

func TestNormalize_FencedCodeBlockWithLanguage(t *testing.T) {
	md := normalizeHTML(t, `<section><pre><code class="language-python">print("hi")</code></pre></section>`)

	if !strings.Contains(md, "```python\n") {
		t.Errorf("expected fence opening with python tag, got:\n%s", md)
	}
	if !strings.Contains(md, `print("hi")`) {
		t.Errorf("expected verbatim code body, got:\n%s", md)
	}
	if !strings.Contains(md, "\n```") {
		t.Errorf("expected closing fence, got:\n%s", md)
	}
}

func TestNormalize_FencedCodeBlockDefaultsToBash(t *testing.T) {
	md := normalizeHTML(t, `<section><pre><code>npm install fragment</code></pre></section>`)

	if !strings.Contains(md, "```bash") {
		t.Errorf("expected bash default language tag, got:\n%s", md)
	}
	if !strings.Contains(md, "npm install fragment") {
		t.Errorf("expected code body, got:\n%s", md)
	}
}

func TestNormalize_FirstLanguageClassWins(t *testing.T) {
	md := normalizeHTML(t, `<section><pre><code class="language-go language-python">y := 1</code></pre></section>`)

	if !strings.Contains(md, "```go") {
		t.Errorf("expected first language token to win, got:\n%s", md)
	}
	if strings.Contains(md, "```python") {
		t.Errorf("expected python tag to be ignored, got:\n%s", md)
	}
}

func TestNormalize_CodeBodyIsPlainTextOfNestedMarkup(t *testing.T) {
	// Syntax highlighting spans inside the code element must flatten
	// to their text content.
	md := normalizeHTML(t, `<section><pre><code class="language-js"><span>const</span> <span>x</span> = 1;</code></pre></section>`)

	if !strings.Contains(md, "const x = 1;") {
		t.Errorf("expected flattened code text, got:\n%s", md)
	}
	if strings.Contains(md, "<span>") {
		t.Errorf("expected no markup in code body, got:\n%s", md)
	}
}

func TestNormalize_PreWithoutCodeStaysPlainText(t *testing.T) {
	md := normalizeHTML(t, `<section><pre>just preformatted text</pre></section>`)

	if strings.Contains(md, "```") {
		t.Errorf("expected no fence for pre without code, got:\n%s", md)
	}
	if !strings.Contains(md, "just preformatted text") {
		t.Errorf("expected plain text content preserved, got:\n%s", md)
	}
}

func TestNormalize_InlineCodeMarker(t *testing.T) {
	md := normalizeHTML(t, `<section><p>Run <code data-testid="inline-code">x</code> now.</p></section>`)

	if !strings.Contains(md, "`x`") {
		t.Errorf("expected inline code span, got:\n%s", md)
	}
	if strings.Contains(md, "```") {
		t.Errorf("expected no fence for inline code, got:\n%s", md)
	}
}

func TestNormalize_BareCodeWithoutInlineMarkerGetsFence(t *testing.T) {
	md := normalizeHTML(t, `<section><code class="language-go">y</code></section>`)

	if !strings.Contains(md, "```go") {
		t.Errorf("expected fenced go block for bare code, got:\n%s", md)
	}
	if !strings.Contains(md, "y") {
		t.Errorf("expected code body, got:\n%s", md)
	}
}

func TestNormalize_BareCodeDefaultsToBash(t *testing.T) {
	md := normalizeHTML(t, `<section><code>fragment login</code></section>`)

	if !strings.Contains(md, "```bash") {
		t.Errorf("expected bash fence for unmarked bare code, got:\n%s", md)
	}
}

func TestNormalize_Image(t *testing.T) {
	md := normalizeHTML(t, `<section><img src="https://x/y.png" alt="original alt text"></section>`)

	if !strings.Contains(md, "![Image](https://x/y.png)") {
		t.Errorf("expected image reference with fixed alt, got:\n%s", md)
	}
	if strings.Contains(md, "original alt text") {
		t.Errorf("expected original alt to be discarded, got:\n%s", md)
	}
}

func TestNormalize_ImageMissingSourceFails(t *testing.T) {
	_, err := New().Normalize(sectionFromHTML(t, `<section><img alt="broken"></section>`))
	if !errors.Is(err, core.ErrMissingImageSource) {
		t.Fatalf("expected ErrMissingImageSource, got %v", err)
	}
}

func TestNormalize_ImageEmptySourceFails(t *testing.T) {
	_, err := New().Normalize(sectionFromHTML(t, `<section><img src="  "></section>`))
	if !errors.Is(err, core.ErrMissingImageSource) {
		t.Fatalf("expected ErrMissingImageSource, got %v", err)
	}
}

func TestNormalize_ATXHeadings(t *testing.T) {
	md := normalizeHTML(t, `<section><h1>Install the SDK</h1><h2>Requirements</h2></section>`)

	if !strings.Contains(md, "# Install the SDK") {
		t.Errorf("expected ATX h1, got:\n%s", md)
	}
	if !strings.Contains(md, "## Requirements") {
		t.Errorf("expected ATX h2, got:\n%s", md)
	}
	if strings.Contains(md, "====") || strings.Contains(md, "----") {
		t.Errorf("expected no setext underlines, got:\n%s", md)
	}
}

func TestNormalize_StandardStructures(t *testing.T) {
	md := normalizeHTML(t, `<section>
		<p>Use <strong>FRAGMENT</strong> with <em>care</em>.</p>
		<ul><li>first</li><li>second</li></ul>
		<a href="https://fragment.dev">docs</a>
	</section>`)

	if !strings.Contains(md, "**FRAGMENT**") {
		t.Errorf("expected strong emphasis, got:\n%s", md)
	}
	if !strings.Contains(md, "*care*") {
		t.Errorf("expected emphasis, got:\n%s", md)
	}
	if !strings.Contains(md, "- first") {
		t.Errorf("expected list item, got:\n%s", md)
	}
	if !strings.Contains(md, "[docs](https://fragment.dev)") {
		t.Errorf("expected markdown link, got:\n%s", md)
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	const fixture = `<section>
		<h1>Install the SDK</h1>
		<pre><code class="language-python">import fragment</code></pre>
		<p>Then run <code data-testid="inline-code">fragment init</code>.</p>
		<img src="https://x/setup.png">
	</section>`

	first := normalizeHTML(t, fixture)
	second := normalizeHTML(t, fixture)
	if first != second {
		t.Errorf("expected byte-identical output for identical input:\n%q\nvs\n%q", first, second)
	}
}

func TestNormalize_FenceIsolatedAsOwnBlock(t *testing.T) {
	md := normalizeHTML(t, `<section><p>before</p><pre><code class="language-go">x</code></pre><p>after</p></section>`)

	idx := strings.Index(md, "```go")
	if idx <= 0 {
		t.Fatalf("expected fenced block in output, got:\n%s", md)
	}
	if md[idx-1] != '\n' {
		t.Errorf("expected fence to start on its own line, got:\n%s", md)
	}
}
