package locate

import (
	"errors"
	"strings"
	"testing"

	"github.com/gaurav-prasanna/docscrape/core"
)

func TestLocate_FindsPrimarySection(t *testing.T) {
	html := `<html><body>
		<div class="sidebar"><section>nav junk</section></div>
		<div class="basis-full"><section><h1>Install the SDK</h1></section></div>
	</body></html>`

	section, err := New().Locate(html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(section.Text(), "Install the SDK") {
		t.Errorf("expected primary section content, got %q", section.Text())
	}
}

func TestLocate_FirstContainerWins(t *testing.T) {
	html := `<html><body>
		<div class="basis-full"><section>first</section></div>
		<div class="basis-full"><section>second</section></div>
	</body></html>`

	section, err := New().Locate(html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(section.Text()); got != "first" {
		t.Errorf("expected first section in document order, got %q", got)
	}
}

func TestLocate_FirstSectionWins(t *testing.T) {
	html := `<div class="basis-full">
		<section>primary</section>
		<section>secondary</section>
	</div>`

	section, err := New().Locate(html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(section.Text()); got != "primary" {
		t.Errorf("expected first section, got %q", got)
	}
}

func TestLocate_ContainerClassAmongOthers(t *testing.T) {
	html := `<div class="flex basis-full p-4"><section>content</section></div>`

	if _, err := New().Locate(html); err != nil {
		t.Fatalf("expected match on class list containing basis-full, got %v", err)
	}
}

func TestLocate_MissingContainer(t *testing.T) {
	html := `<html><body><div class="other"><section>content</section></div></body></html>`

	_, err := New().Locate(html)
	if !errors.Is(err, core.ErrContentNotFound) {
		t.Fatalf("expected ErrContentNotFound, got %v", err)
	}
}

func TestLocate_MissingSection(t *testing.T) {
	html := `<div class="basis-full"><p>no section here</p></div>`

	_, err := New().Locate(html)
	if !errors.Is(err, core.ErrContentNotFound) {
		t.Fatalf("expected ErrContentNotFound, got %v", err)
	}
}

func TestLocate_EmptyPage(t *testing.T) {
	_, err := New().Locate("")
	if !errors.Is(err, core.ErrContentNotFound) {
		t.Fatalf("expected ErrContentNotFound for empty page, got %v", err)
	}
}
