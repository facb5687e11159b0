package store

import "testing"

func TestKeyFromURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		rawURL  string
		want    string
	}{
		{
			name:    "single segment",
			baseURL: "https://fragment.dev/docs",
			rawURL:  "https://fragment.dev/docs/install-the-sdk",
			want:    "install-the-sdk.md",
		},
		{
			name:    "nested path becomes dashes",
			baseURL: "https://fragment.dev/docs",
			rawURL:  "https://fragment.dev/docs/guides/ledger/setup",
			want:    "guides-ledger-setup.md",
		},
		{
			name:    "base with trailing slash",
			baseURL: "https://fragment.dev/docs/",
			rawURL:  "https://fragment.dev/docs/install-the-sdk",
			want:    "install-the-sdk.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyFromURL(tt.baseURL, tt.rawURL); got != tt.want {
				t.Errorf("KeyFromURL(%q, %q) = %q, want %q", tt.baseURL, tt.rawURL, got, tt.want)
			}
		})
	}
}

func TestKeyFromURL_SameURLSameKey(t *testing.T) {
	base := "https://fragment.dev/docs"
	url := "https://fragment.dev/docs/install-the-sdk"
	if KeyFromURL(base, url) != KeyFromURL(base, url) {
		t.Error("expected deterministic key derivation")
	}
}
