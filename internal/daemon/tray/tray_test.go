package tray

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestFormatLast(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"empty", "", "No notifications yet"},
		{"short", "⏰ Break Complete!", "Last: ⏰ Break Complete!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatLast(tt.title); got != tt.want {
				t.Errorf("formatLast(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestFormatLastTruncates(t *testing.T) {
	got := formatLast(strings.Repeat("a", 100))
	label := strings.TrimPrefix(got, "Last: ")
	if w := ansi.StringWidth(label); w != maxLastTitleWidth {
		t.Errorf("label width = %d, want %d", w, maxLastTitleWidth)
	}
	if !strings.HasSuffix(label, "…") {
		t.Errorf("label %q has no ellipsis", label)
	}
}

func TestPlaceholderIcon(t *testing.T) {
	img, err := png.Decode(bytes.NewReader(placeholderIcon()))
	if err != nil {
		t.Fatalf("placeholder is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != iconSize || b.Dy() != iconSize {
		t.Errorf("bounds = %v, want %dx%d", b, iconSize, iconSize)
	}
}

func TestLoadIcon(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icon.png")
	if err := os.WriteFile(path, []byte("custom"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := loadIcon(path); string(got) != "custom" {
		t.Errorf("loadIcon(existing) = %q", got)
	}

	fallback := loadIcon(filepath.Join(dir, "missing.png"))
	if !bytes.Equal(fallback, placeholderIcon()) {
		t.Error("loadIcon(missing) did not return the placeholder")
	}
}
