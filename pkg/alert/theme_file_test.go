package alert

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestParseThemeOverridesOnlyNamedFields(t *testing.T) {
	base := DefaultTheme(lipgloss.NewRenderer(nil))
	data := []byte(`
size:
  width: 480
  height: 140
button_offset: 20
text_color: "#FFFFFF"
`)
	got, err := parseTheme(data, base)
	if err != nil {
		t.Fatalf("parseTheme: %v", err)
	}

	if got.Size.Width != 480 || got.Size.Height != 140 {
		t.Errorf("Expected size 480x140, got %dx%d", got.Size.Width, got.Size.Height)
	}
	if got.ButtonOffset != 20 {
		t.Errorf("Expected button offset 20, got %d", got.ButtonOffset)
	}
	if got.TextColor.Dark != "#FFFFFF" || got.TextColor.Light != "#FFFFFF" {
		t.Errorf("Scalar color should apply to both variants, got %+v", got.TextColor)
	}

	// Unset fields keep their defaults.
	if got.ContentInset != base.ContentInset {
		t.Error("Content inset should keep the default")
	}
	if got.InformativeOffset != base.InformativeOffset {
		t.Error("Informative offset should keep the default")
	}
	if got.UnitsPerCol != base.UnitsPerCol {
		t.Error("Unit scale should keep the default")
	}
}

func TestParseThemeAdaptiveColor(t *testing.T) {
	base := DefaultTheme(lipgloss.NewRenderer(nil))
	data := []byte(`
border:
  light: "#AAAAAA"
  dark: "#333333"
`)
	got, err := parseTheme(data, base)
	if err != nil {
		t.Fatalf("parseTheme: %v", err)
	}
	if got.Border.Light != "#AAAAAA" || got.Border.Dark != "#333333" {
		t.Errorf("Expected explicit light/dark pair, got %+v", got.Border)
	}
}

func TestParseThemeIconOverride(t *testing.T) {
	base := DefaultTheme(lipgloss.NewRenderer(nil))
	data := []byte(`
icons:
  critical:
    glyph: "!"
    color: "#FF0000"
`)
	got, err := parseTheme(data, base)
	if err != nil {
		t.Fatalf("parseTheme: %v", err)
	}
	if got.styleIcon(StyleCritical).Glyph != "!" {
		t.Errorf("Expected overridden critical glyph, got %q", got.styleIcon(StyleCritical).Glyph)
	}
	// Untouched entries survive.
	if got.styleIcon(StyleWarning).Glyph != base.styleIcon(StyleWarning).Glyph {
		t.Error("Warning icon should keep the default")
	}
	// The base theme's table is not mutated.
	if base.styleIcon(StyleCritical).Glyph == "!" {
		t.Error("Override must not mutate the base theme")
	}
}

func TestParseThemeMalformed(t *testing.T) {
	base := DefaultTheme(lipgloss.NewRenderer(nil))
	if _, err := parseTheme([]byte("size: [nonsense"), base); err == nil {
		t.Error("Expected an error for malformed YAML")
	}
}
