package alert

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Dicklesworthstone/termalert/pkg/geom"
)

// Fixed layout constants. These are part of the panel's visual contract
// rather than theme attributes, so they are not overridable.
const (
	// minButtonWidth is the floor for a button's fitted width, in units.
	minButtonWidth = 80

	// buttonSpacing is the horizontal gap between adjacent buttons, in units.
	buttonSpacing = 10

	// buttonRowHeight is the natural fitted height of a panel button, in units.
	buttonRowHeight = 24

	// sheetTitleBarHeight is subtracted from the panel height when the
	// panel is presented as a sheet (no title bar), in units.
	sheetTitleBarHeight = 26

	// labelHeightCorrection pads a wrapped label's measured height, in units.
	labelHeightCorrection = 4
)

// Icon is a themed glyph with a foreground color. The zero value means
// "no icon", which skips the icon view entirely.
type Icon struct {
	Glyph string
	Color lipgloss.AdaptiveColor
}

// IsZero returns true if the icon is unset.
func (i Icon) IsZero() bool {
	return i.Glyph == ""
}

// size returns the icon's natural size in theme units.
func (i Icon) size(t Theme) geom.Size {
	if i.IsZero() {
		return geom.Size{}
	}
	return geom.Size{
		Width:  runewidth.StringWidth(i.Glyph) * t.UnitsPerCol,
		Height: t.UnitsPerRow,
	}
}

// Theme carries every presentation constant the alert panel resolves at
// layout time. Construct one with DefaultTheme and override fields per
// instance, or load overrides from a YAML file with LoadTheme.
//
// Geometry fields are in abstract units; UnitsPerCol/UnitsPerRow define
// the conversion to terminal cells at render time.
type Theme struct {
	// Size is the default panel size. The height acts as a minimum: the
	// layout pass grows the panel to fit its content.
	Size geom.Size

	// ContentInset frames the panel's content area. The large left inset
	// is the icon column.
	ContentInset geom.Insets

	// InformativeOffset is the vertical gap between stacked content
	// elements (message, informative text, accessory view, suppression).
	InformativeOffset int

	// ButtonOffset is extra height reserved above the bottom inset for
	// the button row.
	ButtonOffset int

	// ImageOffset positions the icon view.
	ImageOffset geom.Point

	// HelpImageLeftOffset is the x position of the help button on the
	// button row.
	HelpImageLeftOffset int

	// SuppressionOffset nudges the suppression checkbox from its computed
	// position.
	SuppressionOffset geom.Point

	// UnitsPerCol and UnitsPerRow map theme units to terminal cells.
	UnitsPerCol int
	UnitsPerRow int

	// TextAlignment positions label text within its frame.
	TextAlignment lipgloss.Position

	TextColor        lipgloss.AdaptiveColor
	MessageBold      bool
	InformativeFaint bool

	// StyleIcons maps an alert style to its default icon. An explicit
	// icon set on the alert takes precedence.
	StyleIcons map[Style]Icon

	HelpIcon        Icon
	HelpIconPressed Icon

	// Chrome colors used by the terminal renderer.
	Border       lipgloss.AdaptiveColor
	ButtonColor  lipgloss.AdaptiveColor
	ButtonFocus  lipgloss.AdaptiveColor
	SuppressText lipgloss.AdaptiveColor

	// Renderer resolves styles against the output terminal's color
	// profile. Defaults to the global lipgloss renderer.
	Renderer *lipgloss.Renderer
}

// DefaultTheme returns the stock theme. Pass nil to use the global
// lipgloss renderer.
func DefaultTheme(renderer *lipgloss.Renderer) Theme {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	return Theme{
		Size:              geom.Size{Width: 400, Height: 110},
		ContentInset:      geom.Insets{Top: 15, Right: 15, Bottom: 15, Left: 50},
		InformativeOffset: 6,
		ButtonOffset:      10,
		ImageOffset:       geom.Point{X: 15, Y: 12},
		UnitsPerCol:       8,
		UnitsPerRow:       16,
		TextAlignment:     lipgloss.Left,
		TextColor:         lipgloss.AdaptiveColor{Light: "#1C1C1C", Dark: "#F8F8F2"},
		MessageBold:       true,
		InformativeFaint:  true,
		StyleIcons: map[Style]Icon{
			StyleWarning:       {Glyph: "⚠", Color: lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFB86C"}},
			StyleInformational: {Glyph: "ℹ", Color: lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#8BE9FD"}},
			StyleCritical:      {Glyph: "✖", Color: lipgloss.AdaptiveColor{Light: "#B22222", Dark: "#FF5555"}},
		},
		HelpIcon:        Icon{Glyph: "?", Color: lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#8BE9FD"}},
		HelpIconPressed: Icon{Glyph: "?", Color: lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#BD93F9"}},
		Border:          lipgloss.AdaptiveColor{Light: "#B0B0B0", Dark: "#44475A"},
		ButtonColor:     lipgloss.AdaptiveColor{Light: "#4A4A4A", Dark: "#BFBFBF"},
		ButtonFocus:     lipgloss.AdaptiveColor{Light: "#5F00AF", Dark: "#BD93F9"},
		SuppressText:    lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#6272A4"},
		Renderer:        renderer,
	}
}

// styleIcon resolves the default icon for a style. Missing table entries
// mean "no icon".
func (t Theme) styleIcon(s Style) Icon {
	if t.StyleIcons == nil {
		return Icon{}
	}
	return t.StyleIcons[s]
}

// cols converts a width in units to terminal columns, rounding up so
// content never loses its last cell.
func (t Theme) cols(units int) int {
	if t.UnitsPerCol <= 0 {
		return units
	}
	return (units + t.UnitsPerCol - 1) / t.UnitsPerCol
}

// rows converts a height in units to terminal rows, rounding up.
func (t Theme) rows(units int) int {
	if t.UnitsPerRow <= 0 {
		return units
	}
	return (units + t.UnitsPerRow - 1) / t.UnitsPerRow
}

// col converts an x position in units to a column index, truncating.
func (t Theme) col(units int) int {
	if t.UnitsPerCol <= 0 {
		return units
	}
	return units / t.UnitsPerCol
}

// row converts a y position in units to a row index, truncating.
func (t Theme) row(units int) int {
	if t.UnitsPerRow <= 0 {
		return units
	}
	return units / t.UnitsPerRow
}

// measureText returns the size of a pre-wrapped text block in units.
func (t Theme) measureText(s string) geom.Size {
	if s == "" {
		return geom.Size{}
	}
	width, lines := 0, 1
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '\n' {
			if w := runewidth.StringWidth(s[start:i]); w > width {
				width = w
			}
			if i < len(s) {
				lines++
			}
			start = i + 1
		}
	}
	return geom.Size{Width: width * t.UnitsPerCol, Height: lines * t.UnitsPerRow}
}
