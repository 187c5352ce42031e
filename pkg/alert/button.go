package alert

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/mattn/go-runewidth"

	"github.com/Dicklesworthstone/termalert/pkg/geom"
)

// buttonChromeCols is the cell width a rendered button adds around its
// title ("[ " and " ]").
const buttonChromeCols = 4

// Button is a dismiss button on the panel. Tag doubles as the return
// code reported when the button dismisses the alert.
type Button struct {
	Title string
	Tag   int

	// Key is the button's key equivalent: Enter for the first button
	// added, Esc for any button titled "Cancel", disabled otherwise.
	Key key.Binding
}

// keyEquivalentFor implements the key-equivalent rule. The index check
// runs before the title check, so a "Cancel" button added first gets
// the confirm key; callers who want Esc on Cancel must not add it
// first.
func keyEquivalentFor(index int, title string) key.Binding {
	if index == 0 {
		return key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", title))
	}
	if strings.EqualFold(title, "Cancel") {
		return key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", title))
	}
	return key.NewBinding(key.WithDisabled())
}

// isConfirm reports whether the button carries the Enter key equivalent.
func (b *Button) isConfirm() bool {
	for _, k := range b.Key.Keys() {
		if k == "enter" {
			return true
		}
	}
	return false
}

// isCancel reports whether the button carries the Esc key equivalent.
func (b *Button) isCancel() bool {
	for _, k := range b.Key.Keys() {
		if k == "esc" {
			return true
		}
	}
	return false
}

// fittedSize returns the button's natural size in units, floored at the
// minimum button width.
func (b *Button) fittedSize(t Theme) geom.Size {
	width := (runewidth.StringWidth(b.Title) + buttonChromeCols) * t.UnitsPerCol
	if width < minButtonWidth {
		width = minButtonWidth
	}
	return geom.Size{Width: width, Height: buttonRowHeight}
}
