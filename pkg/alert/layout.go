package alert

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/Dicklesworthstone/termalert/pkg/geom"
)

// Layout is the result of a layout pass: one frame per panel element,
// in theme units, plus the wrapped label text the renderer draws. A
// zero Rect means the element is absent.
type Layout struct {
	Panel       geom.Size
	Icon        geom.Rect
	Message     geom.Rect
	Informative geom.Rect
	Accessory   geom.Rect
	Suppression geom.Rect

	// Buttons is parallel to the panel's button slice, i.e. visual
	// left-to-right order.
	Buttons []geom.Rect

	Help geom.Rect

	WrappedMessage     string
	WrappedInformative string
}

// layoutPanel recomputes the panel geometry if the dirty flag is set.
// Single deterministic pass: every frame derives from already-placed
// siblings in the fixed order icon, message, informative, accessory,
// suppression, buttons, help.
func (a *Alert) layoutPanel() {
	if !a.needsLayout || a.panel == nil {
		return
	}

	t := a.theme
	p := a.panel
	l := Layout{}

	width := t.Size.Width
	contentWidth := width - t.ContentInset.Horizontal()
	wrapCols := t.col(contentWidth)

	if icon := a.Icon(); !icon.IsZero() {
		l.Icon = geom.Rect{Origin: t.ImageOffset, Size: icon.size(t)}
	}

	// Message label: wrap to the content width, size to the wrapped
	// text plus the fixed vertical correction.
	l.WrappedMessage = wordwrap.String(a.message, wrapCols)
	msgSize := t.measureText(l.WrappedMessage)
	l.Message = geom.NewRect(
		t.ContentInset.Left, t.ContentInset.Top,
		contentWidth, msgSize.Height+labelHeightCorrection,
	)

	// Informative label directly below, offset by the themed gap.
	l.WrappedInformative = wordwrap.String(a.informative, wrapCols)
	infSize := t.measureText(l.WrappedInformative)
	l.Informative = geom.NewRect(
		t.ContentInset.Left, l.Message.MaxY()+t.InformativeOffset,
		contentWidth, infSize.Height+labelHeightCorrection,
	)

	contentBottom := l.Informative.MaxY()

	if a.accessory != nil {
		view := a.accessory.View()
		l.Accessory = geom.NewRect(
			t.ContentInset.Left, contentBottom+t.InformativeOffset,
			lipgloss.Width(view)*t.UnitsPerCol, lipgloss.Height(view)*t.UnitsPerRow,
		)
		contentBottom = l.Accessory.MaxY()
	}

	if a.showsSuppression {
		supSize := t.measureText(suppressionLabel(false, a.suppressTitle))
		l.Suppression = geom.NewRect(
			t.ContentInset.Left+t.SuppressionOffset.X,
			contentBottom+t.InformativeOffset+t.SuppressionOffset.Y,
			supSize.Width, supSize.Height,
		)
		contentBottom = l.Suppression.MaxY()
	}

	// Button row. One representative button establishes the row height;
	// the panel grows past the themed minimum when content demands it.
	prelim := contentBottom + t.InformativeOffset + buttonRowHeight
	if prelim < t.Size.Height {
		prelim = t.Size.Height
	}
	buttonY := prelim - buttonRowHeight

	l.Buttons = make([]geom.Rect, len(p.buttons))
	x := width - t.ContentInset.Right
	for i := len(p.buttons) - 1; i >= 0; i-- {
		size := p.buttons[i].fittedSize(t)
		x -= size.Width
		l.Buttons[i] = geom.Rect{Origin: geom.Point{X: x, Y: buttonY}, Size: size}
		x -= buttonSpacing
	}

	if p.helpAttached {
		l.Help = geom.Rect{
			Origin: geom.Point{X: t.HelpImageLeftOffset, Y: buttonY},
			Size:   t.HelpIcon.size(t),
		}
	}

	height := prelim + t.ContentInset.Bottom + t.ButtonOffset
	if p.mask.isSheet() {
		height -= sheetTitleBarHeight
	}
	l.Panel = geom.Size{Width: width, Height: height}

	a.layout = l
	a.needsLayout = false
}

// suppressionLabel renders the checkbox line for measurement and
// display.
func suppressionLabel(checked bool, title string) string {
	box := "[ ] "
	if checked {
		box = "[x] "
	}
	return box + title
}
