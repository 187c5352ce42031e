package alert

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// viewPanel renders the laid-out panel to a bordered string. Element
// positions come straight from the layout frames, converted to cells by
// the theme scale.
func (a *Alert) viewPanel() string {
	a.layoutPanel()

	t := a.theme
	l := a.layout
	canvas := blankCanvas(t.cols(l.Panel.Width), t.rows(l.Panel.Height))
	width := t.cols(l.Panel.Width)

	if icon := a.Icon(); !icon.IsZero() && !l.Icon.IsZero() {
		glyph := t.Renderer.NewStyle().Bold(true).Foreground(icon.Color).Render(icon.Glyph)
		canvas = overlayAt(canvas, glyph, t.col(l.Icon.Origin.X), t.row(l.Icon.Origin.Y), width)
	}

	if l.WrappedMessage != "" {
		msg := t.Renderer.NewStyle().
			Bold(t.MessageBold).
			Foreground(t.TextColor).
			Width(t.cols(l.Message.Size.Width)).
			Align(t.TextAlignment).
			Render(l.WrappedMessage)
		canvas = overlayAt(canvas, msg, t.col(l.Message.Origin.X), t.row(l.Message.Origin.Y), width)
	}

	if l.WrappedInformative != "" {
		inf := t.Renderer.NewStyle().
			Faint(t.InformativeFaint).
			Foreground(t.TextColor).
			Width(t.cols(l.Informative.Size.Width)).
			Align(t.TextAlignment).
			Render(l.WrappedInformative)
		canvas = overlayAt(canvas, inf, t.col(l.Informative.Origin.X), t.row(l.Informative.Origin.Y), width)
	}

	if a.accessory != nil && !l.Accessory.IsZero() {
		canvas = overlayAt(canvas, a.accessory.View(), t.col(l.Accessory.Origin.X), t.row(l.Accessory.Origin.Y), width)
	}

	if a.showsSuppression && !l.Suppression.IsZero() {
		sup := t.Renderer.NewStyle().
			Foreground(t.SuppressText).
			Render(suppressionLabel(a.suppressChecked, a.suppressTitle))
		canvas = overlayAt(canvas, sup, t.col(l.Suppression.Origin.X), t.row(l.Suppression.Origin.Y), width)
	}

	for i, b := range a.panel.buttons {
		frame := l.Buttons[i]
		canvas = overlayAt(canvas, a.viewButton(b, i == a.focused, t.cols(frame.Size.Width)),
			t.col(frame.Origin.X), t.row(frame.Origin.Y), width)
	}

	if a.panel.helpAttached && !l.Help.IsZero() {
		icon := t.HelpIcon
		if a.helpPressed {
			icon = t.HelpIconPressed
		}
		help := t.Renderer.NewStyle().Bold(true).Foreground(icon.Color).Render("(" + icon.Glyph + ")")
		canvas = overlayAt(canvas, help, t.col(l.Help.Origin.X), t.row(l.Help.Origin.Y), width)
	}

	border := lipgloss.RoundedBorder()
	box := t.Renderer.NewStyle().
		Border(border).
		BorderForeground(t.Border)
	if a.panel.mask.isSheet() {
		// Sheets hang from the parent window; no top edge of their own.
		box = box.BorderTop(false)
	}
	return box.Render(canvas)
}

// viewButton renders one button at its fitted cell width.
func (a *Alert) viewButton(b *Button, focused bool, width int) string {
	t := a.theme
	style := t.Renderer.NewStyle().
		Foreground(t.ButtonColor).
		Width(width).
		Align(lipgloss.Center)
	if focused {
		style = style.Foreground(t.ButtonFocus).Bold(true).Reverse(true)
	}
	return style.Render("[ " + b.Title + " ]")
}

// placeModal centers the panel in the host terminal area.
func (a *Alert) placeModal(width, height int) string {
	panel := a.viewPanel()
	if width <= 0 || height <= 0 {
		return panel
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel)
}

// placeSheet composites the panel over the parent view, top-centered,
// the way a sheet hangs from its window's title bar.
func (a *Alert) placeSheet(parent string, width, height int) string {
	panel := a.viewPanel()
	if width <= 0 || height <= 0 {
		return panel
	}
	base := fitCanvas(parent, width, height)
	x := (width - lipgloss.Width(panel)) / 2
	if x < 0 {
		x = 0
	}
	return overlayAt(base, panel, x, 0, width)
}

// fitCanvas pads or clips s to exactly width×height cells.
func fitCanvas(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padLine(lines[i], width)
	}
	return strings.Join(lines, "\n")
}
