package main

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/Dicklesworthstone/termalert/pkg/alert"
)

// scenario is one gallery entry. SuppressKey identifies the alert in
// the suppression store; scenarios without one are always shown.
type scenario struct {
	Title       string
	Description string
	SuppressKey string
	Build       func(theme alert.Theme) *alert.Alert
}

func scenarios(theme alert.Theme) []scenario {
	return []scenario{
		{
			Title:       "Delete file",
			Description: "warning, three buttons, suppression, help",
			SuppressKey: "delete-file",
			Build: func(theme alert.Theme) *alert.Alert {
				a := alert.NewWithMessage(
					"Delete \"notes.txt\"?",
					"Delete", "Cancel", "Move to Trash",
					"This cannot be undone.",
				)
				a.SetTheme(theme)
				a.SetShowsSuppressionButton(true)
				a.SetShowsHelp(true)
				return a
			},
		},
		{
			Title:       "Disk error",
			Description: "critical style from an error value",
			Build: func(theme alert.Theme) *alert.Alert {
				a := alert.NewFromError("disk I/O error: /dev/sda1 is read-only")
				a.SetTheme(theme)
				return a
			},
		},
		{
			Title:       "Update available",
			Description: "informational, default button order",
			Build: func(theme alert.Theme) *alert.Alert {
				a := alert.NewWithMessage(
					"A new version of termalert is available.",
					"Install", "Remind Me Later", "Skip This Version",
					"Version 0.2.0 fixes sheet placement on narrow terminals.",
				)
				a.SetTheme(theme)
				a.SetStyle(alert.StyleInformational)
				return a
			},
		},
		{
			Title:       "Release notes",
			Description: "markdown accessory view",
			Build: func(theme alert.Theme) *alert.Alert {
				a := alert.NewWithMessage("What's new in 0.2.0", "OK", "", "", "")
				a.SetTheme(theme)
				a.SetStyle(alert.StyleInformational)
				a.SetAccessoryView(newMarkdownAccessory(releaseNotes))
				return a
			},
		},
		{
			Title:       "Clear cache",
			Description: "suppression checkbox remembers the answer",
			SuppressKey: "clear-cache",
			Build: func(theme alert.Theme) *alert.Alert {
				a := alert.NewWithMessage(
					"Clear the render cache?",
					"Clear", "Cancel", "",
					"Cached previews will be rebuilt on demand.",
				)
				a.SetTheme(theme)
				a.SetShowsSuppressionButton(true)
				return a
			},
		},
	}
}

const releaseNotes = `**Highlights**

- Sheets drop the title bar row
- Buttons grow with their titles`

// markdownAccessory renders markdown once and serves the result as an
// alert accessory view.
type markdownAccessory struct {
	rendered string
}

func (m markdownAccessory) View() string {
	return m.rendered
}

func newMarkdownAccessory(source string) markdownAccessory {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(40),
	)
	if err != nil {
		return markdownAccessory{rendered: source}
	}
	rendered, err := renderer.Render(source)
	if err != nil {
		return markdownAccessory{rendered: source}
	}
	return markdownAccessory{rendered: strings.TrimRight(rendered, "\n")}
}
