package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/sahilm/fuzzy"

	"github.com/Dicklesworthstone/termalert/pkg/alert"
	"github.com/Dicklesworthstone/termalert/pkg/suppress"
)

// themeReloadedMsg is sent by the theme watcher when the override file
// changes on disk.
type themeReloadedMsg struct {
	theme alert.Theme
}

type galleryModel struct {
	theme alert.Theme
	store *suppress.Store

	items    []scenario
	filtered []int
	cursor   int

	filter    textinput.Model
	filtering bool

	form  *huh.Form
	sheet *alert.Sheet

	lastResult string
	width      int
	height     int
}

func newGallery(theme alert.Theme, store *suppress.Store) *galleryModel {
	filter := textinput.New()
	filter.Placeholder = "filter scenarios..."
	filter.CharLimit = 60

	m := &galleryModel{
		theme:  theme,
		store:  store,
		items:  scenarios(theme),
		filter: filter,
	}
	m.applyFilter()
	return m
}

func (m *galleryModel) Init() tea.Cmd {
	return nil
}

func (m *galleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case themeReloadedMsg:
		m.theme = msg.theme
		m.items = scenarios(m.theme)
		m.applyFilter()
		m.lastResult = "theme reloaded"
		return m, nil

	case alert.SheetEndedMsg:
		m.finishSheet(msg)
		return m, nil
	}

	if m.sheet != nil && m.sheet.Active() {
		return m, m.sheet.Update(msg)
	}
	if m.form != nil {
		return m.updateForm(msg)
	}
	if m.filtering {
		return m.updateFilter(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(key)
	}
	return m, nil
}

func (m *galleryModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "/":
		m.filtering = true
		m.filter.Focus()
		return m, textinput.Blink

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}

	case "enter":
		if len(m.filtered) > 0 {
			m.runScenario(m.items[m.filtered[m.cursor]])
		}

	case "c":
		m.form = newComposerForm()
		return m, m.form.Init()

	case "y":
		if m.lastResult != "" {
			if err := clipboard.WriteAll(m.lastResult); err == nil {
				m.lastResult += " (copied)"
			}
		}
	}
	return m, nil
}

func (m *galleryModel) updateFilter(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", "esc":
			m.filtering = false
			m.filter.Blur()
			if key.String() == "esc" {
				m.filter.SetValue("")
				m.applyFilter()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *galleryModel) applyFilter() {
	query := strings.TrimSpace(m.filter.Value())
	if query == "" {
		m.filtered = make([]int, len(m.items))
		for i := range m.items {
			m.filtered[i] = i
		}
		m.clampCursor()
		return
	}

	searchStrings := make([]string, len(m.items))
	for i, s := range m.items {
		searchStrings[i] = s.Title + " " + s.Description
	}

	matches := fuzzy.Find(query, searchStrings)
	m.filtered = make([]int, 0, len(matches))
	for _, match := range matches {
		m.filtered = append(m.filtered, match.Index)
	}
	m.cursor = 0
}

func (m *galleryModel) clampCursor() {
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// runScenario presents a scenario as a sheet, unless the suppression
// store already holds an answer for it.
func (m *galleryModel) runScenario(s scenario) {
	if m.store != nil && s.SuppressKey != "" {
		found, code, err := m.store.IsSuppressed(s.SuppressKey)
		if err == nil && found {
			m.lastResult = fmt.Sprintf("%s: suppressed, answered with code %d", s.Title, code)
			return
		}
	}

	a := s.Build(m.theme)
	m.sheet = a.BeginSheet(nil, s)
}

func (m *galleryModel) finishSheet(msg alert.SheetEndedMsg) {
	m.sheet = nil

	title := "custom alert"
	suppressKey := ""
	if s, ok := msg.Context.(scenario); ok {
		title = s.Title
		suppressKey = s.SuppressKey
	}
	m.lastResult = fmt.Sprintf("%s: ended with code %d", title, msg.ReturnCode)

	if m.store != nil && suppressKey != "" && msg.Alert.SuppressionChecked() {
		if err := m.store.Suppress(suppressKey, msg.ReturnCode); err != nil {
			m.lastResult += " (suppression not saved)"
		}
	}
}

func newComposerForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("message").
				Title("Message").
				Placeholder("Something happened"),
			huh.NewInput().
				Key("informative").
				Title("Informative text"),
			huh.NewInput().
				Key("buttons").
				Title("Buttons (comma separated, first is rightmost)").
				Placeholder("OK, Cancel"),
			huh.NewSelect[string]().
				Key("style").
				Title("Style").
				Options(huh.NewOptions("warning", "informational", "critical")...),
			huh.NewConfirm().
				Key("suppress").
				Title("Show suppression checkbox?"),
		),
	)
}

func (m *galleryModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		m.form = nil
		return m, nil
	}

	updated, cmd := m.form.Update(msg)
	if form, ok := updated.(*huh.Form); ok {
		m.form = form
	}

	switch m.form.State {
	case huh.StateCompleted:
		a := m.composeAlert()
		m.form = nil
		m.sheet = a.BeginSheet(nil, nil)
		return m, nil
	case huh.StateAborted:
		m.form = nil
		return m, nil
	}
	return m, cmd
}

func (m *galleryModel) composeAlert() *alert.Alert {
	a := alert.New()
	a.SetTheme(m.theme)
	a.SetMessageText(m.form.GetString("message"))
	a.SetInformativeText(m.form.GetString("informative"))

	switch m.form.GetString("style") {
	case "informational":
		a.SetStyle(alert.StyleInformational)
	case "critical":
		a.SetStyle(alert.StyleCritical)
	default:
		a.SetStyle(alert.StyleWarning)
	}

	for _, title := range strings.Split(m.form.GetString("buttons"), ",") {
		if title = strings.TrimSpace(title); title != "" {
			a.AddButton(title)
		}
	}
	if m.form.GetBool("suppress") {
		a.SetShowsSuppressionButton(true)
	}
	return a
}

func (m *galleryModel) View() string {
	if m.sheet != nil && m.sheet.Active() {
		return m.sheet.View(m.listView(), m.width, m.height)
	}
	if m.form != nil {
		return m.form.View()
	}
	return m.listView()
}

func (m *galleryModel) listView() string {
	t := m.theme
	var b strings.Builder

	titleStyle := t.Renderer.NewStyle().Bold(true).Foreground(t.TextColor)
	b.WriteString(titleStyle.Render("termalert gallery"))
	b.WriteString("\n\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString("  " + m.filter.View() + "\n\n")
	}

	dimStyle := t.Renderer.NewStyle().Faint(true)
	if len(m.filtered) == 0 {
		b.WriteString(dimStyle.Render("  no matching scenarios") + "\n")
	}
	for i, idx := range m.filtered {
		s := m.items[idx]
		cursor := "  "
		line := fmt.Sprintf("%s — %s", s.Title, s.Description)
		if i == m.cursor {
			cursor = "> "
			line = t.Renderer.NewStyle().Bold(true).Render(line)
		} else {
			line = s.Title + " — " + dimStyle.Render(s.Description)
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n")
	if m.lastResult != "" {
		b.WriteString(dimStyle.Render("last: "+m.lastResult) + "\n")
	}
	b.WriteString(dimStyle.Render("enter show · c compose · / filter · y copy result · q quit"))
	return b.String()
}
