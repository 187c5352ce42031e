package alert

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap is the panel's fixed keyboard model. Button key equivalents
// (Enter/Esc) are resolved against the registered buttons; the rest
// drive focus and the optional controls.
type keyMap struct {
	Left        key.Binding
	Right       key.Binding
	Activate    key.Binding
	Suppression key.Binding
	Help        key.Binding
}

var panelKeys = keyMap{
	Left:        key.NewBinding(key.WithKeys("left", "shift+tab"), key.WithHelp("←", "previous button")),
	Right:       key.NewBinding(key.WithKeys("right", "tab"), key.WithHelp("→", "next button")),
	Activate:    key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "press button")),
	Suppression: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "toggle suppression")),
	Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

// handleKey routes one key press. It returns the clicked button when
// the press dismissed the panel.
func (a *Alert) handleKey(msg tea.KeyMsg) (clicked *Button, handled bool) {
	a.helpPressed = false

	// Key equivalents first: Enter fires the confirm button, Esc the
	// cancel button, regardless of focus.
	for _, b := range a.panel.buttons {
		if key.Matches(msg, b.Key) {
			return b, true
		}
	}

	switch {
	case key.Matches(msg, panelKeys.Left):
		if a.focused > 0 {
			a.focused--
		}
		return nil, true
	case key.Matches(msg, panelKeys.Right):
		if a.focused < len(a.panel.buttons)-1 {
			a.focused++
		}
		return nil, true
	case key.Matches(msg, panelKeys.Activate):
		if a.focused >= 0 && a.focused < len(a.panel.buttons) {
			return a.panel.buttons[a.focused], true
		}
		return nil, true
	case key.Matches(msg, panelKeys.Suppression):
		if a.showsSuppression {
			a.suppressChecked = !a.suppressChecked
			return nil, true
		}
	case key.Matches(msg, panelKeys.Help):
		if a.panel.helpAttached {
			a.helpPressed = true
			if a.delegate.OnHelpRequested != nil {
				a.delegate.OnHelpRequested(a)
			}
			return nil, true
		}
	}
	return nil, false
}

// dismiss ends the session with the clicked button's tag. The
// presenting side owns the teardown mechanics (Sheet.Update ends the
// sheet, RunModal quits its program); both converge here, and the
// end-of-session notification runs synchronously before either
// returns.
func (a *Alert) dismiss(tag int) {
	a.state = StateEnded
	a.alertDidEnd(tag)
}

// alertDidEnd delivers the end-of-session notification. The completion
// registered via BeginSheet is cleared after its first invocation, so a
// double call never double-fires it.
func (a *Alert) alertDidEnd(code int) {
	if a.delegate.OnAlertEnded != nil {
		a.delegate.OnAlertEnded(a, code)
	}
	if a.completion != nil {
		completion, context := a.completion, a.context
		a.completion = nil
		a.context = nil
		completion(a, code, context)
	}
}

// RunModal presents the alert modally in its own bubbletea program and
// blocks until a button dismisses it. The return code is the clicked
// button's tag, or ReturnAborted when the session ended without a
// click. Program options (tea.WithOutput, tea.WithInput, ...) pass
// through to the program.
func (a *Alert) RunModal(opts ...tea.ProgramOption) (int, error) {
	a.ensurePanel(false)
	a.layoutPanel()
	a.state = StateRunningModal

	m := &modalModel{alert: a, code: ReturnAborted}
	p := tea.NewProgram(m, opts...)
	out, err := p.Run()
	if err != nil {
		a.state = StateEnded
		return ReturnAborted, err
	}

	final := out.(*modalModel)
	if final.code == ReturnAborted {
		// Aborted session: close without a click, still notify.
		a.dismiss(ReturnAborted)
	}
	return final.code, nil
}

// modalModel is the dedicated program model for RunModal.
type modalModel struct {
	alert  *Alert
	width  int
	height int
	code   int
}

func (m *modalModel) Init() tea.Cmd {
	return nil
}

func (m *modalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if clicked, _ := m.alert.handleKey(msg); clicked != nil {
			m.code = clicked.Tag
			m.alert.dismiss(clicked.Tag)
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *modalModel) View() string {
	return m.alert.placeModal(m.width, m.height)
}

// SheetEndedMsg is emitted by a sheet when a button click ends it. The
// host model receives it after the sheet has already ended and the
// delegate/completion callbacks have run.
type SheetEndedMsg struct {
	Alert      *Alert
	ReturnCode int
	Context    any
}

// Sheet presents the alert attached to a host view. The host embeds it,
// forwards messages to Update while Active, and composites View over
// its own view.
type Sheet struct {
	alert *Alert
}

// BeginSheet prepares the alert for sheet presentation. If the panel
// was already built without the sheet style bit it is rebuilt, the one
// exception to once-only panel construction. The completion callback
// (optional, with an arbitrary context value) fires exactly once when a
// button ends the sheet; the caller is not blocked.
func (a *Alert) BeginSheet(completion func(*Alert, int, any), context any) *Sheet {
	if a.panel != nil && a.panel.mask&maskDocModal == 0 {
		a.panel = nil
		a.needsLayout = true
	}
	a.ensurePanel(true)
	a.layoutPanel()
	a.completion = completion
	a.context = context
	a.state = StateRunningSheet
	return &Sheet{alert: a}
}

// Alert returns the presented alert.
func (s *Sheet) Alert() *Alert {
	return s.alert
}

// Active reports whether the sheet is still running. An inactive sheet
// ignores input and renders nothing over the host.
func (s *Sheet) Active() bool {
	return s.alert.state == StateRunningSheet
}

// Update handles one message for the sheet. When a button click ends
// the sheet, the end-of-session callbacks run synchronously and the
// returned command delivers SheetEndedMsg to the host.
func (s *Sheet) Update(msg tea.Msg) tea.Cmd {
	if !s.Active() {
		return nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	clicked, _ := s.alert.handleKey(keyMsg)
	if clicked == nil {
		return nil
	}

	a, tag := s.alert, clicked.Tag
	context := a.context
	a.dismiss(tag)
	return func() tea.Msg {
		return SheetEndedMsg{Alert: a, ReturnCode: tag, Context: context}
	}
}

// View composites the sheet over the host's rendered view.
func (s *Sheet) View(host string, width, height int) string {
	if !s.Active() {
		return host
	}
	return s.alert.placeSheet(host, width, height)
}
