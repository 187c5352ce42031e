// Package alert implements a modal alert panel for terminal UIs: a
// message/informative text pair, an ordered set of dismiss buttons, an
// optional accessory view, suppression checkbox and help button, laid
// out lazily and presented either modally (blocking) or as a sheet
// attached to a host view.
//
// Layout is computed in abstract theme units and mapped to terminal
// cells at render time; see Theme.
package alert

import "github.com/Dicklesworthstone/termalert/pkg/geom"

// Style selects the default icon for the panel.
type Style int

const (
	StyleWarning Style = iota
	StyleInformational
	StyleCritical
)

// String returns the style name for display and snapshots.
func (s Style) String() string {
	switch s {
	case StyleInformational:
		return "informational"
	case StyleCritical:
		return "critical"
	default:
		return "warning"
	}
}

// State is the panel's lifecycle state.
type State int

const (
	StateUnshown State = iota
	StateRunningModal
	StateRunningSheet
	StateEnded
)

// ReturnAborted is reported when a modal session ends without a button
// click (e.g. the program was interrupted).
const ReturnAborted = -1

// DefaultSuppressionTitle labels the suppression checkbox unless the
// caller overrides it.
const DefaultSuppressionTitle = "Do not show this message again"

// Delegate carries the optional end-of-session callbacks. Each field is
// individually optional; a nil callback is skipped, never an error.
type Delegate struct {
	// OnAlertEnded runs when a session ends, with the clicked button's
	// tag as the return code.
	OnAlertEnded func(*Alert, int)

	// OnHelpRequested runs when the help button is activated.
	OnHelpRequested func(*Alert)
}

// Accessory is an arbitrary view attached below the informative text.
// Its natural size is measured from the rendered string.
type Accessory interface {
	View() string
}

// Alert owns the panel's content and drives its lazy layout and modal
// lifecycle. The zero value is not usable; construct with New,
// NewWithMessage or NewFromError.
type Alert struct {
	style       Style
	message     string
	informative string
	icon        Icon

	// buttons holds visual left-to-right order: AddButton inserts at the
	// front, so the first button added ends up last, i.e. rightmost.
	buttons []*Button

	accessory        Accessory
	showsSuppression bool
	suppressChecked  bool
	suppressTitle    string
	showsHelp        bool

	delegate Delegate
	theme    Theme

	panel       *panel
	layout      Layout
	needsLayout bool

	state       State
	focused     int
	helpPressed bool
	completion  func(*Alert, int, any)
	context     any
}

// New returns an empty warning-style alert with the default theme.
func New() *Alert {
	return &Alert{
		suppressTitle: DefaultSuppressionTitle,
		theme:         DefaultTheme(nil),
		needsLayout:   true,
	}
}

// NewWithMessage builds an alert from a message and up to three button
// titles. Empty titles are skipped, so callers can pass just a default
// button. The informative text may be empty.
func NewWithMessage(message, defaultButton, alternateButton, otherButton, informative string) *Alert {
	a := New()
	a.message = message
	a.informative = informative
	for _, title := range []string{defaultButton, alternateButton, otherButton} {
		if title != "" {
			a.AddButton(title)
		}
	}
	return a
}

// NewFromError builds a critical-style alert for an error message. No
// buttons are registered; the implicit "OK" button appears at first
// render.
func NewFromError(message string) *Alert {
	a := New()
	a.style = StyleCritical
	a.message = message
	return a
}

// AddButton registers a dismiss button. The button's tag (and return
// code) is the number of buttons registered before it. New buttons are
// inserted at the front of the order, so the first button added renders
// rightmost.
//
// Known limitation: buttons added after the panel was first presented
// do not appear, because panel construction happens exactly once.
func (a *Alert) AddButton(title string) *Button {
	tag := len(a.buttons)
	b := &Button{
		Title: title,
		Tag:   tag,
		Key:   keyEquivalentFor(tag, title),
	}
	a.buttons = append([]*Button{b}, a.buttons...)
	a.needsLayout = true
	return b
}

// Buttons returns the registered buttons in visual left-to-right order.
func (a *Alert) Buttons() []*Button {
	return a.buttons
}

// AttachedButtons returns the buttons attached to the built panel, in
// visual left-to-right order, parallel to Layout().Buttons. Before the
// panel exists it is the same as Buttons; buttons registered after the
// panel was built are not attached and do not appear here.
func (a *Alert) AttachedButtons() []*Button {
	if a.panel == nil {
		return a.buttons
	}
	return a.panel.buttons
}

// SetMessageText sets the primary message.
func (a *Alert) SetMessageText(text string) {
	a.message = text
	a.needsLayout = true
}

// MessageText returns the primary message.
func (a *Alert) MessageText() string {
	return a.message
}

// SetInformativeText sets the secondary, smaller text.
func (a *Alert) SetInformativeText(text string) {
	a.informative = text
	a.needsLayout = true
}

// InformativeText returns the secondary text.
func (a *Alert) InformativeText() string {
	return a.informative
}

// SetStyle selects the default icon family.
func (a *Alert) SetStyle(s Style) {
	a.style = s
	a.needsLayout = true
}

// AlertStyle returns the current style.
func (a *Alert) AlertStyle() Style {
	return a.style
}

// SetIcon overrides the style-based default icon. A zero Icon restores
// the default.
func (a *Alert) SetIcon(icon Icon) {
	a.icon = icon
	a.needsLayout = true
}

// Icon returns the effective icon: the explicit override if set,
// otherwise the theme's icon for the current style.
func (a *Alert) Icon() Icon {
	if !a.icon.IsZero() {
		return a.icon
	}
	return a.theme.styleIcon(a.style)
}

// SetAccessoryView attaches a view below the informative text. Pass nil
// to remove it.
func (a *Alert) SetAccessoryView(v Accessory) {
	a.accessory = v
	a.needsLayout = true
}

// AccessoryView returns the attached accessory view, or nil.
func (a *Alert) AccessoryView() Accessory {
	return a.accessory
}

// SetShowsSuppressionButton toggles the "do not show again" checkbox.
func (a *Alert) SetShowsSuppressionButton(shows bool) {
	a.showsSuppression = shows
	a.needsLayout = true
}

// ShowsSuppressionButton reports whether the checkbox is shown.
func (a *Alert) ShowsSuppressionButton() bool {
	return a.showsSuppression
}

// SetSuppressionTitle overrides the checkbox label.
func (a *Alert) SetSuppressionTitle(title string) {
	a.suppressTitle = title
	a.needsLayout = true
}

// SuppressionChecked reports whether the user ticked the checkbox
// during the session.
func (a *Alert) SuppressionChecked() bool {
	return a.suppressChecked
}

// SetShowsHelp toggles the help button.
func (a *Alert) SetShowsHelp(shows bool) {
	a.showsHelp = shows
	a.needsLayout = true
}

// ShowsHelp reports whether the help button is shown.
func (a *Alert) ShowsHelp() bool {
	return a.showsHelp
}

// SetDelegate installs the end-of-session callbacks.
func (a *Alert) SetDelegate(d Delegate) {
	a.delegate = d
}

// SetTheme replaces the panel's theme.
func (a *Alert) SetTheme(t Theme) {
	a.theme = t
	a.needsLayout = true
}

// Theme returns the current theme.
func (a *Alert) Theme() Theme {
	return a.theme
}

// State returns the lifecycle state.
func (a *Alert) State() State {
	return a.state
}

// Layout returns the most recently computed layout, ensuring it is
// current first.
func (a *Alert) Layout() Layout {
	a.ensurePanel(false)
	a.layoutPanel()
	return a.layout
}

// PanelSize returns the laid-out panel size in units.
func (a *Alert) PanelSize() geom.Size {
	return a.Layout().Panel
}
