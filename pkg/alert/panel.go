package alert

// styleMask mirrors the window style bits the panel is built with. A
// sheet panel carries maskDocModal without maskTitled; a regular modal
// panel carries both.
type styleMask int

const (
	maskTitled styleMask = 1 << iota
	maskDocModal
)

// isSheet reports whether the mask describes a title-bar-less sheet.
func (m styleMask) isSheet() bool {
	return m&maskDocModal != 0 && m&maskTitled == 0
}

// panel is the built window: the style mask plus the controls attached
// at construction time. Construction happens at most once per Alert
// (BeginSheet may rebuild it once when the existing panel lacks the
// sheet style bit). Buttons and the help button are frozen here, which
// is why buttons registered after first presentation do not appear.
type panel struct {
	mask         styleMask
	buttons      []*Button
	helpAttached bool
}

// ensurePanel builds the panel if it does not exist yet.
func (a *Alert) ensurePanel(sheet bool) {
	if a.panel != nil {
		return
	}
	mask := maskTitled
	if sheet {
		mask = maskDocModal
	}
	a.createPanel(mask)
}

// createPanel constructs the panel and attaches its controls. With no
// registered buttons a default "OK" button (tag 0) is injected so the
// panel is always dismissible.
func (a *Alert) createPanel(mask styleMask) {
	if len(a.buttons) == 0 {
		a.AddButton("OK")
	}
	a.panel = &panel{
		mask:         mask,
		buttons:      a.buttons,
		helpAttached: a.showsHelp,
	}
	a.focused = a.confirmIndex()
	a.needsLayout = true
}

// confirmIndex returns the index of the confirm-key button, the initial
// keyboard focus. The first button added sits at the end of the slice.
func (a *Alert) confirmIndex() int {
	for i, b := range a.buttons {
		if b.isConfirm() {
			return i
		}
	}
	if len(a.buttons) > 0 {
		return len(a.buttons) - 1
	}
	return 0
}
