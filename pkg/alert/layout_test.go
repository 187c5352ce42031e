package alert

import (
	"strings"
	"testing"
)

func TestLayoutDefaultPanelSize(t *testing.T) {
	a := testAlert()
	a.AddButton("OK")
	l := a.Layout()

	// Sparse content: the themed minimum height wins, plus the bottom
	// inset and button offset.
	wantHeight := 110 + 15 + 10
	if l.Panel.Width != 400 {
		t.Errorf("Expected panel width 400, got %d", l.Panel.Width)
	}
	if l.Panel.Height != wantHeight {
		t.Errorf("Expected panel height %d, got %d", wantHeight, l.Panel.Height)
	}
}

func TestLayoutSheetSubtractsTitleBar(t *testing.T) {
	modal := testAlert()
	modal.AddButton("OK")
	modalHeight := modal.Layout().Panel.Height

	sheet := testAlert()
	sheet.AddButton("OK")
	sheet.BeginSheet(nil, nil)
	sheetHeight := sheet.Layout().Panel.Height

	if modalHeight-sheetHeight != 26 {
		t.Errorf("Expected sheet panel 26 units shorter, got modal=%d sheet=%d",
			modalHeight, sheetHeight)
	}
}

func TestLayoutButtonRow(t *testing.T) {
	a := testAlert()
	a.AddButton("OK")     // tag 0, rightmost
	a.AddButton("Cancel") // tag 1, left of OK
	l := a.Layout()

	if len(l.Buttons) != 2 {
		t.Fatalf("Expected 2 button frames, got %d", len(l.Buttons))
	}
	ok, cancel := l.Buttons[1], l.Buttons[0]

	// "OK" falls below the minimum fitted width.
	if ok.Size.Width != 80 {
		t.Errorf("Expected min button width 80, got %d", ok.Size.Width)
	}
	// Rightmost button ends at the right content inset.
	if ok.MaxX() != 400-15 {
		t.Errorf("Expected right edge at %d, got %d", 400-15, ok.MaxX())
	}
	// 10-unit gap between buttons.
	if cancel.MaxX() != ok.Origin.X-10 {
		t.Errorf("Expected 10-unit button gap, got %d", ok.Origin.X-cancel.MaxX())
	}
	if ok.Origin.Y != cancel.Origin.Y {
		t.Error("Buttons should share one row")
	}
}

func TestLayoutMessageWrapGrowsPanel(t *testing.T) {
	short := testAlert()
	short.SetMessageText("Short")
	short.AddButton("OK")
	shortLayout := short.Layout()

	long := testAlert()
	long.SetMessageText(strings.Repeat("a long message that will surely wrap ", 8))
	long.AddButton("OK")
	longLayout := long.Layout()

	if longLayout.Message.Size.Height <= shortLayout.Message.Size.Height {
		t.Error("Wrapped message should be taller than a single line")
	}
	if longLayout.Panel.Height <= shortLayout.Panel.Height {
		t.Error("Panel should grow to fit wrapped content")
	}
	if longLayout.Message.Size.Width != 400-15-50 {
		t.Errorf("Message label should span the content width, got %d",
			longLayout.Message.Size.Width)
	}
}

func TestLayoutElementStacking(t *testing.T) {
	a := testAlert()
	a.SetMessageText("Message")
	a.SetInformativeText("Informative")
	a.SetAccessoryView(staticAccessory("accessory\ncontent"))
	a.SetShowsSuppressionButton(true)
	a.AddButton("OK")
	l := a.Layout()

	if l.Message.Origin.Y != 15 || l.Message.Origin.X != 50 {
		t.Errorf("Message should start at the content inset, got (%d,%d)",
			l.Message.Origin.X, l.Message.Origin.Y)
	}
	if l.Informative.Origin.Y != l.Message.MaxY()+6 {
		t.Errorf("Informative should sit 6 below the message, got %d (message bottom %d)",
			l.Informative.Origin.Y, l.Message.MaxY())
	}
	if l.Accessory.Origin.Y != l.Informative.MaxY()+6 {
		t.Errorf("Accessory should sit 6 below informative, got %d", l.Accessory.Origin.Y)
	}
	if l.Suppression.Origin.Y != l.Accessory.MaxY()+6 {
		t.Errorf("Suppression should sit below the accessory view, got %d", l.Suppression.Origin.Y)
	}
	for _, frame := range l.Buttons {
		if frame.Origin.Y <= l.Suppression.MaxY() {
			t.Error("Button row should sit below all content")
		}
	}
}

func TestLayoutSuppressionBelowInformativeWithoutAccessory(t *testing.T) {
	a := testAlert()
	a.SetMessageText("Message")
	a.SetInformativeText("Informative")
	a.SetShowsSuppressionButton(true)
	a.AddButton("OK")
	l := a.Layout()

	if !l.Accessory.IsZero() {
		t.Error("No accessory view was set; frame should be zero")
	}
	if l.Suppression.Origin.Y != l.Informative.MaxY()+6 {
		t.Errorf("Suppression should fall back to below informative, got %d", l.Suppression.Origin.Y)
	}
}

func TestLayoutIconFrame(t *testing.T) {
	a := testAlert()
	a.AddButton("OK")
	l := a.Layout()

	if l.Icon.Origin.X != 15 || l.Icon.Origin.Y != 12 {
		t.Errorf("Icon should sit at the themed image offset, got (%d,%d)",
			l.Icon.Origin.X, l.Icon.Origin.Y)
	}
	if l.Icon.Size.IsZero() {
		t.Error("Icon frame should have the icon's natural size")
	}
}

func TestLayoutHelpButton(t *testing.T) {
	a := testAlert()
	a.AddButton("OK")
	a.SetShowsHelp(true)
	l := a.Layout()

	if l.Help.IsZero() {
		t.Fatal("Help frame should be set when help is shown")
	}
	if l.Help.Origin.Y != l.Buttons[0].Origin.Y {
		t.Error("Help button should share the button row")
	}
	if l.Help.Origin.X != 0 {
		t.Errorf("Help button should sit at the themed left offset, got %d", l.Help.Origin.X)
	}
}

// staticAccessory is a fixed-content accessory view for tests.
type staticAccessory string

func (s staticAccessory) View() string { return string(s) }
