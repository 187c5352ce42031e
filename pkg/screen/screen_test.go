package screen

import (
	"os"
	"testing"

	"golang.org/x/term"
)

func TestVisibleFrameNonTerminal(t *testing.T) {
	// A pipe is never a terminal, so the frame must be zero.
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	frame := visibleFrame(int(w.Fd()))
	if !frame.IsZero() {
		t.Errorf("Expected zero rect for a non-terminal fd, got %+v", frame)
	}
}

func TestVisibleFrameMatchesTerminalState(t *testing.T) {
	fd := int(os.Stdout.Fd())
	frame := visibleFrame(fd)

	if term.IsTerminal(fd) {
		if frame.Size.Width <= 0 || frame.Size.Height <= 0 {
			t.Errorf("Expected positive terminal size, got %+v", frame.Size)
		}
		if frame.Origin.X != 0 || frame.Origin.Y != 0 {
			t.Errorf("Expected origin at top-left, got %+v", frame.Origin)
		}
	} else if !frame.IsZero() {
		t.Errorf("Expected zero rect without a terminal, got %+v", frame)
	}
}
