// Package screen reports the host terminal's visible geometry.
package screen

import (
	"os"

	"golang.org/x/term"

	"github.com/Dicklesworthstone/termalert/pkg/geom"
)

// VisibleFrame returns the visible screen rectangle in terminal cells:
// origin at the top-left, size the terminal's current width and height.
// When stdout is not attached to a terminal there is no screen to
// measure and the zero rectangle is returned.
func VisibleFrame() geom.Rect {
	return visibleFrame(int(os.Stdout.Fd()))
}

func visibleFrame(fd int) geom.Rect {
	if !term.IsTerminal(fd) {
		return geom.Rect{}
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return geom.Rect{}
	}
	return geom.NewRect(0, 0, width, height)
}
