// Package export renders alert layout snapshots for design review: a
// wireframe with one labeled rectangle per laid-out panel element, as
// SVG or PNG. Coordinates are the layout's theme units, so a snapshot
// shows exactly what the layout pass computed, independent of any
// terminal.
package export

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/Dicklesworthstone/termalert/pkg/alert"
	"github.com/Dicklesworthstone/termalert/pkg/geom"
)

// snapshotMargin frames the panel inside the image, in units.
const snapshotMargin = 20

// Frame is one labeled rectangle of a layout snapshot.
type Frame struct {
	Label string
	Rect  geom.Rect
}

// Frames flattens an alert's layout into labeled rectangles, skipping
// absent elements. The panel itself is always first.
func Frames(a *alert.Alert) []Frame {
	l := a.Layout()
	frames := []Frame{{
		Label: fmt.Sprintf("panel (%s)", a.AlertStyle()),
		Rect:  geom.Rect{Size: l.Panel},
	}}

	add := func(label string, r geom.Rect) {
		if !r.IsZero() {
			frames = append(frames, Frame{Label: label, Rect: r})
		}
	}
	add("icon", l.Icon)
	add("message", l.Message)
	add("informative", l.Informative)
	add("accessory", l.Accessory)
	add("suppression", l.Suppression)
	// Only buttons attached to the built panel have layout frames;
	// buttons registered after the panel was built have none.
	for i, b := range a.AttachedButtons() {
		add(fmt.Sprintf("button %q (tag %d)", b.Title, b.Tag), l.Buttons[i])
	}
	add("help", l.Help)
	return frames
}

// WriteSVG writes the wireframe as an SVG document.
func WriteSVG(w io.Writer, a *alert.Alert) error {
	frames := Frames(a)
	panel := frames[0].Rect.Size

	canvas := svg.New(w)
	canvas.Start(panel.Width+2*snapshotMargin, panel.Height+2*snapshotMargin)
	canvas.Rect(0, 0, panel.Width+2*snapshotMargin, panel.Height+2*snapshotMargin,
		"fill:#ffffff")

	for i, f := range frames {
		style := "fill:none;stroke:#4a4a4a;stroke-width:1"
		if i == 0 {
			style = "fill:#f5f5f5;stroke:#1c1c1c;stroke-width:2"
		}
		canvas.Rect(
			snapshotMargin+f.Rect.Origin.X, snapshotMargin+f.Rect.Origin.Y,
			f.Rect.Size.Width, f.Rect.Size.Height,
			style,
		)
		canvas.Text(
			snapshotMargin+f.Rect.Origin.X+2, snapshotMargin+f.Rect.Origin.Y+10,
			f.Label,
			"font-family:monospace;font-size:9px;fill:#888888",
		)
	}

	canvas.End()
	return nil
}
