package alert

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ANSI-aware canvas compositing. The renderer paints panel elements at
// absolute cell positions onto a blank canvas, and sheet presentation
// paints the finished panel over the parent view. All widths here are
// terminal cells, not theme units.

// blankCanvas returns width×height of spaces.
func blankCanvas(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// overlayAt paints over onto base with its top-left corner at column x,
// row y. Rows outside the base are dropped; styled (ANSI-colored) text
// survives splicing intact.
func overlayAt(base, over string, x, y, width int) string {
	if x < 0 {
		x = 0
	}
	baseLines := strings.Split(base, "\n")
	overLines := strings.Split(over, "\n")
	for i, line := range overLines {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		baseLines[row] = spliceLine(baseLines[row], line, x, width)
	}
	return strings.Join(baseLines, "\n")
}

// overlayCenter paints over onto base centered in a width×height area.
func overlayCenter(base, over string, width, height int) string {
	overLines := strings.Split(over, "\n")
	overWidth := 0
	for _, line := range overLines {
		if w := ansi.StringWidth(line); w > overWidth {
			overWidth = w
		}
	}
	x := (width - overWidth) / 2
	if x < 0 {
		x = 0
	}
	y := (height - len(overLines)) / 2
	if y < 0 {
		y = 0
	}
	return overlayAt(base, over, x, y, width)
}

// spliceLine replaces the cells [x, x+width(segment)) of target with
// segment, padding as needed so the right remainder stays in place.
func spliceLine(target, segment string, x, width int) string {
	target = padLine(target, width)
	left := ansi.Truncate(target, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}
	segWidth := ansi.StringWidth(segment)
	right := dropCells(target, x+segWidth)
	out := left + segment + right
	if width > 0 {
		out = padLine(out, width)
	}
	return out
}

// dropCells removes the first cols display cells from s. Cutting by
// display cells keeps the remainder aligned even when s carries escape
// sequences.
func dropCells(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return ansi.TruncateLeft(s, cols, "")
}

// padLine truncates or pads s to exactly width display cells.
func padLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
