// Package geom provides the small geometry value types used by alert layout.
// All values are in abstract theme units, not terminal cells; the renderer
// owns the unit-to-cell conversion.
package geom

// Point is an x/y position in theme units.
type Point struct {
	X, Y int
}

// Size is a width/height pair in theme units.
type Size struct {
	Width, Height int
}

// IsZero returns true if both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Rect is an origin + size rectangle.
type Rect struct {
	Origin Point
	Size   Size
}

// NewRect builds a rect from raw coordinates.
func NewRect(x, y, w, h int) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// MaxX returns the x coordinate of the right edge.
func (r Rect) MaxX() int {
	return r.Origin.X + r.Size.Width
}

// MaxY returns the y coordinate of the bottom edge.
func (r Rect) MaxY() int {
	return r.Origin.Y + r.Size.Height
}

// IsZero returns true if the rect has zero origin and zero size.
func (r Rect) IsZero() bool {
	return r.Origin == Point{} && r.Size.IsZero()
}

// Inset shrinks the rect by the given insets on all four sides.
// A rect too small for the insets collapses to zero width/height rather
// than going negative.
func (r Rect) Inset(in Insets) Rect {
	out := Rect{
		Origin: Point{X: r.Origin.X + in.Left, Y: r.Origin.Y + in.Top},
		Size: Size{
			Width:  r.Size.Width - in.Left - in.Right,
			Height: r.Size.Height - in.Top - in.Bottom,
		},
	}
	if out.Size.Width < 0 {
		out.Size.Width = 0
	}
	if out.Size.Height < 0 {
		out.Size.Height = 0
	}
	return out
}

// Insets are distances from the four edges of a containing rect.
// Note the asymmetric default in alert themes: the left inset is where
// the icon column lives, so it is usually much larger than the rest.
type Insets struct {
	Top, Right, Bottom, Left int
}

// Horizontal returns the combined left+right inset.
func (in Insets) Horizontal() int {
	return in.Left + in.Right
}

// Vertical returns the combined top+bottom inset.
func (in Insets) Vertical() int {
	return in.Top + in.Bottom
}
