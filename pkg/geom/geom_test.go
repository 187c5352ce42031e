package geom

import "testing"

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 400, 110)
	in := Insets{Top: 15, Right: 15, Bottom: 15, Left: 50}

	got := r.Inset(in)
	if got.Origin.X != 50 || got.Origin.Y != 15 {
		t.Errorf("Expected origin (50,15), got (%d,%d)", got.Origin.X, got.Origin.Y)
	}
	if got.Size.Width != 335 || got.Size.Height != 80 {
		t.Errorf("Expected size 335x80, got %dx%d", got.Size.Width, got.Size.Height)
	}
}

func TestRectInsetCollapsesToZero(t *testing.T) {
	r := NewRect(0, 0, 20, 10)
	got := r.Inset(Insets{Top: 15, Right: 15, Bottom: 15, Left: 50})
	if got.Size.Width != 0 {
		t.Errorf("Expected collapsed width 0, got %d", got.Size.Width)
	}
	if got.Size.Height != 0 {
		t.Errorf("Expected collapsed height 0, got %d", got.Size.Height)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	if r.MaxX() != 40 {
		t.Errorf("MaxX: expected 40, got %d", r.MaxX())
	}
	if r.MaxY() != 60 {
		t.Errorf("MaxY: expected 60, got %d", r.MaxY())
	}
}

func TestZeroValues(t *testing.T) {
	var r Rect
	if !r.IsZero() {
		t.Error("zero rect should report IsZero")
	}
	if (Rect{Origin: Point{X: 1}}).IsZero() {
		t.Error("rect with nonzero origin should not report IsZero")
	}

	var s Size
	if !s.IsZero() {
		t.Error("zero size should report IsZero")
	}
}

func TestInsetsTotals(t *testing.T) {
	in := Insets{Top: 15, Right: 15, Bottom: 15, Left: 50}
	if in.Horizontal() != 65 {
		t.Errorf("Horizontal: expected 65, got %d", in.Horizontal())
	}
	if in.Vertical() != 30 {
		t.Errorf("Vertical: expected 30, got %d", in.Vertical())
	}
}
