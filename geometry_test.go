package loom

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 50, 50)

	// Top-left edge is inside, bottom-right edge is not.
	if !r.Contains(Point{X: 0, Y: 0}) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(Point{X: 50, Y: 25}) {
		t.Error("right edge should be outside")
	}
	if r.Contains(Point{X: 25, Y: 50}) {
		t.Error("bottom edge should be outside")
	}
	if !r.Contains(Point{X: 49.999, Y: 49.999}) {
		t.Error("point just inside bottom-right should be inside")
	}
}

func TestRectIntersect(t *testing.T) {
	a := NewRect(0, 0, 50, 50)
	b := NewRect(25, 25, 100, 100)

	got := a.Intersect(b)
	want := NewRect(25, 25, 50, 50)
	if got != want {
		t.Errorf("Intersect = %v, want %v", got, want)
	}

	// Disjoint rects intersect to empty.
	c := NewRect(60, 60, 70, 70)
	if !a.Intersect(c).IsEmpty() {
		t.Errorf("disjoint intersect should be empty, got %v", a.Intersect(c))
	}

	// Touching edges do not overlap.
	d := NewRect(50, 0, 60, 50)
	if a.Intersects(d) {
		t.Error("rects sharing only an edge should not intersect")
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(20, 5, 30, 40)
	got := a.Union(b)
	want := NewRect(0, 0, 30, 40)
	if got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
}

func TestRectTranslateInset(t *testing.T) {
	r := NewRect(10, 10, 30, 30)

	got := r.Translate(Point{X: 5, Y: -5})
	if got != NewRect(15, 5, 35, 25) {
		t.Errorf("Translate = %v", got)
	}

	in := r.Inset(UniformInsets(5))
	if in != NewRect(15, 15, 25, 25) {
		t.Errorf("Inset = %v", in)
	}

	vh := r.Inset(InsetsVH(2, 8))
	if vh != NewRect(18, 12, 22, 28) {
		t.Errorf("Inset(InsetsVH) = %v", vh)
	}
}

func TestSizeClamp(t *testing.T) {
	s := Size{Width: 100, Height: 5}
	got := s.Clamp(Size{Width: 10, Height: 10}, Size{Width: 50, Height: 50})
	if got != (Size{Width: 50, Height: 10}) {
		t.Errorf("Clamp = %v", got)
	}
}

func TestIsFinite(t *testing.T) {
	if (Size{Width: math.Inf(1), Height: 10}).IsFinite() {
		t.Error("infinite width should not be finite")
	}
	if (Point{X: math.NaN()}).IsFinite() {
		t.Error("NaN should not be finite")
	}
	if !NewRect(0, 0, 1, 1).IsFinite() {
		t.Error("unit rect should be finite")
	}
}
