package loom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegionKeepsDistinctRects(t *testing.T) {
	var reg Region
	reg.Add(NewRect(0, 0, 10, 10))
	reg.Add(NewRect(90, 90, 100, 100))

	// Damage at opposite corners stays sparse instead of collapsing to
	// one big rect.
	if len(reg.Rects()) != 2 {
		t.Fatalf("expected 2 rects, got %d", len(reg.Rects()))
	}
	if reg.Intersects(NewRect(40, 40, 60, 60)) {
		t.Error("region should not intersect the middle of the window")
	}
	bb := reg.BoundingBox()
	if bb != NewRect(0, 0, 100, 100) {
		t.Errorf("BoundingBox = %v", bb)
	}
}

func TestRegionDropsDegenerate(t *testing.T) {
	var reg Region
	reg.Add(NewRect(5, 5, 5, 20))
	reg.Add(Rect{X0: 0, Y0: 0, X1: math.Inf(1), Y1: 10})
	reg.Add(Rect{X0: math.NaN()})

	if !reg.IsEmpty() {
		t.Errorf("degenerate rects should be discarded, got %v", reg.Rects())
	}
}

func TestRegionTranslateIntersect(t *testing.T) {
	var reg Region
	reg.Add(NewRect(0, 0, 20, 20))
	reg.Add(NewRect(30, 30, 50, 50))

	reg.Translate(Point{X: 10, Y: 10})
	reg.IntersectWith(NewRect(0, 0, 45, 45))

	want := []Rect{
		NewRect(10, 10, 30, 30),
		NewRect(40, 40, 45, 45),
	}
	if diff := cmp.Diff(want, reg.Rects()); diff != "" {
		t.Errorf("rects mismatch (-want +got):\n%s", diff)
	}
}

func TestRegionSetClear(t *testing.T) {
	var reg Region
	reg.Add(NewRect(0, 0, 1, 1))
	reg.Set(NewRect(2, 2, 3, 3))
	if len(reg.Rects()) != 1 || reg.Rects()[0] != NewRect(2, 2, 3, 3) {
		t.Errorf("Set should replace contents, got %v", reg.Rects())
	}
	reg.Clear()
	if !reg.IsEmpty() {
		t.Error("Clear should empty the region")
	}
}
