package loom

import "testing"

func box(w, h float64) widgetFuncs[Value[int]] {
	return widgetFuncs[Value[int]]{
		layout: func(ctx *LayoutCtx, bc Constraints, data *Value[int], env Env) Size {
			return bc.Constrain(Size{Width: w, Height: h})
		},
	}
}

func TestFlexRowPositions(t *testing.T) {
	row := Row[Value[int]]().
		Add(box(30, 10)).
		Add(box(20, 20)).
		Gap(5)

	root := NewRoot[Value[int]](row, Val(0))
	root.Layout(Size{Width: 100, Height: 20})

	if got := row.ChildPod(0).LayoutRect(); got != NewRect(0, 0, 30, 10) {
		t.Errorf("first child at %v", got)
	}
	if got := row.ChildPod(1).LayoutRect(); got != NewRect(35, 0, 55, 20) {
		t.Errorf("second child at %v", got)
	}
}

func TestFlexDividesRemainingSpace(t *testing.T) {
	row := Row[Value[int]]().
		Add(box(40, 10)).
		AddFlex(box(0, 10), 1).
		AddFlex(box(0, 10), 2).
		Gap(0)

	root := NewRoot[Value[int]](row, Val(0))
	root.Layout(Size{Width: 100, Height: 10})

	// 60 remaining after the fixed child, split 1:2.
	if got := row.ChildPod(1).Size().Width; got != 20 {
		t.Errorf("flex-1 width = %v, want 20", got)
	}
	if got := row.ChildPod(2).Size().Width; got != 40 {
		t.Errorf("flex-2 width = %v, want 40", got)
	}
	if got := row.ChildPod(2).LayoutRect().X0; got != 60 {
		t.Errorf("flex-2 x = %v, want 60", got)
	}
}

func TestFlexDefaultGapFromEnv(t *testing.T) {
	col := Column[Value[int]]().
		Add(box(10, 10)).
		Add(box(10, 10))

	root := NewRoot[Value[int]](col, Val(0))
	root.Layout(Size{Width: 10, Height: 100})

	// The theme default spacing is 8.
	if got := col.ChildPod(1).LayoutRect().Y0; got != 18 {
		t.Errorf("second child y = %v, want 18", got)
	}
}

func TestColumnStacksVertically(t *testing.T) {
	col := Column[Value[int]]().
		Add(box(10, 30)).
		Add(box(20, 10)).
		Gap(0)

	root := NewRoot[Value[int]](col, Val(0))
	size := root.Layout(Size{Width: 20, Height: 40})

	if size != (Size{Width: 20, Height: 40}) {
		t.Errorf("root size = %v", size)
	}
	if got := col.ChildPod(1).LayoutRect(); got != NewRect(0, 30, 20, 40) {
		t.Errorf("second child at %v", got)
	}
}
