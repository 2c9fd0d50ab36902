package loom

import (
	"math"
	"testing"
)

func TestConstrain(t *testing.T) {
	bc := NewConstraints(Size{Width: 10, Height: 10}, Size{Width: 100, Height: 50})

	got := bc.Constrain(Size{Width: 200, Height: 5})
	if got != (Size{Width: 100, Height: 10}) {
		t.Errorf("Constrain = %v", got)
	}

	// A size already in range passes through.
	got = bc.Constrain(Size{Width: 40, Height: 30})
	if got != (Size{Width: 40, Height: 30}) {
		t.Errorf("Constrain in-range = %v", got)
	}
}

func TestTightLoosen(t *testing.T) {
	bc := Tight(Size{Width: 30, Height: 20})
	if !bc.IsTight() {
		t.Error("Tight constraints should be tight")
	}
	loose := bc.Loosen()
	if loose.Min != (Size{}) || loose.Max != bc.Max {
		t.Errorf("Loosen = %v", loose)
	}
	if loose.IsTight() {
		t.Error("loosened constraints should not be tight")
	}
}

func TestUnbounded(t *testing.T) {
	bc := Unbounded()
	if bc.IsWidthBounded() || bc.IsHeightBounded() {
		t.Error("Unbounded should be unbounded on both axes")
	}
	if !bc.Contains(Size{Width: 1e12, Height: 1e12}) {
		t.Error("Unbounded should contain any finite size")
	}
}

// A pod clamps a child's out-of-range layout result instead of
// propagating the violation.
func TestPodClampsLayoutViolation(t *testing.T) {
	oversize := widgetFuncs[Value[int]]{
		layout: func(ctx *LayoutCtx, bc Constraints, data *Value[int], env Env) Size {
			return Size{Width: 9999, Height: 9999}
		},
	}
	pod := newAddedPod[Value[int]](oversize)

	bc := NewConstraints(Size{}, Size{Width: 100, Height: 80})
	got := pod.Layout(&LayoutCtx{state: newCtxState(nil), pod: &podState{}}, bc, ptr(Val(0)), DefaultEnv())
	if got != (Size{Width: 100, Height: 80}) {
		t.Errorf("clamped size = %v", got)
	}
}

func TestPodClampsNonFiniteLayout(t *testing.T) {
	infinite := widgetFuncs[Value[int]]{
		layout: func(ctx *LayoutCtx, bc Constraints, data *Value[int], env Env) Size {
			return Size{Width: math.Inf(1), Height: 10}
		},
	}
	pod := newAddedPod[Value[int]](infinite)

	bc := NewConstraints(Size{Width: 5, Height: 5}, Size{Width: 100, Height: 80})
	got := pod.Layout(&LayoutCtx{state: newCtxState(nil), pod: &podState{}}, bc, ptr(Val(0)), DefaultEnv())
	if !got.IsFinite() {
		t.Errorf("non-finite layout should be clamped, got %v", got)
	}
	if !bc.Contains(got) {
		t.Errorf("clamped size %v outside constraints", got)
	}
}
