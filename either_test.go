package loom

import "testing"

type modeState struct {
	Expanded Value[bool]
	Detail   *Value[string]
}

func (s modeState) Same(other modeState) bool {
	if s.Expanded != other.Expanded {
		return false
	}
	if (s.Detail == nil) != (other.Detail == nil) {
		return false
	}
	return s.Detail == nil || s.Detail.Same(*other.Detail)
}

func (s modeState) Clone() modeState {
	out := s
	if s.Detail != nil {
		d := *s.Detail
		out.Detail = &d
	}
	return out
}

func TestEitherSwitchesBranches(t *testing.T) {
	var bigPaints, smallPaints int
	big := widgetFuncs[modeState]{
		layout: func(ctx *LayoutCtx, bc Constraints, data *modeState, env Env) Size {
			return bc.Constrain(Size{Width: 100, Height: 100})
		},
		paint: func(ctx *PaintCtx, data *modeState, env Env) { bigPaints++ },
	}
	small := widgetFuncs[modeState]{
		layout: func(ctx *LayoutCtx, bc Constraints, data *modeState, env Env) Size {
			return bc.Constrain(Size{Width: 10, Height: 10})
		},
		paint: func(ctx *PaintCtx, data *modeState, env Env) { smallPaints++ },
	}

	either := NewEither(
		func(s *modeState) bool { return s.Expanded.V },
		big, small,
	)

	root := NewRoot[modeState](either, modeState{})
	root.Layout(Size{Width: 100, Height: 100})
	root.Paint(&Recorder{})
	if smallPaints != 1 || bigPaints != 0 {
		t.Fatalf("initial paints big=%d small=%d", bigPaints, smallPaints)
	}

	root.Apply(func(s *modeState) { s.Expanded = Val(true) })
	root.Paint(&Recorder{})
	if bigPaints != 1 {
		t.Errorf("after switch big painted %d times", bigPaints)
	}
	if smallPaints != 1 {
		t.Errorf("inactive branch painted, small=%d", smallPaints)
	}
}

func TestPrismWrapSkipsAbsentPart(t *testing.T) {
	var updates, paints int
	detail := Variant(func(s *modeState) *Value[string] { return s.Detail })
	inner := widgetFuncs[Value[string]]{
		layout: func(ctx *LayoutCtx, bc Constraints, data *Value[string], env Env) Size {
			return bc.Constrain(Size{Width: 50, Height: 20})
		},
		update: func(ctx *UpdateCtx, old, data *Value[string], env Env) { updates++ },
		paint:  func(ctx *PaintCtx, data *Value[string], env Env) { paints++ },
	}

	root := NewRoot[modeState](WithPrism(detail, inner), modeState{})
	root.Layout(Size{Width: 50, Height: 20})
	root.Paint(&Recorder{})
	if updates != 0 || paints != 0 {
		t.Fatalf("absent part reached the child: updates=%d paints=%d", updates, paints)
	}

	// The part appears: the child is brought up to date and painted.
	root.Apply(func(s *modeState) { s.Detail = ptr(Val("x")) })
	root.InvalidateAll()
	root.Paint(&Recorder{})
	if updates == 0 {
		t.Error("child never updated after the part appeared")
	}
	if paints != 1 {
		t.Errorf("paints = %d after the part appeared", paints)
	}
}

func TestPrismWrapAbsentLayoutCollapses(t *testing.T) {
	detail := Variant(func(s *modeState) *Value[string] { return s.Detail })
	inner := widgetFuncs[Value[string]]{
		layout: func(ctx *LayoutCtx, bc Constraints, data *Value[string], env Env) Size {
			return bc.Constrain(Size{Width: 50, Height: 20})
		},
	}

	wrap := WithPrism(detail, inner)
	pod := newAddedPod[modeState](wrap)
	bc := NewConstraints(Size{}, Size{Width: 100, Height: 100})
	got := pod.Layout(&LayoutCtx{state: newCtxState(nil), pod: &podState{}}, bc, &modeState{}, DefaultEnv())
	if got != (Size{}) {
		t.Errorf("absent layout = %v, want the constraint minimum", got)
	}
}
