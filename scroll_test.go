package loom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// tallContent is a 100x300 widget that records pointer positions and,
// on mouse-down, damages two rectangles in its own coordinate space:
// one inside the viewport and one far below it.
func tallContent(lastPos *Point) widgetFuncs[Value[int]] {
	return widgetFuncs[Value[int]]{
		layout: func(ctx *LayoutCtx, bc Constraints, data *Value[int], env Env) Size {
			return bc.Constrain(Size{Width: 100, Height: 300})
		},
		event: func(ctx *EventCtx, ev Event, data *Value[int], env Env) {
			if me, ok := mousePayload(ev); ok {
				*lastPos = me.Pos
			}
			if _, ok := ev.(MouseDown); ok {
				ctx.RequestPaintRect(NewRect(10, 40, 30, 60))
				ctx.RequestPaintRect(NewRect(0, 200, 20, 220))
			}
		},
	}
}

func TestScrollTranslatesAndClipsInvalidation(t *testing.T) {
	var pos Point
	scroll := NewScroll[Value[int]](tallContent(&pos))

	root := NewRoot[Value[int]](scroll, Val(0))
	root.Layout(Size{Width: 100, Height: 100})
	scroll.ScrollTo(30)

	// Flush the repaint the scroll itself requested, then start clean.
	root.Event(MouseMove{MouseEvent: mouseAt(50, 50)})
	root.InvalidRegion().Clear()

	root.Event(MouseDown{MouseEvent: mouseAt(5, 5)})

	// The in-view damage arrives translated by the scroll offset; the
	// off-screen damage is clipped away entirely.
	want := []Rect{NewRect(10, 10, 30, 30)}
	if diff := cmp.Diff(want, root.InvalidRegion().Rects()); diff != "" {
		t.Errorf("invalid region mismatch (-want +got):\n%s", diff)
	}
}

func TestScrollTranslatesPointer(t *testing.T) {
	var pos Point
	scroll := NewScroll[Value[int]](tallContent(&pos))

	root := NewRoot[Value[int]](scroll, Val(0))
	root.Layout(Size{Width: 100, Height: 100})
	scroll.ScrollTo(30)

	root.Event(MouseDown{MouseEvent: mouseAt(5, 5)})
	if pos != (Point{X: 5, Y: 35}) {
		t.Errorf("content saw %v, want content-space (5, 35)", pos)
	}
}

func TestScrollWheelClamps(t *testing.T) {
	var pos Point
	scroll := NewScroll[Value[int]](tallContent(&pos))

	root := NewRoot[Value[int]](scroll, Val(0))
	root.Layout(Size{Width: 100, Height: 100})

	ev := mouseAt(50, 50)
	ev.WheelDelta = Point{Y: 5000}
	handled := root.Event(Wheel{MouseEvent: ev})
	requireHandled(t, handled, true)

	// Content is 300 tall, viewport 100: the offset pegs at 200.
	if scroll.Offset() != 200 {
		t.Errorf("offset = %v, want 200", scroll.Offset())
	}

	ev.WheelDelta = Point{Y: -9999}
	root.Event(Wheel{MouseEvent: ev})
	if scroll.Offset() != 0 {
		t.Errorf("offset = %v, want 0", scroll.Offset())
	}
}

func TestScrollDoesNotHitBelowViewport(t *testing.T) {
	var pos Point
	pos = Point{X: -1, Y: -1}
	scroll := NewScroll[Value[int]](tallContent(&pos))

	root := NewRoot[Value[int]](scroll, Val(0))
	root.Layout(Size{Width: 100, Height: 100})

	// The content extends to y=300 but only [0,100) is visible; a press
	// below the window lands nowhere.
	root.Event(MouseDown{MouseEvent: mouseAt(50, 150)})
	if pos != (Point{X: -1, Y: -1}) {
		t.Errorf("content below the viewport received an event at %v", pos)
	}
}
