package loom

import "math"

// Scroll shows a vertically scrollable viewport onto a child laid out
// with unbounded height. It is the canonical exercise of the pod's
// viewport machinery: pointer positions, paint and propagated
// invalidation are all translated by the scroll offset, and invalidation
// is clipped to the visible viewport on its way up.
type Scroll[T Data[T]] struct {
	child    *Pod[T]
	offset   float64
	viewSize Size
}

// NewScroll wraps a child in a vertical scroll viewport.
func NewScroll[T Data[T]](w Widget[T]) *Scroll[T] {
	return &Scroll[T]{child: NewPod(w)}
}

// Offset returns the current scroll offset.
func (s *Scroll[T]) Offset() float64 { return s.offset }

// ChildPod returns the viewport pod; mainly for tests.
func (s *Scroll[T]) ChildPod() *Pod[T] { return s.child }

// ScrollTo moves the viewport to the given offset, clamped to the
// content extent.
func (s *Scroll[T]) ScrollTo(offset float64) {
	s.offset = offset
	s.clampOffset()
	s.applyViewport()
}

func (s *Scroll[T]) clampOffset() {
	maxOff := math.Max(0, s.child.Size().Height-s.viewSize.Height)
	s.offset = math.Max(0, math.Min(maxOff, s.offset))
}

// applyViewport pushes the current offset and visible window down to the
// child pod. The clip rect is expressed in the child's own coordinates.
func (s *Scroll[T]) applyViewport() {
	s.child.SetViewportOffset(Point{Y: s.offset})
	s.child.SetViewport(RectFromOrigin(Point{Y: s.offset}, s.viewSize))
}

func (s *Scroll[T]) Event(ctx *EventCtx, ev Event, data *T, env Env) {
	if wheel, ok := ev.(Wheel); ok {
		before := s.offset
		s.offset += wheel.WheelDelta.Y
		s.clampOffset()
		if s.offset != before {
			s.applyViewport()
			ctx.RequestPaint()
			ctx.SetHandled()
			return
		}
	}
	s.child.Event(ctx, ev, data, env)
}

func (s *Scroll[T]) Lifecycle(ctx *LifecycleCtx, ev LifecycleEvent, data *T, env Env) {
	s.child.Lifecycle(ctx, ev, data, env)
}

func (s *Scroll[T]) Update(ctx *UpdateCtx, old, data *T, env Env) {
	s.child.Update(ctx, old, data, env)
}

func (s *Scroll[T]) Layout(ctx *LayoutCtx, bc Constraints, data *T, env Env) Size {
	childBC := Constraints{
		Max: Size{Width: bc.Max.Width, Height: math.Inf(1)},
	}
	childSize := s.child.Layout(ctx, childBC, data, env)
	s.child.SetOrigin(Point{})

	size := bc.Constrain(childSize)
	s.viewSize = size
	s.clampOffset()
	s.applyViewport()
	return size
}

func (s *Scroll[T]) Paint(ctx *PaintCtx, data *T, env Env) {
	s.child.Paint(ctx, data, env)
}
