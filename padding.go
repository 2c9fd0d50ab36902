package loom

// Padding surrounds a child with empty space.
type Padding[T Data[T]] struct {
	insets Insets
	child  *Pod[T]
}

// Pad wraps a child in the given insets.
func Pad[T Data[T]](insets Insets, w Widget[T]) *Padding[T] {
	return &Padding[T]{insets: insets, child: NewPod(w)}
}

// PadAll wraps a child in equal insets on all sides.
func PadAll[T Data[T]](v float64, w Widget[T]) *Padding[T] {
	return Pad(UniformInsets(v), w)
}

func (p *Padding[T]) Event(ctx *EventCtx, ev Event, data *T, env Env) {
	p.child.Event(ctx, ev, data, env)
}

func (p *Padding[T]) Lifecycle(ctx *LifecycleCtx, ev LifecycleEvent, data *T, env Env) {
	p.child.Lifecycle(ctx, ev, data, env)
}

func (p *Padding[T]) Update(ctx *UpdateCtx, old, data *T, env Env) {
	p.child.Update(ctx, old, data, env)
}

func (p *Padding[T]) Layout(ctx *LayoutCtx, bc Constraints, data *T, env Env) Size {
	inner := bc.Shrink(Size{Width: p.insets.Horizontal(), Height: p.insets.Vertical()})
	childSize := p.child.Layout(ctx, inner, data, env)
	p.child.SetOrigin(Point{X: p.insets.Left, Y: p.insets.Top})
	return bc.Constrain(Size{
		Width:  childSize.Width + p.insets.Horizontal(),
		Height: childSize.Height + p.insets.Vertical(),
	})
}

func (p *Padding[T]) Paint(ctx *PaintCtx, data *T, env Env) {
	p.child.Paint(ctx, data, env)
}

// SizedBox fixes one or both dimensions of its child, or reserves empty
// space when it has no child. A zero dimension defers to the child.
type SizedBox[T Data[T]] struct {
	width, height float64
	child         *Pod[T]
}

// NewSizedBox creates an empty box of the given size.
func NewSizedBox[T Data[T]](width, height float64) *SizedBox[T] {
	return &SizedBox[T]{width: width, height: height}
}

// Wrap gives the box a child to size.
func (s *SizedBox[T]) Wrap(w Widget[T]) *SizedBox[T] {
	s.child = NewPod(w)
	return s
}

func (s *SizedBox[T]) Event(ctx *EventCtx, ev Event, data *T, env Env) {
	if s.child != nil {
		s.child.Event(ctx, ev, data, env)
	}
}

func (s *SizedBox[T]) Lifecycle(ctx *LifecycleCtx, ev LifecycleEvent, data *T, env Env) {
	if s.child != nil {
		s.child.Lifecycle(ctx, ev, data, env)
	}
}

func (s *SizedBox[T]) Update(ctx *UpdateCtx, old, data *T, env Env) {
	if s.child != nil {
		s.child.Update(ctx, old, data, env)
	}
}

func (s *SizedBox[T]) Layout(ctx *LayoutCtx, bc Constraints, data *T, env Env) Size {
	inner := bc
	if s.width > 0 {
		inner.Min.Width = s.width
		inner.Max.Width = s.width
	}
	if s.height > 0 {
		inner.Min.Height = s.height
		inner.Max.Height = s.height
	}
	inner.Min = inner.Min.Clamp(bc.Min, bc.Max)
	inner.Max = inner.Max.Clamp(bc.Min, bc.Max)

	if s.child == nil {
		return bc.Constrain(Size{Width: s.width, Height: s.height})
	}
	size := s.child.Layout(ctx, inner, data, env)
	s.child.SetOrigin(Point{})
	return bc.Constrain(size)
}

func (s *SizedBox[T]) Paint(ctx *PaintCtx, data *T, env Env) {
	if s.child != nil {
		s.child.Paint(ctx, data, env)
	}
}
