package loom

// Background paints a fill, and optionally a border, behind its child.
type Background[T Data[T]] struct {
	child  *Pod[T]
	color  *Color
	border bool
}

// NewBackground wraps a child with a fill of the env window background.
func NewBackground[T Data[T]](w Widget[T]) *Background[T] {
	return &Background[T]{child: NewPod(w)}
}

// Color overrides the fill color.
func (b *Background[T]) Color(c Color) *Background[T] {
	b.color = &c
	return b
}

// Border draws the env border around the bounds.
func (b *Background[T]) Border() *Background[T] {
	b.border = true
	return b
}

func (b *Background[T]) Event(ctx *EventCtx, ev Event, data *T, env Env) {
	b.child.Event(ctx, ev, data, env)
}

func (b *Background[T]) Lifecycle(ctx *LifecycleCtx, ev LifecycleEvent, data *T, env Env) {
	b.child.Lifecycle(ctx, ev, data, env)
}

func (b *Background[T]) Update(ctx *UpdateCtx, old, data *T, env Env) {
	b.child.Update(ctx, old, data, env)
}

func (b *Background[T]) Layout(ctx *LayoutCtx, bc Constraints, data *T, env Env) Size {
	size := b.child.Layout(ctx, bc, data, env)
	b.child.SetOrigin(Point{})
	return size
}

func (b *Background[T]) Paint(ctx *PaintCtx, data *T, env Env) {
	fill := KeyWindowBackground.Get(env)
	if b.color != nil {
		fill = *b.color
	}
	ctx.FillRect(ctx.Bounds(), fill)
	if b.border {
		ctx.StrokeRect(ctx.Bounds(), KeyBorderColor.Get(env), KeyBorderWidth.Get(env))
	}
	b.child.Paint(ctx, data, env)
}
