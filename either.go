package loom

// Either switches between two child subtrees based on a predicate over
// the data. Only the active branch receives events, layout and paint;
// the inactive branch is kept alive so its state survives the switch.
type Either[T Data[T]] struct {
	pred    func(*T) bool
	onTrue  *Pod[T]
	onFalse *Pod[T]
	current bool
}

// NewEither builds a branch widget showing onTrue while pred holds and
// onFalse otherwise.
func NewEither[T Data[T]](pred func(*T) bool, onTrue, onFalse Widget[T]) *Either[T] {
	return &Either[T]{
		pred:    pred,
		onTrue:  NewPod(onTrue),
		onFalse: NewPod(onFalse),
	}
}

func (e *Either[T]) active() *Pod[T] {
	if e.current {
		return e.onTrue
	}
	return e.onFalse
}

func (e *Either[T]) Event(ctx *EventCtx, ev Event, data *T, env Env) {
	e.active().Event(ctx, ev, data, env)
}

func (e *Either[T]) Lifecycle(ctx *LifecycleCtx, ev LifecycleEvent, data *T, env Env) {
	if _, ok := ev.(WidgetAdded); ok {
		e.current = e.pred(data)
	}
	// Both branches see lifecycle so the hidden one stays registered.
	e.onTrue.Lifecycle(ctx, ev, data, env)
	e.onFalse.Lifecycle(ctx, ev, data, env)
}

func (e *Either[T]) Update(ctx *UpdateCtx, old, data *T, env Env) {
	now := e.pred(data)
	if now != e.current {
		e.current = now
		ctx.RequestLayout()
		ctx.RequestPaint()
	}
	e.active().Update(ctx, old, data, env)
}

func (e *Either[T]) Layout(ctx *LayoutCtx, bc Constraints, data *T, env Env) Size {
	pod := e.active()
	size := pod.Layout(ctx, bc, data, env)
	pod.SetOrigin(Point{})
	return size
}

func (e *Either[T]) Paint(ctx *PaintCtx, data *T, env Env) {
	e.active().Paint(ctx, data, env)
}
