package loom

// LensWrap adapts a widget written against a part A into a widget usable
// in a tree whose state is S, by applying a lens around every dispatch
// operation. Event and Update go through the lens's write accessor so
// mutations commit back into the whole; the read-only operations use the
// read accessor.
type LensWrap[S Data[S], A Data[A]] struct {
	lens  Lens[S, A]
	child Widget[A]
}

// WithLens grafts a Widget[A] into a Widget[S] tree through the given
// lens.
func WithLens[S Data[S], A Data[A]](lens Lens[S, A], w Widget[A]) *LensWrap[S, A] {
	return &LensWrap[S, A]{lens: lens, child: w}
}

func (lw *LensWrap[S, A]) Event(ctx *EventCtx, ev Event, data *S, env Env) {
	lw.lens.WithMut(data, func(a *A) {
		lw.child.Event(ctx, ev, a, env)
	})
}

func (lw *LensWrap[S, A]) Lifecycle(ctx *LifecycleCtx, ev LifecycleEvent, data *S, env Env) {
	lw.lens.With(data, func(a *A) {
		lw.child.Lifecycle(ctx, ev, a, env)
	})
}

// Update narrows both states through the lens and skips the subtree, as
// an early return, when the projected values compare Same.
func (lw *LensWrap[S, A]) Update(ctx *UpdateCtx, old, data *S, env Env) {
	lw.lens.With(old, func(oldA *A) {
		lw.lens.WithMut(data, func(a *A) {
			if !ctx.force && (*oldA).Same(*a) {
				return
			}
			lw.child.Update(ctx, oldA, a, env)
		})
	})
}

func (lw *LensWrap[S, A]) Layout(ctx *LayoutCtx, bc Constraints, data *S, env Env) Size {
	var size Size
	lw.lens.With(data, func(a *A) {
		size = lw.child.Layout(ctx, bc, a, env)
	})
	return size
}

func (lw *LensWrap[S, A]) Paint(ctx *PaintCtx, data *S, env Env) {
	lw.lens.With(data, func(a *A) {
		lw.child.Paint(ctx, a, env)
	})
}

// PrismWrap adapts a widget over a part that may be absent. When the
// prism reports the part missing, events, updates and paint are skipped,
// layout collapses to the smallest permitted size, and the write path is
// a no-op. Lifecycle cannot be forwarded while the part is absent; the
// child is re-announced if the part reappears after a structural change.
type PrismWrap[S Data[S], A Data[A]] struct {
	prism Prism[S, A]
	child Widget[A]
}

// WithPrism grafts a Widget[A] into a Widget[S] tree through the given
// prism.
func WithPrism[S Data[S], A Data[A]](prism Prism[S, A], w Widget[A]) *PrismWrap[S, A] {
	return &PrismWrap[S, A]{prism: prism, child: w}
}

func (pw *PrismWrap[S, A]) Event(ctx *EventCtx, ev Event, data *S, env Env) {
	pw.prism.WithMutOpt(data, func(a *A) {
		pw.child.Event(ctx, ev, a, env)
	})
}

func (pw *PrismWrap[S, A]) Lifecycle(ctx *LifecycleCtx, ev LifecycleEvent, data *S, env Env) {
	pw.prism.WithOpt(data, func(a *A) {
		pw.child.Lifecycle(ctx, ev, a, env)
	})
}

func (pw *PrismWrap[S, A]) Update(ctx *UpdateCtx, old, data *S, env Env) {
	// The part may have appeared or vanished between old and data; only
	// the both-present case diffs. An appearing part forces a full
	// visit so the child sees its first value.
	oldPresent := pw.prism.WithOpt(old, func(*A) {})
	pw.prism.WithMutOpt(data, func(a *A) {
		if !oldPresent {
			childCtx := *ctx
			childCtx.force = true
			pw.child.Update(&childCtx, a, a, env)
			return
		}
		pw.prism.WithOpt(old, func(oldA *A) {
			if !ctx.force && (*oldA).Same(*a) {
				return
			}
			pw.child.Update(ctx, oldA, a, env)
		})
	})
}

func (pw *PrismWrap[S, A]) Layout(ctx *LayoutCtx, bc Constraints, data *S, env Env) Size {
	size := bc.Min
	pw.prism.WithOpt(data, func(a *A) {
		size = pw.child.Layout(ctx, bc, a, env)
	})
	return size
}

func (pw *PrismWrap[S, A]) Paint(ctx *PaintCtx, data *S, env Env) {
	pw.prism.WithOpt(data, func(a *A) {
		pw.child.Paint(ctx, a, env)
	})
}
