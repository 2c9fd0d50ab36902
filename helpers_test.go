package loom

import "testing"

func ptr[T any](v T) *T { return &v }

// widgetFuncs adapts a bag of closures to the widget protocol. Nil
// members do nothing; a nil layout returns the constraint minimum.
type widgetFuncs[T Data[T]] struct {
	event     func(ctx *EventCtx, ev Event, data *T, env Env)
	lifecycle func(ctx *LifecycleCtx, ev LifecycleEvent, data *T, env Env)
	update    func(ctx *UpdateCtx, old, data *T, env Env)
	layout    func(ctx *LayoutCtx, bc Constraints, data *T, env Env) Size
	paint     func(ctx *PaintCtx, data *T, env Env)
}

func (w widgetFuncs[T]) Event(ctx *EventCtx, ev Event, data *T, env Env) {
	if w.event != nil {
		w.event(ctx, ev, data, env)
	}
}

func (w widgetFuncs[T]) Lifecycle(ctx *LifecycleCtx, ev LifecycleEvent, data *T, env Env) {
	if w.lifecycle != nil {
		w.lifecycle(ctx, ev, data, env)
	}
}

func (w widgetFuncs[T]) Update(ctx *UpdateCtx, old, data *T, env Env) {
	if w.update != nil {
		w.update(ctx, old, data, env)
	}
}

func (w widgetFuncs[T]) Layout(ctx *LayoutCtx, bc Constraints, data *T, env Env) Size {
	if w.layout != nil {
		return w.layout(ctx, bc, data, env)
	}
	return bc.Min
}

func (w widgetFuncs[T]) Paint(ctx *PaintCtx, data *T, env Env) {
	if w.paint != nil {
		w.paint(ctx, data, env)
	}
}

// newAddedPod wraps a widget and delivers WidgetAdded so dispatch does
// not warn about an unannounced tree.
func newAddedPod[T Data[T]](w Widget[T]) *Pod[T] {
	pod := NewPod[T](w)
	var data T
	ctx := &LifecycleCtx{state: newCtxState(nil), pod: &podState{}}
	pod.Lifecycle(ctx, WidgetAdded{}, &data, DefaultEnv())
	return pod
}

// mouseAt builds a left-button mouse payload at the given position.
func mouseAt(x, y float64) MouseEvent {
	return MouseEvent{
		Pos:       Point{X: x, Y: y},
		WindowPos: Point{X: x, Y: y},
		Button:    MouseLeft,
		Count:     1,
	}
}

func requireHandled(t *testing.T, got, want bool) {
	t.Helper()
	if got != want {
		t.Errorf("handled = %v, want %v", got, want)
	}
}
