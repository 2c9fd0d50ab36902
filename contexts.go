package loom

import "time"

// WindowHandle is the narrow interface the runtime uses to talk back to
// its host. Hosts must never call back into the runtime from inside one
// of these methods.
type WindowHandle interface {
	// InvalidateRect asks the host to schedule a repaint covering the
	// given rectangle in window coordinates.
	InvalidateRect(r Rect)

	// ScheduleTimer asks the host to call Root.TimerFired with the token
	// after the duration elapses. Timers are one-shot.
	ScheduleTimer(token TimerToken, d time.Duration)

	// RequestAnimFrame asks the host to call Root.AnimFrame before the
	// next frame is painted.
	RequestAnimFrame()

	// Wake asks the host event loop to drain the runtime's external
	// queue. Safe to call from any goroutine.
	Wake()
}

// NopHandle is a WindowHandle that ignores every request. Useful for
// tests and headless rendering.
type NopHandle struct{}

func (NopHandle) InvalidateRect(Rect)                     {}
func (NopHandle) ScheduleTimer(TimerToken, time.Duration) {}
func (NopHandle) RequestAnimFrame()                       {}
func (NopHandle) Wake()                                   {}

// ctxState is the per-root state shared by all context values during a
// dispatch.
type ctxState struct {
	handle WindowHandle
	policy CapturePolicy

	// timers maps live tokens to their owning widget.
	timers map[TimerToken]WidgetID

	// focus bookkeeping; the chain is rebuilt on WidgetAdded passes.
	focusChain   []WidgetID
	focused      WidgetID
	focusRequest WidgetID

	// captor is the widget currently holding input capture.
	captor WidgetID
	denied []WidgetID

	// handled stops sibling forwarding for the current event pass.
	handled bool

	// commands submitted during the current dispatch, drained by Root.
	commands []Command
}

func newCtxState(handle WindowHandle) *ctxState {
	if handle == nil {
		handle = NopHandle{}
	}
	return &ctxState{
		handle: handle,
		timers: make(map[TimerToken]WidgetID),
	}
}

// EventCtx is passed to Widget.Event.
type EventCtx struct {
	state *ctxState
	pod   *podState
}

// WidgetID returns the id of the pod hosting this widget.
func (ctx *EventCtx) WidgetID() WidgetID { return ctx.pod.id }

// Size returns the widget's last-computed layout size.
func (ctx *EventCtx) Size() Size { return ctx.pod.size }

// IsHot reports whether the pointer is inside the widget's layout
// rectangle.
func (ctx *EventCtx) IsHot() bool { return ctx.pod.hot }

// IsActive reports whether the widget currently holds input capture.
func (ctx *EventCtx) IsActive() bool { return ctx.pod.active }

// IsFocused reports whether the widget has keyboard focus.
func (ctx *EventCtx) IsFocused() bool { return ctx.pod.focused }

// IsHandled reports whether the current event was already marked
// handled.
func (ctx *EventCtx) IsHandled() bool { return ctx.state.handled }

// SetHandled marks the current event as handled; pods stop forwarding it
// to further siblings.
func (ctx *EventCtx) SetHandled() { ctx.state.handled = true }

// SetActive claims or releases input capture. While active, the widget
// keeps receiving pointer events even when the pointer leaves its
// rectangle. When several widgets claim capture in one pass the root's
// CapturePolicy picks the winner; losers receive CaptureDenied.
func (ctx *EventCtx) SetActive(active bool) {
	s := ctx.state
	id := ctx.pod.id
	if !active {
		ctx.pod.active = false
		if s.captor == id {
			s.captor = 0
		}
		return
	}
	switch {
	case s.captor == 0 || s.captor == id:
		s.captor = id
		ctx.pod.active = true
	case s.policy == CaptureLastWins:
		s.denied = append(s.denied, s.captor)
		s.captor = id
		ctx.pod.active = true
	default: // CaptureFirstWins
		s.denied = append(s.denied, id)
	}
}

// RequestPaint requests a repaint of the widget's entire bounds.
func (ctx *EventCtx) RequestPaint() { ctx.pod.requestPaint() }

// RequestPaintRect requests a repaint of a rectangle in the widget's own
// coordinate space.
func (ctx *EventCtx) RequestPaintRect(r Rect) { ctx.pod.requestPaintRect(r) }

// RequestLayout marks the widget's layout as stale; it is recomputed
// before the next paint.
func (ctx *EventCtx) RequestLayout() { ctx.pod.needsLayout = true }

// RequestUpdate forces the next update pass to visit this subtree even
// if the state compares Same.
func (ctx *EventCtx) RequestUpdate() { ctx.pod.requestUpdate = true }

// RequestAnimFrame asks for an AnimFrame event before the next frame.
// Continuous animation re-requests every frame.
func (ctx *EventCtx) RequestAnimFrame() {
	ctx.pod.requestAnim = true
	ctx.state.handle.RequestAnimFrame()
}

// RequestTimer schedules a one-shot timer and returns its token. To
// cancel conceptually, discard the token and ignore its delivery.
func (ctx *EventCtx) RequestTimer(d time.Duration) TimerToken {
	token := nextTimerToken()
	ctx.pod.addTimer(token)
	ctx.state.timers[token] = ctx.pod.id
	ctx.state.handle.ScheduleTimer(token, d)
	return token
}

// RequestFocus asks for keyboard focus; granted after the current pass.
func (ctx *EventCtx) RequestFocus() { ctx.state.focusRequest = ctx.pod.id }

// ResignFocus gives up keyboard focus if this widget holds it.
func (ctx *EventCtx) ResignFocus() {
	if ctx.state.focused == ctx.pod.id {
		ctx.state.focusRequest = 0
		ctx.state.focused = 0
	}
}

// Submit queues a command for delivery through the event pipeline after
// the current pass completes.
func (ctx *EventCtx) Submit(cmd Command) {
	ctx.state.commands = append(ctx.state.commands, cmd)
}

// LifecycleCtx is passed to Widget.Lifecycle.
type LifecycleCtx struct {
	state *ctxState
	pod   *podState
}

// WidgetID returns the id of the pod hosting this widget.
func (ctx *LifecycleCtx) WidgetID() WidgetID { return ctx.pod.id }

// RegisterForFocus adds the widget to the focus chain. Call it when
// handling WidgetAdded.
func (ctx *LifecycleCtx) RegisterForFocus() {
	ctx.state.focusChain = append(ctx.state.focusChain, ctx.pod.id)
}

// RequestPaint requests a repaint of the widget's entire bounds.
func (ctx *LifecycleCtx) RequestPaint() { ctx.pod.requestPaint() }

// RequestLayout marks the widget's layout as stale.
func (ctx *LifecycleCtx) RequestLayout() { ctx.pod.needsLayout = true }

// UpdateCtx is passed to Widget.Update.
type UpdateCtx struct {
	state *ctxState
	pod   *podState

	// force bypasses sameness skips below projection boundaries: set on
	// the first pass after WidgetAdded and when a descendant called
	// RequestUpdate.
	force bool
}

// WidgetID returns the id of the pod hosting this widget.
func (ctx *UpdateCtx) WidgetID() WidgetID { return ctx.pod.id }

// Size returns the widget's last-computed layout size.
func (ctx *UpdateCtx) Size() Size { return ctx.pod.size }

// RequestPaint requests a repaint of the widget's entire bounds.
func (ctx *UpdateCtx) RequestPaint() { ctx.pod.requestPaint() }

// RequestPaintRect requests a repaint of a rectangle in the widget's own
// coordinate space.
func (ctx *UpdateCtx) RequestPaintRect(r Rect) { ctx.pod.requestPaintRect(r) }

// RequestLayout marks the widget's layout as stale.
func (ctx *UpdateCtx) RequestLayout() { ctx.pod.needsLayout = true }

// RequestAnimFrame asks for an AnimFrame event before the next frame.
func (ctx *UpdateCtx) RequestAnimFrame() {
	ctx.pod.requestAnim = true
	ctx.state.handle.RequestAnimFrame()
}

// LayoutCtx is passed to Widget.Layout.
type LayoutCtx struct {
	state *ctxState
	pod   *podState
}

// WidgetID returns the id of the pod hosting this widget.
func (ctx *LayoutCtx) WidgetID() WidgetID { return ctx.pod.id }

// PaintCtx is passed to Widget.Paint. It embeds the RenderContext so
// widgets draw through it directly:
//
//	ctx.FillRect(ctx.Bounds(), color)
type PaintCtx struct {
	RenderContext
	state  *ctxState
	pod    *podState
	region Region
}

// WidgetID returns the id of the pod hosting this widget.
func (ctx *PaintCtx) WidgetID() WidgetID { return ctx.pod.id }

// Size returns the widget's layout size.
func (ctx *PaintCtx) Size() Size { return ctx.pod.size }

// Bounds returns the widget's own bounds: origin zero, layout size.
func (ctx *PaintCtx) Bounds() Rect { return ctx.pod.size.ToRect() }

// IsHot reports whether the pointer is inside the widget.
func (ctx *PaintCtx) IsHot() bool { return ctx.pod.hot }

// IsActive reports whether the widget holds input capture.
func (ctx *PaintCtx) IsActive() bool { return ctx.pod.active }

// IsFocused reports whether the widget has keyboard focus.
func (ctx *PaintCtx) IsFocused() bool { return ctx.pod.focused }

// Region returns the region being repainted, in the widget's own
// coordinate space. Painting outside it is wasted work but harmless.
func (ctx *PaintCtx) Region() *Region { return &ctx.region }

// WithSave runs f between a Save/Restore pair, keeping clip and
// transform nesting strict even if f forgets to restore.
func (ctx *PaintCtx) WithSave(f func(*PaintCtx)) {
	ctx.Save()
	f(ctx)
	ctx.Restore()
}
