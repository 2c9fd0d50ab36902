package loom

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
	"time"
)

// Root owns a widget tree and the application state value, and drives
// the whole dispatch protocol. The host event loop feeds it one event at
// a time; each entry point runs synchronously to completion before
// returning. Layout is recomputed lazily before the next paint, and
// paint consumes exactly the accumulated invalid region.
//
// A Root is bound to the goroutine that dispatches into it; it is not
// safe for concurrent use. Other goroutines communicate exclusively
// through the ExtSink wake queue.
type Root[T Data[T]] struct {
	pod   *Pod[T]
	state T
	env   Env
	ctx   *ctxState

	// recv stands in as a parent pod for the root, collecting the
	// requests that bubble out of the tree.
	recv podState

	size        Size
	frame       Region
	needsLayout bool
	laidOut     bool
	added       bool

	sink     *ExtSink
	lastAnim time.Time

	// goid pins dispatch to one goroutine when DebugChecks is on.
	goid uint64
}

// NewRoot creates a runtime for the given widget tree and initial state.
// Configure it with the With* methods before the first dispatch.
func NewRoot[T Data[T]](w Widget[T], state T) *Root[T] {
	r := &Root[T]{
		pod:   NewPod(w),
		state: state,
		env:   DefaultEnv(),
		ctx:   newCtxState(nil),
	}
	r.sink = &ExtSink{handle: r.ctx.handle}
	return r
}

// WithHandle sets the host window handle. Must be called before the
// first dispatch.
func (r *Root[T]) WithHandle(h WindowHandle) *Root[T] {
	r.ctx.handle = h
	if h == nil {
		r.ctx.handle = NopHandle{}
	}
	r.sink.handle = r.ctx.handle
	return r
}

// WithEnv replaces the base environment. Must be called before the
// first dispatch.
func (r *Root[T]) WithEnv(env Env) *Root[T] {
	r.env = env
	return r
}

// WithCapturePolicy sets the tie-break policy for capture races.
func (r *Root[T]) WithCapturePolicy(p CapturePolicy) *Root[T] {
	r.ctx.policy = p
	return r
}

// State returns a pointer to the application state. Mutating it outside
// a dispatch bypasses the update machinery; prefer submitting a command.
func (r *Root[T]) State() *T { return &r.state }

// Env returns the base environment.
func (r *Root[T]) Env() Env { return r.env }

// ExtSink returns the thread-safe queue for waking the runtime from
// other goroutines.
func (r *Root[T]) ExtSink() *ExtSink { return r.sink }

// ensureAdded announces the tree on first dispatch: WidgetAdded
// lifecycle, then a forced initial update so every widget sees its
// first state value.
func (r *Root[T]) ensureAdded() {
	if r.added {
		return
	}
	r.added = true
	r.env.seal()

	lcCtx := &LifecycleCtx{state: r.ctx, pod: &r.recv}
	r.pod.Lifecycle(lcCtx, WidgetAdded{}, &r.state, r.env)

	old := r.state.Clone()
	upCtx := &UpdateCtx{state: r.ctx, pod: &r.recv, force: true}
	r.pod.Update(upCtx, &old, &r.state, r.env)
	r.afterPass()
}

// Event pushes one input event through the tree and reports whether any
// widget handled it. The update pass that follows sees the fully
// mutated state, never a partial view.
func (r *Root[T]) Event(ev Event) bool {
	r.checkGoroutine()
	r.ensureAdded()

	if ws, ok := ev.(WindowSize); ok {
		r.size = ws.Size
		r.needsLayout = true
	}

	old := r.state.Clone()

	r.ctx.handled = false
	evCtx := &EventCtx{state: r.ctx, pod: &r.recv}
	r.pod.Event(evCtx, ev, &r.state, r.env)
	handled := r.ctx.handled

	// Commands submitted during the pass are delivered one at a time
	// through the same pipeline, before the update pass.
	for len(r.ctx.commands) > 0 {
		cmd := r.ctx.commands[0]
		r.ctx.commands = r.ctx.commands[1:]
		r.ctx.handled = false
		cmdCtx := &EventCtx{state: r.ctx, pod: &r.recv}
		r.pod.Event(cmdCtx, CommandEvent{Command: cmd}, &r.state, r.env)
	}

	r.deliverDenials()
	r.applyFocusRequest()

	upCtx := &UpdateCtx{state: r.ctx, pod: &r.recv}
	r.pod.Update(upCtx, &old, &r.state, r.env)

	r.afterPass()
	return handled
}

// Apply mutates the state from outside the event pipeline and runs the
// update pass against the pre-mutation snapshot. Hosts use it for
// changes that do not arrive as input events.
func (r *Root[T]) Apply(f func(*T)) {
	r.checkGoroutine()
	r.ensureAdded()

	old := r.state.Clone()
	f(&r.state)

	upCtx := &UpdateCtx{state: r.ctx, pod: &r.recv}
	r.pod.Update(upCtx, &old, &r.state, r.env)
	r.afterPass()
}

// TimerFired delivers a host timer callback. Tokens the tree no longer
// recognizes are dropped silently; cancellation is advisory.
func (r *Root[T]) TimerFired(token TimerToken) {
	if _, ok := r.ctx.timers[token]; !ok {
		return
	}
	delete(r.ctx.timers, token)
	r.Event(Timer{Token: token})
}

// AnimFrame delivers an animation frame to the subtrees that requested
// one. A widget that wants to keep animating re-requests from its
// handler.
func (r *Root[T]) AnimFrame() {
	now := time.Now()
	var elapsed time.Duration
	if !r.lastAnim.IsZero() {
		elapsed = now.Sub(r.lastAnim)
	}
	r.lastAnim = now
	r.Event(AnimFrame{Elapsed: elapsed})
}

// DrainExternal delivers commands submitted from other goroutines. The
// host calls it from its event loop after a Wake, never concurrently
// with another dispatch.
func (r *Root[T]) DrainExternal() {
	for {
		cmd, ok := r.sink.pop()
		if !ok {
			return
		}
		r.Event(CommandEvent{Command: cmd})
	}
}

// FocusNext moves keyboard focus to the next widget in the focus chain.
func (r *Root[T]) FocusNext() { r.moveFocus(1) }

// FocusPrev moves keyboard focus to the previous widget in the chain.
func (r *Root[T]) FocusPrev() { r.moveFocus(-1) }

func (r *Root[T]) moveFocus(delta int) {
	r.ensureAdded()
	chain := r.ctx.focusChain
	if len(chain) == 0 {
		return
	}
	idx := -1
	for i, id := range chain {
		if id == r.ctx.focused {
			idx = i
			break
		}
	}
	var next WidgetID
	if idx < 0 {
		if delta > 0 {
			next = chain[0]
		} else {
			next = chain[len(chain)-1]
		}
	} else {
		next = chain[(idx+len(chain)+delta)%len(chain)]
	}
	r.routeFocus(next)
}

func (r *Root[T]) applyFocusRequest() {
	req := r.ctx.focusRequest
	r.ctx.focusRequest = 0
	if req != 0 && req != r.ctx.focused {
		r.routeFocus(req)
	}
}

func (r *Root[T]) routeFocus(next WidgetID) {
	old := r.ctx.focused
	r.ctx.focused = next
	lcCtx := &LifecycleCtx{state: r.ctx, pod: &r.recv}
	r.pod.Lifecycle(lcCtx, routeFocusChanged{old: old, new: next}, &r.state, r.env)
	r.afterPass()
}

func (r *Root[T]) deliverDenials() {
	for _, id := range r.ctx.denied {
		lcCtx := &LifecycleCtx{state: r.ctx, pod: &r.recv}
		r.pod.Lifecycle(lcCtx, routeCaptureDenied{target: id}, &r.state, r.env)
	}
	r.ctx.denied = r.ctx.denied[:0]
}

// afterPass folds the requests that bubbled out of the tree into the
// frame region and tells the host what to repaint.
func (r *Root[T]) afterPass() {
	st := &r.recv
	if st.needsLayout {
		st.needsLayout = false
		r.needsLayout = true
		r.ctx.handle.InvalidateRect(r.size.ToRect())
		r.frame.Set(r.size.ToRect())
	}
	if !st.invalid.IsEmpty() {
		for _, rect := range st.invalid.Rects() {
			r.frame.Add(rect)
			r.ctx.handle.InvalidateRect(rect)
		}
		st.invalid.Clear()
	}
}

// InvalidRegion returns the region accumulated since the last paint, in
// window coordinates.
func (r *Root[T]) InvalidRegion() *Region { return &r.frame }

// InvalidateAll marks the whole window for repaint.
func (r *Root[T]) InvalidateAll() {
	r.frame.Set(r.size.ToRect())
	r.ctx.handle.InvalidateRect(r.size.ToRect())
}

// Layout lays the tree out for the given window size if anything is
// stale. Paint calls it implicitly; hosts only need it to size-probe.
func (r *Root[T]) Layout(size Size) Size {
	r.checkGoroutine()
	r.ensureAdded()
	if size != r.size {
		r.size = size
		r.needsLayout = true
	}
	if r.needsLayout || !r.laidOut {
		layCtx := &LayoutCtx{state: r.ctx, pod: &r.recv}
		r.pod.Layout(layCtx, Tight(r.size), &r.state, r.env)
		r.pod.SetOrigin(Point{})
		r.needsLayout = false
		r.laidOut = true
		r.afterPass()
	}
	return r.pod.Size()
}

// Paint repaints the accumulated invalid region into the given backend
// and clears it. Layout is recomputed first if stale. Within the frame,
// update has already completed before layout, and layout completes here
// before paint.
func (r *Root[T]) Paint(rc RenderContext) {
	r.checkGoroutine()
	r.ensureAdded()
	r.Layout(r.size)
	if r.frame.IsEmpty() {
		return
	}

	var region Region
	region.UnionWith(&r.frame)
	pCtx := &PaintCtx{
		RenderContext: rc,
		state:         r.ctx,
		pod:           &r.recv,
		region:        region,
	}
	r.pod.Paint(pCtx, &r.state, r.env)
	r.frame.Clear()
}

// checkGoroutine pins dispatch to the first goroutine that used this
// root. Only active with DebugChecks.
func (r *Root[T]) checkGoroutine() {
	if !DebugChecks {
		return
	}
	id := goid()
	if r.goid == 0 {
		r.goid = id
		return
	}
	if r.goid != id {
		Logger().Warn("dispatch from a different goroutine",
			"expected", r.goid, "got", id)
	}
}

// goid parses the current goroutine id out of the runtime stack header.
// Debug-only; never on a hot path.
func goid() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}
	id, _ := strconv.ParseUint(string(fields[1]), 10, 64)
	return id
}

// ExtSink is the thread-safe wake queue. Background goroutines submit
// commands here; the host wakes its event loop and calls
// Root.DrainExternal, so every payload travels through the same single
// dispatch pipeline as native events.
type ExtSink struct {
	mu     sync.Mutex
	queue  []Command
	handle WindowHandle
}

// Submit enqueues a command and wakes the host. Safe to call from any
// goroutine.
func (s *ExtSink) Submit(cmd Command) {
	s.mu.Lock()
	s.queue = append(s.queue, cmd)
	handle := s.handle
	s.mu.Unlock()
	if handle != nil {
		handle.Wake()
	}
}

func (s *ExtSink) pop() (Command, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return Command{}, false
	}
	cmd := s.queue[0]
	s.queue = s.queue[1:]
	return cmd, true
}
