package loom

// podState is the per-node runtime record the pod owns for its widget:
// the last-computed layout rectangle, interaction flags, the accumulated
// invalid region (in the widget's own coordinate space), and the dirty
// markers that drive lazy layout and update skipping.
type podState struct {
	id WidgetID

	// origin is the widget's position in its parent's coordinate space;
	// size is the result of the last layout pass.
	origin Point
	size   Size

	hot     bool
	active  bool
	focused bool

	// added is set by the WidgetAdded lifecycle pass; dispatching events
	// to a widget that was never announced is a protocol violation.
	added bool

	// initialized is set by the first update pass, which always
	// recurses regardless of sameness.
	initialized bool

	invalid       Region
	needsLayout   bool
	requestUpdate bool
	requestAnim   bool

	// hasActive/hasFocus mirror descendant state so pointer capture and
	// key routing can find their paths without hit-testing. Recomputed
	// on every pass that walks the subtree.
	hasActive bool
	hasFocus  bool

	// viewportOffset shifts the child's coordinate space for scrolling
	// ancestors. When hasClip is set, clip is the visible viewport in
	// the child's own coordinate space: paint and propagated
	// invalidation are clipped to it.
	viewportOffset Point
	hasClip        bool
	clip           Rect

	// timers holds the live tokens owned by this subtree.
	timers map[TimerToken]struct{}
}

func (s *podState) requestPaint() {
	s.invalid.Add(s.size.ToRect())
}

func (s *podState) requestPaintRect(r Rect) {
	s.invalid.Add(r)
}

func (s *podState) addTimer(token TimerToken) {
	if s.timers == nil {
		s.timers = make(map[TimerToken]struct{})
	}
	s.timers[token] = struct{}{}
}

func (s *podState) hasTimer(token TimerToken) bool {
	_, ok := s.timers[token]
	return ok
}

// layoutRect returns the widget's rectangle in parent coordinates.
func (s *podState) layoutRect() Rect {
	return RectFromOrigin(s.origin, s.size)
}

// hitRect returns the rectangle pointer events are tested against, in
// parent coordinates: the layout rectangle, reduced to the visible
// viewport for clipped pods.
func (s *podState) hitRect() Rect {
	r := s.layoutRect()
	if s.hasClip {
		r = s.clip.Translate(s.origin.Sub(s.viewportOffset)).Intersect(r)
	}
	return r
}

// subtreeActive reports whether this widget or any descendant holds
// capture.
func (s *podState) subtreeActive() bool {
	return s.active || s.hasActive
}

// subtreeFocus reports whether this widget or any descendant has focus.
func (s *podState) subtreeFocus() bool {
	return s.focused || s.hasFocus
}

// mergeUp folds a child pod's accumulated requests into the parent
// after any dispatch into the child. Invalid rectangles are clipped to
// the child's viewport when it scrolls, then translated into the
// parent's coordinate space.
func (s *podState) mergeUp(child *podState) {
	if !child.invalid.IsEmpty() {
		if child.hasClip {
			child.invalid.IntersectWith(child.clip)
		}
		child.invalid.Translate(child.origin.Sub(child.viewportOffset))
		s.invalid.UnionWith(&child.invalid)
		child.invalid.Clear()
	}
	s.needsLayout = s.needsLayout || child.needsLayout
	s.requestUpdate = s.requestUpdate || child.requestUpdate
	s.requestAnim = s.requestAnim || child.requestAnim
	s.hasActive = s.hasActive || child.subtreeActive()
	s.hasFocus = s.hasFocus || child.subtreeFocus()
	for token := range child.timers {
		s.addTimer(token)
	}
}

// Pod hosts exactly one widget. It is the structural wrapper every
// child is stored in: parents lay out, position and dispatch into pods,
// never into bare widgets. The pod hit-tests pointer events against the
// stored layout rectangle, tracks hot/active/focus, validates layout
// results, clips and translates invalidation, and skips update passes
// whose state compares Same.
type Pod[T Data[T]] struct {
	child Widget[T]
	state podState
}

// NewPod wraps a widget in a pod, assigning it a fresh id.
func NewPod[T Data[T]](w Widget[T]) *Pod[T] {
	return &Pod[T]{
		child: w,
		state: podState{id: nextWidgetID()},
	}
}

// ID returns the pod's widget id.
func (p *Pod[T]) ID() WidgetID { return p.state.id }

// Widget returns the hosted widget.
func (p *Pod[T]) Widget() Widget[T] { return p.child }

// SetOrigin positions the widget in its parent's coordinate space.
// Parents call it after Layout.
func (p *Pod[T]) SetOrigin(origin Point) {
	if origin != p.state.origin {
		p.state.origin = origin
		p.state.requestPaint()
	}
}

// LayoutRect returns the widget's rectangle in parent coordinates.
func (p *Pod[T]) LayoutRect() Rect { return p.state.layoutRect() }

// Size returns the size computed by the last layout pass.
func (p *Pod[T]) Size() Size { return p.state.size }

// IsHot reports whether the pointer is inside the widget.
func (p *Pod[T]) IsHot() bool { return p.state.hot }

// IsActive reports whether the widget or a descendant holds capture.
func (p *Pod[T]) IsActive() bool { return p.state.subtreeActive() }

// SetViewportOffset shifts the child's coordinate space, for scrolling
// containers. Pointer positions, paint and propagated invalidation are
// all translated by the offset.
func (p *Pod[T]) SetViewportOffset(offset Point) {
	if offset != p.state.viewportOffset {
		p.state.viewportOffset = offset
		p.state.requestPaint()
	}
}

// SetViewport restricts the child to the visible viewport, given in the
// child's own coordinate space. Paint and propagated invalidation are
// clipped to it; scroll and transform containers must keep it current
// so off-screen damage is not repainted and visible damage is not
// missed.
func (p *Pod[T]) SetViewport(clip Rect) {
	p.state.hasClip = true
	p.state.clip = clip
}

// RequestPaint records a repaint request for the widget's full bounds,
// picked up the next time its subtree is dispatched.
func (p *Pod[T]) RequestPaint() { p.state.requestPaint() }

// Event dispatches an input event into the subtree. Pointer events are
// hit-tested against the stored layout rectangle and translated into the
// child's coordinate space; a widget holding capture bypasses the
// hit-test. Recursion stops as soon as some widget marks the event
// handled.
func (p *Pod[T]) Event(ctx *EventCtx, ev Event, data *T, env Env) {
	s := &p.state
	if ctx.IsHandled() {
		// A sibling handled the event already. Skip dispatch, but still
		// merge this subtree's flags: the parent cleared hasActive and
		// hasFocus before recursing and counts on every child to report
		// back, handled or not.
		ctx.pod.mergeUp(s)
		return
	}
	if !s.added {
		Logger().Warn("event dispatched before WidgetAdded", "widget", s.id)
	}

	childEv := ev
	recurse := true
	switch e := ev.(type) {
	case MouseDown, MouseUp, MouseMove, Wheel:
		me, _ := mousePayload(ev)
		inside := s.hitRect().Contains(me.Pos)
		hadHot := s.hot
		if _, isMove := ev.(MouseMove); isMove {
			p.updateHot(ctx, inside, data, env)
		}
		recurse = s.subtreeActive() || inside || (hadHot && !inside)
		childEv = translateMouse(ev, s.viewportOffset.Sub(s.origin))
	case KeyDown, KeyUp, TextInput:
		recurse = s.subtreeFocus()
	case Timer:
		recurse = s.hasTimer(e.Token)
		if recurse {
			delete(s.timers, e.Token)
		}
	case AnimFrame:
		recurse = s.requestAnim
		s.requestAnim = false
	case WindowSize:
		s.needsLayout = true
	}

	if recurse {
		s.hasActive = false
		s.hasFocus = false
		childCtx := &EventCtx{state: ctx.state, pod: s}
		p.child.Event(childCtx, childEv, data, env)
	}
	ctx.pod.mergeUp(s)
}

// updateHot reconciles the hot flag and notifies the child when it
// flips. Runs synchronously inside pointer-move handling.
func (p *Pod[T]) updateHot(ctx *EventCtx, inside bool, data *T, env Env) {
	s := &p.state
	if s.hot == inside {
		return
	}
	s.hot = inside
	lcCtx := &LifecycleCtx{state: ctx.state, pod: s}
	p.child.Lifecycle(lcCtx, HotChanged{Hot: inside}, data, env)
}

// Lifecycle dispatches a structural announcement. Lifecycle events are
// forwarded unconditionally; routing events are translated at the node
// they target.
func (p *Pod[T]) Lifecycle(ctx *LifecycleCtx, ev LifecycleEvent, data *T, env Env) {
	s := &p.state
	childEv := ev
	switch e := ev.(type) {
	case WidgetAdded:
		s.added = true
	case routeFocusChanged:
		switch s.id {
		case e.old:
			s.focused = false
			childEv = FocusChanged{Focused: false}
		case e.new:
			s.focused = true
			childEv = FocusChanged{Focused: true}
		}
	case routeCaptureDenied:
		if s.id == e.target {
			s.active = false
			childEv = CaptureDenied{}
		}
	}

	s.hasActive = false
	s.hasFocus = false
	childCtx := &LifecycleCtx{state: ctx.state, pod: s}
	p.child.Lifecycle(childCtx, childEv, data, env)
	ctx.pod.mergeUp(s)
}

// Update reconciles the subtree with a state change. The pass is skipped
// entirely, as an early return, when the old and new values compare Same
// and nothing in the subtree forced an update.
func (p *Pod[T]) Update(ctx *UpdateCtx, old, data *T, env Env) {
	s := &p.state
	force := ctx.force || !s.initialized || s.requestUpdate
	if s.initialized && !force && (*old).Same(*data) {
		return
	}
	s.initialized = true
	s.requestUpdate = false

	childCtx := &UpdateCtx{state: ctx.state, pod: s, force: force}
	p.child.Update(childCtx, old, data, env)
	ctx.pod.mergeUp(s)
}

// Layout measures the subtree under the given constraints. A size
// outside the constraints, or non-finite geometry, is a protocol
// violation: it is logged and clamped, never fatal.
func (p *Pod[T]) Layout(ctx *LayoutCtx, bc Constraints, data *T, env Env) Size {
	bc.debugValidate("Pod.Layout")
	s := &p.state
	s.needsLayout = false

	childCtx := &LayoutCtx{state: ctx.state, pod: s}
	size := p.child.Layout(childCtx, bc, data, env)

	if !size.IsFinite() {
		Logger().Warn("layout produced non-finite size; clamping",
			"widget", s.id, "size", size)
		size = bc.Constrain(Size{})
	} else if !bc.Contains(size) {
		Logger().Warn("layout size violates constraints; clamping",
			"widget", s.id, "size", size, "min", bc.Min, "max", bc.Max)
		size = bc.Constrain(size)
	}

	if size != s.size {
		s.size = size
		s.requestPaint()
		lcCtx := &LifecycleCtx{state: ctx.state, pod: s}
		p.child.Lifecycle(lcCtx, SizeChanged{Size: size}, data, env)
	}
	ctx.pod.mergeUp(s)
	return size
}

// Paint draws the subtree, offset into its layout rectangle. The child
// is skipped when its rectangle does not intersect the region being
// repainted.
func (p *Pod[T]) Paint(ctx *PaintCtx, data *T, env Env) {
	s := &p.state
	if !ctx.region.Intersects(s.hitRect()) {
		return
	}

	rc := ctx.RenderContext
	rc.Save()
	offset := s.origin.Sub(s.viewportOffset)
	if s.hasClip {
		rc.Clip(s.clip.Translate(offset))
	}
	rc.Translate(offset)

	childRegion := Region{}
	for _, r := range ctx.region.Rects() {
		childRegion.Add(r.Translate(offset.Neg()))
	}
	if s.hasClip {
		childRegion.IntersectWith(s.clip)
	}

	childCtx := &PaintCtx{
		RenderContext: rc,
		state:         ctx.state,
		pod:           s,
		region:        childRegion,
	}
	p.child.Paint(childCtx, data, env)
	rc.Restore()
}
