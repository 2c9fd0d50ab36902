package loom

// Widget is the capability interface every tree node implements. The
// runtime walks the tree through exactly these five operations; each is
// always invoked with the state value and environment its ancestors
// decided to pass it, after any lens projection.
//
// Ordering within one frame: Update completes for the whole tree before
// Layout, and Layout completes before Paint. Event and Lifecycle may
// interleave with those passes between frames but never run concurrently
// with them; dispatch is single-threaded.
//
// Containers do not store children directly: every child lives in a Pod,
// which owns the child's runtime state (layout rectangle, hot/active/
// focus flags, invalid region) and mediates between the generic walk and
// the widget's logic. See Pod.
type Widget[T Data[T]] interface {
	// Event handles an input, timer or command notification. A container
	// forwards the event to its child pods; the pods hit-test and stop
	// recursing once the event is marked handled. Side effects are
	// mutating data through the current projection and recording paint
	// or layout requests against ctx.
	Event(ctx *EventCtx, ev Event, data *T, env Env)

	// Lifecycle handles a structural announcement. Containers must
	// forward lifecycle events to every child pod unconditionally; they
	// are not positional.
	Lifecycle(ctx *LifecycleCtx, ev LifecycleEvent, data *T, env Env)

	// Update reconciles the widget with a state change. It runs once per
	// frame and is skipped entirely for a subtree whose projected state
	// is Same between old and data.
	Update(ctx *UpdateCtx, old, data *T, env Env)

	// Layout measures the widget under the given constraints and returns
	// a size inside them. A parent computes a constraint for each child
	// pod, calls its Layout, and positions it with SetOrigin. Layout is
	// single-pass: a child is laid out once per frame.
	Layout(ctx *LayoutCtx, bc Constraints, data *T, env Env) Size

	// Paint draws the widget's own appearance, then its children,
	// scoped to the region currently being repainted.
	Paint(ctx *PaintCtx, data *T, env Env)
}

// CapturePolicy decides the winner when several widgets claim input
// capture in the same event pass.
type CapturePolicy uint8

const (
	// CaptureFirstWins grants capture to the first claimant; later
	// claimants in the same pass are denied.
	CaptureFirstWins CapturePolicy = iota

	// CaptureLastWins lets a later claimant displace an earlier one;
	// the displaced widget is notified with CaptureDenied.
	CaptureLastWins
)
