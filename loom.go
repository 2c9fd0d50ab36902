// Package loom is a retained-mode, data-driven UI runtime.
//
// Applications describe their interface as a tree of widgets that is
// polymorphic over one capability interface (event, lifecycle, update,
// layout, paint). Application state flows top-down through the tree,
// narrowed by lenses as it deepens; sizes flow down as constraints and
// back up as concrete sizes; repaint requests flow up as exact dirty
// rectangles and accumulate at the root.
//
// The runtime is single-threaded and synchronously driven by a host
// event loop. Background work communicates back exclusively through the
// thread-safe wake queue (see ExtSink).
package loom

// Debug flags. These gate extra validation that is useful while
// developing widgets but too chatty for production.
var (
	// DebugChecks enables dispatch-goroutine affinity checks and
	// constraint validation on every layout call.
	DebugChecks bool

	// DebugPaint logs every rectangle added to the invalid region.
	DebugPaint bool
)
