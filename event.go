package loom

import (
	"sync/atomic"
	"time"
)

// WidgetID uniquely identifies a pod within a runtime. IDs are assigned
// when the pod is created and never reused.
type WidgetID uint64

var widgetIDCounter atomic.Uint64

func nextWidgetID() WidgetID {
	return WidgetID(widgetIDCounter.Add(1))
}

// TimerToken identifies a scheduled timer or animation-frame request.
// Cancellation is advisory: an owner that has discarded a token simply
// ignores its delivery.
type TimerToken uint64

var timerTokenCounter atomic.Uint64

func nextTimerToken() TimerToken {
	return TimerToken(timerTokenCounter.Add(1))
}

// MouseButton identifies a single pointer button.
type MouseButton uint8

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseRight
	MouseMiddle
)

// Modifiers is a set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has reports whether the set contains the given modifier.
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod != 0
}

// MouseEvent carries the geometry shared by all pointer events. Pos is
// in the receiving widget's coordinate space; WindowPos is in window
// coordinates and never translated.
type MouseEvent struct {
	Pos       Point
	WindowPos Point
	Button    MouseButton
	Count     int
	Mods      Modifiers
	// WheelDelta is the scroll distance for Wheel events, zero otherwise.
	WheelDelta Point
}

// Event is an input, timer or command notification pushed through the
// tree. Widgets type-switch on the concrete types below.
type Event interface {
	isEvent()
}

// MouseDown is delivered when a pointer button is pressed.
type MouseDown struct{ MouseEvent }

// MouseUp is delivered when a pointer button is released.
type MouseUp struct{ MouseEvent }

// MouseMove is delivered when the pointer moves.
type MouseMove struct{ MouseEvent }

// Wheel is delivered on scroll input; WheelDelta carries the distance.
type Wheel struct{ MouseEvent }

// KeyDown is delivered to the focused widget when a key is pressed.
type KeyDown struct {
	Key  string
	Mods Modifiers
}

// KeyUp is delivered to the focused widget when a key is released.
type KeyUp struct {
	Key  string
	Mods Modifiers
}

// TextInput carries composed text input destined for the focused widget.
type TextInput struct {
	Text string
}

// Timer is delivered when a timer requested via EventCtx.RequestTimer
// fires. Owners match Token against the tokens they remember.
type Timer struct {
	Token TimerToken
}

// AnimFrame is delivered to subtrees that requested an animation frame.
// Elapsed is the time since the previous frame.
type AnimFrame struct {
	Elapsed time.Duration
}

// CommandEvent delivers a Command submitted from an event handler or
// from another thread through the wake queue.
type CommandEvent struct {
	Command Command
}

// WindowSize announces that the host window changed size.
type WindowSize struct {
	Size Size
}

func (MouseDown) isEvent()    {}
func (MouseUp) isEvent()      {}
func (MouseMove) isEvent()    {}
func (Wheel) isEvent()        {}
func (KeyDown) isEvent()      {}
func (KeyUp) isEvent()        {}
func (TextInput) isEvent()    {}
func (Timer) isEvent()        {}
func (AnimFrame) isEvent()    {}
func (CommandEvent) isEvent() {}
func (WindowSize) isEvent()   {}

// Command pairs a selector with an opaque payload. Commands submitted
// during dispatch, or from another thread through an ExtSink, are
// delivered through the same single pipeline as native events.
type Command struct {
	Selector string
	Payload  any
}

// mousePayload extracts the MouseEvent from a pointer event, if any.
func mousePayload(ev Event) (MouseEvent, bool) {
	switch e := ev.(type) {
	case MouseDown:
		return e.MouseEvent, true
	case MouseUp:
		return e.MouseEvent, true
	case MouseMove:
		return e.MouseEvent, true
	case Wheel:
		return e.MouseEvent, true
	}
	return MouseEvent{}, false
}

// translateMouse returns a copy of a pointer event with Pos offset by v.
// Non-pointer events are returned unchanged.
func translateMouse(ev Event, v Point) Event {
	switch e := ev.(type) {
	case MouseDown:
		e.Pos = e.Pos.Add(v)
		return e
	case MouseUp:
		e.Pos = e.Pos.Add(v)
		return e
	case MouseMove:
		e.Pos = e.Pos.Add(v)
		return e
	case Wheel:
		e.Pos = e.Pos.Add(v)
		return e
	}
	return ev
}

// LifecycleEvent is a structural announcement forwarded unconditionally
// to every child, regardless of hit-testing.
type LifecycleEvent interface {
	isLifecycle()
}

// WidgetAdded is the first notification a widget receives after being
// inserted into the tree. Widgets register for focus and set up internal
// state here.
type WidgetAdded struct{}

// SizeChanged announces the widget's new layout size.
type SizeChanged struct {
	Size Size
}

// HotChanged announces that the pointer entered or left the widget's
// layout rectangle.
type HotChanged struct {
	Hot bool
}

// FocusChanged announces that the widget gained or lost keyboard focus.
type FocusChanged struct {
	Focused bool
}

// CaptureDenied announces that the widget's SetActive claim lost a
// capture race in the current event pass.
type CaptureDenied struct{}

// routeFocusChanged steers FocusChanged to the widgets whose focus state
// actually changed. Internal: pods translate it at the affected nodes.
type routeFocusChanged struct {
	old, new WidgetID
}

// routeCaptureDenied steers CaptureDenied to a specific widget.
type routeCaptureDenied struct {
	target WidgetID
}

func (WidgetAdded) isLifecycle()        {}
func (SizeChanged) isLifecycle()        {}
func (HotChanged) isLifecycle()         {}
func (FocusChanged) isLifecycle()       {}
func (CaptureDenied) isLifecycle()      {}
func (routeFocusChanged) isLifecycle()  {}
func (routeCaptureDenied) isLifecycle() {}
