package loom

import "testing"

func TestButtonClick(t *testing.T) {
	clicks := 0
	btn := NewButton("go", func(ctx *EventCtx, data *Value[int]) { clicks++ })

	root := NewRoot[Value[int]](btn, Val(0))
	root.Layout(Size{Width: 100, Height: 30})

	root.Event(MouseMove{MouseEvent: mouseAt(10, 10)})
	root.Event(MouseDown{MouseEvent: mouseAt(10, 10)})
	if clicks != 0 {
		t.Error("click should fire on release, not press")
	}
	root.Event(MouseUp{MouseEvent: mouseAt(10, 10)})
	if clicks != 1 {
		t.Errorf("clicks = %d after press+release, want 1", clicks)
	}
}

func TestButtonReleaseOutsideCancels(t *testing.T) {
	clicks := 0
	btn := NewButton("go", func(ctx *EventCtx, data *Value[int]) { clicks++ })

	root := NewRoot[Value[int]](btn, Val(0))
	root.Layout(Size{Width: 100, Height: 30})

	root.Event(MouseMove{MouseEvent: mouseAt(10, 10)})
	root.Event(MouseDown{MouseEvent: mouseAt(10, 10)})
	// Drag off the button, then release: capture keeps the events
	// flowing but the click is cancelled.
	root.Event(MouseMove{MouseEvent: mouseAt(500, 500)})
	root.Event(MouseUp{MouseEvent: mouseAt(500, 500)})
	if clicks != 0 {
		t.Errorf("clicks = %d after outside release, want 0", clicks)
	}

	// The button no longer holds capture afterwards.
	root.Event(MouseUp{MouseEvent: mouseAt(500, 500)})
	if clicks != 0 {
		t.Errorf("clicks = %d after stray release", clicks)
	}
}

func TestButtonKeyboardActivation(t *testing.T) {
	clicks := 0
	btn := NewButton("go", func(ctx *EventCtx, data *Value[int]) { clicks++ })

	root := NewRoot[Value[int]](btn, Val(0))
	root.Layout(Size{Width: 100, Height: 30})

	root.Event(KeyDown{Key: "enter"})
	if clicks != 0 {
		t.Error("unfocused button should ignore keys")
	}

	root.FocusNext()
	root.Event(KeyDown{Key: "enter"})
	if clicks != 1 {
		t.Errorf("clicks = %d after focused enter, want 1", clicks)
	}
}

func TestButtonRightClickIgnored(t *testing.T) {
	clicks := 0
	btn := NewButton("go", func(ctx *EventCtx, data *Value[int]) { clicks++ })

	root := NewRoot[Value[int]](btn, Val(0))
	root.Layout(Size{Width: 100, Height: 30})

	ev := mouseAt(10, 10)
	ev.Button = MouseRight
	root.Event(MouseMove{MouseEvent: mouseAt(10, 10)})
	handled := root.Event(MouseDown{MouseEvent: ev})
	requireHandled(t, handled, false)
	root.Event(MouseUp{MouseEvent: ev})
	if clicks != 0 {
		t.Errorf("right click fired onClick %d times", clicks)
	}
}
