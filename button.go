package loom

import "github.com/mattn/go-runewidth"

// Button is a clickable box with a text face. It demonstrates the
// interaction half of the protocol: it claims capture on pointer-down
// so drags that leave its bounds still end on it, repaints on hot,
// active and focus flips, and registers for keyboard focus.
type Button[T Data[T]] struct {
	text    func(*T) string
	onClick func(ctx *EventCtx, data *T)
	current string
}

// NewButton creates a button with fixed text firing onClick when
// activated by pointer or keyboard.
func NewButton[T Data[T]](text string, onClick func(ctx *EventCtx, data *T)) *Button[T] {
	return &Button[T]{
		text:    func(*T) string { return text },
		onClick: onClick,
		current: text,
	}
}

// ButtonOf creates a button whose text derives from state.
func ButtonOf[T Data[T]](text func(*T) string, onClick func(ctx *EventCtx, data *T)) *Button[T] {
	return &Button[T]{text: text, onClick: onClick}
}

func (b *Button[T]) Event(ctx *EventCtx, ev Event, data *T, env Env) {
	switch e := ev.(type) {
	case MouseDown:
		if e.Button != MouseLeft {
			return
		}
		ctx.SetActive(true)
		ctx.RequestFocus()
		ctx.RequestPaint()
		ctx.SetHandled()
	case MouseUp:
		if !ctx.IsActive() {
			return
		}
		ctx.SetActive(false)
		ctx.RequestPaint()
		ctx.SetHandled()
		// A release outside the bounds cancels rather than clicks.
		if ctx.IsHot() && b.onClick != nil {
			b.onClick(ctx, data)
		}
	case KeyDown:
		if !ctx.IsFocused() {
			return
		}
		if e.Key == "enter" || e.Key == " " {
			ctx.SetHandled()
			if b.onClick != nil {
				b.onClick(ctx, data)
			}
		}
	}
}

func (b *Button[T]) Lifecycle(ctx *LifecycleCtx, ev LifecycleEvent, data *T, env Env) {
	switch ev.(type) {
	case WidgetAdded:
		ctx.RegisterForFocus()
		b.current = b.text(data)
	case HotChanged, FocusChanged, CaptureDenied:
		ctx.RequestPaint()
	}
}

func (b *Button[T]) Update(ctx *UpdateCtx, old, data *T, env Env) {
	next := b.text(data)
	if next != b.current {
		b.current = next
		ctx.RequestLayout()
		ctx.RequestPaint()
	}
}

func (b *Button[T]) Layout(ctx *LayoutCtx, bc Constraints, data *T, env Env) Size {
	charW := KeyCharWidth.Get(env)
	lineH := KeyLineHeight.Get(env)
	pad := KeySpacing.Get(env)
	w := float64(runewidth.StringWidth(b.current))*charW + 2*pad
	h := lineH + pad
	return bc.Constrain(Size{Width: w, Height: h})
}

func (b *Button[T]) Paint(ctx *PaintCtx, data *T, env Env) {
	face := KeyButtonColor.Get(env)
	switch {
	case ctx.IsActive():
		face = face.Darken(0.15)
	case ctx.IsHot():
		face = face.Lighten(0.1)
	}
	bounds := ctx.Bounds()
	ctx.FillRect(bounds, face)
	if ctx.IsFocused() {
		ctx.StrokeRect(bounds, KeyAccentColor.Get(env), KeyBorderWidth.Get(env))
	}

	pad := KeySpacing.Get(env)
	ctx.Text(Point{X: pad, Y: pad / 2}, b.current, KeyTextColor.Get(env))
}
