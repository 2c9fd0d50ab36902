package loom

import "github.com/mattn/go-runewidth"

// Label is a text leaf. Its content is either fixed or derived from the
// state; derived labels request fresh layout and paint when the text
// changes.
//
// Layout uses the nominal advances from the environment (KeyCharWidth,
// KeyLineHeight); real glyph shaping belongs to the rendering backend.
type Label[T Data[T]] struct {
	text    func(*T) string
	color   *Color
	current string
}

// NewLabel creates a label with fixed text.
func NewLabel[T Data[T]](text string) *Label[T] {
	return &Label[T]{text: func(*T) string { return text }, current: text}
}

// LabelOf creates a label whose text is derived from the state.
func LabelOf[T Data[T]](text func(*T) string) *Label[T] {
	return &Label[T]{text: text}
}

// Color overrides the env text color.
func (l *Label[T]) Color(c Color) *Label[T] {
	l.color = &c
	return l
}

// Text returns the text painted by the last pass.
func (l *Label[T]) Text() string { return l.current }

func (l *Label[T]) Event(ctx *EventCtx, ev Event, data *T, env Env) {}

func (l *Label[T]) Lifecycle(ctx *LifecycleCtx, ev LifecycleEvent, data *T, env Env) {
	if _, ok := ev.(WidgetAdded); ok {
		l.current = l.text(data)
	}
}

func (l *Label[T]) Update(ctx *UpdateCtx, old, data *T, env Env) {
	next := l.text(data)
	if next != l.current {
		l.current = next
		ctx.RequestLayout()
		ctx.RequestPaint()
	}
}

func (l *Label[T]) Layout(ctx *LayoutCtx, bc Constraints, data *T, env Env) Size {
	charW := KeyCharWidth.Get(env)
	lineH := KeyLineHeight.Get(env)
	w := float64(runewidth.StringWidth(l.current)) * charW
	return bc.Constrain(Size{Width: w, Height: lineH})
}

func (l *Label[T]) Paint(ctx *PaintCtx, data *T, env Env) {
	c := KeyTextColor.Get(env)
	if l.color != nil {
		c = *l.color
	}
	ctx.Text(Point{}, l.current, c)
}
