package loom

import "math"

// Axis selects the major direction of a Flex container.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// major returns the size component along the axis.
func (a Axis) major(s Size) float64 {
	if a == Horizontal {
		return s.Width
	}
	return s.Height
}

// minor returns the size component across the axis.
func (a Axis) minor(s Size) float64 {
	if a == Horizontal {
		return s.Height
	}
	return s.Width
}

// pack builds a size from major and minor components.
func (a Axis) pack(major, minor float64) Size {
	if a == Horizontal {
		return Size{Width: major, Height: minor}
	}
	return Size{Width: minor, Height: major}
}

// packPoint builds a point from major and minor components.
func (a Axis) packPoint(major, minor float64) Point {
	if a == Horizontal {
		return Point{X: major, Y: minor}
	}
	return Point{X: minor, Y: major}
}

// Flex lays children out along one axis. Non-flex children are measured
// first with loosened constraints; the remaining major-axis space is
// then divided among flex children in proportion to their factors.
//
//	loom.Column[App]().
//	    Add(header).
//	    AddFlex(body, 1).
//	    Add(footer).
//	    Gap(4)
type Flex[T Data[T]] struct {
	axis  Axis
	items []flexItem[T]
	gap   float64
}

type flexItem[T Data[T]] struct {
	pod  *Pod[T]
	flex float64
}

// Row creates a horizontal flex container.
func Row[T Data[T]]() *Flex[T] {
	return &Flex[T]{axis: Horizontal, gap: -1}
}

// Column creates a vertical flex container.
func Column[T Data[T]]() *Flex[T] {
	return &Flex[T]{axis: Vertical, gap: -1}
}

// Add appends a non-flex child, sized to its content.
func (f *Flex[T]) Add(w Widget[T]) *Flex[T] {
	return f.AddFlex(w, 0)
}

// AddFlex appends a child taking a share of the remaining space
// proportional to flex. Zero means content-sized.
func (f *Flex[T]) AddFlex(w Widget[T], flex float64) *Flex[T] {
	f.items = append(f.items, flexItem[T]{pod: NewPod(w), flex: flex})
	return f
}

// Gap sets the space between children. Defaults to the env spacing.
func (f *Flex[T]) Gap(g float64) *Flex[T] {
	f.gap = g
	return f
}

// ChildPod returns the pod hosting the i-th child; mainly for tests.
func (f *Flex[T]) ChildPod(i int) *Pod[T] {
	return f.items[i].pod
}

func (f *Flex[T]) Event(ctx *EventCtx, ev Event, data *T, env Env) {
	// Registration order; pods stop recursing once handled.
	for _, item := range f.items {
		item.pod.Event(ctx, ev, data, env)
	}
}

func (f *Flex[T]) Lifecycle(ctx *LifecycleCtx, ev LifecycleEvent, data *T, env Env) {
	for _, item := range f.items {
		item.pod.Lifecycle(ctx, ev, data, env)
	}
}

func (f *Flex[T]) Update(ctx *UpdateCtx, old, data *T, env Env) {
	for _, item := range f.items {
		item.pod.Update(ctx, old, data, env)
	}
}

func (f *Flex[T]) Layout(ctx *LayoutCtx, bc Constraints, data *T, env Env) Size {
	gap := f.gap
	if gap < 0 {
		gap = KeySpacing.GetOr(env, 0)
	}
	totalGap := gap * float64(max(0, len(f.items)-1))

	majorMax := f.axis.major(bc.Max)
	minorMax := f.axis.minor(bc.Max)

	// First pass: measure non-flex children with the major axis
	// loosened to the space not yet claimed.
	usedMajor := totalGap
	var totalFlex float64
	var minorUsed float64
	for _, item := range f.items {
		if item.flex > 0 {
			totalFlex += item.flex
			continue
		}
		childBC := Constraints{
			Max: f.axis.pack(math.Max(0, majorMax-usedMajor), minorMax),
		}
		size := item.pod.Layout(ctx, childBC, data, env)
		usedMajor += f.axis.major(size)
		minorUsed = math.Max(minorUsed, f.axis.minor(size))
	}

	// Second pass: divide the remaining space among flex children.
	remaining := math.Max(0, majorMax-usedMajor)
	if totalFlex > 0 && !math.IsInf(remaining, 1) {
		for _, item := range f.items {
			if item.flex == 0 {
				continue
			}
			share := remaining * item.flex / totalFlex
			childBC := Constraints{
				Min: f.axis.pack(share, 0),
				Max: f.axis.pack(share, minorMax),
			}
			size := item.pod.Layout(ctx, childBC, data, env)
			usedMajor += f.axis.major(size)
			minorUsed = math.Max(minorUsed, f.axis.minor(size))
		}
	} else if totalFlex > 0 {
		Logger().Warn("flex children under unbounded constraints; sizing to content")
		for _, item := range f.items {
			if item.flex == 0 {
				continue
			}
			childBC := Constraints{Max: f.axis.pack(remaining, minorMax)}
			size := item.pod.Layout(ctx, childBC, data, env)
			usedMajor += f.axis.major(size)
			minorUsed = math.Max(minorUsed, f.axis.minor(size))
		}
	}

	// Position children along the axis.
	var offset float64
	for _, item := range f.items {
		item.pod.SetOrigin(f.axis.packPoint(offset, 0))
		offset += f.axis.major(item.pod.Size()) + gap
	}

	return bc.Constrain(f.axis.pack(usedMajor, minorUsed))
}

func (f *Flex[T]) Paint(ctx *PaintCtx, data *T, env Env) {
	for _, item := range f.items {
		item.pod.Paint(ctx, data, env)
	}
}
