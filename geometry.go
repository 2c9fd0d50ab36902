package loom

import "math"

// Point is a 2D point. It doubles as a vector for offsets and deltas.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0) &&
		!math.IsNaN(p.X) && !math.IsNaN(p.Y)
}

// Size is a 2D extent. Negative dimensions are degenerate; the layout
// protocol never produces them (they are clamped away).
type Size struct {
	Width, Height float64
}

// Sz is shorthand for Size{w, h}.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// Expand rounds both dimensions away from zero, aligning layout to whole
// pixels.
func (s Size) Expand() Size {
	return Size{Width: expand(s.Width), Height: expand(s.Height)}
}

func expand(v float64) float64 {
	if v < 0 {
		return math.Floor(v)
	}
	return math.Ceil(v)
}

// Clamp constrains the size between min and max, dimension-wise.
func (s Size) Clamp(min, max Size) Size {
	return Size{
		Width:  math.Max(min.Width, math.Min(max.Width, s.Width)),
		Height: math.Max(min.Height, math.Min(max.Height, s.Height)),
	}
}

// IsFinite reports whether both dimensions are finite numbers.
func (s Size) IsFinite() bool {
	return !math.IsInf(s.Width, 0) && !math.IsInf(s.Height, 0) &&
		!math.IsNaN(s.Width) && !math.IsNaN(s.Height)
}

// ToRect returns the rectangle from the origin with this size.
func (s Size) ToRect() Rect {
	return Rect{X1: s.Width, Y1: s.Height}
}

// Rect is an axis-aligned rectangle given by two corners. A rect is
// non-degenerate when X0 < X1 and Y0 < Y1.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRect creates a rectangle from two corners, normalizing so that
// X0 <= X1 and Y0 <= Y1.
func NewRect(x0, y0, x1, y1 float64) Rect {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// RectFromOrigin creates a rectangle from an origin point and a size.
func RectFromOrigin(origin Point, size Size) Rect {
	return Rect{
		X0: origin.X,
		Y0: origin.Y,
		X1: origin.X + size.Width,
		Y1: origin.Y + size.Height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Size returns the rectangle's extent.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X0, Y: r.Y0}
}

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{X: (r.X0 + r.X1) / 2, Y: (r.Y0 + r.Y1) / 2}
}

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Contains reports whether the point is inside the rectangle. The top
// and left edges are inclusive, the bottom and right exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X < r.X1 && p.Y >= r.Y0 && p.Y < r.Y1
}

// Intersect returns the intersection of two rectangles. The result may
// be empty.
func (r Rect) Intersect(q Rect) Rect {
	out := Rect{
		X0: math.Max(r.X0, q.X0),
		Y0: math.Max(r.Y0, q.Y0),
		X1: math.Min(r.X1, q.X1),
		Y1: math.Min(r.Y1, q.Y1),
	}
	if out.X1 < out.X0 {
		out.X1 = out.X0
	}
	if out.Y1 < out.Y0 {
		out.Y1 = out.Y0
	}
	return out
}

// Union returns the smallest rectangle containing both rectangles. An
// empty rectangle does not contribute.
func (r Rect) Union(q Rect) Rect {
	if r.IsEmpty() {
		return q
	}
	if q.IsEmpty() {
		return r
	}
	return Rect{
		X0: math.Min(r.X0, q.X0),
		Y0: math.Min(r.Y0, q.Y0),
		X1: math.Max(r.X1, q.X1),
		Y1: math.Max(r.Y1, q.Y1),
	}
}

// Intersects reports whether the two rectangles overlap with positive
// area.
func (r Rect) Intersects(q Rect) bool {
	return r.X0 < q.X1 && q.X0 < r.X1 && r.Y0 < q.Y1 && q.Y0 < r.Y1
}

// Translate returns the rectangle offset by v.
func (r Rect) Translate(v Point) Rect {
	return Rect{X0: r.X0 + v.X, Y0: r.Y0 + v.Y, X1: r.X1 + v.X, Y1: r.Y1 + v.Y}
}

// Inset returns the rectangle shrunk by the given insets. The result is
// clamped so it never inverts.
func (r Rect) Inset(in Insets) Rect {
	out := Rect{
		X0: r.X0 + in.Left,
		Y0: r.Y0 + in.Top,
		X1: r.X1 - in.Right,
		Y1: r.Y1 - in.Bottom,
	}
	if out.X1 < out.X0 {
		out.X1 = out.X0
	}
	if out.Y1 < out.Y0 {
		out.Y1 = out.Y0
	}
	return out
}

// IsFinite reports whether all four coordinates are finite numbers.
func (r Rect) IsFinite() bool {
	return !math.IsInf(r.X0, 0) && !math.IsInf(r.Y0, 0) &&
		!math.IsInf(r.X1, 0) && !math.IsInf(r.Y1, 0) &&
		!math.IsNaN(r.X0) && !math.IsNaN(r.Y0) &&
		!math.IsNaN(r.X1) && !math.IsNaN(r.Y1)
}

// Insets describes spacing around the four edges of a rectangle.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// UniformInsets returns equal insets on all sides.
func UniformInsets(v float64) Insets {
	return Insets{Top: v, Right: v, Bottom: v, Left: v}
}

// InsetsVH returns vertical and horizontal insets.
func InsetsVH(v, h float64) Insets {
	return Insets{Top: v, Right: h, Bottom: v, Left: h}
}

// Horizontal returns the total horizontal inset.
func (in Insets) Horizontal() float64 {
	return in.Left + in.Right
}

// Vertical returns the total vertical inset.
func (in Insets) Vertical() float64 {
	return in.Top + in.Bottom
}
