package loom

// Region is the exact set of rectangles requiring repaint. It holds
// every added rectangle rather than a single bounding-box approximation,
// so sparse damage at opposite corners of a window does not force the
// whole window to repaint.
//
// Only non-degenerate rectangles are stored. Union appends; no geometric
// merging is performed (it is not required for correctness).
type Region struct {
	rects []Rect
}

// Add adds a rectangle to the region. Empty and non-finite rectangles
// are discarded.
func (reg *Region) Add(r Rect) {
	if r.IsEmpty() || !r.IsFinite() {
		return
	}
	if DebugPaint {
		Logger().Debug("region add", "rect", r)
	}
	reg.rects = append(reg.rects, r)
}

// Set replaces the region with a single rectangle.
func (reg *Region) Set(r Rect) {
	reg.rects = reg.rects[:0]
	reg.Add(r)
}

// Clear empties the region, retaining storage.
func (reg *Region) Clear() {
	reg.rects = reg.rects[:0]
}

// IsEmpty reports whether the region contains no rectangles.
func (reg *Region) IsEmpty() bool {
	return len(reg.rects) == 0
}

// Rects returns the rectangles in the region. The slice is valid until
// the next mutation.
func (reg *Region) Rects() []Rect {
	return reg.rects
}

// BoundingBox returns the smallest rectangle covering the whole region.
func (reg *Region) BoundingBox() Rect {
	var out Rect
	for _, r := range reg.rects {
		out = out.Union(r)
	}
	return out
}

// Intersects reports whether any rectangle in the region overlaps r.
func (reg *Region) Intersects(r Rect) bool {
	for _, q := range reg.rects {
		if q.Intersects(r) {
			return true
		}
	}
	return false
}

// UnionWith adds all of other's rectangles to this region.
func (reg *Region) UnionWith(other *Region) {
	reg.rects = append(reg.rects, other.rects...)
}

// IntersectWith clips every rectangle in the region to r, dropping
// rectangles that fall entirely outside.
func (reg *Region) IntersectWith(r Rect) {
	out := reg.rects[:0]
	for _, q := range reg.rects {
		clipped := q.Intersect(r)
		if !clipped.IsEmpty() {
			out = append(out, clipped)
		}
	}
	reg.rects = out
}

// Translate offsets every rectangle in the region by v.
func (reg *Region) Translate(v Point) {
	for i := range reg.rects {
		reg.rects[i] = reg.rects[i].Translate(v)
	}
}
