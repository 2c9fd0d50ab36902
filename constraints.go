package loom

import "math"

// Constraints is the min/max size range passed down during layout
// negotiation. A widget's Layout method must return a size within these
// bounds, inclusive.
//
// An infinite max on an axis means "request as much as you want" on that
// axis; widgets that then grow without bound usually indicate a layout
// bug in a descendant and are warned about by the pod.
type Constraints struct {
	Min, Max Size
}

// Unbounded returns constraints satisfied by any non-negative size.
func Unbounded() Constraints {
	return Constraints{
		Min: Size{},
		Max: Size{Width: math.Inf(1), Height: math.Inf(1)},
	}
}

// NewConstraints creates constraints from a min and max size, rounded
// away from zero so layout aligns to whole pixels.
func NewConstraints(min, max Size) Constraints {
	return Constraints{Min: min.Expand(), Max: max.Expand()}
}

// Tight returns constraints satisfiable only by the given size.
func Tight(size Size) Constraints {
	size = size.Expand()
	return Constraints{Min: size, Max: size}
}

// Loosen returns a copy with a zero minimum but the same maximum.
func (c Constraints) Loosen() Constraints {
	return Constraints{Max: c.Max}
}

// Constrain clamps the given size into the constraint range.
func (c Constraints) Constrain(size Size) Size {
	return size.Expand().Clamp(c.Min, c.Max)
}

// IsWidthBounded reports whether there is an upper bound on width.
func (c Constraints) IsWidthBounded() bool {
	return !math.IsInf(c.Max.Width, 1)
}

// IsHeightBounded reports whether there is an upper bound on height.
func (c Constraints) IsHeightBounded() bool {
	return !math.IsInf(c.Max.Height, 1)
}

// IsTight reports whether exactly one size satisfies the constraints.
func (c Constraints) IsTight() bool {
	return c.Min == c.Max
}

// Contains reports whether the size lies within the constraint range,
// inclusive on both ends.
func (c Constraints) Contains(size Size) bool {
	return c.Min.Width <= size.Width && size.Width <= c.Max.Width &&
		c.Min.Height <= size.Height && size.Height <= c.Max.Height
}

// Shrink returns constraints reduced by the given amount on each axis,
// never going below zero. Parents use this to carve out padding before
// recursing.
func (c Constraints) Shrink(diff Size) Constraints {
	shrink := func(v, by float64) float64 {
		v -= by
		if v < 0 || math.IsNaN(v) {
			return 0
		}
		return v
	}
	return Constraints{
		Min: Size{
			Width:  shrink(c.Min.Width, diff.Width),
			Height: shrink(c.Min.Height, diff.Height),
		},
		Max: Size{
			Width:  shrink(c.Max.Width, diff.Width),
			Height: shrink(c.Max.Height, diff.Height),
		},
	}
}

// debugValidate warns about malformed constraints. Never fatal; layout
// continues with best-effort geometry.
func (c Constraints) debugValidate(source string) {
	if !DebugChecks {
		return
	}
	if math.IsNaN(c.Min.Width) || math.IsNaN(c.Min.Height) ||
		math.IsNaN(c.Max.Width) || math.IsNaN(c.Max.Height) {
		Logger().Warn("constraints contain NaN", "source", source, "min", c.Min, "max", c.Max)
		return
	}
	if c.Min.Width < 0 || c.Min.Height < 0 {
		Logger().Warn("constraints have negative minimum", "source", source, "min", c.Min)
	}
	if c.Min.Width > c.Max.Width || c.Min.Height > c.Max.Height {
		Logger().Warn("constraints have min above max", "source", source, "min", c.Min, "max", c.Max)
	}
}
