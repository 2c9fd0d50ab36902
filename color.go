package loom

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a non-premultiplied RGBA color with float components in
// [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA returns a color with the given alpha.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Hex parses a color from a "#rrggbb" string. Invalid input is logged
// and returns opaque black, so a bad theme value cannot abort a frame.
func Hex(s string) Color {
	c, err := colorful.Hex(s)
	if err != nil {
		Logger().Warn("invalid hex color", "value", s, "err", err)
		return Color{A: 1}
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// HexString returns the color as a "#rrggbb" string, dropping alpha.
func (c Color) HexString() string {
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(clamp01(c.R)*255+0.5),
		uint8(clamp01(c.G)*255+0.5),
		uint8(clamp01(c.B)*255+0.5))
}

// WithAlpha returns the color with a replacement alpha.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Blend mixes the color toward other by t in [0, 1], interpolating in
// Lab space so midpoints look perceptually even. Used for derived
// hover and pressed shades.
func (c Color) Blend(other Color, t float64) Color {
	a := colorful.Color{R: c.R, G: c.G, B: c.B}
	b := colorful.Color{R: other.R, G: other.G, B: other.B}
	m := a.BlendLab(b, t).Clamped()
	return Color{R: m.R, G: m.G, B: m.B, A: c.A + (other.A-c.A)*t}
}

// Darken blends the color toward black by t.
func (c Color) Darken(t float64) Color {
	return c.Blend(Color{A: c.A}, t)
}

// Lighten blends the color toward white by t.
func (c Color) Lighten(t float64) Color {
	return c.Blend(Color{R: 1, G: 1, B: 1, A: c.A}, t)
}

// NRGBA converts to the standard library's 8-bit non-premultiplied form.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
