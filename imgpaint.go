package loom

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ImagePainter is a software raster RenderContext drawing into an
// image.RGBA. It keeps an explicit save stack of translation and clip
// state, so the frame protocol's strict Save/Restore nesting maps onto
// plain slice pushes and pops.
type ImagePainter struct {
	dst   *image.RGBA
	face  font.Face
	state imgState
	stack []imgState
}

type imgState struct {
	offset Point
	clip   image.Rectangle
}

// NewImagePainter returns a painter targeting dst, clipped to its
// bounds. Text is drawn with basicfont's fixed 7x13 face unless a face
// is set with SetFace.
func NewImagePainter(dst *image.RGBA) *ImagePainter {
	return &ImagePainter{
		dst:   dst,
		face:  basicfont.Face7x13,
		state: imgState{clip: dst.Bounds()},
	}
}

// Target returns the destination image.
func (p *ImagePainter) Target() *image.RGBA { return p.dst }

// SetFace replaces the text face.
func (p *ImagePainter) SetFace(face font.Face) { p.face = face }

func (p *ImagePainter) Save() {
	p.stack = append(p.stack, p.state)
}

func (p *ImagePainter) Restore() {
	if len(p.stack) == 0 {
		Logger().Warn("image painter restore without matching save")
		return
	}
	p.state = p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
}

func (p *ImagePainter) Clip(r Rect) {
	p.state.clip = p.state.clip.Intersect(p.deviceRect(r))
}

func (p *ImagePainter) Translate(v Point) {
	p.state.offset = p.state.offset.Add(v)
}

// deviceRect maps a rect in the current coordinate space to pixels.
func (p *ImagePainter) deviceRect(r Rect) image.Rectangle {
	r = r.Translate(p.state.offset)
	return image.Rect(
		int(math.Floor(r.X0)), int(math.Floor(r.Y0)),
		int(math.Ceil(r.X1)), int(math.Ceil(r.Y1)),
	)
}

func (p *ImagePainter) FillRect(r Rect, c Color) {
	dr := p.deviceRect(r).Intersect(p.state.clip)
	if dr.Empty() {
		return
	}
	src := image.NewUniform(c.NRGBA())
	xdraw.Draw(p.dst, dr, src, image.Point{}, xdraw.Over)
}

func (p *ImagePainter) StrokeRect(r Rect, c Color, width float64) {
	if width <= 0 {
		return
	}
	w := math.Max(1, width)
	// Four edge strips; corners overlap, which is fine for Over with
	// opaque strokes.
	p.FillRect(NewRect(r.X0, r.Y0, r.X1, r.Y0+w), c)
	p.FillRect(NewRect(r.X0, r.Y1-w, r.X1, r.Y1), c)
	p.FillRect(NewRect(r.X0, r.Y0+w, r.X0+w, r.Y1-w), c)
	p.FillRect(NewRect(r.X1-w, r.Y0+w, r.X1, r.Y1-w), c)
}

func (p *ImagePainter) Line(p0, p1 Point, c Color, width float64) {
	w := math.Max(1, width)
	switch {
	case p0.Y == p1.Y:
		x0, x1 := math.Min(p0.X, p1.X), math.Max(p0.X, p1.X)
		p.FillRect(NewRect(x0, p0.Y-w/2, x1, p0.Y+w/2), c)
	case p0.X == p1.X:
		y0, y1 := math.Min(p0.Y, p1.Y), math.Max(p0.Y, p1.Y)
		p.FillRect(NewRect(p0.X-w/2, y0, p0.X+w/2, y1), c)
	default:
		p.diagonal(p0, p1, c)
	}
}

// diagonal rasterizes a one-pixel line by stepping the major axis.
func (p *ImagePainter) diagonal(p0, p1 Point, c Color) {
	o := p.state.offset
	x0, y0 := p0.X+o.X, p0.Y+o.Y
	x1, y1 := p1.X+o.X, p1.Y+o.Y
	steps := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0)))
	if steps == 0 {
		steps = 1
	}
	px := c.NRGBA()
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pt := image.Pt(int(x0+(x1-x0)*t), int(y0+(y1-y0)*t))
		if pt.In(p.state.clip) {
			p.dst.Set(pt.X, pt.Y, px)
		}
	}
}

func (p *ImagePainter) Text(pos Point, s string, c Color) {
	clipped := &clippedImage{RGBA: p.dst, clip: p.state.clip}
	metrics := p.face.Metrics()
	d := font.Drawer{
		Dst:  clipped,
		Src:  image.NewUniform(c.NRGBA()),
		Face: p.face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6((pos.X + p.state.offset.X) * 64),
			Y: fixed.Int26_6((pos.Y+p.state.offset.Y)*64) + metrics.Ascent,
		},
	}
	d.DrawString(s)
}

func (p *ImagePainter) Image(r Rect, img image.Image) {
	dr := p.deviceRect(r)
	if dr.Intersect(p.state.clip).Empty() {
		return
	}
	clipped := &clippedImage{RGBA: p.dst, clip: p.state.clip}
	xdraw.BiLinear.Scale(clipped, dr, img, img.Bounds(), xdraw.Over, nil)
}

// clippedImage bounds writes to a clip rectangle; font.Drawer has no
// clip of its own.
type clippedImage struct {
	*image.RGBA
	clip image.Rectangle
}

func (c *clippedImage) Set(x, y int, col color.Color) {
	if image.Pt(x, y).In(c.clip) {
		c.RGBA.Set(x, y, col)
	}
}
