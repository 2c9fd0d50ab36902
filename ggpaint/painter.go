// Package ggpaint adapts a gg drawing context to the runtime's render
// interface, giving widget trees an anti-aliased vector backend.
package ggpaint

import (
	"image"

	"github.com/gogpu/gg"

	"loom"
)

// Painter implements loom.RenderContext over a *gg.Context. The gg
// Push/Pop stack carries both transform and clip, so Save/Restore map
// onto it directly.
type Painter struct {
	dc    *gg.Context
	depth int
}

// New wraps an existing gg context.
func New(dc *gg.Context) *Painter {
	return &Painter{dc: dc}
}

// NewSized allocates a fresh context of the given pixel size.
func NewSized(width, height int) *Painter {
	return &Painter{dc: gg.NewContext(width, height)}
}

// Context returns the underlying gg context, for encoding or host
// composition.
func (p *Painter) Context() *gg.Context { return p.dc }

func (p *Painter) Save() {
	p.depth++
	p.dc.Push()
}

func (p *Painter) Restore() {
	if p.depth == 0 {
		loom.Logger().Warn("gg painter restore without matching save")
		return
	}
	p.depth--
	p.dc.Pop()
}

func (p *Painter) Clip(r loom.Rect) {
	p.dc.ClipRect(r.X0, r.Y0, r.Width(), r.Height())
}

func (p *Painter) Translate(v loom.Point) {
	p.dc.Translate(v.X, v.Y)
}

func (p *Painter) FillRect(r loom.Rect, c loom.Color) {
	p.dc.SetRGBA(c.R, c.G, c.B, c.A)
	p.dc.DrawRectangle(r.X0, r.Y0, r.Width(), r.Height())
	if err := p.dc.Fill(); err != nil {
		loom.Logger().Warn("gg fill failed", "err", err)
	}
}

func (p *Painter) StrokeRect(r loom.Rect, c loom.Color, width float64) {
	p.dc.SetRGBA(c.R, c.G, c.B, c.A)
	p.dc.SetLineWidth(width)
	p.dc.DrawRectangle(r.X0, r.Y0, r.Width(), r.Height())
	if err := p.dc.Stroke(); err != nil {
		loom.Logger().Warn("gg stroke failed", "err", err)
	}
}

func (p *Painter) Line(p0, p1 loom.Point, c loom.Color, width float64) {
	p.dc.SetRGBA(c.R, c.G, c.B, c.A)
	p.dc.SetLineWidth(width)
	p.dc.DrawLine(p0.X, p0.Y, p1.X, p1.Y)
	if err := p.dc.Stroke(); err != nil {
		loom.Logger().Warn("gg stroke failed", "err", err)
	}
}

func (p *Painter) Text(pos loom.Point, s string, c loom.Color) {
	p.dc.SetRGBA(c.R, c.G, c.B, c.A)
	// pos is the glyph box's top-left; gg draws from the baseline.
	_, h := p.dc.MeasureString(s)
	p.dc.DrawString(s, pos.X, pos.Y+h)
}

func (p *Painter) Image(r loom.Rect, img image.Image) {
	buf := gg.ImageBufFromImage(img)
	p.dc.DrawImage(buf, r.X0, r.Y0)
}

var _ loom.RenderContext = (*Painter)(nil)
