package loom

import "image"

// RenderContext is the ordered drawing surface the paint pass writes to.
// Implementations translate the primitives to a concrete backend: a
// raster image, a terminal cell grid, a vector renderer.
//
// Save and Restore manage clip and transform state with strict nesting;
// the runtime brackets every pod's paint with a pair, so a widget that
// leaves the stack unbalanced cannot corrupt its siblings.
type RenderContext interface {
	// Save pushes the current clip and transform state.
	Save()
	// Restore pops to the most recent Save. Unbalanced calls are logged
	// by backends that can detect them.
	Restore()

	// Clip intersects the clip area with r in the current coordinate
	// space.
	Clip(r Rect)
	// Translate offsets the coordinate space by v.
	Translate(v Point)

	FillRect(r Rect, c Color)
	StrokeRect(r Rect, c Color, width float64)
	Line(p0, p1 Point, c Color, width float64)
	Text(pos Point, s string, c Color)
	Image(r Rect, img image.Image)
}

// DrawOp identifies a recorded drawing primitive.
type DrawOp uint8

const (
	OpSave DrawOp = iota
	OpRestore
	OpClip
	OpTranslate
	OpFillRect
	OpStrokeRect
	OpLine
	OpText
	OpImage
)

// DrawCmd is one recorded drawing primitive with its arguments.
type DrawCmd struct {
	Op     DrawOp
	Rect   Rect
	P0, P1 Point
	Color  Color
	Width  float64
	Text   string
	Img    image.Image
}

// Recorder is a RenderContext that records the command stream instead of
// rasterizing it. Tests assert against the recorded commands; hosts can
// also use it to replay a frame into several backends.
type Recorder struct {
	cmds  []DrawCmd
	depth int
}

// Commands returns the recorded stream.
func (rec *Recorder) Commands() []DrawCmd { return rec.cmds }

// Reset discards the recorded stream, retaining storage.
func (rec *Recorder) Reset() {
	rec.cmds = rec.cmds[:0]
	rec.depth = 0
}

// Depth returns the current Save nesting depth.
func (rec *Recorder) Depth() int { return rec.depth }

func (rec *Recorder) Save() {
	rec.depth++
	rec.cmds = append(rec.cmds, DrawCmd{Op: OpSave})
}

func (rec *Recorder) Restore() {
	if rec.depth == 0 {
		Logger().Warn("render restore without matching save")
		return
	}
	rec.depth--
	rec.cmds = append(rec.cmds, DrawCmd{Op: OpRestore})
}

func (rec *Recorder) Clip(r Rect) {
	rec.cmds = append(rec.cmds, DrawCmd{Op: OpClip, Rect: r})
}

func (rec *Recorder) Translate(v Point) {
	rec.cmds = append(rec.cmds, DrawCmd{Op: OpTranslate, P0: v})
}

func (rec *Recorder) FillRect(r Rect, c Color) {
	rec.cmds = append(rec.cmds, DrawCmd{Op: OpFillRect, Rect: r, Color: c})
}

func (rec *Recorder) StrokeRect(r Rect, c Color, width float64) {
	rec.cmds = append(rec.cmds, DrawCmd{Op: OpStrokeRect, Rect: r, Color: c, Width: width})
}

func (rec *Recorder) Line(p0, p1 Point, c Color, width float64) {
	rec.cmds = append(rec.cmds, DrawCmd{Op: OpLine, P0: p0, P1: p1, Color: c, Width: width})
}

func (rec *Recorder) Text(pos Point, s string, c Color) {
	rec.cmds = append(rec.cmds, DrawCmd{Op: OpText, P0: pos, Text: s, Color: c})
}

func (rec *Recorder) Image(r Rect, img image.Image) {
	rec.cmds = append(rec.cmds, DrawCmd{Op: OpImage, Rect: r, Img: img})
}
