package loom

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// cellContinuation marks the trailing half of a double-width rune.
const cellContinuation = '\x01'

// cell is one terminal character cell.
type cell struct {
	r      rune
	fg, bg Color
	hasFg  bool
	hasBg  bool
}

// CellPainter is a RenderContext that rasterizes into a grid of terminal
// cells. Layout coordinates are divided by the cell size (the theme's
// CharWidth and LineHeight), so the same widget tree renders to pixels
// or a terminal without changes. Render serializes the grid with
// lipgloss styles.
type CellPainter struct {
	cols, rows int
	cellW      float64
	cellH      float64
	cells      []cell
	state      cellState
	stack      []cellState
}

type cellState struct {
	offset Point
	clip   image.Rectangle
}

// NewCellPainter returns a painter with the given grid size. cellSize is
// the layout-space size of a single cell; Size{8, 16} matches the
// default theme.
func NewCellPainter(cols, rows int, cellSize Size) *CellPainter {
	return &CellPainter{
		cols:  cols,
		rows:  rows,
		cellW: cellSize.Width,
		cellH: cellSize.Height,
		cells: make([]cell, cols*rows),
		state: cellState{clip: image.Rect(0, 0, cols, rows)},
	}
}

// Reset clears the grid for the next frame, keeping storage.
func (p *CellPainter) Reset() {
	clear(p.cells)
	p.state = cellState{clip: image.Rect(0, 0, p.cols, p.rows)}
	p.stack = p.stack[:0]
}

func (p *CellPainter) Save() {
	p.stack = append(p.stack, p.state)
}

func (p *CellPainter) Restore() {
	if len(p.stack) == 0 {
		Logger().Warn("cell painter restore without matching save")
		return
	}
	p.state = p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
}

func (p *CellPainter) Clip(r Rect) {
	p.state.clip = p.state.clip.Intersect(p.cellRect(r))
}

func (p *CellPainter) Translate(v Point) {
	p.state.offset = p.state.offset.Add(v)
}

// cellRect maps a layout-space rect to grid cells, rounding outward.
func (p *CellPainter) cellRect(r Rect) image.Rectangle {
	r = r.Translate(p.state.offset)
	x0 := int(r.X0 / p.cellW)
	y0 := int(r.Y0 / p.cellH)
	x1 := int((r.X1 + p.cellW - 1) / p.cellW)
	y1 := int((r.Y1 + p.cellH - 1) / p.cellH)
	return image.Rect(x0, y0, x1, y1)
}

func (p *CellPainter) at(x, y int) *cell {
	return &p.cells[y*p.cols+x]
}

func (p *CellPainter) FillRect(r Rect, c Color) {
	cr := p.cellRect(r).Intersect(p.state.clip)
	for y := cr.Min.Y; y < cr.Max.Y; y++ {
		for x := cr.Min.X; x < cr.Max.X; x++ {
			cl := p.at(x, y)
			cl.bg = c
			cl.hasBg = true
		}
	}
}

func (p *CellPainter) StrokeRect(r Rect, c Color, width float64) {
	if width <= 0 {
		return
	}
	cr := p.cellRect(r)
	p.box(cr, c)
}

// box draws a border with box-drawing runes along the cell rect edges.
func (p *CellPainter) box(cr image.Rectangle, c Color) {
	put := func(x, y int, r rune) {
		if image.Pt(x, y).In(p.state.clip) {
			cl := p.at(x, y)
			cl.r = r
			cl.fg = c
			cl.hasFg = true
		}
	}
	x0, y0, x1, y1 := cr.Min.X, cr.Min.Y, cr.Max.X-1, cr.Max.Y-1
	if x1 < x0 || y1 < y0 {
		return
	}
	for x := x0 + 1; x < x1; x++ {
		put(x, y0, '─')
		put(x, y1, '─')
	}
	for y := y0 + 1; y < y1; y++ {
		put(x0, y, '│')
		put(x1, y, '│')
	}
	put(x0, y0, '┌')
	put(x1, y0, '┐')
	put(x0, y1, '└')
	put(x1, y1, '┘')
}

func (p *CellPainter) Line(p0, p1 Point, c Color, width float64) {
	o := p.state.offset
	a := image.Pt(int((p0.X+o.X)/p.cellW), int((p0.Y+o.Y)/p.cellH))
	b := image.Pt(int((p1.X+o.X)/p.cellW), int((p1.Y+o.Y)/p.cellH))
	glyph := '─'
	if a.X == b.X {
		glyph = '│'
	}
	steps := max(abs(b.X-a.X), abs(b.Y-a.Y))
	for i := 0; i <= steps; i++ {
		x, y := a.X, a.Y
		if steps > 0 {
			x = a.X + (b.X-a.X)*i/steps
			y = a.Y + (b.Y-a.Y)*i/steps
		}
		if image.Pt(x, y).In(p.state.clip) {
			cl := p.at(x, y)
			cl.r = glyph
			cl.fg = c
			cl.hasFg = true
		}
	}
}

func (p *CellPainter) Text(pos Point, s string, c Color) {
	x := int((pos.X + p.state.offset.X) / p.cellW)
	y := int((pos.Y + p.state.offset.Y) / p.cellH)
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if image.Pt(x, y).In(p.state.clip) {
			cl := p.at(x, y)
			cl.r = r
			cl.fg = c
			cl.hasFg = true
		}
		// The trailing half of a wide rune is a continuation cell;
		// Render skips it so columns stay aligned.
		if w == 2 && image.Pt(x+1, y).In(p.state.clip) {
			p.at(x+1, y).r = cellContinuation
		}
		x += w
	}
}

// Image renders an image as a filled block of its average color. Cell
// grids have no pixels to spare; hosts that need real images use a
// raster backend.
func (p *CellPainter) Image(r Rect, img image.Image) {
	p.FillRect(r, averageColor(img))
}

func averageColor(img image.Image) Color {
	b := img.Bounds()
	if b.Empty() {
		return Color{A: 1}
	}
	var sr, sg, sb uint64
	n := uint64(b.Dx() * b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			sr += uint64(r)
			sg += uint64(g)
			sb += uint64(bl)
		}
	}
	return RGB(
		float64(sr/n)/0xffff,
		float64(sg/n)/0xffff,
		float64(sb/n)/0xffff,
	)
}

// Render serializes the grid to a styled string, one line per row.
func (p *CellPainter) Render() string {
	var sb strings.Builder
	for y := 0; y < p.rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < p.cols; x++ {
			cl := p.at(x, y)
			r := cl.r
			if r == cellContinuation {
				continue
			}
			if r == 0 {
				r = ' '
			}
			style := lipgloss.NewStyle()
			if cl.hasFg {
				style = style.Foreground(lipgloss.Color(cl.fg.HexString()))
			}
			if cl.hasBg {
				style = style.Background(lipgloss.Color(cl.bg.HexString()))
			}
			sb.WriteString(style.Render(string(r)))
		}
	}
	return sb.String()
}

// PlainString returns the grid without styling. Tests assert on it.
func (p *CellPainter) PlainString() string {
	var sb strings.Builder
	for y := 0; y < p.rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < p.cols; x++ {
			r := p.at(x, y).r
			if r == cellContinuation {
				continue
			}
			if r == 0 {
				r = ' '
			}
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
