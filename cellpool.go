package loom

import "sync"

// Painter pool - grids are reused across frames and resizes to avoid
// reallocating cells.
var cellPainterPool = sync.Pool{
	New: func() any { return &CellPainter{} },
}

// GetCellPainter gets a painter from the pool, resizing its grid if
// needed.
func GetCellPainter(cols, rows int, cellSize Size) *CellPainter {
	p := cellPainterPool.Get().(*CellPainter)
	needed := cols * rows
	if cap(p.cells) < needed {
		p.cells = make([]cell, needed)
	} else {
		p.cells = p.cells[:needed]
	}
	p.cols, p.rows = cols, rows
	p.cellW, p.cellH = cellSize.Width, cellSize.Height
	p.Reset()
	return p
}

// PutCellPainter returns a painter to the pool.
func PutCellPainter(p *CellPainter) {
	if p == nil {
		return
	}
	cellPainterPool.Put(p)
}
