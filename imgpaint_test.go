package loom

import (
	"image"
	"testing"
)

func newTestImage(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func TestImagePainterFillRect(t *testing.T) {
	dst := newTestImage(20, 20)
	p := NewImagePainter(dst)
	p.FillRect(NewRect(5, 5, 10, 10), RGB(1, 0, 0))

	if got := dst.RGBAAt(7, 7); got.R != 255 || got.G != 0 {
		t.Errorf("inside pixel = %v", got)
	}
	if got := dst.RGBAAt(12, 7); got.R != 0 {
		t.Errorf("outside pixel = %v", got)
	}
}

func TestImagePainterClipAndTranslate(t *testing.T) {
	dst := newTestImage(20, 20)
	p := NewImagePainter(dst)

	p.Save()
	p.Clip(NewRect(0, 0, 10, 10))
	p.Translate(Point{X: 5, Y: 5})
	p.FillRect(NewRect(0, 0, 10, 10), RGB(0, 1, 0))
	p.Restore()

	// Fill runs from device (5,5) but the clip ends at (10,10).
	if got := dst.RGBAAt(7, 7); got.G != 255 {
		t.Errorf("clipped-in pixel = %v", got)
	}
	if got := dst.RGBAAt(12, 12); got.G != 0 {
		t.Errorf("clipped-out pixel = %v", got)
	}

	// State restored: drawing at (12,12) works again.
	p.FillRect(NewRect(12, 12, 14, 14), RGB(0, 1, 0))
	if got := dst.RGBAAt(12, 12); got.G != 255 {
		t.Errorf("post-restore pixel = %v", got)
	}
}

func TestImagePainterStrokeRect(t *testing.T) {
	dst := newTestImage(20, 20)
	p := NewImagePainter(dst)
	p.StrokeRect(NewRect(2, 2, 18, 18), RGB(0, 0, 1), 1)

	if got := dst.RGBAAt(10, 2); got.B != 255 {
		t.Errorf("top edge pixel = %v", got)
	}
	if got := dst.RGBAAt(10, 10); got.B != 0 {
		t.Errorf("interior pixel = %v", got)
	}
}

func TestImagePainterLine(t *testing.T) {
	dst := newTestImage(20, 20)
	p := NewImagePainter(dst)
	p.Line(Point{X: 0, Y: 10}, Point{X: 20, Y: 10}, RGB(1, 1, 1), 1)

	if got := dst.RGBAAt(10, 10); got.R != 255 {
		t.Errorf("horizontal line pixel = %v", got)
	}

	p.Line(Point{X: 0, Y: 0}, Point{X: 19, Y: 19}, RGB(1, 0, 1), 1)
	if got := dst.RGBAAt(5, 5); got.B != 255 {
		t.Errorf("diagonal line pixel = %v", got)
	}
}

func TestImagePainterText(t *testing.T) {
	dst := newTestImage(100, 20)
	p := NewImagePainter(dst)
	p.Text(Point{X: 0, Y: 0}, "W", RGB(1, 1, 1))

	// Some pixel in the glyph box must be lit.
	lit := false
	for y := 0; y < 20 && !lit; y++ {
		for x := 0; x < 10; x++ {
			if dst.RGBAAt(x, y).R == 255 {
				lit = true
				break
			}
		}
	}
	if !lit {
		t.Error("text drew no pixels")
	}
}

func TestRootPaintsThroughImagePainter(t *testing.T) {
	ui := NewBackground[Value[int]](NewLabel[Value[int]]("x")).Color(RGB(1, 0, 0))
	root := NewRoot[Value[int]](ui, Val(0))
	root.Layout(Size{Width: 32, Height: 32})

	dst := newTestImage(32, 32)
	root.Paint(NewImagePainter(dst))

	if got := dst.RGBAAt(30, 30); got.R != 255 {
		t.Errorf("background fill missing, corner = %v", got)
	}
}
