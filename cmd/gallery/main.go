// Command gallery renders a static widget gallery to PNG files, once
// through the software raster backend and once through the gg vector
// backend. Useful for eyeballing theme and layout changes without a
// terminal.
package main

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"loom"
	"loom/ggpaint"
)

type GalleryState struct {
	User  loom.Value[string]
	Admin bool
}

func (s GalleryState) Same(other GalleryState) bool { return s == other }
func (s GalleryState) Clone() GalleryState          { return s }

func buildUI() loom.Widget[GalleryState] {
	userLens := loom.Field(func(s *GalleryState) *loom.Value[string] { return &s.User })

	header := loom.LabelOf(func(s *GalleryState) string {
		return "welcome, " + s.User.V
	})

	badge := loom.NewEither(
		func(s *GalleryState) bool { return s.Admin },
		loom.NewLabel[GalleryState]("admin"),
		loom.NewLabel[GalleryState]("guest"),
	)

	name := loom.WithLens(userLens, loom.LabelOf(func(u *loom.Value[string]) string {
		return "user: " + u.V
	}))

	col := loom.Column[GalleryState]().
		Add(header).
		Add(badge).
		Add(name).
		Add(loom.NewButton("ok", func(ctx *loom.EventCtx, s *GalleryState) {})).
		Add(loom.NewSizedBox[GalleryState](120, 24))

	return loom.NewBackground[GalleryState](loom.Pad(loom.InsetsVH(12, 16), col)).Border()
}

const (
	frameW = 480
	frameH = 320
)

func renderRaster(root *loom.Root[GalleryState], path string) error {
	dst := image.NewRGBA(image.Rect(0, 0, frameW, frameH))
	root.InvalidateAll()
	root.Paint(loom.NewImagePainter(dst))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, dst)
}

func renderVector(root *loom.Root[GalleryState], path string) error {
	p := ggpaint.NewSized(frameW, frameH)
	root.InvalidateAll()
	root.Paint(p)
	return p.Context().SavePNG(path)
}

func main() {
	loom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	root := loom.NewRoot(buildUI(), GalleryState{User: loom.Val("ada"), Admin: true})
	root.Layout(loom.Size{Width: frameW, Height: frameH})

	if err := renderRaster(root, "gallery-raster.png"); err != nil {
		fmt.Fprintln(os.Stderr, "gallery:", err)
		os.Exit(1)
	}
	if err := renderVector(root, "gallery-vector.png"); err != nil {
		fmt.Fprintln(os.Stderr, "gallery:", err)
		os.Exit(1)
	}
	fmt.Println("wrote gallery-raster.png and gallery-vector.png")
}
