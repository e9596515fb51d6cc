// Package sheet renders a contact sheet: a grid of frame thumbnails with
// name labels, useful as a static overview of a whole sequence.
package sheet

import (
	"image"
	"image/color"
	"path"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

// Frame pairs a decoded image with the identifier it came from.
type Frame struct {
	Name  string
	Image image.Image
}

// Options configures contact sheet rendering.
type Options struct {
	Columns     int
	ThumbWidth  int
	ThumbHeight int
	Padding     int
	LabelHeight int
	Background  color.Color
	LabelColor  color.Color
}

// DefaultOptions returns Options with default values.
func DefaultOptions() Options {
	return Options{
		Columns:     4,
		ThumbWidth:  160,
		ThumbHeight: 120,
		Padding:     12,
		LabelHeight: 16,
		Background:  color.RGBA{R: 30, G: 30, B: 30, A: 255},
		LabelColor:  color.White,
	}
}

// Render lays frames out on a grid, scaling each into its cell while
// preserving aspect ratio. Nil frame images leave an empty cell with just
// the label.
func Render(frames []Frame, opts Options) image.Image {
	if opts.Columns < 1 {
		opts.Columns = 1
	}
	rows := (len(frames) + opts.Columns - 1) / opts.Columns
	if rows < 1 {
		rows = 1
	}
	cellH := opts.ThumbHeight + opts.LabelHeight
	width := opts.Padding + opts.Columns*(opts.ThumbWidth+opts.Padding)
	height := opts.Padding + rows*(cellH+opts.Padding)

	dc := gg.NewContext(width, height)
	dc.SetColor(opts.Background)
	dc.Clear()

	for i, frame := range frames {
		col := i % opts.Columns
		row := i / opts.Columns
		x := opts.Padding + col*(opts.ThumbWidth+opts.Padding)
		y := opts.Padding + row*(cellH+opts.Padding)

		if frame.Image != nil {
			thumb := fit(frame.Image, opts.ThumbWidth, opts.ThumbHeight)
			// Center the thumbnail in its cell.
			ox := x + (opts.ThumbWidth-thumb.Bounds().Dx())/2
			oy := y + (opts.ThumbHeight-thumb.Bounds().Dy())/2
			dc.DrawImage(thumb, ox, oy)
		}

		dc.SetColor(opts.LabelColor)
		label := path.Base(frame.Name)
		dc.DrawStringAnchored(label, float64(x+opts.ThumbWidth/2), float64(y+opts.ThumbHeight+opts.LabelHeight/2), 0.5, 0.5)
	}

	return dc.Image()
}

// fit scales img down to fill at most w x h without distorting it.
func fit(img image.Image, w, h int) image.Image {
	bounds := img.Bounds()
	sw, sh := bounds.Dx(), bounds.Dy()
	if sw == 0 || sh == 0 {
		return img
	}
	scale := float64(w) / float64(sw)
	if s := float64(h) / float64(sh); s < scale {
		scale = s
	}
	if scale >= 1 {
		return img
	}
	dw := int(float64(sw) * scale)
	dh := int(float64(sh) * scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
