// Package compare composes two grayscale images side by side, for eyeballing
// an operation's input against its output.
package compare

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/user/pgmtool/pkg/raster"
)

// Options configures the comparison sheet.
type Options struct {
	// Gap is the horizontal gap between the two images in pixels.
	Gap int
	// Padding is the margin around the sheet in pixels.
	Padding int
	// FrameWidth is the stroke width of the frame around each image.
	FrameWidth float64
	// Background fills the sheet behind and between the images.
	Background color.Color
	// Frame is the stroke color of the image frames.
	Frame color.Color
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		Gap:        10,
		Padding:    16,
		FrameWidth: 1,
		Background: color.RGBA{R: 30, G: 30, B: 30, A: 255},
		Frame:      color.RGBA{R: 80, G: 80, B: 80, A: 255},
	}
}

// Combine lays left and right side by side on a shared canvas. The two
// images may differ in size; each is framed at its own dimensions and the
// canvas height follows the taller one. Both inputs must be non-empty.
func Combine(left, right *raster.Image, opts Options) (image.Image, error) {
	if left.IsEmpty() {
		return nil, fmt.Errorf("left image is empty")
	}
	if right.IsEmpty() {
		return nil, fmt.Errorf("right image is empty")
	}

	width := opts.Padding*2 + left.Width() + opts.Gap + right.Width()
	height := opts.Padding*2 + max(left.Height(), right.Height())

	dc := gg.NewContext(width, height)
	dc.SetColor(opts.Background)
	dc.Clear()

	leftX := opts.Padding
	rightX := opts.Padding + left.Width() + opts.Gap

	dc.DrawImage(left.Gray(), leftX, opts.Padding)
	dc.DrawImage(right.Gray(), rightX, opts.Padding)

	if opts.FrameWidth > 0 {
		dc.SetColor(opts.Frame)
		dc.SetLineWidth(opts.FrameWidth)
		dc.DrawRectangle(float64(leftX), float64(opts.Padding), float64(left.Width()), float64(left.Height()))
		dc.Stroke()
		dc.DrawRectangle(float64(rightX), float64(opts.Padding), float64(right.Width()), float64(right.Height()))
		dc.Stroke()
	}

	return dc.Image(), nil
}
