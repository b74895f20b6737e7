// Package raster implements the single-channel pixel buffer at the heart
// of pgmtool. An Image owns a contiguous block of 8-bit grayscale samples;
// copies are always deep, so no two live images share storage.
package raster

import (
	"errors"
	"fmt"
	"image"

	"github.com/user/pgmtool/pkg/geometry"
)

// ErrOutOfRange is returned by checked accessors and ROI extraction when a
// coordinate or region falls outside the image bounds.
var ErrOutOfRange = errors.New("out of range")

// Image is a width×height grid of 8-bit grayscale samples stored in a
// single owned block, row-major, indexed y*width+x. The zero value is the
// empty image. Dimensions are fixed for the life of an allocation;
// operations that change dimensions return a fresh image instead.
//
// An Image is not safe for concurrent mutation; callers that share one
// across goroutines must synchronize externally.
type Image struct {
	width  int
	height int
	pix    []uint8
}

// New returns an image of the given dimensions with all samples zero.
// Non-positive dimensions yield the empty image.
func New(width, height int) *Image {
	if width <= 0 || height <= 0 {
		return &Image{}
	}
	return &Image{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}
}

// Zeros returns an image of the given dimensions filled with 0 (black).
func Zeros(width, height int) *Image {
	return New(width, height)
}

// Ones returns an image of the given dimensions filled with 255 (white).
func Ones(width, height int) *Image {
	im := New(width, height)
	for i := range im.pix {
		im.pix[i] = 255
	}
	return im
}

// FromGray returns an image holding a deep copy of the samples in g.
func FromGray(g *image.Gray) *Image {
	b := g.Bounds()
	im := New(b.Dx(), b.Dy())
	for y := 0; y < im.height; y++ {
		row := g.Pix[g.PixOffset(b.Min.X, b.Min.Y+y):]
		copy(im.pix[y*im.width:(y+1)*im.width], row[:im.width])
	}
	return im
}

// Clone returns a deep copy of the image.
func (im *Image) Clone() *Image {
	if im.IsEmpty() {
		return &Image{}
	}
	dup := &Image{
		width:  im.width,
		height: im.height,
		pix:    make([]uint8, len(im.pix)),
	}
	copy(dup.pix, im.pix)
	return dup
}

// Width returns the image width in pixels.
func (im *Image) Width() int {
	return im.width
}

// Height returns the image height in pixels.
func (im *Image) Height() int {
	return im.height
}

// IsEmpty reports whether the image has no storage or zero dimensions.
func (im *Image) IsEmpty() bool {
	return im.pix == nil || im.width == 0 || im.height == 0
}

// Release frees the sample storage and resets the dimensions to zero,
// leaving the empty image.
func (im *Image) Release() {
	im.pix = nil
	im.width = 0
	im.height = 0
}

// InBounds reports whether (x, y) addresses a sample of the image.
func (im *Image) InBounds(x, y int) bool {
	return x >= 0 && x < im.width && y >= 0 && y < im.height
}

// At returns the sample at (x, y). The coordinate must be in bounds; this
// is the unchecked fast path for hot loops. Use AtChecked when the
// coordinate is not already known to be valid.
func (im *Image) At(x, y int) uint8 {
	return im.pix[y*im.width+x]
}

// Set stores v at (x, y). The coordinate must be in bounds; see At.
func (im *Image) Set(x, y int, v uint8) {
	im.pix[y*im.width+x] = v
}

// AtPoint returns the sample at p. The point must be in bounds.
func (im *Image) AtPoint(p geometry.Point) uint8 {
	return im.At(p.X, p.Y)
}

// SetPoint stores v at p. The point must be in bounds.
func (im *Image) SetPoint(p geometry.Point, v uint8) {
	im.Set(p.X, p.Y, v)
}

// AtChecked returns the sample at (x, y), or ErrOutOfRange when the
// coordinate falls outside the image.
func (im *Image) AtChecked(x, y int) (uint8, error) {
	if !im.InBounds(x, y) {
		return 0, fmt.Errorf("pixel (%d,%d) in %dx%d image: %w", x, y, im.width, im.height, ErrOutOfRange)
	}
	return im.At(x, y), nil
}

// SetChecked stores v at (x, y), or returns ErrOutOfRange when the
// coordinate falls outside the image.
func (im *Image) SetChecked(x, y int, v uint8) error {
	if !im.InBounds(x, y) {
		return fmt.Errorf("pixel (%d,%d) in %dx%d image: %w", x, y, im.width, im.height, ErrOutOfRange)
	}
	im.Set(x, y, v)
	return nil
}

// Row returns the samples of row y as a view into the image storage.
// Mutating the returned slice mutates the image. The row index must be in
// bounds.
func (im *Image) Row(y int) []uint8 {
	return im.pix[y*im.width : (y+1)*im.width]
}

// Bounds returns the image extent as a rectangle anchored at the origin.
func (im *Image) Bounds() geometry.Rectangle {
	return geometry.NewRect(0, 0, im.width, im.height)
}

// Gray returns a deep copy of the image as a standard library *image.Gray,
// for handing to encoders and drawing canvases.
func (im *Image) Gray() *image.Gray {
	g := image.NewGray(image.Rect(0, 0, im.width, im.height))
	for y := 0; y < im.height; y++ {
		copy(g.Pix[y*g.Stride:y*g.Stride+im.width], im.Row(y))
	}
	return g
}

// ROI copies the sub-rectangle [x, x+w) × [y, y+h) into a new image.
// It returns ErrOutOfRange when the requested region exceeds the source
// bounds in either axis.
func (im *Image) ROI(x, y, w, h int) (*Image, error) {
	// Subtraction form: x+w and y+h could overflow for extreme inputs.
	if x < 0 || y < 0 || w < 0 || h < 0 || x > im.width || w > im.width-x || y > im.height || h > im.height-y {
		return nil, fmt.Errorf("region %dx%d at (%d,%d) in %dx%d image: %w", w, h, x, y, im.width, im.height, ErrOutOfRange)
	}
	out := New(w, h)
	for row := 0; row < h; row++ {
		copy(out.pix[row*w:(row+1)*w], im.pix[(y+row)*im.width+x:(y+row)*im.width+x+w])
	}
	return out, nil
}

// ROIRect is ROI with the region given as a rectangle.
func (im *Image) ROIRect(r geometry.Rectangle) (*Image, error) {
	return im.ROI(r.X(), r.Y(), r.Width(), r.Height())
}
