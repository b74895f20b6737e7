// Package pngexport renders grayscale rasters as PNG previews.
package pngexport

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"

	"github.com/user/pgmtool/pkg/raster"
)

// Exporter encodes raster images as PNG, optionally downscaled for
// previewing large inputs.
type Exporter struct{}

// New creates a new Exporter.
func New() *Exporter {
	return &Exporter{}
}

// Export encodes img as PNG. When maxDim is positive and either dimension
// exceeds it, the output is downscaled to fit maxDim while preserving the
// aspect ratio; otherwise the image is encoded at full size.
func (e *Exporter) Export(img *raster.Image, maxDim int) ([]byte, error) {
	if img.IsEmpty() {
		return nil, fmt.Errorf("cannot export empty image")
	}

	var out image.Image = img.Gray()
	if maxDim > 0 && (img.Width() > maxDim || img.Height() > maxDim) {
		w, h := fit(img.Width(), img.Height(), maxDim)
		out = resize(out, w, h)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeImage encodes an arbitrary image as PNG. Used for outputs that
// are not plain grayscale rasters, like comparison sheets.
func EncodeImage(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// fit scales (w, h) down so the larger dimension equals maxDim.
func fit(w, h, maxDim int) (int, int) {
	if w >= h {
		scaled := h * maxDim / w
		if scaled < 1 {
			scaled = 1
		}
		return maxDim, scaled
	}
	scaled := w * maxDim / h
	if scaled < 1 {
		scaled = 1
	}
	return scaled, maxDim
}

// resize rescales an image to the specified dimensions.
func resize(img image.Image, width, height int) image.Image {
	dst := image.NewGray(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}
