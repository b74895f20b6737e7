// Package transform implements the per-pixel and neighborhood operations
// applied to raster images: linear brightness/contrast adjustment, gamma
// correction, and kernel convolution.
package transform

import (
	"fmt"
	"math"

	"github.com/user/pgmtool/pkg/raster"
)

// Operation is an image processing step. Apply reads the source and
// returns a newly allocated image of the same dimensions; the source is
// never mutated. Operations are stateless aside from construction-time
// parameters and are safe to reuse across images.
type Operation interface {
	Apply(src *raster.Image) *raster.Image
}

// BrightnessContrast is the linear map out = alpha*in + beta, clamped to
// [0, 255]. Alpha scales contrast, beta shifts brightness. Extreme values
// saturate rather than fail.
type BrightnessContrast struct {
	alpha float64
	beta  float64
}

// NewBrightnessContrast returns a brightness/contrast adjustment with the
// given contrast factor alpha and brightness offset beta.
func NewBrightnessContrast(alpha, beta float64) *BrightnessContrast {
	return &BrightnessContrast{alpha: alpha, beta: beta}
}

// Apply maps every sample through round(alpha*in + beta), clamped.
func (op *BrightnessContrast) Apply(src *raster.Image) *raster.Image {
	return mapPixels(src, func(in uint8) uint8 {
		return clampFloat(math.Round(op.alpha*float64(in) + op.beta))
	})
}

// Gamma is the power-law map out = 255 * (in/255)^gamma, floored and
// clamped. Gamma below 1 brightens, above 1 darkens.
type Gamma struct {
	gamma float64
}

// NewGamma returns a gamma correction. The exponent must be positive for
// the power curve to stay monotonic; zero or negative values are rejected.
func NewGamma(gamma float64) (*Gamma, error) {
	if gamma <= 0 {
		return nil, fmt.Errorf("gamma must be positive, got %g", gamma)
	}
	return &Gamma{gamma: gamma}, nil
}

// Apply maps every sample through floor(255 * (in/255)^gamma), clamped.
func (op *Gamma) Apply(src *raster.Image) *raster.Image {
	// 256 possible inputs, so build the curve once per image.
	var lut [256]uint8
	for in := 0; in < 256; in++ {
		lut[in] = clampFloat(math.Floor(255 * math.Pow(float64(in)/255, op.gamma)))
	}
	return mapPixels(src, func(in uint8) uint8 {
		return lut[in]
	})
}

// mapPixels applies a pure sample map to every pixel of src, producing a
// new image of identical dimensions.
func mapPixels(src *raster.Image, f func(uint8) uint8) *raster.Image {
	dst := raster.New(src.Width(), src.Height())
	for y := 0; y < src.Height(); y++ {
		srcRow := src.Row(y)
		dstRow := dst.Row(y)
		for x, in := range srcRow {
			dstRow[x] = f(in)
		}
	}
	return dst
}

// clampFloat truncates an already-rounded value to [0, 255].
func clampFloat(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
