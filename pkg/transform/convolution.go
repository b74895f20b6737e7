package transform

import (
	"fmt"
	"math"

	"github.com/user/pgmtool/pkg/raster"
)

// ScaleFunc rescales a raw convolution sum before it is rounded and
// clamped into a sample. It must be a pure function; the engine may call
// it in any order.
type ScaleFunc func(float64) float64

// IdentityScale passes the convolution sum through unchanged.
func IdentityScale(sum float64) float64 {
	return sum
}

// Kernel is a rectangular matrix of convolution weights. The weights are
// stored in a single owned block, row-major. Construct with NewKernel;
// the zero value is not usable.
type Kernel struct {
	width   int
	height  int
	weights []float64
}

// NewKernel builds a kernel from rows of weights. All rows must have the
// same, positive length. The rows are copied; the caller keeps ownership
// of its slices.
func NewKernel(rows [][]float64) (Kernel, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Kernel{}, fmt.Errorf("kernel dimensions must be positive, got %dx%d", lenFirst(rows), len(rows))
	}
	width := len(rows[0])
	weights := make([]float64, 0, width*len(rows))
	for i, row := range rows {
		if len(row) != width {
			return Kernel{}, fmt.Errorf("kernel row %d has %d weights, want %d", i, len(row), width)
		}
		weights = append(weights, row...)
	}
	return Kernel{width: width, height: len(rows), weights: weights}, nil
}

func lenFirst(rows [][]float64) int {
	if len(rows) == 0 {
		return 0
	}
	return len(rows[0])
}

// Width returns the kernel width.
func (k Kernel) Width() int {
	return k.width
}

// Height returns the kernel height.
func (k Kernel) Height() int {
	return k.height
}

// At returns the weight at kernel cell (x, y). The cell must be in bounds.
func (k Kernel) At(x, y int) float64 {
	return k.weights[y*k.width+x]
}

// Convolution slides a kernel over the source image and maps each weighted
// neighborhood sum through a scaling function. The kernel center sits at
// (width/2, height/2) using integer division.
//
// Neighbors outside the image contribute nothing to the sum (zero
// padding). For kernels whose weights do not sum to zero this leaves
// border pixels systematically under-weighted; a scaling function can
// compensate if the caller cares.
type Convolution struct {
	kernel Kernel
	scale  ScaleFunc
}

// NewConvolution returns a convolution engine over the given kernel.
// A nil scale falls back to IdentityScale. The kernel must have been
// built by NewKernel; an unusable zero kernel is rejected.
func NewConvolution(kernel Kernel, scale ScaleFunc) (*Convolution, error) {
	if kernel.width <= 0 || kernel.height <= 0 {
		return nil, fmt.Errorf("convolution kernel dimensions must be positive, got %dx%d", kernel.width, kernel.height)
	}
	if scale == nil {
		scale = IdentityScale
	}
	return &Convolution{kernel: kernel, scale: scale}, nil
}

// Apply convolves src with the kernel, producing a new image of identical
// dimensions. Each destination sample is round(scale(sum)) clamped to
// [0, 255].
func (op *Convolution) Apply(src *raster.Image) *raster.Image {
	dst := raster.New(src.Width(), src.Height())
	radiusX := op.kernel.width / 2
	radiusY := op.kernel.height / 2

	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			sum := 0.0
			for ky := 0; ky < op.kernel.height; ky++ {
				srcY := y + ky - radiusY
				if srcY < 0 || srcY >= src.Height() {
					continue
				}
				for kx := 0; kx < op.kernel.width; kx++ {
					srcX := x + kx - radiusX
					if srcX < 0 || srcX >= src.Width() {
						continue
					}
					sum += float64(src.At(srcX, srcY)) * op.kernel.At(kx, ky)
				}
			}
			dst.Set(x, y, clampFloat(math.Round(op.scale(sum))))
		}
	}
	return dst
}
