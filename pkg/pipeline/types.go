package pipeline

import (
	"github.com/user/pgmtool/pkg/geometry"
	"github.com/user/pgmtool/pkg/raster"
	"github.com/user/pgmtool/pkg/transform"
)

// =============================================================================
// Decode Stage Types
// =============================================================================

// DecodeInput carries the raw bytes of an encoded raster file.
type DecodeInput struct {
	Data []byte
}

// DecodeResult contains the decoded image.
type DecodeResult struct {
	Image *raster.Image
}

// =============================================================================
// Process Stage Types
// =============================================================================

// ProcessInput carries the image and the operations to run on it, in order.
type ProcessInput struct {
	Image      *raster.Image
	Operations []transform.Operation
}

// ProcessResult contains the processed image. When the input carried no
// operations this is the input image unchanged.
type ProcessResult struct {
	Image *raster.Image
}

// =============================================================================
// Sketch Stage Types
// =============================================================================

// ShapeKind selects which primitive a draw command rasterizes.
type ShapeKind int

const (
	// ShapeLine draws the segment P1..P2.
	ShapeLine ShapeKind = iota
	// ShapeCircle draws the circle outline centered at P1 with Radius.
	ShapeCircle
	// ShapeRect draws the rectangle outline with corners P1 and P2.
	ShapeRect
)

// String returns the shape name.
func (k ShapeKind) String() string {
	switch k {
	case ShapeLine:
		return "line"
	case ShapeCircle:
		return "circle"
	case ShapeRect:
		return "rectangle"
	default:
		return "unknown"
	}
}

// DrawCommand describes a single primitive to rasterize.
type DrawCommand struct {
	Shape  ShapeKind
	P1     geometry.Point // line start, circle center, or rectangle corner
	P2     geometry.Point // line end or opposite rectangle corner
	Radius int            // circle only
	Value  uint8          // grayscale value plotted for every pixel
}

// SketchInput carries the image to draw on and the commands to apply.
// The sketch stage mutates the image in place.
type SketchInput struct {
	Image    *raster.Image
	Commands []DrawCommand
}

// SketchResult contains the drawn-on image.
type SketchResult struct {
	Image *raster.Image
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// EncodeInput carries the final image to serialize.
type EncodeInput struct {
	Image *raster.Image
}

// EncodeResult contains the encoded file bytes.
type EncodeResult struct {
	Data []byte
}
