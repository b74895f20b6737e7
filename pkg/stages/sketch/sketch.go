// Package sketch implements the stage that rasterizes draw commands.
package sketch

import (
	"context"

	"github.com/user/pgmtool/pkg/draw"
	"github.com/user/pgmtool/pkg/pipeline"
	"github.com/user/pgmtool/pkg/ports"
)

// Stage rasterizes vector primitives into the image, in place. Pixels
// falling outside the image are clipped, never reported, so a command that
// misses the image entirely is a quiet no-op.
type Stage struct {
	logger ports.Logger
}

// New creates a new sketch stage.
func New(logger ports.Logger) *Stage {
	return &Stage{
		logger: logger.WithComponent("sketch"),
	}
}

// Execute applies the draw commands in order and returns the same image.
func (s *Stage) Execute(ctx context.Context, input pipeline.SketchInput) (pipeline.SketchResult, error) {
	s.logger.Debug("Drawing %d shapes", len(input.Commands))

	for i, cmd := range input.Commands {
		if err := ctx.Err(); err != nil {
			return pipeline.SketchResult{}, err
		}
		s.logger.Debug("Drawing shape %d/%d", i+1, len(input.Commands))
		switch cmd.Shape {
		case pipeline.ShapeLine:
			draw.Line(input.Image, cmd.P1, cmd.P2, cmd.Value)
		case pipeline.ShapeCircle:
			draw.Circle(input.Image, cmd.P1, cmd.Radius, cmd.Value)
		case pipeline.ShapeRect:
			draw.Rect(input.Image, cmd.P1, cmd.P2, cmd.Value)
		}
	}

	return pipeline.SketchResult{Image: input.Image}, nil
}

// Ensure Stage implements pipeline.Stage
var _ pipeline.Stage[pipeline.SketchInput, pipeline.SketchResult] = (*Stage)(nil)
