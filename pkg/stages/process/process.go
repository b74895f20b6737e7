// Package process implements the stage that runs transform operations.
package process

import (
	"context"
	"fmt"

	"github.com/user/pgmtool/pkg/pipeline"
	"github.com/user/pgmtool/pkg/ports"
)

// Stage applies a chain of transform operations to an image. Each
// operation reads the previous result and produces a fresh image; the
// stage input is never mutated.
type Stage struct {
	logger ports.Logger
}

// New creates a new process stage.
func New(logger ports.Logger) *Stage {
	return &Stage{
		logger: logger.WithComponent("process"),
	}
}

// Execute runs the operations in order. An operation yielding an empty
// image aborts the chain, since every later step would silently work on
// nothing.
func (s *Stage) Execute(ctx context.Context, input pipeline.ProcessInput) (pipeline.ProcessResult, error) {
	s.logger.Debug("Applying %d operations", len(input.Operations))

	img := input.Image
	for i, op := range input.Operations {
		if err := ctx.Err(); err != nil {
			return pipeline.ProcessResult{}, err
		}
		s.logger.Debug("Applying operation %d/%d", i+1, len(input.Operations))
		img = op.Apply(img)
		if img.IsEmpty() {
			return pipeline.ProcessResult{}, fmt.Errorf("operation %d produced an empty image", i+1)
		}
	}

	return pipeline.ProcessResult{Image: img}, nil
}

// Ensure Stage implements pipeline.Stage
var _ pipeline.Stage[pipeline.ProcessInput, pipeline.ProcessResult] = (*Stage)(nil)
