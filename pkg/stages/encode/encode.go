// Package encode implements the stage that serializes the final image.
package encode

import (
	"context"
	"fmt"

	"github.com/user/pgmtool/pkg/pipeline"
	"github.com/user/pgmtool/pkg/ports"
)

// Stage encodes an image through a codec.
type Stage struct {
	codec  ports.Codec
	logger ports.Logger
}

// New creates a new encode stage.
func New(codec ports.Codec, logger ports.Logger) *Stage {
	return &Stage{
		codec:  codec,
		logger: logger.WithComponent("encode"),
	}
}

// Execute serializes the image into the codec's byte format.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	s.logger.Debug("Encoding %dx%d image", input.Image.Width(), input.Image.Height())

	data, err := s.codec.Encode(input.Image)
	if err != nil {
		return pipeline.EncodeResult{}, fmt.Errorf("encode image: %w", err)
	}

	s.logger.Debug("Encoded %d bytes", len(data))
	return pipeline.EncodeResult{Data: data}, nil
}

// Ensure Stage implements pipeline.Stage
var _ pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult] = (*Stage)(nil)
