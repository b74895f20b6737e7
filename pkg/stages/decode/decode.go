// Package decode implements the stage that turns file bytes into an image.
package decode

import (
	"context"
	"fmt"

	"github.com/user/pgmtool/pkg/pipeline"
	"github.com/user/pgmtool/pkg/ports"
)

// Stage decodes encoded raster data through a codec.
type Stage struct {
	codec  ports.Codec
	logger ports.Logger
}

// New creates a new decode stage.
func New(codec ports.Codec, logger ports.Logger) *Stage {
	return &Stage{
		codec:  codec,
		logger: logger.WithComponent("decode"),
	}
}

// Execute decodes the input bytes into an image.
func (s *Stage) Execute(ctx context.Context, input pipeline.DecodeInput) (pipeline.DecodeResult, error) {
	s.logger.Debug("Decoding %d bytes of PGM data", len(input.Data))

	img, err := s.codec.Decode(input.Data)
	if err != nil {
		return pipeline.DecodeResult{}, fmt.Errorf("decode image: %w", err)
	}

	s.logger.Debug("Decoded %dx%d image", img.Width(), img.Height())
	return pipeline.DecodeResult{Image: img}, nil
}

// Ensure Stage implements pipeline.Stage
var _ pipeline.Stage[pipeline.DecodeInput, pipeline.DecodeResult] = (*Stage)(nil)
