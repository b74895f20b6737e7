// Package orchestrator coordinates the image processing pipeline stages.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/user/pgmtool/pkg/pipeline"
	"github.com/user/pgmtool/pkg/ports"
	"github.com/user/pgmtool/pkg/raster"
	"github.com/user/pgmtool/pkg/transform"
)

// Config describes one run of the pipeline: which file to read, what to do
// to it, and where the results go.
type Config struct {
	// Input/Output
	InputPath  string
	OutputPath string

	// Operations are applied in order before any draw commands.
	Operations []transform.Operation

	// Commands are rasterized into the processed image.
	Commands []pipeline.DrawCommand

	// Crop, when non-nil, extracts this region as the final image after
	// operations and drawing. X/Y/Width/Height in source pixels.
	Crop *CropSpec

	// PreviewPath, when set, additionally writes a PNG preview of the
	// final image.
	PreviewPath string
	// PreviewMaxDim bounds the preview's larger dimension (0 = full size).
	PreviewMaxDim int
}

// CropSpec is a region-of-interest extraction request.
type CropSpec struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Previewer renders an image as PNG preview bytes.
type Previewer interface {
	Export(img *raster.Image, maxDim int) ([]byte, error)
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	decodeStage  pipeline.Stage[pipeline.DecodeInput, pipeline.DecodeResult]
	processStage pipeline.Stage[pipeline.ProcessInput, pipeline.ProcessResult]
	sketchStage  pipeline.Stage[pipeline.SketchInput, pipeline.SketchResult]
	encodeStage  pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	fs           ports.FileSystem
	previewer    Previewer
	logger       ports.Logger
}

// New creates a new Orchestrator. The previewer may be nil when no
// preview output is requested.
func New(
	decodeStage pipeline.Stage[pipeline.DecodeInput, pipeline.DecodeResult],
	processStage pipeline.Stage[pipeline.ProcessInput, pipeline.ProcessResult],
	sketchStage pipeline.Stage[pipeline.SketchInput, pipeline.SketchResult],
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	fs ports.FileSystem,
	previewer Previewer,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		decodeStage:  decodeStage,
		processStage: processStage,
		sketchStage:  sketchStage,
		encodeStage:  encodeStage,
		fs:           fs,
		previewer:    previewer,
		logger:       logger,
	}
}

// Run executes the pipeline: read, decode, process, sketch, optionally
// crop, encode, write, and optionally write a preview.
func (o *Orchestrator) Run(ctx context.Context, cfg Config) error {
	o.logger.Info("Processing %s", cfg.InputPath)

	data, err := o.fs.ReadFile(cfg.InputPath)
	if err != nil {
		o.logger.Error("Failed to read input: %s", err)
		return fmt.Errorf("read %s: %w", cfg.InputPath, err)
	}

	decoded, err := o.decodeStage.Execute(ctx, pipeline.DecodeInput{Data: data})
	if err != nil {
		o.logger.Error("Failed to decode image: %s", err)
		return fmt.Errorf("decode %s: %w", cfg.InputPath, err)
	}

	processed, err := o.processStage.Execute(ctx, pipeline.ProcessInput{
		Image:      decoded.Image,
		Operations: cfg.Operations,
	})
	if err != nil {
		return fmt.Errorf("process: %w", err)
	}

	sketched, err := o.sketchStage.Execute(ctx, pipeline.SketchInput{
		Image:    processed.Image,
		Commands: cfg.Commands,
	})
	if err != nil {
		return fmt.Errorf("sketch: %w", err)
	}

	final := sketched.Image
	if cfg.Crop != nil {
		final, err = final.ROI(cfg.Crop.X, cfg.Crop.Y, cfg.Crop.Width, cfg.Crop.Height)
		if err != nil {
			return fmt.Errorf("crop: %w", err)
		}
	}

	encoded, err := o.encodeStage.Execute(ctx, pipeline.EncodeInput{Image: final})
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	if err := o.fs.WriteFile(cfg.OutputPath, encoded.Data); err != nil {
		o.logger.Error("Failed to write output: %s", err)
		return fmt.Errorf("write %s: %w", cfg.OutputPath, err)
	}
	o.logger.Info("Output saved to %s", cfg.OutputPath)

	if cfg.PreviewPath != "" {
		if o.previewer == nil {
			return fmt.Errorf("preview requested but no previewer configured")
		}
		preview, err := o.previewer.Export(final, cfg.PreviewMaxDim)
		if err != nil {
			return fmt.Errorf("render preview: %w", err)
		}
		if err := o.fs.WriteFile(cfg.PreviewPath, preview); err != nil {
			return fmt.Errorf("write %s: %w", cfg.PreviewPath, err)
		}
		o.logger.Info("Preview saved to %s", cfg.PreviewPath)
	}

	o.logger.Info("Pipeline completed")
	return nil
}
