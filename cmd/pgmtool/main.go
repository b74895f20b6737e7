// Package main provides the CLI entry point for pgmtool.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/pgmtool/pkg/adapters/logger"
	"github.com/user/pgmtool/pkg/adapters/osfilesystem"
	"github.com/user/pgmtool/pkg/adapters/pgmcodec"
	"github.com/user/pgmtool/pkg/adapters/pngexport"
	"github.com/user/pgmtool/pkg/compare"
	"github.com/user/pgmtool/pkg/config"
	"github.com/user/pgmtool/pkg/geometry"
	"github.com/user/pgmtool/pkg/orchestrator"
	"github.com/user/pgmtool/pkg/pipeline"
	"github.com/user/pgmtool/pkg/ports"
	"github.com/user/pgmtool/pkg/raster"
	"github.com/user/pgmtool/pkg/stages/decode"
	"github.com/user/pgmtool/pkg/stages/encode"
	"github.com/user/pgmtool/pkg/stages/process"
	"github.com/user/pgmtool/pkg/stages/sketch"
	"github.com/user/pgmtool/pkg/transform"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Adjust   AdjustCmd   `cmd:"" help:"Apply brightness/contrast adjustment."`
	Gamma    GammaCmd    `cmd:"" help:"Apply gamma correction."`
	Convolve ConvolveCmd `cmd:"" help:"Apply a convolution kernel."`
	Draw     DrawCmd     `cmd:"" help:"Draw a shape onto the image."`
	Crop     CropCmd     `cmd:"" help:"Extract a rectangular region."`
	Diff     DiffCmd     `cmd:"" help:"Subtract one image from another pixel-wise."`
	Preview  PreviewCmd  `cmd:"" help:"Export a PGM image as a PNG preview."`
	Compare  CompareCmd  `cmd:"" help:"Compose two images side by side as PNG."`
	Version  VersionCmd  `cmd:"" help:"Show version information."`
}

// commonFlags are shared by the pipeline-running subcommands.
type commonFlags struct {
	Input  string `arg:"" help:"Input PGM file path."`
	Output string `short:"o" required:"" help:"Output PGM file path."`

	Config string `short:"c" type:"path" help:"YAML config file path."`

	Preview       string `help:"Also write a PNG preview of the result to this path."`
	PreviewMaxDim int    `help:"Bound the preview's larger dimension (0 = full size)."`

	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// AdjustCmd applies the linear brightness/contrast map.
type AdjustCmd struct {
	commonFlags
	Alpha float64 `short:"a" default:"1.0" help:"Contrast factor (>1 expands spread, <1 compresses)."`
	Beta  float64 `short:"b" default:"0" help:"Brightness offset added to every pixel."`
}

// GammaCmd applies gamma correction.
type GammaCmd struct {
	commonFlags
	Gamma float64 `short:"g" required:"" help:"Gamma exponent (<1 brightens, >1 darkens, must be > 0)."`
}

// ConvolveCmd applies a named convolution kernel.
type ConvolveCmd struct {
	commonFlags
	Kernel string `short:"k" default:"identity" help:"Kernel name: a builtin preset or a config-defined kernel."`
}

// DrawCmd rasterizes a shape into the image.
type DrawCmd struct {
	commonFlags
	Shape  string `short:"s" required:"" enum:"line,circle,rect" help:"Shape to draw (line, circle, rect)."`
	X1     int    `help:"Line start / circle center / rectangle corner X."`
	Y1     int    `help:"Line start / circle center / rectangle corner Y."`
	X2     int    `help:"Line end / opposite rectangle corner X."`
	Y2     int    `help:"Line end / opposite rectangle corner Y."`
	Radius int    `short:"r" help:"Circle radius (negative draws nothing)."`
	Value  *int   `short:"v" help:"Grayscale value 0-255 (default from config, 255 otherwise)."`
}

// CropCmd extracts a region of interest.
type CropCmd struct {
	commonFlags
	X      int `required:"" help:"Region top-left X."`
	Y      int `required:"" help:"Region top-left Y."`
	Width  int `short:"W" required:"" help:"Region width."`
	Height int `short:"H" required:"" help:"Region height."`
}

// DiffCmd subtracts one image from another.
type DiffCmd struct {
	Minuend    string `arg:"" help:"Image to subtract from."`
	Subtrahend string `arg:"" help:"Image to subtract."`
	Output     string `short:"o" required:"" help:"Output PGM file path."`
	LogLevel   string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet      bool   `short:"Q" help:"Suppress all log output."`
}

// PreviewCmd converts a PGM image to PNG.
type PreviewCmd struct {
	Input  string `arg:"" help:"Input PGM file path."`
	Output string `short:"o" required:"" help:"Output PNG file path."`
	MaxDim int    `help:"Bound the preview's larger dimension (0 = full size)."`
}

// CompareCmd composes two PGM images side by side as a PNG sheet.
type CompareCmd struct {
	Left   string `arg:"" help:"Left image file path."`
	Right  string `arg:"" help:"Right image file path."`
	Output string `short:"o" required:"" help:"Output PNG file path."`
	Gap    int    `default:"10" help:"Horizontal gap between the images in pixels."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("pgmtool"),
		kong.Description("Process grayscale PGM images: point transforms, convolution, shape drawing."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// newLogger builds the logger for a command.
func newLogger(level string, quiet bool) ports.Logger {
	if quiet {
		return logger.NewNoop()
	}
	return logger.NewConsole(ports.ParseLogLevel(level))
}

// signalContext returns a context cancelled on SIGINT/SIGTERM.
func signalContext(log ports.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Interrupted, shutting down...")
		cancel()
	}()
	return ctx, cancel
}

// loadConfig reads the config file when given, defaults otherwise.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Defaults(), nil
	}
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// resolveOutput prepends the configured output directory to bare file names.
func resolveOutput(cfg config.Config, path string) string {
	if cfg.OutputDir == "" || filepath.Dir(path) != "." {
		return path
	}
	return filepath.Join(cfg.OutputDir, path)
}

// runPipeline wires the adapters and stages and executes one pipeline run.
func runPipeline(flags commonFlags, cfg config.Config, ops []transform.Operation, cmds []pipeline.DrawCommand, crop *orchestrator.CropSpec) error {
	log := newLogger(flags.LogLevel, flags.Quiet)

	ctx, cancel := signalContext(log)
	defer cancel()

	fs := osfilesystem.New()
	codec := pgmcodec.New()
	exporter := pngexport.New()

	orch := orchestrator.New(
		decode.New(codec, log),
		process.New(log),
		sketch.New(log),
		encode.New(codec, log),
		fs,
		exporter,
		log,
	)

	previewMax := flags.PreviewMaxDim
	if previewMax == 0 {
		previewMax = cfg.PreviewMaxDim
	}

	return orch.Run(ctx, orchestrator.Config{
		InputPath:     flags.Input,
		OutputPath:    resolveOutput(cfg, flags.Output),
		Operations:    ops,
		Commands:      cmds,
		Crop:          crop,
		PreviewPath:   flags.Preview,
		PreviewMaxDim: previewMax,
	})
}

// Run executes the adjust command.
func (cmd *AdjustCmd) Run() error {
	cfg, err := loadConfig(cmd.Config)
	if err != nil {
		return err
	}
	op := transform.NewBrightnessContrast(cmd.Alpha, cmd.Beta)
	return runPipeline(cmd.commonFlags, cfg, []transform.Operation{op}, nil, nil)
}

// Run executes the gamma command.
func (cmd *GammaCmd) Run() error {
	cfg, err := loadConfig(cmd.Config)
	if err != nil {
		return err
	}
	op, err := transform.NewGamma(cmd.Gamma)
	if err != nil {
		return err
	}
	return runPipeline(cmd.commonFlags, cfg, []transform.Operation{op}, nil, nil)
}

// Run executes the convolve command.
func (cmd *ConvolveCmd) Run() error {
	cfg, err := loadConfig(cmd.Config)
	if err != nil {
		return err
	}
	kernel, scale, err := cfg.ResolveKernel(cmd.Kernel)
	if err != nil {
		return err
	}
	op, err := transform.NewConvolution(kernel, scale)
	if err != nil {
		return err
	}
	return runPipeline(cmd.commonFlags, cfg, []transform.Operation{op}, nil, nil)
}

// Run executes the draw command.
func (cmd *DrawCmd) Run() error {
	cfg, err := loadConfig(cmd.Config)
	if err != nil {
		return err
	}

	value := cfg.DrawValue
	if cmd.Value != nil {
		value = *cmd.Value
	}
	if value < 0 || value > 255 {
		return fmt.Errorf("draw value must be 0-255, got %d", value)
	}

	dcmd := pipeline.DrawCommand{
		P1:    geometry.Pt(cmd.X1, cmd.Y1),
		P2:    geometry.Pt(cmd.X2, cmd.Y2),
		Value: uint8(value),
	}
	switch cmd.Shape {
	case "line":
		dcmd.Shape = pipeline.ShapeLine
	case "circle":
		dcmd.Shape = pipeline.ShapeCircle
		dcmd.Radius = cmd.Radius
	case "rect":
		dcmd.Shape = pipeline.ShapeRect
	}

	return runPipeline(cmd.commonFlags, cfg, nil, []pipeline.DrawCommand{dcmd}, nil)
}

// Run executes the crop command.
func (cmd *CropCmd) Run() error {
	cfg, err := loadConfig(cmd.Config)
	if err != nil {
		return err
	}
	crop := &orchestrator.CropSpec{X: cmd.X, Y: cmd.Y, Width: cmd.Width, Height: cmd.Height}
	return runPipeline(cmd.commonFlags, cfg, nil, nil, crop)
}

// Run executes the diff command.
func (cmd *DiffCmd) Run() error {
	log := newLogger(cmd.LogLevel, cmd.Quiet)
	fs := osfilesystem.New()
	codec := pgmcodec.New()

	left, err := loadImage(fs, codec, cmd.Minuend)
	if err != nil {
		return err
	}
	right, err := loadImage(fs, codec, cmd.Subtrahend)
	if err != nil {
		return err
	}

	diff := left.Sub(right)
	if diff.IsEmpty() {
		return fmt.Errorf("dimension mismatch: %dx%d vs %dx%d",
			left.Width(), left.Height(), right.Width(), right.Height())
	}

	data, err := codec.Encode(diff)
	if err != nil {
		return err
	}
	if err := fs.WriteFile(cmd.Output, data); err != nil {
		return fmt.Errorf("write %s: %w", cmd.Output, err)
	}
	log.Info("Output saved to %s", cmd.Output)
	return nil
}

// Run executes the preview command.
func (cmd *PreviewCmd) Run() error {
	fs := osfilesystem.New()
	codec := pgmcodec.New()

	img, err := loadImage(fs, codec, cmd.Input)
	if err != nil {
		return err
	}

	data, err := pngexport.New().Export(img, cmd.MaxDim)
	if err != nil {
		return err
	}
	if err := fs.WriteFile(cmd.Output, data); err != nil {
		return fmt.Errorf("write %s: %w", cmd.Output, err)
	}
	return nil
}

// Run executes the compare command.
func (cmd *CompareCmd) Run() error {
	fs := osfilesystem.New()
	codec := pgmcodec.New()

	left, err := loadImage(fs, codec, cmd.Left)
	if err != nil {
		return err
	}
	right, err := loadImage(fs, codec, cmd.Right)
	if err != nil {
		return err
	}

	opts := compare.DefaultOptions()
	opts.Gap = cmd.Gap
	sheet, err := compare.Combine(left, right, opts)
	if err != nil {
		return err
	}

	data, err := pngexport.EncodeImage(sheet)
	if err != nil {
		return err
	}
	if err := fs.WriteFile(cmd.Output, data); err != nil {
		return fmt.Errorf("write %s: %w", cmd.Output, err)
	}
	return nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("pgmtool version %s", version))
	return nil
}

// loadImage reads and decodes one PGM file.
func loadImage(fs ports.FileSystem, codec ports.Codec, path string) (*raster.Image, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	img, err := codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
