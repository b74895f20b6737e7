package sketch

import (
	"context"
	"testing"

	"github.com/user/pgmtool/pkg/adapters/logger"
	"github.com/user/pgmtool/pkg/geometry"
	"github.com/user/pgmtool/pkg/pipeline"
	"github.com/user/pgmtool/pkg/raster"
)

func TestStage_DrawsShapes(t *testing.T) {
	stage := New(logger.NewNoop())
	img := raster.Zeros(16, 16)

	result, err := stage.Execute(context.Background(), pipeline.SketchInput{
		Image: img,
		Commands: []pipeline.DrawCommand{
			{Shape: pipeline.ShapeLine, P1: geometry.Pt(0, 0), P2: geometry.Pt(3, 0), Value: 100},
			{Shape: pipeline.ShapeCircle, P1: geometry.Pt(8, 8), Radius: 2, Value: 200},
			{Shape: pipeline.ShapeRect, P1: geometry.Pt(12, 12), P2: geometry.Pt(15, 15), Value: 50},
		},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.Image != img {
		t.Error("expected drawing in place on the input image")
	}
	if img.At(2, 0) != 100 {
		t.Errorf("expected line pixel 100, got %d", img.At(2, 0))
	}
	if img.At(10, 8) != 200 {
		t.Errorf("expected circle pixel 200, got %d", img.At(10, 8))
	}
	if img.At(12, 13) != 50 {
		t.Errorf("expected rectangle pixel 50, got %d", img.At(12, 13))
	}
}

func TestStage_LaterCommandsWin(t *testing.T) {
	stage := New(logger.NewNoop())
	img := raster.Zeros(8, 8)

	_, err := stage.Execute(context.Background(), pipeline.SketchInput{
		Image: img,
		Commands: []pipeline.DrawCommand{
			{Shape: pipeline.ShapeLine, P1: geometry.Pt(0, 4), P2: geometry.Pt(7, 4), Value: 10},
			{Shape: pipeline.ShapeLine, P1: geometry.Pt(4, 0), P2: geometry.Pt(4, 7), Value: 20},
		},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if img.At(4, 4) != 20 {
		t.Errorf("expected later command to overwrite crossing, got %d", img.At(4, 4))
	}
}

func TestStage_OffImageCommandIsNoop(t *testing.T) {
	stage := New(logger.NewNoop())
	img := raster.Zeros(4, 4)

	_, err := stage.Execute(context.Background(), pipeline.SketchInput{
		Image: img,
		Commands: []pipeline.DrawCommand{
			{Shape: pipeline.ShapeCircle, P1: geometry.Pt(100, 100), Radius: 3, Value: 255},
		},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if img.At(x, y) != 0 {
				t.Fatalf("expected image untouched, got %d at (%d,%d)", img.At(x, y), x, y)
			}
		}
	}
}

func TestStage_CancelledContext(t *testing.T) {
	stage := New(logger.NewNoop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stage.Execute(ctx, pipeline.SketchInput{
		Image: raster.Zeros(4, 4),
		Commands: []pipeline.DrawCommand{
			{Shape: pipeline.ShapeLine, P1: geometry.Pt(0, 0), P2: geometry.Pt(3, 3), Value: 255},
		},
	})
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
