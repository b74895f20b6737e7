package pngexport

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/user/pgmtool/pkg/raster"
)

func TestExporter_Export(t *testing.T) {
	e := New()

	img := raster.Zeros(10, 6)
	img.Set(3, 3, 200)

	data, err := e.Export(img, 0)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode PNG failed: %v", err)
	}
	bounds := decoded.Bounds()
	if bounds.Dx() != 10 || bounds.Dy() != 6 {
		t.Errorf("expected 10x6, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestExporter_ExportDownscales(t *testing.T) {
	e := New()

	data, err := e.Export(raster.Zeros(100, 40), 50)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode PNG failed: %v", err)
	}
	bounds := decoded.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 20 {
		t.Errorf("expected 50x20, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestExporter_NoUpscale(t *testing.T) {
	e := New()

	data, err := e.Export(raster.Zeros(8, 8), 50)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode PNG failed: %v", err)
	}
	if decoded.Bounds().Dx() != 8 {
		t.Errorf("expected small image to keep its size, got %d", decoded.Bounds().Dx())
	}
}

func TestExporter_EmptyImage(t *testing.T) {
	e := New()

	if _, err := e.Export(&raster.Image{}, 0); err == nil {
		t.Error("expected error for empty image")
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		w, h, maxDim int
		wantW, wantH int
	}{
		{100, 40, 50, 50, 20},
		{40, 100, 50, 20, 50},
		{100, 100, 10, 10, 10},
		{1000, 1, 10, 10, 1},
	}

	for _, tt := range tests {
		gotW, gotH := fit(tt.w, tt.h, tt.maxDim)
		if gotW != tt.wantW || gotH != tt.wantH {
			t.Errorf("fit(%d, %d, %d): expected %dx%d, got %dx%d",
				tt.w, tt.h, tt.maxDim, tt.wantW, tt.wantH, gotW, gotH)
		}
	}
}
