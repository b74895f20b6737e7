package transform

import (
	"testing"

	"github.com/user/pgmtool/pkg/raster"
)

// gradient returns a small image covering the full sample range.
func gradient(w, h int) *raster.Image {
	im := raster.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			im.Set(x, y, uint8((y*w+x)*255/(w*h-1)))
		}
	}
	return im
}

func TestBrightnessContrast_Identity(t *testing.T) {
	src := gradient(8, 8)

	dst := NewBrightnessContrast(1.0, 0).Apply(src)
	if dst.Width() != 8 || dst.Height() != 8 {
		t.Fatalf("expected 8x8, got %dx%d", dst.Width(), dst.Height())
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if dst.At(x, y) != src.At(x, y) {
				t.Fatalf("pixel (%d,%d): expected %d, got %d", x, y, src.At(x, y), dst.At(x, y))
			}
		}
	}
}

func TestBrightnessContrast_SourceUntouched(t *testing.T) {
	src := raster.Zeros(2, 2)
	src.Set(0, 0, 100)

	NewBrightnessContrast(2.0, 50).Apply(src)
	if src.At(0, 0) != 100 || src.At(1, 1) != 0 {
		t.Error("expected the source image to be unchanged")
	}
}

func TestBrightnessContrast_Saturation(t *testing.T) {
	src := gradient(4, 4)

	bright := NewBrightnessContrast(1.0, 500).Apply(src)
	dark := NewBrightnessContrast(1.0, -500).Apply(src)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if bright.At(x, y) != 255 {
				t.Fatalf("expected saturation to 255, got %d", bright.At(x, y))
			}
			if dark.At(x, y) != 0 {
				t.Fatalf("expected saturation to 0, got %d", dark.At(x, y))
			}
		}
	}
}

func TestBrightnessContrast_Rounds(t *testing.T) {
	src := raster.Zeros(1, 1)
	src.Set(0, 0, 3)

	// 3 * 0.5 = 1.5 rounds to 2
	dst := NewBrightnessContrast(0.5, 0).Apply(src)
	if dst.At(0, 0) != 2 {
		t.Errorf("expected 2, got %d", dst.At(0, 0))
	}
}

func TestGamma_InvalidParameter(t *testing.T) {
	for _, g := range []float64{0, -1, -0.5} {
		if _, err := NewGamma(g); err == nil {
			t.Errorf("NewGamma(%g): expected error", g)
		}
	}
}

func TestGamma_Identity(t *testing.T) {
	src := gradient(16, 16)

	op, err := NewGamma(1.0)
	if err != nil {
		t.Fatalf("NewGamma failed: %v", err)
	}
	dst := op.Apply(src)

	// Identity up to the integer truncation in the formula.
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			in := int(src.At(x, y))
			out := int(dst.At(x, y))
			if out != in && out != in-1 {
				t.Fatalf("pixel (%d,%d): expected %d (or %d), got %d", x, y, in, in-1, out)
			}
		}
	}
}

func TestGamma_Direction(t *testing.T) {
	src := raster.Zeros(1, 1)
	src.Set(0, 0, 128)

	brighten, _ := NewGamma(0.5)
	darken, _ := NewGamma(2.0)

	if got := brighten.Apply(src).At(0, 0); got <= 128 {
		t.Errorf("gamma 0.5: expected brighter than 128, got %d", got)
	}
	if got := darken.Apply(src).At(0, 0); got >= 128 {
		t.Errorf("gamma 2.0: expected darker than 128, got %d", got)
	}
}

func TestGamma_Endpoints(t *testing.T) {
	src := raster.Zeros(2, 1)
	src.Set(1, 0, 255)

	op, _ := NewGamma(2.2)
	dst := op.Apply(src)

	if dst.At(0, 0) != 0 {
		t.Errorf("expected 0 to stay 0, got %d", dst.At(0, 0))
	}
	if dst.At(1, 0) != 255 {
		t.Errorf("expected 255 to stay 255, got %d", dst.At(1, 0))
	}
}
