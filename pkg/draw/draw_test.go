package draw

import (
	"testing"

	"github.com/user/pgmtool/pkg/geometry"
	"github.com/user/pgmtool/pkg/raster"
)

// countValue returns how many pixels hold v.
func countValue(img *raster.Image, v uint8) int {
	n := 0
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			if img.At(x, y) == v {
				n++
			}
		}
	}
	return n
}

func TestLine_SinglePoint(t *testing.T) {
	img := raster.Zeros(8, 8)

	Line(img, geometry.Pt(2, 2), geometry.Pt(2, 2), 200)

	if img.At(2, 2) != 200 {
		t.Errorf("expected pixel (2,2) to be 200, got %d", img.At(2, 2))
	}
	if n := countValue(img, 200); n != 1 {
		t.Errorf("expected exactly 1 pixel set, got %d", n)
	}
}

func TestLine_Horizontal(t *testing.T) {
	img := raster.Zeros(8, 8)

	Line(img, geometry.Pt(1, 3), geometry.Pt(5, 3), 100)

	for x := 1; x <= 5; x++ {
		if img.At(x, 3) != 100 {
			t.Errorf("expected pixel (%d,3) to be set", x)
		}
	}
	if n := countValue(img, 100); n != 5 {
		t.Errorf("expected 5 pixels, got %d", n)
	}
}

func TestLine_Diagonal(t *testing.T) {
	img := raster.Zeros(8, 8)

	Line(img, geometry.Pt(0, 0), geometry.Pt(4, 4), 255)

	for i := 0; i <= 4; i++ {
		if img.At(i, i) != 255 {
			t.Errorf("expected pixel (%d,%d) to be set", i, i)
		}
	}
	if n := countValue(img, 255); n != 5 {
		t.Errorf("expected 5 pixels, got %d", n)
	}
}

func TestLine_AnyDirection(t *testing.T) {
	// Endpoints are inclusive regardless of direction of travel.
	img := raster.Zeros(10, 10)
	Line(img, geometry.Pt(7, 2), geometry.Pt(1, 8), 50)

	if img.At(7, 2) != 50 {
		t.Error("expected start point to be set")
	}
	if img.At(1, 8) != 50 {
		t.Error("expected end point to be set")
	}
}

func TestLine_ClipsOutOfBounds(t *testing.T) {
	img := raster.Zeros(4, 4)

	// Line passes through the image but starts and ends outside it.
	Line(img, geometry.Pt(-3, 1), geometry.Pt(8, 1), 77)

	for x := 0; x < 4; x++ {
		if img.At(x, 1) != 77 {
			t.Errorf("expected pixel (%d,1) to be set", x)
		}
	}
	if n := countValue(img, 77); n != 4 {
		t.Errorf("expected 4 pixels inside bounds, got %d", n)
	}
}

func TestLine_FullyOutside(t *testing.T) {
	img := raster.Zeros(4, 4)
	Line(img, geometry.Pt(10, 10), geometry.Pt(20, 12), 77)

	if n := countValue(img, 77); n != 0 {
		t.Errorf("expected no pixels set, got %d", n)
	}
}

func TestCircle_RadiusZero(t *testing.T) {
	img := raster.Zeros(12, 12)

	Circle(img, geometry.Pt(5, 5), 0, 99)

	if img.At(5, 5) != 99 {
		t.Error("expected center pixel to be set")
	}
	if n := countValue(img, 99); n != 1 {
		t.Errorf("expected exactly the center pixel, got %d", n)
	}
}

func TestCircle_NegativeRadius(t *testing.T) {
	img := raster.Zeros(12, 12)

	Circle(img, geometry.Pt(5, 5), -1, 99)

	if n := countValue(img, 99); n != 0 {
		t.Errorf("expected no-op for negative radius, got %d pixels", n)
	}
}

func TestCircle_OutlineOnly(t *testing.T) {
	img := raster.Zeros(16, 16)

	Circle(img, geometry.Pt(8, 8), 4, 255)

	// Interior untouched
	if img.At(8, 8) != 0 {
		t.Error("expected center to stay unset")
	}
	// Cardinal extremes on the outline
	for _, p := range []geometry.Point{
		geometry.Pt(8, 4), geometry.Pt(8, 12), geometry.Pt(4, 8), geometry.Pt(12, 8),
	} {
		if img.AtPoint(p) != 255 {
			t.Errorf("expected outline pixel %v to be set", p)
		}
	}
}

func TestCircle_Symmetry(t *testing.T) {
	img := raster.Zeros(20, 20)
	cx, cy := 10, 10

	Circle(img, geometry.Pt(cx, cy), 6, 255)

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if img.At(x, y) != 255 {
				continue
			}
			mirrorX := 2*cx - x
			mirrorY := 2*cy - y
			if img.At(mirrorX, y) != 255 {
				t.Errorf("pixel (%d,%d) set but horizontal mirror is not", x, y)
			}
			if img.At(x, mirrorY) != 255 {
				t.Errorf("pixel (%d,%d) set but vertical mirror is not", x, y)
			}
		}
	}
}

func TestCircle_ClipsAtEdges(t *testing.T) {
	img := raster.Zeros(6, 6)

	// Center near the corner, most of the outline falls outside.
	Circle(img, geometry.Pt(0, 0), 4, 255)

	if img.At(4, 0) != 255 || img.At(0, 4) != 255 {
		t.Error("expected in-bounds outline pixels to be set")
	}
}

func TestRect_PerimeterOnly(t *testing.T) {
	img := raster.Zeros(8, 8)

	Rect(img, geometry.Pt(1, 1), geometry.Pt(4, 4), 100)

	for x := 1; x <= 4; x++ {
		for y := 1; y <= 4; y++ {
			onPerimeter := x == 1 || x == 4 || y == 1 || y == 4
			got := img.At(x, y)
			if onPerimeter && got != 100 {
				t.Errorf("expected perimeter pixel (%d,%d) to be set", x, y)
			}
			if !onPerimeter && got != 0 {
				t.Errorf("expected interior pixel (%d,%d) to stay unset", x, y)
			}
		}
	}
	// 4x4 outline = 12 perimeter pixels
	if n := countValue(img, 100); n != 12 {
		t.Errorf("expected 12 pixels, got %d", n)
	}
}

func TestRectArea(t *testing.T) {
	img := raster.Zeros(8, 8)

	RectArea(img, geometry.NewRect(2, 2, 3, 3), 100)

	if img.At(2, 2) != 100 || img.At(5, 5) != 100 {
		t.Error("expected both corners to be set")
	}
	if img.At(3, 3) != 0 {
		t.Error("expected interior to stay unset")
	}
}
