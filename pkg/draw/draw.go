// Package draw rasterizes vector primitives into an existing grayscale
// image using integer-only algorithms. All functions mutate the image in
// place and clip per pixel: points falling outside the image are skipped
// rather than reported.
package draw

import (
	"github.com/user/pgmtool/pkg/geometry"
	"github.com/user/pgmtool/pkg/raster"
)

// plot sets (x, y) to value when the coordinate lies inside the image.
func plot(img *raster.Image, x, y int, value uint8) {
	if img.InBounds(x, y) {
		img.Set(x, y, value)
	}
}

// Line draws the segment from p1 to p2, inclusive of both endpoints, using
// Bresenham's algorithm. A zero-length line plots a single point.
func Line(img *raster.Image, p1, p2 geometry.Point, value uint8) {
	x1, y1 := p1.X, p1.Y
	x2, y2 := p2.X, p2.Y

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 >= x2 {
		sx = -1
	}
	sy := 1
	if y1 >= y2 {
		sy = -1
	}
	err := dx - dy

	for {
		plot(img, x1, y1, value)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Circle draws the outline of the circle with the given center and radius
// using the midpoint algorithm, tracking one octant and mirroring into the
// other seven. The interior is not filled. Radius 0 plots the center
// point; a negative radius draws nothing.
func Circle(img *raster.Image, center geometry.Point, radius int, value uint8) {
	cx, cy := center.X, center.Y
	x := 0
	y := radius
	d := 3 - 2*radius

	for x <= y {
		plot(img, cx+x, cy+y, value)
		plot(img, cx+y, cy+x, value)
		plot(img, cx-x, cy+y, value)
		plot(img, cx-y, cy+x, value)
		plot(img, cx+x, cy-y, value)
		plot(img, cx+y, cy-x, value)
		plot(img, cx-x, cy-y, value)
		plot(img, cx-y, cy-x, value)

		if d < 0 {
			d += 4*x + 6
		} else {
			d += 4*(x-y) + 10
			y--
		}
		x++
	}
}

// Rect draws the rectangle outline spanning the corners tl and br as four
// line segments. The corners may be given in any order; Line handles
// every direction.
func Rect(img *raster.Image, tl, br geometry.Point, value uint8) {
	tr := geometry.Point{X: br.X, Y: tl.Y}
	bl := geometry.Point{X: tl.X, Y: br.Y}

	Line(img, tl, tr, value)
	Line(img, tr, br, value)
	Line(img, br, bl, value)
	Line(img, bl, tl, value)
}

// RectArea draws the rectangle outline described by r.
func RectArea(img *raster.Image, r geometry.Rectangle, value uint8) {
	Rect(img, r.TopLeft, r.BottomRight, value)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
