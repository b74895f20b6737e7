package geometry

import "fmt"

// Rectangle is an axis-aligned region defined by two corner points.
// Width and height are derived from the corners.
//
// The two-corner constructor does not enforce corner ordering: if
// BottomRight is left of or above TopLeft, Width or Height comes out
// negative. Callers that need a guaranteed well-formed rectangle should
// construct via NewRect. The zero value is the canonical empty rectangle
// (zero area at the origin).
type Rectangle struct {
	TopLeft     Point
	BottomRight Point
}

// NewRectCorners returns the rectangle spanning the two corner points.
// The corners are stored as given; see the ordering caveat on Rectangle.
func NewRectCorners(tl, br Point) Rectangle {
	return Rectangle{TopLeft: tl, BottomRight: br}
}

// NewRect returns the rectangle with top-left corner (x, y) and the given
// width and height. For non-negative width and height the corner ordering
// invariant always holds.
func NewRect(x, y, width, height int) Rectangle {
	return Rectangle{
		TopLeft:     Point{X: x, Y: y},
		BottomRight: Point{X: x + width, Y: y + height},
	}
}

// X returns the x-coordinate of the top-left corner.
func (r Rectangle) X() int {
	return r.TopLeft.X
}

// Y returns the y-coordinate of the top-left corner.
func (r Rectangle) Y() int {
	return r.TopLeft.Y
}

// Width returns the derived width. Negative when the corners are reversed.
func (r Rectangle) Width() int {
	return r.BottomRight.X - r.TopLeft.X
}

// Height returns the derived height. Negative when the corners are reversed.
func (r Rectangle) Height() int {
	return r.BottomRight.Y - r.TopLeft.Y
}

// IsEmpty reports whether the rectangle covers no area.
func (r Rectangle) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Translate returns the rectangle shifted by delta.
func (r Rectangle) Translate(delta Point) Rectangle {
	return Rectangle{
		TopLeft:     r.TopLeft.Add(delta),
		BottomRight: r.BottomRight.Add(delta),
	}
}

// TranslateBack returns the rectangle shifted by the negation of delta.
func (r Rectangle) TranslateBack(delta Point) Rectangle {
	return Rectangle{
		TopLeft:     r.TopLeft.Sub(delta),
		BottomRight: r.BottomRight.Sub(delta),
	}
}

// Intersect returns the overlap of r and other, or the canonical empty
// rectangle (zero value) when they do not overlap.
func (r Rectangle) Intersect(other Rectangle) Rectangle {
	x1 := max(r.X(), other.X())
	y1 := max(r.Y(), other.Y())
	x2 := min(r.X()+r.Width(), other.X()+other.Width())
	y2 := min(r.Y()+r.Height(), other.Y()+other.Height())

	if x2 <= x1 || y2 <= y1 {
		return Rectangle{}
	}
	return Rectangle{TopLeft: Point{X: x1, Y: y1}, BottomRight: Point{X: x2, Y: y2}}
}

// Union returns the bounding box of r and other. The result is never empty
// unless both inputs are empty at the origin.
func (r Rectangle) Union(other Rectangle) Rectangle {
	x1 := min(r.X(), other.X())
	y1 := min(r.Y(), other.Y())
	x2 := max(r.X()+r.Width(), other.X()+other.Width())
	y2 := max(r.Y()+r.Height(), other.Y()+other.Height())

	return Rectangle{TopLeft: Point{X: x1, Y: y1}, BottomRight: Point{X: x2, Y: y2}}
}

// Contains reports whether other lies fully inside r.
func (r Rectangle) Contains(other Rectangle) bool {
	return r.X() <= other.X() && r.Y() <= other.Y() &&
		r.X()+r.Width() >= other.X()+other.Width() &&
		r.Y()+r.Height() >= other.Y()+other.Height()
}

// String returns the rectangle in "Rectangle(x, y, width, height)" form.
func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle(%d, %d, %d, %d)", r.X(), r.Y(), r.Width(), r.Height())
}
