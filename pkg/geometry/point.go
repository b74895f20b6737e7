// Package geometry provides integer 2D primitives for raster coordinates.
package geometry

import "fmt"

// Point is a 2D integer coordinate. Points are plain values; operations
// return new points and never mutate the receiver.
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference of p and q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// String returns the point in "(x,y)" form.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
