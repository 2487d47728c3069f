package geom

import "fmt"

// Point is a signed integer coordinate in the unbounded 2D plane.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// XY returns the coordinates; Point is its own PointLike.
func (p Point) XY() (int, int) {
	return p.X, p.Y
}

// Add returns p+q componentwise.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q componentwise.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// minPt returns the componentwise minimum of a and b.
func minPt(a, b Point) Point {
	return Point{X: min(a.X, b.X), Y: min(a.Y, b.Y)}
}

// maxPt returns the componentwise maximum of a and b.
func maxPt(a, b Point) Point {
	return Point{X: max(a.X, b.X), Y: max(a.Y, b.Y)}
}
