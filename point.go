package poisson

import "math"

// Point is a sample position in absolute region space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// LengthSquared returns the squared length of the vector.
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Sqrt(p.Sub(q).LengthSquared())
}

// Pixel returns the integer coordinate of the unit cell containing p.
// Mask predicates are evaluated at this coordinate.
//
// Pixel floors rather than truncating toward zero, so in regions with a
// negative origin (-0.5, -1.5) maps to (-1, -2), not (0, -1).
func (p Point) Pixel() (x, y int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}
