package poisson

import (
	"fmt"
	"image"
)

// Region is an axis-aligned rectangle with an integer origin and size.
type Region struct {
	X, Y          int
	Width, Height int
}

// Rect is a convenience function to create a Region.
func Rect(x, y, width, height int) Region {
	return Region{X: x, Y: y, Width: width, Height: height}
}

// Bounds returns the region as an image.Rectangle.
func (r Region) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Empty reports whether the region has no area.
func (r Region) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns Width * Height.
func (r Region) Area() int {
	return r.Width * r.Height
}

// Center returns the geometric center of the region.
func (r Region) Center() Point {
	return Point{
		X: float64(r.X) + float64(r.Width)/2,
		Y: float64(r.Y) + float64(r.Height)/2,
	}
}

// Contains reports whether p lies in the sampling envelope of the region.
// The near edges are inclusive and so are the far edges: a point exactly on
// X+Width or Y+Height is inside.
func (r Region) Contains(p Point) bool {
	if p.X < float64(r.X) || p.Y < float64(r.Y) {
		return false
	}
	if p.X > float64(r.X+r.Width) || p.Y > float64(r.Y+r.Height) {
		return false
	}
	return true
}

func (r Region) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// validate reports ErrInvalidParameter for an empty region.
func (r Region) validate() error {
	if r.Empty() {
		return fmt.Errorf("%w: region %v has non-positive size", ErrInvalidParameter, r)
	}
	return nil
}
