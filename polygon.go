package poisson

import (
	"image"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// PolygonMask allows the integer coordinates whose unit-cell center lies
// inside a multipolygon. Holes are honored.
type PolygonMask struct {
	poly   orb.MultiPolygon
	bounds image.Rectangle
}

// NewPolygonMask creates a mask over bounds from poly. Coordinates outside
// bounds are never allowed, even if poly extends past them.
func NewPolygonMask(bounds image.Rectangle, poly orb.MultiPolygon) *PolygonMask {
	return &PolygonMask{poly: poly, bounds: bounds}
}

// Bounds returns the coordinate space of the mask.
func (m *PolygonMask) Bounds() image.Rectangle {
	return m.bounds
}

// Allowed reports whether the center of unit cell (x, y) is inside the polygon.
func (m *PolygonMask) Allowed(x, y int) bool {
	if !image.Pt(x, y).In(m.bounds) {
		return false
	}
	return planar.MultiPolygonContains(m.poly, orb.Point{float64(x) + 0.5, float64(y) + 0.5})
}

// Rasterize renders the mask into a Bitmap of the same bounds, with 255 for
// allowed coordinates. Sampling against the bitmap avoids repeated
// point-in-polygon tests when the same shape is reused.
func (m *PolygonMask) Rasterize() *Bitmap {
	bm := NewBitmap(m.bounds)
	bound := m.poly.Bound()
	r := image.Rect(
		int(bound.Min.X())-1, int(bound.Min.Y())-1,
		int(bound.Max.X())+1, int(bound.Max.Y())+1,
	).Intersect(m.bounds)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if m.Allowed(x, y) {
				bm.Set(x, y, 255)
			}
		}
	}
	return bm
}
