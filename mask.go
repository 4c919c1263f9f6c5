package poisson

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
)

// Mask is a validity predicate over absolute integer coordinates.
//
// Bounds is the coordinate space the predicate is defined on; it must cover
// the sampling region. Allowed must return false outside Bounds and must be
// safe for concurrent use, since parallel tiles query it simultaneously.
type Mask interface {
	Bounds() image.Rectangle
	Allowed(x, y int) bool
}

// Bitmap is a single-channel 8-bit mask. A value of 0 excludes the
// coordinate, any non-zero value includes it.
type Bitmap struct {
	img *image.Gray
}

// NewBitmap creates an all-excluded bitmap covering r.
func NewBitmap(r image.Rectangle) *Bitmap {
	return &Bitmap{img: image.NewGray(r)}
}

// NewBitmapFromGray wraps img without copying. Its bounds are used as-is,
// so a bitmap can sit anywhere in absolute coordinates.
func NewBitmapFromGray(img *image.Gray) *Bitmap {
	return &Bitmap{img: img}
}

// BitmapFromImage converts any image to a single-channel bitmap.
// Color images are reduced to luminance; alpha-only images keep their alpha.
func BitmapFromImage(img image.Image) *Bitmap {
	if g, ok := img.(*image.Gray); ok {
		return NewBitmapFromGray(g)
	}
	b := img.Bounds()
	g := image.NewGray(b)
	xdraw.Draw(g, b, img, b.Min, xdraw.Src)
	return &Bitmap{img: g}
}

// Bounds returns the bitmap rectangle.
func (m *Bitmap) Bounds() image.Rectangle {
	return m.img.Rect
}

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the bitmap.
func (m *Bitmap) At(x, y int) uint8 {
	if !image.Pt(x, y).In(m.img.Rect) {
		return 0
	}
	return m.img.Pix[m.img.PixOffset(x, y)]
}

// Set sets the mask value at (x, y).
// Coordinates outside the bitmap are ignored.
func (m *Bitmap) Set(x, y int, v uint8) {
	if !image.Pt(x, y).In(m.img.Rect) {
		return
	}
	m.img.Pix[m.img.PixOffset(x, y)] = v
}

// FillRect sets every value inside r (clipped to the bitmap) to v.
func (m *Bitmap) FillRect(r image.Rectangle, v uint8) {
	r = r.Intersect(m.img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := m.img.Pix[m.img.PixOffset(r.Min.X, y):m.img.PixOffset(r.Max.X, y)]
		for i := range row {
			row[i] = v
		}
	}
}

// Allowed reports whether (x, y) is inside the bitmap with a non-zero value.
func (m *Bitmap) Allowed(x, y int) bool {
	return m.At(x, y) != 0
}

// checkMask reports ErrMaskMismatch when m does not cover region.
func checkMask(m Mask, region Region) error {
	if m == nil {
		return nil
	}
	if b := m.Bounds(); !region.Bounds().In(b) {
		return fmt.Errorf("%w: mask bounds %v, region %v", ErrMaskMismatch, b, region)
	}
	return nil
}
