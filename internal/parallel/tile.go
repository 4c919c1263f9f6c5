// Package parallel provides tile-based parallel sampling infrastructure for
// gogpu/poisson.
//
// A sampling region is divided into square tiles (32x32 by default) that are
// processed independently. Key pieces:
//
//   - TileGrid: deterministic row-major partitioning with clipped edge tiles
//   - WorkerPool: fixed goroutine pool with a join barrier and panic containment
//   - CellPool: reuse of per-tile acceleration grid buffers via sync.Pool
//
// Thread safety: TileGrid is immutable after construction and may be read
// concurrently. Tiles themselves carry no mutable state.
package parallel

// DefaultTileSize is the default tile edge length in region units.
const DefaultTileSize = 32

// Tile is one rectangular sub-region of a partitioned region.
//
// Edge tiles may be smaller than the nominal tile size when the region is
// not evenly divisible by it.
type Tile struct {
	// Col is the tile column index (0-based).
	Col int

	// Row is the tile row index (0-based).
	Row int

	// X and Y are the absolute coordinates of the tile's top-left corner.
	X, Y int

	// Width is the actual width (may be < tile size for the last column).
	Width int

	// Height is the actual height (may be < tile size for the last row).
	Height int
}

// Bounds returns the tile rectangle in absolute coordinates as
// (x, y, width, height).
func (t *Tile) Bounds() (x, y, w, h int) {
	return t.X, t.Y, t.Width, t.Height
}

// Contains reports whether the absolute integer coordinate (px, py) lies
// within this tile. The far edges are exclusive.
func (t *Tile) Contains(px, py int) bool {
	return px >= t.X && px < t.X+t.Width &&
		py >= t.Y && py < t.Y+t.Height
}

// Area returns the number of unit cells covered by the tile.
func (t *Tile) Area() int {
	return t.Width * t.Height
}
