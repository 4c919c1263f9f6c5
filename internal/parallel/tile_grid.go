package parallel

// TileGrid partitions a region into tiles for parallel sampling.
//
// Tiles are stored in a flat slice in row-major order, accessed via
// index = row * tilesX + col. The last column and row are clipped to the
// remaining width and height, so the tiles cover the region exactly once.
type TileGrid struct {
	// tiles is a flat slice of all tiles (row-major order).
	tiles []*Tile

	// tilesX is the number of tiles horizontally.
	tilesX int

	// tilesY is the number of tiles vertically.
	tilesY int

	// x, y is the absolute origin of the partitioned region.
	x, y int

	// width and height are the region dimensions.
	width  int
	height int

	// size is the nominal tile edge length.
	size int
}

// NewTileGrid partitions the region (x, y, width, height) into tiles of at
// most size x size. If any dimension or the size is not positive, the grid
// is empty.
func NewTileGrid(x, y, width, height, size int) *TileGrid {
	if width <= 0 || height <= 0 || size <= 0 {
		return &TileGrid{x: x, y: y, size: size}
	}

	tilesX := (width + size - 1) / size
	tilesY := (height + size - 1) / size

	g := &TileGrid{
		tiles:  make([]*Tile, tilesX*tilesY),
		tilesX: tilesX,
		tilesY: tilesY,
		x:      x,
		y:      y,
		width:  width,
		height: height,
		size:   size,
	}

	g.allocateTiles()
	return g
}

// allocateTiles creates all tiles for the grid.
func (g *TileGrid) allocateTiles() {
	for ty := range g.tilesY {
		for tx := range g.tilesX {
			tileW := g.size
			tileH := g.size

			// Right edge tile
			if (tx+1)*g.size > g.width {
				tileW = g.width - tx*g.size
			}
			// Bottom edge tile
			if (ty+1)*g.size > g.height {
				tileH = g.height - ty*g.size
			}

			g.tiles[ty*g.tilesX+tx] = &Tile{
				Col:    tx,
				Row:    ty,
				X:      g.x + tx*g.size,
				Y:      g.y + ty*g.size,
				Width:  tileW,
				Height: tileH,
			}
		}
	}
}

// TileAt returns the tile at tile coordinates (tx, ty).
// Returns nil if coordinates are out of bounds.
func (g *TileGrid) TileAt(tx, ty int) *Tile {
	if tx < 0 || tx >= g.tilesX || ty < 0 || ty >= g.tilesY {
		return nil
	}
	return g.tiles[ty*g.tilesX+tx]
}

// IsTrailingX reports whether t is in the last tile column.
func (g *TileGrid) IsTrailingX(t *Tile) bool {
	return t.Col == g.tilesX-1
}

// IsTrailingY reports whether t is in the last tile row.
func (g *TileGrid) IsTrailingY(t *Tile) bool {
	return t.Row == g.tilesY-1
}

// TileCount returns the total number of tiles in the grid.
func (g *TileGrid) TileCount() int {
	return len(g.tiles)
}

// TilesX returns the number of tiles horizontally.
func (g *TileGrid) TilesX() int {
	return g.tilesX
}

// TilesY returns the number of tiles vertically.
func (g *TileGrid) TilesY() int {
	return g.tilesY
}

// AllTiles returns all tiles in row-major order.
// The returned slice should not be modified.
func (g *TileGrid) AllTiles() []*Tile {
	return g.tiles
}

// ForEach calls fn for each tile in the grid.
// Tiles are visited in row-major order (left-to-right, top-to-bottom).
func (g *TileGrid) ForEach(fn func(tile *Tile)) {
	for _, tile := range g.tiles {
		fn(tile)
	}
}
