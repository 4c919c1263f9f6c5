package poisson

import (
	"fmt"
	"math"

	"github.com/gogpu/poisson/internal/parallel"
)

// grid is the acceleration structure of one sampling run.
//
// Cells have edge radius/√2, so a cell can hold at most one accepted point
// and any point closer than radius to a candidate lies within two cells of
// the candidate's cell. Each cell stores a sample index plus one; zero means
// empty. The cell buffer is owned exclusively by one engine.
type grid struct {
	originX, originY float64
	cellSize         float64
	cols, rows       int
	cells            []int32
}

// gridDims returns the cell counts needed to cover width x height.
func gridDims(width, height int, cellSize float64) (cols, rows int) {
	cols = int(math.Ceil(float64(width) / cellSize))
	rows = int(math.Ceil(float64(height) / cellSize))
	return cols, rows
}

// maxGridCells bounds the cell count of any grid. Cells store sample indices
// as int32.
const maxGridCells = math.MaxInt32

// checkGridSize reports ErrInvalidParameter when a grid covering
// width x height, plus the spare row and column used for reconciliation,
// would exceed maxGridCells.
func checkGridSize(width, height int, cellSize float64) error {
	cols := math.Ceil(float64(width) / cellSize)
	rows := math.Ceil(float64(height) / cellSize)
	if (cols+1)*(rows+1) > maxGridCells {
		return fmt.Errorf("%w: grid of %gx%g cells (cell size %g) is too large",
			ErrInvalidParameter, cols, rows, cellSize)
	}
	return nil
}

// newGrid creates a grid anchored at the region origin. cols and rows may be
// smaller than gridDims (shrunk tile borders) or larger (reconciliation).
func newGrid(region Region, cellSize float64, cols, rows int) *grid {
	cols = max(cols, 0)
	rows = max(rows, 0)
	return &grid{
		originX:  float64(region.X),
		originY:  float64(region.Y),
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    parallel.GetCells(cols * rows),
	}
}

// release hands the cell buffer back to the shared pool.
// The grid must not be used afterwards.
func (g *grid) release() {
	parallel.PutCells(g.cells)
	g.cells = nil
}

// cellOf returns the cell of p and whether that cell lies inside the grid.
func (g *grid) cellOf(p Point) (cx, cy int, ok bool) {
	fx := (p.X - g.originX) / g.cellSize
	fy := (p.Y - g.originY) / g.cellSize
	if fx < 0 || fy < 0 {
		return 0, 0, false
	}
	cx, cy = int(fx), int(fy)
	return cx, cy, cx < g.cols && cy < g.rows
}

// occupied reports whether cell (cx, cy) references a sample.
func (g *grid) occupied(cx, cy int) bool {
	return g.cells[cy*g.cols+cx] != 0
}

// insert maps the cell of p to sample index idx, overwriting any previous
// reference. Points outside the grid are ignored.
func (g *grid) insert(p Point, idx int) {
	cx, cy, ok := g.cellOf(p)
	if !ok {
		return
	}
	g.cells[cy*g.cols+cx] = int32(idx + 1) //nolint:gosec // sample counts stay far below 2^31
}

// conflict reports whether any sample referenced within two cells of p's
// cell is strictly closer than radius. A point outside the grid always
// conflicts. It does not allocate.
func (g *grid) conflict(p Point, radius float64, samples []Point) bool {
	cx, cy, ok := g.cellOf(p)
	if !ok {
		return true
	}

	x0 := max(cx-2, 0)
	x1 := min(cx+2, g.cols-1)
	y0 := max(cy-2, 0)
	y1 := min(cy+2, g.rows-1)

	r2 := radius * radius
	for y := y0; y <= y1; y++ {
		row := g.cells[y*g.cols : (y+1)*g.cols]
		for x := x0; x <= x1; x++ {
			idx := row[x]
			if idx == 0 {
				continue
			}
			if samples[idx-1].Sub(p).LengthSquared() < r2 {
				return true
			}
		}
	}
	return false
}
