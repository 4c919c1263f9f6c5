package poisson

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// errBadPick reports a Selection that returned an index outside the active list.
var errBadPick = errors.New("poisson: selection index out of range")

// engine is the sequential dart-throwing state machine for one region.
//
// It owns an active list of pending origins and an append-only sample set.
// Each step expands one origin: up to attempts candidates are thrown into
// the annulus [radius, 3·radius) around it and the first valid one is
// accepted. An origin whose attempts all fail is retired. Seeds are origins
// only; they never enter the sample set.
type engine struct {
	region    Region
	radius    float64
	cellSize  float64
	attempts  int
	mask      Mask
	selection Selection
	rand      *rand.Rand

	grid    *grid
	active  []Point
	samples []Point
}

// newEngine creates an engine whose grid has cols x rows cells.
func newEngine(radius float64, region Region, cols, rows int, o *options, r *rand.Rand) *engine {
	cellSize := radius / math.Sqrt2

	// Rough upper estimate of the accepted count, capped by the cell count.
	estimate := min(int(float64(region.Area())/(radius*radius))+1, max(cols*rows, 1))

	return &engine{
		region:    region,
		radius:    radius,
		cellSize:  cellSize,
		attempts:  o.attempts,
		mask:      o.mask,
		selection: o.selection,
		rand:      r,
		grid:      newGrid(region, cellSize, cols, rows),
		samples:   make([]Point, 0, estimate),
	}
}

// seed fills the active list and returns the number of seeds.
//
// With a mask, every allowed coordinate of the region becomes a seed. The
// seeds are not validated against each other.
func (e *engine) seed(policy Seeding) int {
	r := e.region
	if e.mask != nil {
		for y := r.Y; y < r.Y+r.Height; y++ {
			for x := r.X; x < r.X+r.Width; x++ {
				if e.mask.Allowed(x, y) {
					e.active = append(e.active, Point{X: float64(x), Y: float64(y)})
				}
			}
		}
		return len(e.active)
	}

	switch policy {
	case SeedCorner:
		e.active = append(e.active, Point{
			X: float64(r.X) + e.cellSize/2,
			Y: float64(r.Y) + e.cellSize/2,
		})
	default:
		e.active = append(e.active, r.Center())
	}
	return len(e.active)
}

// run drains the active list and returns the accepted samples in
// acceptance order. The grid buffer is released before returning.
func (e *engine) run() ([]Point, error) {
	defer e.grid.release()

	for len(e.active) > 0 {
		n := len(e.active)
		i := e.selection.Pick(n, e.rand)
		if i < 0 || i >= n {
			return nil, fmt.Errorf("%w: picked %d of %d", errBadPick, i, n)
		}
		origin := e.active[i]

		accepted := false
		for range e.attempts {
			c := e.spawn(origin)
			if !e.valid(c) {
				continue
			}
			if err := e.accept(c); err != nil {
				return nil, err
			}
			accepted = true
			break
		}
		if !accepted {
			e.retire(i)
		}
	}
	return e.samples, nil
}

// spawn throws one candidate into the annulus around origin.
func (e *engine) spawn(origin Point) Point {
	angle := e.rand.Float64() * 2 * math.Pi
	dist := e.radius + e.rand.Float64()*2*e.radius
	sin, cos := math.Sincos(angle)
	return origin.Add(Point{X: cos, Y: sin}.Mul(dist))
}

// valid checks bounds, mask, grid extent and spacing, in that order.
func (e *engine) valid(p Point) bool {
	if !e.region.Contains(p) {
		return false
	}
	if e.mask != nil {
		if x, y := p.Pixel(); !e.mask.Allowed(x, y) {
			return false
		}
	}
	if _, _, ok := e.grid.cellOf(p); !ok {
		return false
	}
	return !e.grid.conflict(p, e.radius, e.samples)
}

// accept appends p to the samples, indexes it and queues it as an origin.
func (e *engine) accept(p Point) error {
	cx, cy, _ := e.grid.cellOf(p)
	if e.grid.occupied(cx, cy) {
		return fmt.Errorf("%w: cell (%d,%d) for %v", errCellOccupied, cx, cy, p)
	}
	e.samples = append(e.samples, p)
	e.grid.insert(p, len(e.samples)-1)
	e.active = append(e.active, p)
	return nil
}

// retire removes active[i]. The head is sliced off so FIFO order holds;
// any other index is swap-removed.
func (e *engine) retire(i int) {
	if i == 0 {
		e.active = e.active[1:]
		return
	}
	last := len(e.active) - 1
	e.active[i] = e.active[last]
	e.active = e.active[:last]
}
