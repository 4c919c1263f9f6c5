package poisson

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gogpu/poisson/internal/parallel"
	"github.com/gogpu/poisson/internal/rng"
)

// Partition splits region into row-major tiles of at most tileSize x tileSize.
// The last column and row are clipped, so the tiles cover region exactly
// once and there are ceil(W/tileSize) * ceil(H/tileSize) of them.
func Partition(region Region, tileSize int) ([]Region, error) {
	if err := region.validate(); err != nil {
		return nil, err
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("%w: tile size %d must be positive", ErrInvalidParameter, tileSize)
	}

	tg := parallel.NewTileGrid(region.X, region.Y, region.Width, region.Height, tileSize)
	tiles := make([]Region, 0, tg.TileCount())
	tg.ForEach(func(t *parallel.Tile) {
		tiles = append(tiles, tileRegion(t))
	})
	return tiles, nil
}

func tileRegion(t *parallel.Tile) Region {
	x, y, w, h := t.Bounds()
	return Region{X: x, Y: y, Width: w, Height: h}
}

// parallelSampler runs one engine per tile on a fixed worker pool.
type parallelSampler struct {
	opts options
}

func (s *parallelSampler) Sample(radius float64, region Region) ([]Point, error) {
	if err := validateParams(radius, region, &s.opts); err != nil {
		return nil, err
	}
	if s.opts.tileSize <= 0 {
		return nil, fmt.Errorf("%w: tile size %d must be positive", ErrInvalidParameter, s.opts.tileSize)
	}

	start := time.Now()
	base := s.opts.baseSeed()
	tg := parallel.NewTileGrid(region.X, region.Y, region.Width, region.Height, s.opts.tileSize)

	pool := parallel.NewWorkerPool(s.opts.workers)
	defer pool.Close()

	// Slot i is written only by the task of tile i.
	batches := make([][]Point, tg.TileCount())

	work := make([]func() error, tg.TileCount())
	for i, t := range tg.AllTiles() {
		work[i] = func() error {
			pts, err := s.sampleTile(radius, tg, t, rng.Derive(base, uint64(i))) //nolint:gosec // i is a non-negative index
			if err != nil {
				return &TileError{Tile: tileRegion(t), Err: err}
			}
			batches[i] = pts
			return nil
		}
	}

	if err := pool.ExecuteAll(work); err != nil {
		return nil, tileFailure(err, tg)
	}

	// Merge in row-major tile order so reconciliation sees the same
	// sequence for the same seed.
	total := 0
	for _, b := range batches {
		total += len(b)
	}
	merged := make([]Point, 0, total)
	for _, b := range batches {
		merged = append(merged, b...)
	}

	if s.opts.border == BorderReconcile {
		var dropped int
		merged, dropped = reconcile(merged, radius, region)
		if dropped > 0 {
			Logger().Warn("poisson: border reconciliation dropped points",
				"dropped", dropped,
				"kept", len(merged))
		}
	}

	Logger().Debug("poisson: sampled region in parallel",
		"region", region,
		"radius", radius,
		"tiles", tg.TileCount(),
		"tilesX", tg.TilesX(),
		"tilesY", tg.TilesY(),
		"workers", pool.Workers(),
		"border", s.opts.border,
		"points", len(merged),
		"elapsed", time.Since(start))
	return merged, nil
}

// sampleTile runs an engine over one tile with its own grid and source.
func (s *parallelSampler) sampleTile(radius float64, tg *parallel.TileGrid, t *parallel.Tile, seed uint64) ([]Point, error) {
	sub := tileRegion(t)
	if err := sub.validate(); err != nil {
		return nil, err
	}

	cols, rows := gridDims(sub.Width, sub.Height, radius/math.Sqrt2)
	if s.opts.border == BorderShrink {
		if !tg.IsTrailingX(t) {
			cols--
		}
		if !tg.IsTrailingY(t) {
			rows--
		}
	}

	e := newEngine(radius, sub, cols, rows, &s.opts, rng.New(seed))
	e.seed(s.opts.seeding)
	return e.run()
}

// tileFailure makes sure err matches ErrTileFailure. A recovered panic is
// attributed to the tile whose task raised it.
func tileFailure(err error, tg *parallel.TileGrid) error {
	if errors.Is(err, ErrTileFailure) {
		return err
	}
	var pe *parallel.PanicError
	if errors.As(err, &pe) && tg.TilesX() > 0 {
		// Tasks are submitted in row-major tile order.
		if t := tg.TileAt(pe.Task%tg.TilesX(), pe.Task/tg.TilesX()); t != nil {
			return &TileError{Tile: tileRegion(t), Err: err}
		}
	}
	return fmt.Errorf("%w: %w", ErrTileFailure, err)
}

// reconcile keeps, in input order, every point that is at least radius away
// from all points kept before it, and returns the kept points and the number
// dropped. It filters in place.
func reconcile(points []Point, radius float64, region Region) ([]Point, int) {
	cellSize := radius / math.Sqrt2
	cols, rows := gridDims(region.Width, region.Height, cellSize)

	// One spare cell per axis holds points lying exactly on the far edge.
	g := newGrid(region, cellSize, cols+1, rows+1)
	defer g.release()

	kept := points[:0]
	for _, p := range points {
		if g.conflict(p, radius, kept) {
			continue
		}
		kept = append(kept, p)
		g.insert(p, len(kept)-1)
	}
	return kept, len(points) - len(kept)
}
