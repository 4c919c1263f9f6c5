package poisson

import (
	"fmt"
	"math"
	"time"

	"github.com/gogpu/poisson/internal/rng"
)

// Sampler scatters points over a region with a fixed configuration.
//
// Two strategies exist: sequential, which returns points in acceptance
// order, and parallel, which returns them grouped by tile.
// NewSampler picks one from WithParallel.
type Sampler interface {
	Sample(radius float64, region Region) ([]Point, error)
}

// NewSampler creates a Sampler from opts. The parallel strategy is used when
// WithParallel(true) is given, the sequential one otherwise.
func NewSampler(opts ...Option) Sampler {
	o := buildOptions(opts)
	if o.parallel {
		return &parallelSampler{opts: o}
	}
	return &sequentialSampler{opts: o}
}

// Generate scatters points over region so that no two are closer than
// radius. Points are returned in acceptance order.
//
// Generate is single-threaded. Its output is reproducible with WithSeed.
func Generate(radius float64, region Region, opts ...Option) ([]Point, error) {
	return (&sequentialSampler{opts: buildOptions(opts)}).Sample(radius, region)
}

// GenerateParallel partitions region into tiles, samples every tile
// concurrently and returns the union of their points, tile by tile in
// row-major order.
//
// Tiles are validated only against their own points, so two points from
// adjacent tiles may be closer than radius unless WithBorder(BorderReconcile)
// is given. If any tile fails the whole call fails with ErrTileFailure.
func GenerateParallel(radius float64, region Region, opts ...Option) ([]Point, error) {
	return (&parallelSampler{opts: buildOptions(opts)}).Sample(radius, region)
}

// validateParams checks everything that must hold before a grid is sized.
func validateParams(radius float64, region Region, o *options) error {
	if !(radius > 0) || math.IsInf(radius, 1) {
		return fmt.Errorf("%w: radius %v must be positive and finite", ErrInvalidParameter, radius)
	}
	if err := region.validate(); err != nil {
		return err
	}
	if err := checkGridSize(region.Width, region.Height, radius/math.Sqrt2); err != nil {
		return err
	}
	if o.attempts <= 0 {
		return fmt.Errorf("%w: attempts %d must be positive", ErrInvalidParameter, o.attempts)
	}
	return checkMask(o.mask, region)
}

// sequentialSampler runs one engine over the whole region.
type sequentialSampler struct {
	opts options
}

func (s *sequentialSampler) Sample(radius float64, region Region) ([]Point, error) {
	if err := validateParams(radius, region, &s.opts); err != nil {
		return nil, err
	}

	start := time.Now()
	seed := s.opts.baseSeed()
	cols, rows := gridDims(region.Width, region.Height, radius/math.Sqrt2)

	e := newEngine(radius, region, cols, rows, &s.opts, rng.New(seed))
	seeds := e.seed(s.opts.seeding)
	points, err := e.run()
	if err != nil {
		return nil, err
	}

	Logger().Debug("poisson: sampled region",
		"region", region,
		"radius", radius,
		"seeds", seeds,
		"points", len(points),
		"elapsed", time.Since(start))
	return points, nil
}
