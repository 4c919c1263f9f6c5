package poisson

import (
	"github.com/gogpu/poisson/internal/parallel"
	"github.com/gogpu/poisson/internal/rng"
)

// Defaults used when an option is not given.
const (
	// DefaultAttempts is the number of candidates tried per origin.
	DefaultAttempts = 30

	// DefaultTileSize is the tile edge length of parallel runs.
	DefaultTileSize = parallel.DefaultTileSize
)

// Option configures a sampling call or a Sampler.
//
// Example:
//
//	// Sequential, 50 attempts per origin, constrained to a mask
//	pts, err := poisson.Generate(4, poisson.Rect(0, 0, 512, 512),
//	    poisson.WithAttempts(50), poisson.WithMask(mask))
//
//	// Parallel with 64x64 tiles and a reproducible seed
//	pts, err := poisson.GenerateParallel(4, poisson.Rect(0, 0, 512, 512),
//	    poisson.WithTileSize(64), poisson.WithSeed(7))
type Option func(*options)

// options holds the configuration of one call.
type options struct {
	attempts  int
	mask      Mask
	tileSize  int
	workers   int
	seed      uint64
	seeded    bool
	selection Selection
	seeding   Seeding
	border    BorderPolicy
	parallel  bool
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		attempts:  DefaultAttempts,
		tileSize:  DefaultTileSize,
		workers:   0, // GOMAXPROCS
		selection: FIFO,
		seeding:   SeedCenter,
		border:    BorderApproximate,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// baseSeed returns the configured seed, or fresh entropy when none was set.
func (o *options) baseSeed() uint64 {
	if o.seeded {
		return o.seed
	}
	return rng.Entropy()
}

// WithAttempts sets how many candidates are tried around an origin before
// the origin is retired. Must be positive.
func WithAttempts(n int) Option {
	return func(o *options) {
		o.attempts = n
	}
}

// WithMask constrains sampling to the coordinates allowed by m.
// With a mask every allowed coordinate of the region becomes a seed.
// A candidate is tested at its floored coordinate (Point.Pixel); left of or
// above zero this differs from truncation by one pixel.
func WithMask(m Mask) Option {
	return func(o *options) {
		o.mask = m
	}
}

// WithTileSize sets the tile edge length of parallel runs. Smaller tiles
// give more parallel tasks and more border artifacts. Must be positive.
func WithTileSize(size int) Option {
	return func(o *options) {
		o.tileSize = size
	}
}

// WithWorkers sets the worker count of parallel runs.
// Zero or negative means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithSeed makes a call reproducible. Parallel runs derive one seed per tile
// from it and merge tiles in a fixed order, so parallel output is
// reproducible too.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithSelection sets the active-list selection policy. Nil restores FIFO.
func WithSelection(s Selection) Option {
	return func(o *options) {
		if s == nil {
			s = FIFO
		}
		o.selection = s
	}
}

// WithSeeding sets where unmasked sampling starts.
func WithSeeding(s Seeding) Option {
	return func(o *options) {
		o.seeding = s
	}
}

// WithBorder sets the tile border policy of parallel runs.
func WithBorder(b BorderPolicy) Option {
	return func(o *options) {
		o.border = b
	}
}

// WithParallel selects the parallel strategy in NewSampler.
func WithParallel(enabled bool) Option {
	return func(o *options) {
		o.parallel = enabled
	}
}
