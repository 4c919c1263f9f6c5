package poisson

import "math/rand/v2"

// Selection chooses which pending origin of the active list is expanded next.
type Selection interface {
	// Pick returns an index in [0, n). n is always positive.
	Pick(n int, r *rand.Rand) int
}

// FIFO always expands the head of the active list. It is the default:
// the list grows at the tail and drains from the head, so sampling advances
// as a front from the seeds outward.
var FIFO Selection = fifo{}

// RandomPick expands a uniformly chosen pending origin, as in Bridson's
// original formulation.
var RandomPick Selection = randomPick{}

type fifo struct{}

func (fifo) Pick(int, *rand.Rand) int { return 0 }

func (fifo) String() string { return "fifo" }

type randomPick struct{}

func (randomPick) Pick(n int, r *rand.Rand) int { return r.IntN(n) }

func (randomPick) String() string { return "random" }

// Seeding selects where the engine starts when no mask is given.
type Seeding int

const (
	// SeedCenter starts from the center of the region.
	SeedCenter Seeding = iota

	// SeedCorner starts half a grid cell in from the top-left corner.
	SeedCorner
)

func (s Seeding) String() string {
	switch s {
	case SeedCenter:
		return "center"
	case SeedCorner:
		return "corner"
	default:
		return "unknown"
	}
}

// BorderPolicy controls how a parallel run treats tile borders.
type BorderPolicy int

const (
	// BorderApproximate samples every tile independently. Points from
	// adjacent tiles may be closer than the radius.
	BorderApproximate BorderPolicy = iota

	// BorderShrink makes the acceleration grid of every tile with a right
	// (bottom) neighbor one cell narrower (shorter), so no point lands in the
	// last cell column (row) before the shared edge. Trailing tiles keep
	// their full grid. This reduces, but does not remove, border violations.
	BorderShrink

	// BorderReconcile re-validates the merged points against a single
	// whole-region grid and drops every point that collides with one kept
	// before it. The result satisfies the minimum distance everywhere.
	BorderReconcile
)

func (b BorderPolicy) String() string {
	switch b {
	case BorderApproximate:
		return "approximate"
	case BorderShrink:
		return "shrink"
	case BorderReconcile:
		return "reconcile"
	default:
		return "unknown"
	}
}
