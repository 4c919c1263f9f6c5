// Package poisson scatters points over a 2D region with a guaranteed minimum
// spacing (Poisson-disc sampling by dart throwing).
//
// # Overview
//
// Points are grown outward from seeds: for every pending origin the sampler
// throws up to a fixed number of candidates into the annulus
// [radius, 3·radius) around it and keeps the first candidate that is inside
// the region, allowed by the optional mask, and at least radius away from
// every accepted point. A uniform grid with cells of edge radius/√2 makes
// the spacing check constant time.
//
// # Quick Start
//
//	import "github.com/gogpu/poisson"
//
//	pts, err := poisson.Generate(8, poisson.Rect(0, 0, 512, 512))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Parallel Sampling
//
// GenerateParallel splits the region into tiles (32x32 by default, see
// WithTileSize) and samples them concurrently on a fixed worker pool. Each
// tile owns its own grid and random source, and the tiles' points are merged
// in row-major tile order. Tiles do not see each other's points, so spacing across
// tile borders is approximate unless WithBorder(BorderReconcile) is used.
//
// # Masks
//
// A Mask restricts sampling to a set of integer coordinates. Bitmap wraps a
// single-channel image (0 excluded, non-zero included) and PolygonMask wraps
// an orb.MultiPolygon. With a mask, every allowed coordinate of the region
// seeds the sampler. Those seeds are origins only and are not checked
// against each other; accepted points always are.
//
// # Reproducibility
//
// Every call creates fresh random sources seeded from the operating system.
// WithSeed fixes the seed: sequential and parallel output are then identical
// between runs, with or without border reconciliation.
package poisson
