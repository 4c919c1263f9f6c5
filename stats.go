package poisson

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the spacing of a point set.
type Stats struct {
	// Count is the number of points.
	Count int

	// Density is Count divided by the region area.
	Density float64

	// MinDistance is the smallest pairwise distance, or +Inf for fewer
	// than two points.
	MinDistance float64

	// MeanNearest and StdNearest are the mean and standard deviation of the
	// distance from each point to its nearest neighbor.
	MeanNearest float64
	StdNearest  float64
}

// Analyze computes spacing statistics of points sampled over region.
// It compares every pair, so it is meant for diagnostics and tests rather
// than for large point sets.
func Analyze(points []Point, region Region) Stats {
	s := Stats{
		Count:       len(points),
		MinDistance: math.Inf(1),
	}
	if area := region.Area(); area > 0 {
		s.Density = float64(len(points)) / float64(area)
	}
	if len(points) < 2 {
		return s
	}

	nearest := make([]float64, len(points))
	for i := range nearest {
		nearest[i] = math.Inf(1)
	}
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			d := points[i].Distance(points[j])
			nearest[i] = math.Min(nearest[i], d)
			nearest[j] = math.Min(nearest[j], d)
		}
	}

	s.MinDistance = floats.Min(nearest)
	s.MeanNearest, s.StdNearest = stat.MeanStdDev(nearest, nil)
	return s
}

// Violations counts the pairs of points closer than radius.
// It uses an acceleration grid, so it scales to the output of large runs.
func Violations(points []Point, radius float64) int {
	if len(points) < 2 || !(radius > 0) {
		return 0
	}

	// Bucket by integer cell of edge radius; neighbors within radius are in
	// the 3x3 block around a point's cell.
	type cell struct{ x, y int }
	buckets := make(map[cell][]int, len(points))
	cellOf := func(p Point) cell {
		return cell{int(math.Floor(p.X / radius)), int(math.Floor(p.Y / radius))}
	}
	for i, p := range points {
		c := cellOf(p)
		buckets[c] = append(buckets[c], i)
	}

	r2 := radius * radius
	count := 0
	for i, p := range points {
		c := cellOf(p)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				for _, j := range buckets[cell{c.x + dx, c.y + dy}] {
					if j > i && points[j].Sub(p).LengthSquared() < r2 {
						count++
					}
				}
			}
		}
	}
	return count
}
