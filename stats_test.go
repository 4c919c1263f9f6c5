package poisson

import (
	"math"
	"testing"
)

func TestAnalyze_Lattice(t *testing.T) {
	var pts []Point
	for y := range 4 {
		for x := range 4 {
			pts = append(pts, Pt(float64(x*3), float64(y*3)))
		}
	}

	s := Analyze(pts, Rect(0, 0, 12, 12))
	if s.Count != 16 {
		t.Errorf("Count = %d, want 16", s.Count)
	}
	if want := 16.0 / 144; math.Abs(s.Density-want) > 1e-12 {
		t.Errorf("Density = %v, want %v", s.Density, want)
	}
	if math.Abs(s.MinDistance-3) > 1e-12 {
		t.Errorf("MinDistance = %v, want 3", s.MinDistance)
	}
	if math.Abs(s.MeanNearest-3) > 1e-12 {
		t.Errorf("MeanNearest = %v, want 3", s.MeanNearest)
	}
	if s.StdNearest > 1e-12 {
		t.Errorf("StdNearest = %v, want 0", s.StdNearest)
	}
}

func TestAnalyze_Degenerate(t *testing.T) {
	for _, pts := range [][]Point{nil, {Pt(1, 1)}} {
		s := Analyze(pts, Rect(0, 0, 10, 10))
		if s.Count != len(pts) {
			t.Errorf("Count = %d, want %d", s.Count, len(pts))
		}
		if !math.IsInf(s.MinDistance, 1) {
			t.Errorf("MinDistance = %v, want +Inf", s.MinDistance)
		}
	}
}

func TestAnalyze_GeneratedSpacing(t *testing.T) {
	const radius = 5.0
	region := Rect(0, 0, 150, 150)
	pts, err := Generate(radius, region, WithSeed(8))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	s := Analyze(pts, region)
	if s.MinDistance < radius {
		t.Errorf("MinDistance = %v, want >= %v", s.MinDistance, radius)
	}
	// Dart throwing from [r, 3r) packs neighbors well inside 2r on average.
	if s.MeanNearest < radius || s.MeanNearest > 2*radius {
		t.Errorf("MeanNearest = %v, want in [%v, %v]", s.MeanNearest, radius, 2*radius)
	}
}

func TestViolations(t *testing.T) {
	tests := []struct {
		name   string
		pts    []Point
		radius float64
		want   int
	}{
		{"empty", nil, 1, 0},
		{"one close pair", []Point{Pt(0, 0), Pt(1, 0), Pt(5, 0)}, 2, 1},
		{"all close", []Point{Pt(0, 0), Pt(1, 0), Pt(5, 0)}, 10, 3},
		{"across cell boundary", []Point{Pt(-0.5, -0.5), Pt(0.5, 0.5)}, 2, 1},
		{"exactly radius", []Point{Pt(0, 0), Pt(2, 0)}, 2, 0},
		{"zero radius", []Point{Pt(0, 0), Pt(0, 0)}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Violations(tt.pts, tt.radius); got != tt.want {
				t.Errorf("Violations() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestViolations_MatchesBruteForce(t *testing.T) {
	pts, err := GenerateParallel(3, Rect(0, 0, 96, 96), WithSeed(4), WithTileSize(12))
	if err != nil {
		t.Fatalf("GenerateParallel() error = %v", err)
	}

	want := 0
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if pts[i].Sub(pts[j]).LengthSquared() < 9 {
				want++
			}
		}
	}
	if got := Violations(pts, 3); got != want {
		t.Errorf("Violations() = %d, brute force = %d", got, want)
	}
}
