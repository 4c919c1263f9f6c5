package poisson

import (
	"errors"
	"image"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/poisson/internal/rng"
)

func testEngine(radius float64, region Region, opts ...Option) *engine {
	o := buildOptions(opts)
	cols, rows := gridDims(region.Width, region.Height, radius/math.Sqrt2)
	return newEngine(radius, region, cols, rows, &o, rng.New(1))
}

func TestEngine_SeedCenter(t *testing.T) {
	e := testEngine(5, Rect(10, 20, 40, 60))
	defer e.grid.release()

	if n := e.seed(SeedCenter); n != 1 {
		t.Fatalf("seed() = %d, want 1", n)
	}
	if got := e.active[0]; got != Pt(30, 50) {
		t.Errorf("seed = %v, want region center (30, 50)", got)
	}
	if len(e.samples) != 0 {
		t.Errorf("seeding added %d samples, want 0", len(e.samples))
	}
}

func TestEngine_SeedCorner(t *testing.T) {
	e := testEngine(4, Rect(10, 20, 40, 60))
	defer e.grid.release()

	e.seed(SeedCorner)
	half := 4 / math.Sqrt2 / 2
	if got, want := e.active[0], Pt(10+half, 20+half); got != want {
		t.Errorf("seed = %v, want %v", got, want)
	}
}

func TestEngine_SeedMask(t *testing.T) {
	m := NewBitmap(image.Rect(0, 0, 10, 10))
	m.Set(7, 1, 1)
	m.Set(2, 3, 1)
	m.Set(5, 3, 1)

	e := testEngine(5, Rect(0, 0, 10, 10), WithMask(m))
	defer e.grid.release()

	// Mask seeding ignores the seeding policy.
	if n := e.seed(SeedCorner); n != 3 {
		t.Fatalf("seed() = %d, want 3", n)
	}
	want := []Point{Pt(7, 1), Pt(2, 3), Pt(5, 3)}
	if diff := cmp.Diff(want, e.active); diff != "" {
		t.Errorf("seeds mismatch, want row-major order (-want +got):\n%s", diff)
	}
}

func TestEngine_SeedMaskUnfiltered(t *testing.T) {
	// Adjacent seeds are one unit apart, far below the radius.
	m := NewBitmap(image.Rect(0, 0, 4, 4))
	m.FillRect(m.Bounds(), 1)

	e := testEngine(3, Rect(0, 0, 4, 4), WithMask(m))
	defer e.grid.release()

	if n := e.seed(SeedCenter); n != 16 {
		t.Errorf("seed() = %d, want 16 (every allowed coordinate)", n)
	}
}

func TestEngine_SpawnAnnulus(t *testing.T) {
	const radius = 2.5
	e := testEngine(radius, Rect(0, 0, 100, 100))
	defer e.grid.release()

	origin := Pt(50, 50)
	for range 1000 {
		d := e.spawn(origin).Distance(origin)
		if d < radius-1e-9 || d >= 3*radius+1e-9 {
			t.Fatalf("spawn distance %v outside [%v, %v)", d, radius, 3*radius)
		}
	}
}

func TestEngine_Retire(t *testing.T) {
	a, b, c := Pt(1, 1), Pt(2, 2), Pt(3, 3)

	tests := []struct {
		name  string
		index int
		want  []Point
	}{
		{"head keeps order", 0, []Point{b, c}},
		{"middle swaps last", 1, []Point{a, c}},
		{"tail", 2, []Point{a, b}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &engine{active: []Point{a, b, c}}
			e.retire(tt.index)
			if diff := cmp.Diff(tt.want, e.active); diff != "" {
				t.Errorf("active mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEngine_RunProducesValidSamples(t *testing.T) {
	const radius = 4.0
	region := Rect(0, 0, 80, 80)
	e := testEngine(radius, region)
	e.seed(SeedCenter)

	pts, err := e.run()
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if len(pts) == 0 {
		t.Fatal("run() returned no samples")
	}
	if len(e.active) != 0 {
		t.Errorf("active list has %d entries after run, want 0", len(e.active))
	}
	assertMinDistance(t, pts, radius)
}

// outOfRange is a broken Selection used to exercise invariant checks.
type outOfRange struct{}

func (outOfRange) Pick(n int, _ *rand.Rand) int { return n }

func TestEngine_BadSelection(t *testing.T) {
	e := testEngine(5, Rect(0, 0, 50, 50), WithSelection(outOfRange{}))
	e.seed(SeedCenter)

	_, err := e.run()
	if !errors.Is(err, errBadPick) {
		t.Errorf("run() error = %v, want errBadPick", err)
	}
}

// assertMinDistance fails if any pair of points is closer than radius.
func assertMinDistance(t *testing.T, pts []Point, radius float64) {
	t.Helper()
	r2 := radius * radius
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if d2 := pts[i].Sub(pts[j]).LengthSquared(); d2 < r2 {
				t.Fatalf("points %v and %v are %v apart, want >= %v",
					pts[i], pts[j], math.Sqrt(d2), radius)
			}
		}
	}
}
