package gesture

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSimplify_FewerThanThreePoints_Unchanged(t *testing.T) {
	two := []Point{{0, 0}, {10, 10}}
	if diff := cmp.Diff(two, Simplify(two, 5)); diff != "" {
		t.Fatalf("two points should pass through unchanged:\n%s", diff)
	}
}

func TestSimplify_CollinearCollapsesToEndpoints(t *testing.T) {
	pts := []Point{{0, 0}, {25, 0}, {50, 0}, {75, 0}, {100, 0}}
	got := Simplify(pts, 1)
	want := []Point{{0, 0}, {100, 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("collinear run should collapse:\n%s", diff)
	}
}

func TestSimplify_KeepsSignificantCorner(t *testing.T) {
	pts := []Point{{0, 0}, {50, 0}, {100, 0}, {100, 50}, {100, 100}}
	got := Simplify(pts, 2)
	want := []Point{{0, 0}, {100, 0}, {100, 100}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("corner at (100,0) must survive:\n%s", diff)
	}
}

func TestSimplify_NeverGrows_PreservesEndpoints(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		n := 3 + rng.Intn(60)
		pts := make([]Point, n)
		for i := range pts {
			pts[i] = Point{X: rng.Float64() * 500, Y: rng.Float64() * 500}
		}
		eps := rng.Float64() * 30
		got := Simplify(pts, eps)
		if len(got) > len(pts) {
			t.Fatalf("trial %d: output grew from %d to %d points", trial, len(pts), len(got))
		}
		if got[0] != pts[0] || got[len(got)-1] != pts[n-1] {
			t.Fatalf("trial %d: endpoints not preserved", trial)
		}
	}
}

func TestSimplify_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	inputs := [][]Point{
		SynthZigzag(Point{100, 300}, 6, 90, 60, 4, 0, nil),
		SynthCircle(Point{640, 360}, 120, 24, 0, nil),
		SynthLine(Point{0, 0}, Point{400, 120}, 20, 6, rng),
	}
	for i, pts := range inputs {
		for _, eps := range []float64{1, 4, 8, 25} {
			once := Simplify(pts, eps)
			twice := Simplify(once, eps)
			if diff := cmp.Diff(once, twice); diff != "" {
				t.Fatalf("input %d eps %.1f: second pass changed the result:\n%s", i, eps, diff)
			}
		}
	}
}
