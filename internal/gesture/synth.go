package gesture

import (
	"math"
	"math/rand"
)

// Synthetic trail generators, shared by the package tests and the headless
// accuracy report. All of them are deterministic for a given rng; pass a nil
// rng for jitter-free output.

// SynthCircle returns n points tracing a full circle of radius r around
// center, first and last point coinciding (up to jitter). jitter is the
// maximum radial displacement applied per point.
func SynthCircle(center Point, r float64, n int, jitter float64, rng *rand.Rand) []Point {
	if n < 2 {
		n = 2
	}
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n-1)
		rad := r
		if rng != nil && jitter > 0 {
			rad += (rng.Float64()*2 - 1) * jitter
		}
		pts[i] = Point{
			X: center.X + rad*math.Cos(theta),
			Y: center.Y + rad*math.Sin(theta),
		}
	}
	return pts
}

// SynthLine returns n points evenly spaced from a to b, each displaced
// perpendicular to the stroke by at most jitter.
func SynthLine(a, b Point, n int, jitter float64, rng *rand.Rand) []Point {
	if n < 2 {
		n = 2
	}
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := math.Sqrt(dx*dx + dy*dy)
	// Unit normal for perpendicular jitter; degenerate strokes get none.
	var nx, ny float64
	if length > 1e-9 {
		nx = -dy / length
		ny = dx / length
	}
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		off := 0.0
		if rng != nil && jitter > 0 && i != 0 && i != n-1 {
			off = (rng.Float64()*2 - 1) * jitter
		}
		pts[i] = Point{
			X: a.X + t*dx + off*nx,
			Y: a.Y + t*dy + off*ny,
		}
	}
	return pts
}

// SynthZigzag returns a left-to-right zigzag starting at start: segments
// strokes of segLen px whose headings alternate +-swingDeg around horizontal,
// sampled pointsPerSeg points each. segments strokes produce segments-1
// direction changes.
func SynthZigzag(start Point, segments int, segLen, swingDeg float64, pointsPerSeg int, jitter float64, rng *rand.Rand) []Point {
	if segments < 2 {
		segments = 2
	}
	if pointsPerSeg < 2 {
		pointsPerSeg = 2
	}
	pts := []Point{start}
	cur := start
	for s := 0; s < segments; s++ {
		heading := swingDeg
		if s%2 == 1 {
			heading = -swingDeg
		}
		rad := heading * math.Pi / 180
		end := Point{
			X: cur.X + segLen*math.Cos(rad),
			Y: cur.Y + segLen*math.Sin(rad),
		}
		seg := SynthLine(cur, end, pointsPerSeg, jitter, rng)
		pts = append(pts, seg[1:]...)
		cur = end
	}
	return pts
}
