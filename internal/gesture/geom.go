package gesture

import "math"

// Point is a planar coordinate in screen space (y grows downward).
type Point struct {
	X float64
	Y float64
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// PathLength returns the sum of consecutive point distances along pts.
func PathLength(pts []Point) float64 {
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += Dist(pts[i-1], pts[i])
	}
	return total
}

// Centroid returns the arithmetic mean of pts. Empty input yields the origin.
func Centroid(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(pts))
	return Point{X: sx / n, Y: sy / n}
}

// AngleDeg returns the heading from a toward b in degrees, normalized to
// [0, 360). 0 = right, 90 = down (screen coordinates).
func AngleDeg(a, b Point) float64 {
	deg := math.Atan2(b.Y-a.Y, b.X-a.X) * 180.0 / math.Pi
	if deg < 0 {
		deg += 360.0
	}
	return deg
}

// PerpDist returns the perpendicular distance from p to the infinite line
// through a and b. When a and b coincide it degrades to the point distance.
func PerpDist(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	chord := math.Sqrt(dx*dx + dy*dy)
	if chord < 1e-9 {
		return Dist(p, a)
	}
	return math.Abs(dy*p.X-dx*p.Y+b.X*a.Y-b.Y*a.X) / chord
}

// SegDist returns the distance from p to the segment ab.
func SegDist(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq < 1e-18 {
		return Dist(p, a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Dist(p, Point{X: a.X + t*dx, Y: a.Y + t*dy})
}

// angleDelta returns the smallest absolute difference between two headings
// in degrees, in [0, 180]. Handles the 0/360 wrap.
func angleDelta(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// signedAngleDelta returns the turn from heading a to heading b in degrees,
// wrapped to (-180, 180]. Positive turns are clockwise on screen.
func signedAngleDelta(a, b float64) float64 {
	d := b - a
	for d > 180 {
		d -= 360
	}
	for d <= -180 {
		d += 360
	}
	return d
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
