package gesture

// Simplify reduces pts to its geometric skeleton using Douglas-Peucker
// reduction: any removed point lies within epsilon of the simplified path.
// The first and last input points always survive, the output never has more
// points than the input, and re-simplifying with the same epsilon is a no-op.
func Simplify(pts []Point, epsilon float64) []Point {
	if len(pts) < 3 {
		return pts
	}

	// Interior point farthest from the chord between the endpoints.
	worst := 0
	worstDist := 0.0
	first := pts[0]
	last := pts[len(pts)-1]
	for i := 1; i < len(pts)-1; i++ {
		d := PerpDist(pts[i], first, last)
		if d > worstDist {
			worst = i
			worstDist = d
		}
	}

	if worstDist <= epsilon {
		return []Point{first, last}
	}

	left := Simplify(pts[:worst+1], epsilon)
	right := Simplify(pts[worst:], epsilon)

	// Merge, dropping the duplicated junction point.
	out := make([]Point, 0, len(left)+len(right)-1)
	out = append(out, left...)
	out = append(out, right[1:]...)
	return out
}
