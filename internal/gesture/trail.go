package gesture

import "time"

// TimedPoint is one captured input sample. T is the elapsed time since the
// gesture began. Samples are ordered by capture time and never reordered.
type TimedPoint struct {
	Point
	T time.Duration
}

// Trail accumulates the samples of one in-flight gesture. It is owned and
// mutated exclusively by the input-capturing collaborator; the recognizer
// only ever sees a snapshot. Length is bounded: once full, the oldest sample
// is dropped to admit the newest.
type Trail struct {
	maxPoints int
	samples   []TimedPoint
}

// NewTrail creates an empty trail holding at most maxPoints samples.
func NewTrail(maxPoints int) *Trail {
	if maxPoints < 1 {
		maxPoints = 1
	}
	return &Trail{
		maxPoints: maxPoints,
		samples:   make([]TimedPoint, 0, maxPoints),
	}
}

// Add appends a sample captured at elapsed time t, evicting the oldest
// sample when the trail is full.
func (tr *Trail) Add(p Point, t time.Duration) {
	if len(tr.samples) == tr.maxPoints {
		copy(tr.samples, tr.samples[1:])
		tr.samples[len(tr.samples)-1] = TimedPoint{Point: p, T: t}
		return
	}
	tr.samples = append(tr.samples, TimedPoint{Point: p, T: t})
}

// Len returns the number of buffered samples.
func (tr *Trail) Len() int {
	return len(tr.samples)
}

// Reset empties the trail for the next gesture, keeping the buffer.
func (tr *Trail) Reset() {
	tr.samples = tr.samples[:0]
}

// Points returns a snapshot of the spatial coordinates, safe to hand to the
// recognizer while capture continues.
func (tr *Trail) Points() []Point {
	pts := make([]Point, len(tr.samples))
	for i, s := range tr.samples {
		pts[i] = s.Point
	}
	return pts
}

// Samples returns a snapshot of the timed samples.
func (tr *Trail) Samples() []TimedPoint {
	out := make([]TimedPoint, len(tr.samples))
	copy(out, tr.samples)
	return out
}

// Duration returns the elapsed time between the first and last sample.
func (tr *Trail) Duration() time.Duration {
	if len(tr.samples) < 2 {
		return 0
	}
	return tr.samples[len(tr.samples)-1].T - tr.samples[0].T
}
