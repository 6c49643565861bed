package gesture

import "math"

// DetectZigzag classifies pts as a back-and-forth slash. The trail is
// re-simplified at the finer zigzag epsilon (the general epsilon would erase
// the very reversals this classifier looks for), then consecutive segment
// headings are walked counting direction changes. A turn only counts when it
// exceeds the angle threshold and bends the opposite way from the previous
// counted turn, so one long sharp curve cannot masquerade as a zigzag.
func DetectZigzag(pts []Point, th Thresholds) Result {
	simp := Simplify(pts, th.ZigzagEpsilon)
	if len(simp) < th.ZigzagMinPoints {
		return Result{}
	}

	angles := make([]float64, len(simp)-1)
	for i := 1; i < len(simp); i++ {
		angles[i-1] = AngleDeg(simp[i-1], simp[i])
	}

	changes := 0
	lastDir := 0 // -1 / +1 of the last counted turn, 0 before the first
	for i := 1; i < len(angles); i++ {
		turn := signedAngleDelta(angles[i-1], angles[i])
		if math.Abs(turn) < th.ZigzagAngleTol {
			continue
		}
		dir := 1
		if turn < 0 {
			dir = -1
		}
		if dir != lastDir {
			changes++
			lastDir = dir
		}
	}
	if changes < th.ZigzagMinTurns {
		return Result{}
	}

	pathLen := PathLength(simp)
	counted := changes
	if counted > th.ZigzagMaxTurns {
		counted = th.ZigzagMaxTurns
	}
	turnTerm := float64(counted) / float64(th.ZigzagMaxTurns)
	spanTerm := clamp01(pathLen / th.ZigzagMinLength)
	conf := clamp01(0.6*turnTerm + 0.4*spanTerm)
	if conf == 0 {
		return Result{}
	}

	return Result{
		Category:         Zigzag,
		Confidence:       conf,
		Difficulty:       Zigzag.Difficulty(),
		Points:           simp,
		DirectionChanges: changes,
	}
}

// zigzagClassifier adapts DetectZigzag to the Classifier interface.
type zigzagClassifier struct {
	th Thresholds
}

func (c zigzagClassifier) Name() string { return "zigzag" }

func (c zigzagClassifier) Classify(pts []Point) Result { return DetectZigzag(pts, c.th) }
