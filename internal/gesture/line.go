package gesture

// Orientation selects which angle window a line classifier accepts.
type Orientation int

const (
	// OrientAny accepts any heading; it is the free-angle fallback that
	// serves consumers of the reduced straight/circle/zigzag taxonomy.
	OrientAny Orientation = iota
	OrientHorizontal
	OrientVertical
	OrientDiagDown // top-left to bottom-right or the reverse
	OrientDiagUp   // bottom-left to top-right or the reverse
)

func (o Orientation) category() Category {
	switch o {
	case OrientHorizontal:
		return Horizontal
	case OrientVertical:
		return Vertical
	case OrientDiagDown:
		return SlashDown
	case OrientDiagUp:
		return SlashUp
	default:
		return Straight
	}
}

// inWindow reports whether the chord heading (degrees, 0..360) falls inside
// the orientation's tolerance window. Horizontal wraps around 0/360, vertical
// around 90/270, diagonals around 45/135/225/315. Diagonals additionally
// check the dx/dy sign relation so a slash cannot flip family on direction.
func (o Orientation) inWindow(angle, dx, dy, tol float64) bool {
	switch o {
	case OrientHorizontal:
		return angleDelta(angle, 0) <= tol || angleDelta(angle, 180) <= tol
	case OrientVertical:
		return angleDelta(angle, 90) <= tol || angleDelta(angle, 270) <= tol
	case OrientDiagDown:
		// Down-right or up-left: dx and dy share sign in screen space.
		if dx*dy <= 0 {
			return false
		}
		return angleDelta(angle, 45) <= tol || angleDelta(angle, 225) <= tol
	case OrientDiagUp:
		if dx*dy >= 0 {
			return false
		}
		return angleDelta(angle, 135) <= tol || angleDelta(angle, 315) <= tol
	default:
		return true
	}
}

func (o Orientation) minLength(th Thresholds) float64 {
	if o == OrientDiagDown || o == OrientDiagUp {
		return th.DiagonalMinLength
	}
	return th.LineMinLength
}

// DetectLine classifies pts as a line stroke of the given orientation.
// The deviation ceiling scales with path length so long deliberate strokes
// tolerate proportionally more wobble. A perfectly straight stroke of at
// least twice the minimum length scores 1.0.
func DetectLine(pts []Point, o Orientation, th Thresholds) Result {
	if len(pts) < th.LineMinPoints {
		return Result{}
	}

	first := pts[0]
	last := pts[len(pts)-1]
	if Dist(first, last) < 1e-9 {
		// Coincident endpoints: no chord to measure against.
		return Result{}
	}

	angle := AngleDeg(first, last)
	if !o.inWindow(angle, last.X-first.X, last.Y-first.Y, th.LineAngleTol) {
		return Result{}
	}

	minLen := o.minLength(th)
	pathLen := PathLength(pts)
	if pathLen < minLen {
		return Result{}
	}

	maxDev := 0.0
	for _, p := range pts[1 : len(pts)-1] {
		if d := PerpDist(p, first, last); d > maxDev {
			maxDev = d
		}
	}
	devCeil := th.LineDeviationFrac * pathLen
	if maxDev > devCeil {
		return Result{}
	}

	// Zero deviation scores 1.0 once the stroke reaches 2x the minimum
	// length; at exactly the minimum the length term bottoms out at 0.92.
	devTerm := 1 - maxDev/devCeil
	lenTerm := clamp01(0.92 + 0.08*(pathLen/minLen-1))
	conf := clamp01(devTerm * lenTerm)
	if conf == 0 {
		return Result{}
	}

	cat := o.category()
	return Result{
		Category:   cat,
		Confidence: conf,
		Difficulty: cat.Difficulty(),
		Points:     pts,
		Deviation:  maxDev,
	}
}

// DetectStraight classifies pts as a line of any heading.
func DetectStraight(pts []Point, th Thresholds) Result {
	return DetectLine(pts, OrientAny, th)
}

// DetectHorizontal classifies pts as a horizontal stroke.
func DetectHorizontal(pts []Point, th Thresholds) Result {
	return DetectLine(pts, OrientHorizontal, th)
}

// DetectVertical classifies pts as a vertical stroke.
func DetectVertical(pts []Point, th Thresholds) Result {
	return DetectLine(pts, OrientVertical, th)
}

// DetectSlashDown classifies pts as a diagonal stroke along the
// top-left/bottom-right axis.
func DetectSlashDown(pts []Point, th Thresholds) Result {
	return DetectLine(pts, OrientDiagDown, th)
}

// DetectSlashUp classifies pts as a diagonal stroke along the
// bottom-left/top-right axis.
func DetectSlashUp(pts []Point, th Thresholds) Result {
	return DetectLine(pts, OrientDiagUp, th)
}

// lineClassifier adapts DetectLine to the Classifier interface.
type lineClassifier struct {
	th     Thresholds
	orient Orientation
	name   string
}

func (c lineClassifier) Name() string { return c.name }

func (c lineClassifier) Classify(pts []Point) Result { return DetectLine(pts, c.orient, c.th) }
