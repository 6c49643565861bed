package gesture

import (
	"fmt"
	"time"
)

// Thresholds holds every numeric constant the recognizer and its classifiers
// consume. A Thresholds value is validated once at startup and read-only for
// the rest of the session; classifiers never re-check it.
type Thresholds struct {
	// MinPoints is the raw point count below which no detection is attempted.
	MinPoints int
	// SimplifyEpsilon is the general-purpose tolerance offered to callers
	// that want standalone path reduction of a captured trail.
	SimplifyEpsilon float64

	// Circle.
	CircleMinPoints   int     // samples needed before a loop is plausible
	CircleMaxClosure  float64 // px between first and last point
	CircleMinRadius   float64 // px, mean radius floor (inclusive)
	CircleMaxRadiusCV float64 // coefficient-of-variation ceiling for radii

	// Line family.
	LineMinPoints     int
	LineAngleTol      float64 // degrees either side of the orientation axis
	LineMinLength     float64 // px, axis-aligned and free-angle strokes
	DiagonalMinLength float64 // px, slash strokes
	LineDeviationFrac float64 // deviation ceiling as a fraction of path length

	// Zigzag.
	ZigzagEpsilon   float64 // finer than SimplifyEpsilon to keep reversals
	ZigzagMinPoints int     // simplified points needed
	ZigzagAngleTol  float64 // degrees a turn must exceed to count
	ZigzagMinTurns  int     // alternating direction changes required
	ZigzagMaxTurns  int     // confidence stops improving past this
	ZigzagMinLength float64 // px, spans shorter than this are suspicious

	// Capture limits, enforced by the trail owner before recognition.
	MaxTrailPoints int
	GestureTimeout time.Duration
}

// DefaultThresholds returns the tuning shipped with the game.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinPoints:       5,
		SimplifyEpsilon: 8.0,

		CircleMinPoints:   8,
		CircleMaxClosure:  60.0,
		CircleMinRadius:   30.0,
		CircleMaxRadiusCV: 0.30,

		LineMinPoints:     3,
		LineAngleTol:      20.0,
		LineMinLength:     80.0,
		DiagonalMinLength: 100.0,
		LineDeviationFrac: 0.15,

		ZigzagEpsilon:   4.0,
		ZigzagMinPoints: 4,
		ZigzagAngleTol:  45.0,
		ZigzagMinTurns:  2,
		ZigzagMaxTurns:  8,
		ZigzagMinLength: 300.0,

		MaxTrailPoints: 256,
		GestureTimeout: 3 * time.Second,
	}
}

// Validate reports the first nonsensical threshold. A failure here is fatal
// at the composition root; classifiers assume a validated record.
func (t Thresholds) Validate() error {
	if t.MinPoints < 1 {
		return fmt.Errorf("thresholds: MinPoints must be >= 1, got %d", t.MinPoints)
	}
	if t.SimplifyEpsilon <= 0 {
		return fmt.Errorf("thresholds: SimplifyEpsilon must be > 0, got %g", t.SimplifyEpsilon)
	}
	if t.CircleMinPoints < 3 {
		return fmt.Errorf("thresholds: CircleMinPoints must be >= 3, got %d", t.CircleMinPoints)
	}
	if t.CircleMaxClosure <= 0 {
		return fmt.Errorf("thresholds: CircleMaxClosure must be > 0, got %g", t.CircleMaxClosure)
	}
	if t.CircleMinRadius <= 0 {
		return fmt.Errorf("thresholds: CircleMinRadius must be > 0, got %g", t.CircleMinRadius)
	}
	if t.CircleMaxRadiusCV <= 0 || t.CircleMaxRadiusCV >= 1 {
		return fmt.Errorf("thresholds: CircleMaxRadiusCV must be in (0,1), got %g", t.CircleMaxRadiusCV)
	}
	if t.LineMinPoints < 2 {
		return fmt.Errorf("thresholds: LineMinPoints must be >= 2, got %d", t.LineMinPoints)
	}
	if t.LineAngleTol <= 0 || t.LineAngleTol >= 45 {
		return fmt.Errorf("thresholds: LineAngleTol must be in (0,45) degrees, got %g", t.LineAngleTol)
	}
	if t.LineMinLength <= 0 {
		return fmt.Errorf("thresholds: LineMinLength must be > 0, got %g", t.LineMinLength)
	}
	if t.DiagonalMinLength <= 0 {
		return fmt.Errorf("thresholds: DiagonalMinLength must be > 0, got %g", t.DiagonalMinLength)
	}
	if t.LineDeviationFrac <= 0 || t.LineDeviationFrac >= 1 {
		return fmt.Errorf("thresholds: LineDeviationFrac must be in (0,1), got %g", t.LineDeviationFrac)
	}
	if t.ZigzagEpsilon <= 0 {
		return fmt.Errorf("thresholds: ZigzagEpsilon must be > 0, got %g", t.ZigzagEpsilon)
	}
	if t.ZigzagMinPoints < 4 {
		return fmt.Errorf("thresholds: ZigzagMinPoints must be >= 4, got %d", t.ZigzagMinPoints)
	}
	if t.ZigzagAngleTol <= 0 || t.ZigzagAngleTol >= 180 {
		return fmt.Errorf("thresholds: ZigzagAngleTol must be in (0,180) degrees, got %g", t.ZigzagAngleTol)
	}
	if t.ZigzagMinTurns < 1 {
		return fmt.Errorf("thresholds: ZigzagMinTurns must be >= 1, got %d", t.ZigzagMinTurns)
	}
	if t.ZigzagMaxTurns < t.ZigzagMinTurns {
		return fmt.Errorf("thresholds: ZigzagMaxTurns must be >= ZigzagMinTurns, got %d < %d",
			t.ZigzagMaxTurns, t.ZigzagMinTurns)
	}
	if t.ZigzagMinLength <= 0 {
		return fmt.Errorf("thresholds: ZigzagMinLength must be > 0, got %g", t.ZigzagMinLength)
	}
	if t.MaxTrailPoints < t.MinPoints {
		return fmt.Errorf("thresholds: MaxTrailPoints must be >= MinPoints, got %d < %d",
			t.MaxTrailPoints, t.MinPoints)
	}
	if t.GestureTimeout <= 0 {
		return fmt.Errorf("thresholds: GestureTimeout must be > 0, got %v", t.GestureTimeout)
	}
	return nil
}
