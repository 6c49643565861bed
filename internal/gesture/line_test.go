package gesture

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectLine_PerfectHorizontal_FullConfidence(t *testing.T) {
	th := DefaultThresholds()
	pts := SynthLine(Point{100, 300}, Point{400, 300}, 12, 0, nil)

	res := DetectHorizontal(pts, th)
	require.Equal(t, Horizontal, res.Category)
	assert.InDelta(t, 1.0, res.Confidence, 1e-9, "zero deviation must score 1.0")
	assert.Equal(t, DifficultyEasy, res.Difficulty)
	assert.Zero(t, res.Deviation)
}

func TestDetectLine_PerfectVertical(t *testing.T) {
	th := DefaultThresholds()
	pts := SynthLine(Point{200, 100}, Point{200, 400}, 12, 0, nil)

	res := DetectVertical(pts, th)
	require.Equal(t, Vertical, res.Category)
	assert.InDelta(t, 1.0, res.Confidence, 1e-9)
}

func TestDetectLine_DiagonalDown(t *testing.T) {
	th := DefaultThresholds()
	pts := SynthLine(Point{0, 0}, Point{300, 300}, 10, 0, nil)

	down := DetectSlashDown(pts, th)
	require.Equal(t, SlashDown, down.Category)
	assert.GreaterOrEqual(t, down.Confidence, 0.7)
	assert.Equal(t, DifficultyMedium, down.Difficulty)

	// The same stroke must not pass the opposite diagonal's sign check.
	up := DetectSlashUp(pts, th)
	assert.Equal(t, None, up.Category)
}

func TestDetectLine_DiagonalUp(t *testing.T) {
	th := DefaultThresholds()
	pts := SynthLine(Point{0, 300}, Point{300, 0}, 10, 0, nil)

	res := DetectSlashUp(pts, th)
	require.Equal(t, SlashUp, res.Category)
	assert.GreaterOrEqual(t, res.Confidence, 0.7)
}

func TestDetectLine_ReversedStrokeSameCategory(t *testing.T) {
	th := DefaultThresholds()
	fwd := SynthLine(Point{100, 300}, Point{400, 300}, 12, 0, nil)
	rev := make([]Point, len(fwd))
	for i, p := range fwd {
		rev[len(fwd)-1-i] = p
	}

	a := DetectHorizontal(fwd, th)
	b := DetectHorizontal(rev, th)
	require.Equal(t, a.Category, b.Category)
	assert.InDelta(t, a.Confidence, b.Confidence, 1e-9)
}

func TestDetectLine_ReversedDiagonalKeepsFamily(t *testing.T) {
	th := DefaultThresholds()
	// Bottom-right back to top-left: dx and dy both negative, still the
	// down-slash axis.
	pts := SynthLine(Point{300, 300}, Point{0, 0}, 10, 0, nil)
	res := DetectSlashDown(pts, th)
	require.Equal(t, SlashDown, res.Category)
}

func TestDetectLine_WrongWindowRejected(t *testing.T) {
	th := DefaultThresholds()
	diag := SynthLine(Point{0, 0}, Point{300, 300}, 10, 0, nil)
	assert.Equal(t, None, DetectHorizontal(diag, th).Category)
	assert.Equal(t, None, DetectVertical(diag, th).Category)
}

func TestDetectLine_TooShortRejected(t *testing.T) {
	th := DefaultThresholds()
	pts := SynthLine(Point{0, 0}, Point{th.LineMinLength - 10, 0}, 8, 0, nil)
	res := DetectHorizontal(pts, th)
	assert.Equal(t, None, res.Category)
	assert.Zero(t, res.Confidence)
}

func TestDetectLine_ExcessiveWobbleRejected(t *testing.T) {
	th := DefaultThresholds()
	pts := SynthLine(Point{0, 0}, Point{300, 0}, 16, 0, nil)
	// Push one interior point far beyond the deviation ceiling.
	pts[8].Y = th.LineDeviationFrac*300*2 + 50
	res := DetectHorizontal(pts, th)
	assert.Equal(t, None, res.Category)
}

func TestDetectLine_CoincidentEndpointsRejected(t *testing.T) {
	th := DefaultThresholds()
	pts := []Point{{100, 100}, {140, 120}, {100, 100}}
	res := DetectStraight(pts, th)
	assert.Equal(t, None, res.Category)
	assert.Zero(t, res.Confidence)
}

func TestDetectLine_SlightWobbleLowersConfidence(t *testing.T) {
	th := DefaultThresholds()
	clean := SynthLine(Point{0, 200}, Point{400, 200}, 16, 0, nil)
	wobbly := SynthLine(Point{0, 200}, Point{400, 200}, 16, 0, nil)
	for i := 1; i < len(wobbly)-1; i++ {
		if i%2 == 0 {
			wobbly[i].Y += 12
		} else {
			wobbly[i].Y -= 12
		}
	}
	a := DetectHorizontal(clean, th)
	b := DetectHorizontal(wobbly, th)
	require.Equal(t, Horizontal, a.Category)
	require.Equal(t, Horizontal, b.Category)
	if !(b.Confidence < a.Confidence) {
		t.Fatalf("wobble should cost confidence: clean=%.4f wobbly=%.4f", a.Confidence, b.Confidence)
	}
	assert.True(t, math.Abs(b.Deviation-12) < 1e-9)
}
