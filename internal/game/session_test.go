package game

import (
	"strings"
	"testing"
	"time"

	"github.com/kadewils/slashrush/internal/gesture"
)

const frameDt = 16 * time.Millisecond

func newTestSession() (*Session, *ScoreKeeper, *Feed) {
	th := gesture.DefaultThresholds()
	score := NewScoreKeeper()
	feed := NewFeed()
	s := NewSession(th, gesture.New(gesture.WithThresholds(th)), score, feed)
	return s, score, feed
}

// drag presses through pts one frame at a time, then releases, returning the
// recognition result of the release frame.
func drag(s *Session, pts []gesture.Point) (gesture.Result, bool) {
	for _, p := range pts {
		s.Advance(frameDt, true, p.X, p.Y)
	}
	last := pts[len(pts)-1]
	return s.Advance(frameDt, false, last.X, last.Y)
}

func TestSession_HorizontalDragRecognized(t *testing.T) {
	s, score, feed := newTestSession()
	res, done := drag(s, gesture.SynthLine(gesture.Point{X: 100, Y: 300}, gesture.Point{X: 400, Y: 300}, 20, 0, nil))
	if !done {
		t.Fatal("release frame must produce a result")
	}
	if res.Category != gesture.Horizontal {
		t.Fatalf("expected horizontal, got %s", res.Category)
	}
	if score.Total == 0 {
		t.Fatal("recognized slash must award points")
	}
	if feed.Len() != 1 {
		t.Fatalf("expected 1 feed entry, got %d", feed.Len())
	}
	if s.Recognized(gesture.Horizontal) != 1 {
		t.Fatalf("expected 1 recognized horizontal, got %d", s.Recognized(gesture.Horizontal))
	}
}

func TestSession_CircleDrag(t *testing.T) {
	s, _, _ := newTestSession()
	res, done := drag(s, gesture.SynthCircle(gesture.Point{X: 640, Y: 360}, 120, 24, 0, nil))
	if !done || res.Category != gesture.Circle {
		t.Fatalf("expected circle, got %s (done=%v)", res.Category, done)
	}
	if res.Confidence < 0.8 {
		t.Fatalf("clean circle should be confident, got %.3f", res.Confidence)
	}
}

func TestSession_TinyFlickIsMiss(t *testing.T) {
	s, score, _ := newTestSession()
	// Build a combo first.
	drag(s, gesture.SynthLine(gesture.Point{X: 100, Y: 300}, gesture.Point{X: 400, Y: 300}, 20, 0, nil))
	if score.Combo != 1 {
		t.Fatalf("expected combo 1 after a clean slash, got %d", score.Combo)
	}

	res, done := drag(s, gesture.SynthLine(gesture.Point{X: 0, Y: 0}, gesture.Point{X: 40, Y: 0}, 6, 0, nil))
	if !done {
		t.Fatal("release frame must report completion even on a miss")
	}
	if res.Category != gesture.None || res.Confidence != 0 {
		t.Fatalf("tiny flick should classify as none, got %s %.3f", res.Category, res.Confidence)
	}
	if s.Missed() != 1 {
		t.Fatalf("expected 1 miss, got %d", s.Missed())
	}
	if score.Combo != 0 {
		t.Fatalf("a miss must break the combo, got %d", score.Combo)
	}
}

func TestSession_TimeoutAbandonsCapture(t *testing.T) {
	s, _, _ := newTestSession()
	th := gesture.DefaultThresholds()
	frames := int(th.GestureTimeout/frameDt) + 10

	// Hold well past the timeout, wiggling enough to look like a gesture.
	for i := 0; i < frames; i++ {
		if _, done := s.Advance(frameDt, true, float64(100+i), 300); done {
			t.Fatal("an abandoned capture must never reach recognition")
		}
	}
	if s.Capturing() {
		t.Fatal("expected capture to be abandoned after the timeout")
	}

	// Release produces nothing either.
	if _, done := s.Advance(frameDt, false, 0, 0); done {
		t.Fatal("releasing an abandoned capture must not recognize")
	}
	if s.Abandoned() != 1 {
		t.Fatalf("expected 1 abandoned capture, got %d", s.Abandoned())
	}

	// The session recovers for the next gesture.
	res, done := drag(s, gesture.SynthLine(gesture.Point{X: 100, Y: 300}, gesture.Point{X: 400, Y: 300}, 20, 0, nil))
	if !done || res.Category != gesture.Horizontal {
		t.Fatalf("session should recover after an abandon, got %s (done=%v)", res.Category, done)
	}
}

func TestSession_TrailSnapshotWhileCapturing(t *testing.T) {
	s, _, _ := newTestSession()
	s.Advance(frameDt, true, 10, 20)
	s.Advance(frameDt, true, 30, 40)
	if !s.Capturing() {
		t.Fatal("expected capturing state")
	}
	pts := s.TrailPoints()
	if len(pts) != 2 || pts[0] != (gesture.Point{X: 10, Y: 20}) {
		t.Fatalf("unexpected trail snapshot: %+v", pts)
	}
}

func TestSession_Report(t *testing.T) {
	s, _, _ := newTestSession()
	drag(s, gesture.SynthLine(gesture.Point{X: 100, Y: 300}, gesture.Point{X: 400, Y: 300}, 20, 0, nil))
	drag(s, gesture.SynthCircle(gesture.Point{X: 640, Y: 360}, 120, 24, 0, nil))
	drag(s, gesture.SynthLine(gesture.Point{X: 0, Y: 0}, gesture.Point{X: 40, Y: 0}, 6, 0, nil)) // miss

	rep := s.Report()
	for _, want := range []string{"horizontal", "circle", "recognized=2", "missed=1"} {
		if !strings.Contains(rep, want) {
			t.Fatalf("report missing %q:\n%s", want, rep)
		}
	}
}
