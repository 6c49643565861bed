package game

import (
	"time"

	"github.com/kadewils/slashrush/internal/gesture"
)

// captureState is the gesture lifecycle: Idle -> Capturing -> (release)
// -> recognize -> Idle. A hold that outlives the gesture timeout moves to
// abandoned and stays there until the button comes back up, so a stale
// trail can never reach the recognizer.
type captureState int

const (
	stateIdle captureState = iota
	stateCapturing
	stateAbandoned
)

// Session drives capture -> recognize -> score for one player. It has no
// rendering dependency and is what the headless tests exercise; the ebiten
// layer only feeds it cursor samples.
type Session struct {
	rec   *gesture.Recognizer
	th    gesture.Thresholds
	trail *gesture.Trail
	score *ScoreKeeper
	feed  *Feed

	state   captureState
	clock   time.Duration // session time, advanced by the caller
	started time.Duration // clock value when the current capture began

	// Aggregate session counters for the report. Raw trails are not kept.
	recognized map[gesture.Category]int
	confSum    map[gesture.Category]float64
	missed     int // completed gestures that classified as None
	abandoned  int // captures dropped by the timeout
}

// NewSession wires a session around a validated threshold record.
func NewSession(th gesture.Thresholds, rec *gesture.Recognizer, score *ScoreKeeper, feed *Feed) *Session {
	return &Session{
		rec:        rec,
		th:         th,
		trail:      gesture.NewTrail(th.MaxTrailPoints),
		score:      score,
		feed:       feed,
		recognized: make(map[gesture.Category]int),
		confSum:    make(map[gesture.Category]float64),
	}
}

// Advance feeds one input frame: dt since the last frame, whether the slash
// button is held, and the cursor position. It returns the classification
// result and true exactly once per completed gesture.
func (s *Session) Advance(dt time.Duration, pressed bool, x, y float64) (gesture.Result, bool) {
	s.clock += dt
	s.score.Advance(dt)

	switch s.state {
	case stateIdle:
		if pressed {
			s.state = stateCapturing
			s.started = s.clock
			s.trail.Reset()
			s.trail.Add(gesture.Point{X: x, Y: y}, 0)
		}
	case stateCapturing:
		if !pressed {
			s.state = stateIdle
			return s.finish(), true
		}
		if s.clock-s.started > s.th.GestureTimeout {
			// Overlong hold: abandon without recognizing.
			s.state = stateAbandoned
			s.trail.Reset()
			s.abandoned++
			return gesture.Result{}, false
		}
		s.trail.Add(gesture.Point{X: x, Y: y}, s.clock-s.started)
	case stateAbandoned:
		if !pressed {
			s.state = stateIdle
		}
	}
	return gesture.Result{}, false
}

// finish runs recognition over the completed trail and folds the result into
// scoring and the on-screen feed.
func (s *Session) finish() gesture.Result {
	res := s.rec.Recognize(s.trail.Points())
	s.trail.Reset()

	if res.Category == gesture.None {
		s.missed++
		s.score.Break()
		return res
	}

	s.recognized[res.Category]++
	s.confSum[res.Category] += res.Confidence
	award := s.score.Apply(res)
	if s.feed != nil {
		s.feed.Add(s.clock, res.Category, res.Confidence, award)
	}
	return res
}

// Capturing reports whether a gesture is in flight.
func (s *Session) Capturing() bool {
	return s.state == stateCapturing
}

// TrailPoints returns a snapshot of the in-flight trail for rendering.
func (s *Session) TrailPoints() []gesture.Point {
	return s.trail.Points()
}

// Clock returns the session time.
func (s *Session) Clock() time.Duration {
	return s.clock
}

// Recognized returns how many gestures classified as c this session.
func (s *Session) Recognized(c gesture.Category) int {
	return s.recognized[c]
}

// Missed returns how many completed gestures classified as None.
func (s *Session) Missed() int {
	return s.missed
}

// Abandoned returns how many captures the timeout dropped.
func (s *Session) Abandoned() int {
	return s.abandoned
}
