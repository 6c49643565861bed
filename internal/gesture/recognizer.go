package gesture

// Classifier is one shape-family detector. Implementations are pure: two
// calls with the same points and thresholds observe no shared state.
type Classifier interface {
	Name() string
	Classify(pts []Point) Result
}

// Recognizer runs an ordered list of classifiers over a completed trail and
// keeps the winner.
type Recognizer struct {
	th          Thresholds
	classifiers []Classifier
}

// Option configures a Recognizer during construction.
type Option func(*Recognizer)

// WithThresholds replaces the default tuning. The caller is expected to have
// validated the record already.
func WithThresholds(th Thresholds) Option {
	return func(r *Recognizer) {
		r.th = th
		r.classifiers = nil // rebuild against the new tuning unless overridden
	}
}

// WithClassifiers replaces the default classifier list. Order matters: ties
// go to the earliest entry.
func WithClassifiers(cs ...Classifier) Option {
	return func(r *Recognizer) {
		r.classifiers = cs
	}
}

// New builds a recognizer with the default thresholds and classifier order
// unless options say otherwise.
func New(opts ...Option) *Recognizer {
	r := &Recognizer{th: DefaultThresholds()}
	for _, opt := range opts {
		opt(r)
	}
	if r.classifiers == nil {
		r.classifiers = DefaultClassifiers(r.th)
	}
	return r
}

// DefaultClassifiers returns the shipped classifier set. Specific families
// come before the free-angle straight fallback so that an equal-confidence
// tie resolves to the more specific category; this ordering is part of the
// recognizer's contract.
func DefaultClassifiers(th Thresholds) []Classifier {
	return []Classifier{
		circleClassifier{th: th},
		lineClassifier{th: th, orient: OrientHorizontal, name: "horizontal"},
		lineClassifier{th: th, orient: OrientVertical, name: "vertical"},
		lineClassifier{th: th, orient: OrientDiagDown, name: "slash_down"},
		lineClassifier{th: th, orient: OrientDiagUp, name: "slash_up"},
		zigzagClassifier{th: th},
		lineClassifier{th: th, orient: OrientAny, name: "straight"},
	}
}

// Thresholds returns the tuning the recognizer was built with.
func (r *Recognizer) Thresholds() Thresholds {
	return r.th
}

// Recognize classifies one completed trail. Trails below the minimum point
// count yield {None, 0}, as does a trail no classifier accepts. The winner is
// the strictly highest confidence; on an exact tie the earlier-registered
// classifier keeps the result.
func (r *Recognizer) Recognize(pts []Point) Result {
	if len(pts) < r.th.MinPoints {
		return Result{}
	}
	var best Result
	for _, c := range r.classifiers {
		if res := c.Classify(pts); res.Confidence > best.Confidence {
			best = res
		}
	}
	if best.Confidence == 0 {
		return Result{}
	}
	return best
}
