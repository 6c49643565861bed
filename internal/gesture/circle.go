package gesture

import "gonum.org/v1/gonum/stat"

// DetectCircle classifies pts as a closed loop. The trail must roughly close
// (first-to-last distance under the closure threshold), be big enough to be
// deliberate, and keep its per-point radii tight around the mean. Confidence
// blends closure quality with radius dispersion; a mean radius exactly at
// CircleMinRadius is accepted.
func DetectCircle(pts []Point, th Thresholds) Result {
	if len(pts) < th.CircleMinPoints {
		return Result{}
	}

	closure := Dist(pts[0], pts[len(pts)-1])
	if closure > th.CircleMaxClosure {
		return Result{}
	}

	center := Centroid(pts)
	radii := make([]float64, len(pts))
	for i, p := range pts {
		radii[i] = Dist(p, center)
	}
	mean, std := stat.MeanStdDev(radii, nil)
	if mean < th.CircleMinRadius {
		return Result{}
	}

	cv := std / mean
	if cv > th.CircleMaxRadiusCV {
		return Result{}
	}

	conf := clamp01(0.5*(1-closure/th.CircleMaxClosure) + 0.5*(1-cv/th.CircleMaxRadiusCV))
	if conf == 0 {
		return Result{}
	}
	return Result{
		Category:   Circle,
		Confidence: conf,
		Difficulty: Circle.Difficulty(),
		Points:     pts,
		Center:     center,
		Radius:     mean,
	}
}

// circleClassifier adapts DetectCircle to the Classifier interface.
type circleClassifier struct {
	th Thresholds
}

func (c circleClassifier) Name() string { return "circle" }

func (c circleClassifier) Classify(pts []Point) Result { return DetectCircle(pts, c.th) }
