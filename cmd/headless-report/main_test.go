package main

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/kadewils/slashrush/internal/gesture"
)

func TestShapeGenerators_CleanTrailsRecognizeAsExpected(t *testing.T) {
	rec := gesture.New()
	rng := rand.New(rand.NewSource(7))
	for _, g := range shapeGenerators() {
		for i := 0; i < 20; i++ {
			pts := g.gen(rng, 0)
			res := rec.Recognize(pts)
			if res.Category != g.want {
				t.Fatalf("%s trial %d: expected %s, got %s (conf=%.3f)",
					g.name, i, g.want, res.Category, res.Confidence)
			}
		}
	}
}

func TestShapeStats_RecordAndAccuracy(t *testing.T) {
	s := newShapeStats()
	s.record(gesture.Circle, gesture.Result{Category: gesture.Circle, Confidence: 0.9})
	s.record(gesture.Circle, gesture.Result{Category: gesture.Circle, Confidence: 0.7})
	s.record(gesture.Circle, gesture.Result{Category: gesture.None})

	if s.attempts != 3 || s.correct != 2 {
		t.Fatalf("expected 3 attempts / 2 correct, got %d/%d", s.attempts, s.correct)
	}
	if acc := s.accuracy(); math.Abs(acc-2.0/3.0) > 1e-9 {
		t.Fatalf("expected accuracy 0.667, got %.4f", acc)
	}
	if s.confusion[gesture.None] != 1 {
		t.Fatalf("expected 1 miss in the confusion row, got %d", s.confusion[gesture.None])
	}
}

func TestShapeStats_EmptyAccuracy(t *testing.T) {
	if acc := newShapeStats().accuracy(); acc != 0 {
		t.Fatalf("empty stats should report 0, got %.4f", acc)
	}
}

func TestSummarize(t *testing.T) {
	mean, std := summarize(nil)
	if mean != 0 || std != 0 {
		t.Fatalf("empty summary should be zeros, got %.3f/%.3f", mean, std)
	}

	mean, std = summarize([]float64{0.8})
	if mean != 0.8 || std != 0 {
		t.Fatalf("single sample should be (0.8, 0), got %.3f/%.3f", mean, std)
	}

	mean, std = summarize([]float64{0.6, 0.8, 1.0})
	if math.Abs(mean-0.8) > 1e-9 {
		t.Fatalf("expected mean 0.8, got %.4f", mean)
	}
	if math.Abs(std-0.2) > 1e-9 {
		t.Fatalf("expected sample stddev 0.2, got %.4f", std)
	}
}

func TestConfusionLine_StableOrder(t *testing.T) {
	line := confusionLine(map[gesture.Category]int{
		gesture.Zigzag: 2,
		gesture.None:   1,
		gesture.Circle: 9,
	})
	if line != "none:1 circle:9 zigzag:2" {
		t.Fatalf("unexpected confusion line: %q", line)
	}
	if !strings.Contains(confusionLine(nil), "none") {
		t.Fatalf("empty row should render a placeholder, got %q", confusionLine(nil))
	}
}
