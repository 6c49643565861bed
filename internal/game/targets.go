package game

import (
	"math/rand"

	"github.com/kadewils/slashrush/internal/gesture"
)

const (
	targetMinRadius = 14.0
	targetMaxRadius = 26.0
	targetMinSpeed  = 40.0 // px per second
	targetMaxSpeed  = 120.0
	spawnInterval   = 0.8 // seconds between spawns
	maxTargets      = 12
	// slashPadding widens the hit test beyond the target radius so a near
	// miss with a fast stroke still feels fair.
	slashPadding = 6.0
)

// Target is one drifting slash target.
type Target struct {
	X, Y   float64
	R      float64
	VX, VY float64
	Alive  bool
}

// TargetField owns the drifting targets for one session.
type TargetField struct {
	w, h       float64
	rng        *rand.Rand
	targets    []*Target
	spawnAccum float64
	Popped     int
}

// NewTargetField creates a field over a w x h playfield with a seeded RNG
// for deterministic headless runs.
func NewTargetField(w, h float64, seed int64) *TargetField {
	return &TargetField{
		w:   w,
		h:   h,
		rng: rand.New(rand.NewSource(seed)), // #nosec G404 -- gameplay randomness
	}
}

// Advance moves targets by dt seconds, despawns anything that drifted out,
// and spawns replacements on the spawn interval.
func (f *TargetField) Advance(dt float64) {
	live := f.targets[:0]
	for _, t := range f.targets {
		if !t.Alive {
			continue
		}
		t.X += t.VX * dt
		t.Y += t.VY * dt
		if t.X < -t.R || t.X > f.w+t.R || t.Y < -t.R || t.Y > f.h+t.R {
			continue
		}
		live = append(live, t)
	}
	f.targets = live

	f.spawnAccum += dt
	for f.spawnAccum >= spawnInterval {
		f.spawnAccum -= spawnInterval
		if len(f.targets) < maxTargets {
			f.spawn()
		}
	}
}

// spawn places a target on a random edge drifting inward.
func (f *TargetField) spawn() {
	r := targetMinRadius + f.rng.Float64()*(targetMaxRadius-targetMinRadius)
	speed := targetMinSpeed + f.rng.Float64()*(targetMaxSpeed-targetMinSpeed)

	t := &Target{R: r, Alive: true}
	switch f.rng.Intn(4) {
	case 0: // left edge, drifting right
		t.X, t.Y = -r, f.rng.Float64()*f.h
		t.VX = speed
	case 1: // right edge, drifting left
		t.X, t.Y = f.w+r, f.rng.Float64()*f.h
		t.VX = -speed
	case 2: // top edge, drifting down
		t.X, t.Y = f.rng.Float64()*f.w, -r
		t.VY = speed
	default: // bottom edge, drifting up
		t.X, t.Y = f.rng.Float64()*f.w, f.h+r
		t.VY = -speed
	}
	f.targets = append(f.targets, t)
}

// SlashHits pops every live target the trail passes through and returns how
// many were hit.
func (f *TargetField) SlashHits(trail []gesture.Point) int {
	if len(trail) < 2 {
		return 0
	}
	hits := 0
	for _, t := range f.targets {
		if !t.Alive {
			continue
		}
		center := gesture.Point{X: t.X, Y: t.Y}
		for i := 1; i < len(trail); i++ {
			if gesture.SegDist(center, trail[i-1], trail[i]) <= t.R+slashPadding {
				t.Alive = false
				hits++
				break
			}
		}
	}
	if hits > 0 {
		f.Popped += hits
	}
	return hits
}

// Targets returns the live targets for rendering.
func (f *TargetField) Targets() []*Target {
	return f.targets
}
