package game

import (
	"math"
	"time"

	"github.com/kadewils/slashrush/internal/gesture"
)

// comboWindow is how long the combo survives without another recognized slash.
const comboWindow = 2 * time.Second

// ScoreProfile holds the scoring constants for one shape category.
type ScoreProfile struct {
	Base      int     // points for a clean slash of this shape
	ComboStep float64 // fraction of the award added per combo level
}

var scoreProfiles = map[gesture.Category]ScoreProfile{
	gesture.Horizontal: {Base: 100, ComboStep: 0.25},
	gesture.Vertical:   {Base: 100, ComboStep: 0.25},
	gesture.Straight:   {Base: 100, ComboStep: 0.25},
	gesture.SlashDown:  {Base: 150, ComboStep: 0.25},
	gesture.SlashUp:    {Base: 150, ComboStep: 0.25},
	gesture.Zigzag:     {Base: 250, ComboStep: 0.30},
	gesture.Circle:     {Base: 400, ComboStep: 0.30},
}

// Profile returns the scoring constants for a category.
func Profile(c gesture.Category) ScoreProfile {
	return scoreProfiles[c]
}

// ScoreKeeper accumulates the session score and the running combo. It is the
// downstream collaborator of the recognizer: confidence scales the award,
// the difficulty tier multiplies it, and the combo rewards quick chains.
type ScoreKeeper struct {
	Total     int
	Combo     int
	BestCombo int

	comboTTL time.Duration
}

// NewScoreKeeper returns a zeroed keeper.
func NewScoreKeeper() *ScoreKeeper {
	return &ScoreKeeper{}
}

// Advance ages the combo window; an expired window resets the chain.
func (k *ScoreKeeper) Advance(dt time.Duration) {
	if k.Combo == 0 {
		return
	}
	k.comboTTL -= dt
	if k.comboTTL <= 0 {
		k.Combo = 0
	}
}

// Apply scores one recognized gesture and returns the awarded points.
func (k *ScoreKeeper) Apply(res gesture.Result) int {
	p := Profile(res.Category)
	award := int(math.Round(float64(p.Base) * res.Confidence * float64(res.Difficulty)))
	award += int(math.Round(float64(award) * p.ComboStep * float64(k.Combo)))

	k.Combo++
	if k.Combo > k.BestCombo {
		k.BestCombo = k.Combo
	}
	k.comboTTL = comboWindow
	k.Total += award
	return award
}

// Break ends the combo chain without touching the total. Called when a
// completed gesture fails to classify.
func (k *ScoreKeeper) Break() {
	k.Combo = 0
	k.comboTTL = 0
}
