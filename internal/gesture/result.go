package gesture

// Category is the closed set of shapes a slash trail can classify as.
type Category int

const (
	None Category = iota
	Circle
	Straight
	Horizontal
	Vertical
	SlashDown
	SlashUp
	Zigzag
)

func (c Category) String() string {
	switch c {
	case None:
		return "none"
	case Circle:
		return "circle"
	case Straight:
		return "straight"
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case SlashDown:
		return "slash_down"
	case SlashUp:
		return "slash_up"
	case Zigzag:
		return "zigzag"
	default:
		return "unknown"
	}
}

// Difficulty tiers used by the scoring collaborator to scale bonus reward.
const (
	DifficultyNone   = 0
	DifficultyEasy   = 1 // axis-aligned strokes
	DifficultyMedium = 2 // diagonals, zigzags
	DifficultyHard   = 3 // circles
)

// Difficulty returns the scoring tier for the category.
func (c Category) Difficulty() int {
	switch c {
	case Circle:
		return DifficultyHard
	case SlashDown, SlashUp, Zigzag:
		return DifficultyMedium
	case Straight, Horizontal, Vertical:
		return DifficultyEasy
	default:
		return DifficultyNone
	}
}

// Result is the outcome of classifying one completed trail. It is produced
// once per gesture and never mutated afterwards. Confidence 0 always pairs
// with category None.
type Result struct {
	Category   Category
	Confidence float64 // 0..1
	Difficulty int
	Points     []Point // the points the classifier scored

	// Circle only.
	Center Point
	Radius float64

	// Zigzag only.
	DirectionChanges int

	// Line family only: worst perpendicular deviation from the chord.
	Deviation float64
}
