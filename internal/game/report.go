package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/kadewils/slashrush/internal/gesture"
)

// reportCategories fixes the category order in the session report.
var reportCategories = []gesture.Category{
	gesture.Circle,
	gesture.Horizontal,
	gesture.Vertical,
	gesture.SlashDown,
	gesture.SlashUp,
	gesture.Zigzag,
	gesture.Straight,
}

// Report renders the session counters as plain text, suitable for the HUD
// overlay or the clipboard.
func (s *Session) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- SlashRush session report ---\n")
	fmt.Fprintf(&b, "elapsed=%.1fs score=%d best_combo=%d\n",
		s.clock.Seconds(), s.score.Total, s.score.BestCombo)

	total := 0
	for _, c := range reportCategories {
		n := s.recognized[c]
		if n == 0 {
			continue
		}
		total += n
		fmt.Fprintf(&b, "%-11s n=%-3d avg_conf=%.2f\n", c, n, s.confSum[c]/float64(n))
	}
	fmt.Fprintf(&b, "recognized=%d missed=%d abandoned=%d\n", total, s.missed, s.abandoned)
	return b.String()
}

// CopyReport places the session report on the system clipboard.
func (s *Session) CopyReport() error {
	if err := clipboard.WriteAll(s.Report()); err != nil {
		return fmt.Errorf("copy session report: %w", err)
	}
	return nil
}
