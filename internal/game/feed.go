package game

import (
	"fmt"
	"time"

	"github.com/kadewils/slashrush/internal/gesture"
)

// feedMaxEntries bounds the on-screen gesture feed.
const feedMaxEntries = 8

// FeedEntry is one recognized gesture shown in the HUD feed.
type FeedEntry struct {
	At         time.Duration
	Category   gesture.Category
	Confidence float64
	Award      int
}

func (e FeedEntry) String() string {
	return fmt.Sprintf("%5.1fs  %-11s %3.0f%%  +%d",
		e.At.Seconds(), e.Category, e.Confidence*100, e.Award)
}

// Feed is a fixed-capacity ring buffer of recently recognized gestures.
type Feed struct {
	entries []FeedEntry
	head    int
	count   int
}

// NewFeed creates an empty feed.
func NewFeed() *Feed {
	return &Feed{entries: make([]FeedEntry, feedMaxEntries)}
}

// Add appends an entry, evicting the oldest once the buffer is full.
func (f *Feed) Add(at time.Duration, c gesture.Category, confidence float64, award int) {
	f.entries[f.head] = FeedEntry{At: at, Category: c, Confidence: confidence, Award: award}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Recent returns the buffered entries, newest first.
func (f *Feed) Recent() []FeedEntry {
	out := make([]FeedEntry, 0, f.count)
	for i := 1; i <= f.count; i++ {
		idx := (f.head - i + feedMaxEntries) % feedMaxEntries
		out = append(out, f.entries[idx])
	}
	return out
}

// Len returns the number of buffered entries.
func (f *Feed) Len() int {
	return f.count
}
