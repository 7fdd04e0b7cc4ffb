package checklist

import (
	"math"

	"github.com/calev/grind/tracker"
)

// Progress summarizes completion across a set of items.
type Progress struct {
	Total     int
	Completed int
}

// Percent reports completion as a whole-number percentage, rounding to
// the nearest integer. An empty set is 0.
func (p Progress) Percent() int {
	if p.Total == 0 {
		return 0
	}
	return int(math.Round(float64(p.Completed) / float64(p.Total) * 100))
}

// Progress reports completion across all items.
func (c Checklist) Progress() Progress {
	var p Progress
	for _, item := range c.Items {
		p.Total++
		if item.Completed {
			p.Completed++
		}
	}
	return p
}

// ProgressByDifficulty reports per-bucket completion.
func (c Checklist) ProgressByDifficulty() map[tracker.Difficulty]Progress {
	out := make(map[tracker.Difficulty]Progress, len(tracker.ValidDifficulties()))
	for _, difficulty := range tracker.ValidDifficulties() {
		out[difficulty] = Progress{}
	}
	for _, item := range c.Items {
		p := out[item.Difficulty]
		p.Total++
		if item.Completed {
			p.Completed++
		}
		out[item.Difficulty] = p
	}
	return out
}
