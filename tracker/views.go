package tracker

import (
	"sort"
	"time"
)

// SortedByDateDescending returns the records ordered newest-first.
func (c Collection) SortedByDateDescending() Collection {
	out := c.Clone()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// SortProblemsByDifficulty returns the problems ordered easy, medium, hard.
// The sort is stable: within a difficulty, insertion order is preserved.
func SortProblemsByDifficulty(problems []Problem) []Problem {
	out := cloneProblems(problems)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Difficulty.Rank() < out[j].Difficulty.Rank()
	})
	return out
}

// ProblemsForDate returns the problems of the record matching the date at
// day precision, or an empty sequence when no record exists.
func (c Collection) ProblemsForDate(date time.Time) []Problem {
	for _, record := range c {
		if SameDay(record.Date, date) {
			return cloneProblems(record.Problems)
		}
	}
	return nil
}

// FilterByDate narrows the collection to records matching the date at day
// precision. A nil date is the identity filter.
func (c Collection) FilterByDate(date *time.Time) Collection {
	if date == nil {
		return c
	}
	var out Collection
	for _, record := range c {
		if SameDay(record.Date, *date) {
			out = append(out, record)
		}
	}
	return out
}

// Counts is a histogram of problems by difficulty. Every variant is
// present, zero when unused.
type Counts struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// Add returns the element-wise sum of two histograms.
func (counts Counts) Add(other Counts) Counts {
	return Counts{
		Easy:   counts.Easy + other.Easy,
		Medium: counts.Medium + other.Medium,
		Hard:   counts.Hard + other.Hard,
	}
}

// Total returns the number of problems across all difficulties.
func (counts Counts) Total() int {
	return counts.Easy + counts.Medium + counts.Hard
}

// CountsByDifficulty builds a difficulty histogram for a problem sequence.
func CountsByDifficulty(problems []Problem) Counts {
	var counts Counts
	for _, problem := range problems {
		switch problem.Difficulty {
		case DifficultyEasy:
			counts.Easy++
		case DifficultyMedium:
			counts.Medium++
		case DifficultyHard:
			counts.Hard++
		}
	}
	return counts
}

// Totals aggregates counts over every problem in the collection.
type Totals struct {
	Problems int    `json:"problems"`
	Counts   Counts `json:"counts"`
}

// Totals returns the aggregate totals for the collection. It equals the
// sum of the per-record counts.
func (c Collection) Totals() Totals {
	var totals Totals
	for _, record := range c {
		counts := CountsByDifficulty(record.Problems)
		totals.Counts = totals.Counts.Add(counts)
		totals.Problems += len(record.Problems)
	}
	return totals
}
