// Package tracker implements the problem-tracking core: daily records of
// practice problems, pure operations over the collection, derived views,
// and blob-backed persistence.
//
// The public API mirrors the CLI commands:
//   - Store.Add, Store.Edit, Store.Delete for problem lifecycle
//   - Collection views for querying (sorting, filtering, counting)
//
// All operations on Collection are copy-on-write: they return a new
// collection and never mutate the receiver, so callers can hold snapshots.
package tracker

import "time"

// Problem represents a single practice problem solved on some day.
type Problem struct {
	// ID is a unique identifier, stable for the problem's lifetime.
	ID string `json:"id"`

	// Name is the user-visible title.
	Name string `json:"name"`

	// Difficulty classifies the problem (easy, medium, hard).
	Difficulty Difficulty `json:"difficulty"`

	// Tags is the problem's topical label set. Insertion order is
	// preserved; nil and empty are equivalent.
	Tags []string `json:"tags,omitempty"`

	// CreatedAt is when the problem was recorded. Never mutated.
	CreatedAt time.Time `json:"createdAt"`
}

// DailyRecord pairs a calendar day with the problems recorded on it.
// A record always holds at least one problem.
type DailyRecord struct {
	Date     time.Time `json:"date"`
	Problems []Problem `json:"problems"`
}

// Collection is the complete set of daily records. It is the unit of
// serialization; at most one record exists per calendar day.
type Collection []DailyRecord

// SameDay reports whether two timestamps fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DayKey formats a timestamp as its local calendar day.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// FindProblem returns the problem with the given ID along with its
// record's date.
func (c Collection) FindProblem(problemID string) (Problem, time.Time, bool) {
	for _, record := range c {
		for _, problem := range record.Problems {
			if problem.ID == problemID {
				return problem, record.Date, true
			}
		}
	}
	return Problem{}, time.Time{}, false
}

// Clone returns a deep copy of the collection.
func (c Collection) Clone() Collection {
	if c == nil {
		return nil
	}
	out := make(Collection, len(c))
	for i, record := range c {
		out[i] = DailyRecord{
			Date:     record.Date,
			Problems: cloneProblems(record.Problems),
		}
	}
	return out
}

func cloneProblems(problems []Problem) []Problem {
	out := make([]Problem, len(problems))
	for i, problem := range problems {
		out[i] = problem
		if problem.Tags != nil {
			out[i].Tags = append([]string(nil), problem.Tags...)
		}
	}
	return out
}
