package tracker

import (
	"strings"
	"time"
)

// Add records a new problem for the given date. If a record already exists
// for that calendar day the problem is appended to it; otherwise a new
// record is created. Returns the next collection and the created problem.
func (c Collection) Add(date time.Time, name string, difficulty Difficulty, tags []string) (Collection, Problem, error) {
	name = strings.TrimSpace(name)
	if err := ValidateName(name); err != nil {
		return c, Problem{}, err
	}
	if !difficulty.IsValid() {
		return c, Problem{}, ErrInvalidDifficulty
	}

	now := time.Now()
	problem := Problem{
		ID:         newProblemID(c, name, now),
		Name:       name,
		Difficulty: difficulty,
		Tags:       NormalizeTags(tags),
		CreatedAt:  now,
	}

	next := c.Clone()
	for i := range next {
		if SameDay(next[i].Date, date) {
			next[i].Problems = append(next[i].Problems, problem)
			return next, problem, nil
		}
	}

	next = append(next, DailyRecord{
		Date:     date,
		Problems: []Problem{problem},
	})
	return next, problem, nil
}

// Edit replaces the name, difficulty, and tags of the problem with the
// given ID. The problem's ID, creation time, and enclosing record are
// unchanged. Editing an unknown ID is a no-op; the second return reports
// whether a problem was edited.
func (c Collection) Edit(problemID, name string, difficulty Difficulty, tags []string) (Collection, bool, error) {
	name = strings.TrimSpace(name)
	if err := ValidateName(name); err != nil {
		return c, false, err
	}
	if !difficulty.IsValid() {
		return c, false, ErrInvalidDifficulty
	}

	next := c.Clone()
	for i := range next {
		for j := range next[i].Problems {
			if next[i].Problems[j].ID != problemID {
				continue
			}
			next[i].Problems[j].Name = name
			next[i].Problems[j].Difficulty = difficulty
			next[i].Problems[j].Tags = NormalizeTags(tags)
			return next, true, nil
		}
	}

	return c, false, nil
}

// Delete removes the problem with the given ID. A record left with no
// problems is removed from the collection. Deleting an unknown ID is a
// no-op; the second return reports whether a problem was deleted.
func (c Collection) Delete(problemID string) (Collection, bool) {
	next := make(Collection, 0, len(c))
	deleted := false

	for _, record := range c {
		problems := make([]Problem, 0, len(record.Problems))
		for _, problem := range record.Problems {
			if problem.ID == problemID {
				deleted = true
				continue
			}
			problems = append(problems, problem)
		}
		if len(problems) == 0 {
			continue
		}
		next = append(next, DailyRecord{Date: record.Date, Problems: problems})
	}

	if !deleted {
		return c, false
	}
	return next, true
}
