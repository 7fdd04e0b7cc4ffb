package tracker

import (
	"fmt"
	"strings"
)

// ValidateName checks that a problem name is non-empty after trimming.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

// ValidateCollection checks the whole-collection invariants: every record
// non-empty, one record per day, unique problem IDs, valid difficulties,
// non-empty names, normalized tags.
func ValidateCollection(c Collection) error {
	days := make(map[string]struct{}, len(c))
	ids := make(map[string]struct{})

	for _, record := range c {
		if len(record.Problems) == 0 {
			return fmt.Errorf("record %s has no problems", DayKey(record.Date))
		}

		day := DayKey(record.Date)
		if _, ok := days[day]; ok {
			return fmt.Errorf("duplicate record for day %s", day)
		}
		days[day] = struct{}{}

		for _, problem := range record.Problems {
			if _, ok := ids[problem.ID]; ok {
				return fmt.Errorf("duplicate problem ID %s", problem.ID)
			}
			ids[problem.ID] = struct{}{}

			if err := ValidateName(problem.Name); err != nil {
				return fmt.Errorf("problem %s: %w", problem.ID, err)
			}
			if !problem.Difficulty.IsValid() {
				return fmt.Errorf("problem %s: %w: %q", problem.ID, ErrInvalidDifficulty, problem.Difficulty)
			}
			if err := validateTags(problem.Tags); err != nil {
				return fmt.Errorf("problem %s: %w", problem.ID, err)
			}
		}
	}

	return nil
}

func validateTags(tags []string) error {
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("empty tag")
		}
		if tag != strings.TrimSpace(tag) {
			return fmt.Errorf("untrimmed tag %q", tag)
		}
		if _, ok := seen[tag]; ok {
			return fmt.Errorf("duplicate tag %q", tag)
		}
		seen[tag] = struct{}{}
	}
	return nil
}
