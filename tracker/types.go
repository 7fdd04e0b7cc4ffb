package tracker

import "strings"

// Difficulty represents the difficulty level of a problem.
type Difficulty string

const (
	// DifficultyEasy is the lowest difficulty level.
	DifficultyEasy Difficulty = "easy"

	// DifficultyMedium is the middle difficulty level.
	DifficultyMedium Difficulty = "medium"

	// DifficultyHard is the highest difficulty level.
	DifficultyHard Difficulty = "hard"
)

// ValidDifficulties returns all difficulty values in ascending order.
func ValidDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// IsValid returns true if the difficulty is a known valid value.
func (d Difficulty) IsValid() bool {
	for _, valid := range ValidDifficulties() {
		if d == valid {
			return true
		}
	}
	return false
}

// Rank returns the sort ordinal for a difficulty (easy 0, medium 1, hard 2).
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyEasy:
		return 0
	case DifficultyMedium:
		return 1
	case DifficultyHard:
		return 2
	default:
		return 3
	}
}

// ParseDifficulty parses a user-supplied difficulty string.
func ParseDifficulty(value string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(value)))
	if !d.IsValid() {
		return "", ErrInvalidDifficulty
	}
	return d, nil
}

// TagPalette returns the predefined topical tag names offered by the tag
// selector. Tags are otherwise open: any trimmed non-empty string works.
func TagPalette() []string {
	return []string{
		"Array", "Backtracking", "Binary Search", "Bit Manipulation",
		"Divide and Conquer", "Dynamic Programming", "Graph", "Greedy",
		"Hash Table", "Linked List", "Math", "Priority Queue",
		"Recursion", "Sorting", "Stack & Queue", "String",
		"Tree", "Two Pointers",
	}
}
