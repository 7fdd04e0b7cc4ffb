package tracker

import "errors"

var (
	// ErrEmptyName is returned when a problem name is empty after trimming.
	ErrEmptyName = errors.New("problem name cannot be empty")

	// ErrInvalidDifficulty is returned when a difficulty is not one of
	// easy, medium, hard.
	ErrInvalidDifficulty = errors.New("invalid difficulty")
)
