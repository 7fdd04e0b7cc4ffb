package checklist

import "errors"

var (
	ErrEmptyTitle    = errors.New("checklist title must not be empty")
	ErrNegativeCount = errors.New("item counts must not be negative")
	ErrNoItems       = errors.New("checklist must contain at least one item")
	ErrNotFound      = errors.New("checklist not found")
)
