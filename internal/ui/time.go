package ui

import "time"

// FormatDay renders a date as a human-readable day, like "Mar 14, 2025".
func FormatDay(date time.Time) string {
	return date.Format("Jan 2, 2006")
}

// FormatRelativeDay renders a date relative to now when it is close:
// "today", "yesterday", or the formatted day otherwise.
func FormatRelativeDay(date, now time.Time) string {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	switch {
	case day.Equal(today):
		return "today"
	case day.Equal(today.AddDate(0, 0, -1)):
		return "yesterday"
	default:
		return FormatDay(date)
	}
}
