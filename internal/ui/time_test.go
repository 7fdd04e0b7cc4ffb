package ui

import (
	"testing"
	"time"
)

func TestFormatRelativeDay(t *testing.T) {
	now := time.Date(2025, 3, 15, 14, 30, 0, 0, time.Local)

	cases := []struct {
		date time.Time
		want string
	}{
		{time.Date(2025, 3, 15, 9, 0, 0, 0, time.Local), "today"},
		{time.Date(2025, 3, 14, 23, 59, 0, 0, time.Local), "yesterday"},
		{time.Date(2025, 3, 1, 12, 0, 0, 0, time.Local), "Mar 1, 2025"},
		{time.Date(2024, 12, 25, 0, 0, 0, 0, time.Local), "Dec 25, 2024"},
	}
	for _, tc := range cases {
		if got := FormatRelativeDay(tc.date, now); got != tc.want {
			t.Errorf("FormatRelativeDay(%s) = %q, want %q", tc.date, got, tc.want)
		}
	}
}

func TestFormatRelativeDayAcrossClockChanges(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// The preceding day has 25 hours after the fall change and 23 hours
	// after the spring one; both are still "yesterday".
	cases := []struct {
		now, date time.Time
	}{
		{
			time.Date(2024, 11, 4, 9, 0, 0, 0, loc),
			time.Date(2024, 11, 3, 12, 0, 0, 0, loc),
		},
		{
			time.Date(2024, 3, 11, 9, 0, 0, 0, loc),
			time.Date(2024, 3, 10, 12, 0, 0, 0, loc),
		},
	}
	for _, tc := range cases {
		if got := FormatRelativeDay(tc.date, tc.now); got != "yesterday" {
			t.Errorf("FormatRelativeDay(%s at %s) = %q, want %q", tc.date, tc.now, got, "yesterday")
		}
	}
}
