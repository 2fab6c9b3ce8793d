package datemath

import (
	"fmt"
	"strings"
	"time"
)

// ParseDate parses a strict YYYY-MM-DD string. Impossible dates such as 2024-02-30 are rejected.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// ParseClock parses a zero-padded HH:mm string in the 00:00..23:59 range and returns
// the minutes since midnight.
func ParseClock(s string) (int, error) {
	s = strings.TrimSpace(s)
	// time.Parse accepts a single-digit hour for "15", so the width is checked first.
	if len(s) != len(ClockLayout) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatDate formats t as YYYY-MM-DD in t's location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatClock formats t as zero-padded HH:mm in t's location.
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Monday that starts the week containing t.
func StartOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	return StartOfDay(t).AddDate(0, 0, -(weekday - 1))
}

// WeekDays returns the seven dates, Monday first, of the week containing t.
func WeekDays(t time.Time) []time.Time {
	start := StartOfWeek(t)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}
