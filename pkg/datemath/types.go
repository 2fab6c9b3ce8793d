package datemath

import "errors"

const (
	// DateLayout is the calendar date format used on every schedule record.
	DateLayout = "2006-01-02"

	// ClockLayout is the zero-padded 24-hour wall clock format.
	ClockLayout = "15:04"
)

var (
	ErrInvalidDate       = errors.New("invalid calendar date")
	ErrInvalidClock      = errors.New("invalid 24-hour time")
	ErrUnknownExpression = errors.New("unknown relative date expression")
)
