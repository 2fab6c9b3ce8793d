package usecase

import "time"

const (
	// DefaultTimeout bounds one extraction call when none is configured.
	DefaultTimeout = 15 * time.Second

	// DefaultDurationMinutes replaces an absent or non-positive duration.
	DefaultDurationMinutes = 60

	// MaxDurationMinutes is one week; anything longer is not a schedule entry.
	MaxDurationMinutes = 7 * 24 * 60

	// maxLoggedPayload truncates raw payloads written to diagnostics.
	maxLoggedPayload = 2000
)

const (
	fieldTitle           = "title"
	fieldDate            = "date"
	fieldStartTime       = "startTime"
	fieldDurationMinutes = "durationMinutes"
	fieldTag             = "tag"
)
