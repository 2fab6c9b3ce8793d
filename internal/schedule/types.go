package schedule

import (
	"time"

	"focus-dashboard/internal/model"
)

// ExtractInput is one free-text utterance plus the moment it is relative to.
type ExtractInput struct {
	Text         string
	ReferenceNow time.Time
}

// ExtractOutput carries a validated extraction, ready to be confirmed.
type ExtractOutput struct {
	Extraction model.Extraction
}

// CreateInput is a direct user entry.
type CreateInput struct {
	Title           string `json:"title"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Tag             string `json:"tag"`
	Description     string `json:"description"`
}

// ListInput filters the collection. Empty fields do not filter; From and To are inclusive.
type ListInput struct {
	Date string
	From string
	To   string
}

// ListOutput is the collection ordered by start time.
type ListOutput struct {
	Schedules []model.Schedule
	Total     int
}
