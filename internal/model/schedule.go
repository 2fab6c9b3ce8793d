package model

// Schedule is one entry on the dashboard timeline.
type Schedule struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Date            string `json:"date"`       // YYYY-MM-DD
	StartTime       string `json:"start_time"` // HH:mm, zero padded
	DurationMinutes int    `json:"duration_minutes"`
	Tag             Tag    `json:"tag"`
	Description     string `json:"description,omitempty"`
	Completed       bool   `json:"completed"`
}

// Extraction is a validated schedule entry produced from free text, before commit.
type Extraction struct {
	Title           string `json:"title"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Tag             Tag    `json:"tag"`
}

// ToSchedule copies the extracted fields into a new, not yet completed Schedule.
func (e Extraction) ToSchedule(id string) Schedule {
	return Schedule{
		ID:              id,
		Title:           e.Title,
		Date:            e.Date,
		StartTime:       e.StartTime,
		DurationMinutes: e.DurationMinutes,
		Tag:             e.Tag,
		Completed:       false,
	}
}
