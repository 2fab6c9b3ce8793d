package stats

import "focus-dashboard/internal/model"

// WeeklyInput selects the Monday-Sunday week containing ReferenceDate.
// An empty ReferenceDate means today in the dashboard timezone.
type WeeklyInput struct {
	ReferenceDate string
}

// DayStat is one weekday of the summary.
type DayStat struct {
	Date      string
	Weekday   string // Mon..Sun
	Total     int
	Completed int
}

// WeeklyOutput summarises one week of schedules.
type WeeklyOutput struct {
	WeekStart      string
	WeekEnd        string
	Total          int
	Completed      int
	CompletionRate int // rounded percent, 0 for an empty week
	TotalMinutes   int
	Days           []DayStat
}

// CategoriesInput is an inclusive date range. Empty bounds default to the current week.
type CategoriesInput struct {
	From string
	To   string
}

// CategoryStat is one tag's share of the range.
type CategoryStat struct {
	Tag          model.Tag
	Count        int
	Minutes      int
	SharePercent int // rounded share of Count
}

// CategoriesOutput lists every tag in display order, zero rows included.
type CategoriesOutput struct {
	From         string
	To           string
	TotalCount   int
	TotalMinutes int
	Categories   []CategoryStat
}
