package repository

// ListOptions holds the parameters for listing schedules.
type ListOptions struct {
	Date     string // YYYY-MM-DD, empty for all dates
	FromDate string // inclusive lower bound, empty for none
	ToDate   string // inclusive upper bound, empty for none
}
