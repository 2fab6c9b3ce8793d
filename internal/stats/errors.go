package stats

import "errors"

var (
	ErrInvalidDate  = errors.New("date must be YYYY-MM-DD")
	ErrInvalidRange = errors.New("from must not be after to")
)
