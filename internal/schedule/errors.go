package schedule

import (
	"errors"
	"fmt"
)

// Reason classifies why an extraction failed.
type Reason string

const (
	ReasonEmptyInput         Reason = "EmptyInput"
	ReasonServiceUnavailable Reason = "ServiceUnavailable"
	ReasonMalformedResponse  Reason = "MalformedResponse"
	ReasonInvalidFieldValue  Reason = "InvalidFieldValue"
)

// Extraction failure sentinels, matched by errors.Is against an *ExtractionError.
var (
	ErrEmptyInput         = errors.New("input text is empty")
	ErrServiceUnavailable = errors.New("extraction service unavailable")
	ErrMalformedResponse  = errors.New("extraction response is malformed")
	ErrInvalidFieldValue  = errors.New("extraction field value is invalid")
)

// Collection errors.
var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrInvalidSchedule  = errors.New("invalid schedule")
)

var reasonSentinels = map[Reason]error{
	ReasonEmptyInput:         ErrEmptyInput,
	ReasonServiceUnavailable: ErrServiceUnavailable,
	ReasonMalformedResponse:  ErrMalformedResponse,
	ReasonInvalidFieldValue:  ErrInvalidFieldValue,
}

// ExtractionError is the failure half of an extraction outcome.
type ExtractionError struct {
	Reason Reason
	Field  string // set for ReasonInvalidFieldValue
	Err    error  // underlying cause, may be nil
}

func (e *ExtractionError) Error() string {
	msg := string(e.Reason)
	if sentinel, ok := reasonSentinels[e.Reason]; ok {
		msg = sentinel.Error()
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Field)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for e.Reason.
func (e *ExtractionError) Is(target error) bool {
	sentinel, ok := reasonSentinels[e.Reason]
	return ok && sentinel == target
}

// ReasonOf returns the extraction failure reason carried by err, if any.
func ReasonOf(err error) (Reason, bool) {
	var ee *ExtractionError
	if errors.As(err, &ee) {
		return ee.Reason, true
	}
	return "", false
}

// NewExtractionError builds an ExtractionError.
func NewExtractionError(reason Reason, field string, err error) *ExtractionError {
	return &ExtractionError{Reason: reason, Field: field, Err: err}
}
