package quickadd

import (
	"time"

	"focus-dashboard/internal/model"
	"focus-dashboard/internal/schedule"
)

// State is where a session is in the submit/confirm flow.
type State string

const (
	StateIdle      State = "idle"      // opened, nothing submitted
	StatePending   State = "pending"   // extraction in flight
	StateExtracted State = "extracted" // result waiting for confirmation
	StateFailed    State = "failed"    // last extraction failed; text kept for editing
)

// Session is a point-in-time snapshot of one quick-add input surface.
type Session struct {
	ID             string
	Text           string
	State          State
	Pending        *model.Extraction
	FailureReason  schedule.Reason
	FailureMessage string
	OpenedAt       time.Time
}

// SubmitInput submits text for extraction in one session.
type SubmitInput struct {
	SessionID    string
	Text         string
	ReferenceNow time.Time
}

// ConfirmOutput is the committed schedule and the closed session.
type ConfirmOutput struct {
	Schedule model.Schedule
}
