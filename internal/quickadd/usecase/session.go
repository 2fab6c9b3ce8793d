package usecase

import (
	"context"
	"sync"
	"time"

	"focus-dashboard/internal/model"
	"focus-dashboard/internal/quickadd"
	"focus-dashboard/internal/schedule"
)

// session is the mutable state behind one input surface.
// ctx lives as long as the surface; closing it discards in-flight results.
type session struct {
	id       string
	openedAt time.Time
	ctx      context.Context
	cancel   context.CancelFunc

	mu             sync.Mutex
	text           string
	state          quickadd.State
	pending        *model.Extraction
	failureReason  schedule.Reason
	failureMessage string
	inFlight       bool
	closed         bool
}

func newSession(id string, openedAt time.Time) *session {
	ctx, cancel := context.WithCancel(context.Background())
	return &session{
		id:       id,
		openedAt: openedAt,
		ctx:      ctx,
		cancel:   cancel,
		state:    quickadd.StateIdle,
	}
}

// begin claims the session for one extraction.
func (s *session) begin(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return quickadd.ErrSessionClosed
	}
	if s.inFlight {
		return quickadd.ErrExtractionInFlight
	}
	s.text = text
	s.state = quickadd.StatePending
	s.pending = nil
	s.failureReason = ""
	s.failureMessage = ""
	s.inFlight = true
	return nil
}

// finish records an extraction outcome. It reports false when the session
// was closed meanwhile and the outcome was dropped.
func (s *session) finish(out schedule.ExtractOutput, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inFlight = false
	if s.closed {
		return false
	}

	if err != nil {
		s.state = quickadd.StateFailed
		s.failureReason, _ = schedule.ReasonOf(err)
		s.failureMessage = err.Error()
		return true
	}

	extraction := out.Extraction
	s.state = quickadd.StateExtracted
	s.pending = &extraction
	return true
}

// claimPending takes the pending extraction and marks the session closed.
func (s *session) claimPending() (model.Extraction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return model.Extraction{}, quickadd.ErrSessionClosed
	}
	if s.inFlight {
		return model.Extraction{}, quickadd.ErrExtractionInFlight
	}
	if s.state != quickadd.StateExtracted || s.pending == nil {
		return model.Extraction{}, quickadd.ErrNothingToConfirm
	}
	s.closed = true
	return *s.pending, nil
}

// release undoes claimPending after a failed commit.
func (s *session) release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = false
}

func (s *session) close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.cancel()
}

func (s *session) snapshot() quickadd.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := quickadd.Session{
		ID:             s.id,
		Text:           s.text,
		State:          s.state,
		FailureReason:  s.failureReason,
		FailureMessage: s.failureMessage,
		OpenedAt:       s.openedAt,
	}
	if s.pending != nil {
		p := *s.pending
		out.Pending = &p
	}
	return out
}
