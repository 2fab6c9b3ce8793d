package usecase

import (
	"context"
	"fmt"
	"strings"

	"focus-dashboard/internal/quickadd"
	"focus-dashboard/internal/schedule"
)

type submitResult struct {
	applied bool
	err     error
}

// Open creates a new idle session.
func (uc *implUseCase) Open(ctx context.Context) (quickadd.Session, error) {
	s := newSession(uc.newID(), uc.now())
	uc.sessions.Add(s.id, s)

	uc.l.Debugf(ctx, "quickadd.Open: session=%s", s.id)
	return s.snapshot(), nil
}

// Get returns a snapshot of the session.
func (uc *implUseCase) Get(ctx context.Context, id string) (quickadd.Session, error) {
	s, ok := uc.sessions.Get(id)
	if !ok {
		return quickadd.Session{}, quickadd.ErrSessionNotFound
	}
	return s.snapshot(), nil
}

// Submit runs one extraction as a task bound to the session's lifetime.
func (uc *implUseCase) Submit(ctx context.Context, input quickadd.SubmitInput) (quickadd.Session, error) {
	s, ok := uc.sessions.Get(input.SessionID)
	if !ok {
		return quickadd.Session{}, quickadd.ErrSessionNotFound
	}

	// Empty text never reaches the extractor.
	if strings.TrimSpace(input.Text) == "" {
		return s.snapshot(), schedule.NewExtractionError(schedule.ReasonEmptyInput, "", nil)
	}

	if err := s.begin(input.Text); err != nil {
		return s.snapshot(), err
	}

	if !uc.limiter.Allow() {
		err := schedule.NewExtractionError(schedule.ReasonServiceUnavailable, "", quickadd.ErrRateLimited)
		s.finish(schedule.ExtractOutput{}, err)
		uc.l.Warnf(ctx, "quickadd.Submit: session=%s rate limited", s.id)
		return s.snapshot(), err
	}

	done := make(chan submitResult, 1)
	go func() {
		out, err := uc.schedules.Extract(s.ctx, schedule.ExtractInput{
			Text:         input.Text,
			ReferenceNow: input.ReferenceNow,
		})
		done <- submitResult{applied: s.finish(out, err), err: err}
	}()

	select {
	case r := <-done:
		if !r.applied {
			uc.l.Infof(ctx, "quickadd.Submit: session=%s closed before extraction finished, result discarded", s.id)
			return quickadd.Session{}, quickadd.ErrSessionClosed
		}
		return s.snapshot(), r.err
	case <-ctx.Done():
		return s.snapshot(), ctx.Err()
	}
}

// Confirm commits the pending extraction and closes the session.
func (uc *implUseCase) Confirm(ctx context.Context, id string) (quickadd.ConfirmOutput, error) {
	s, ok := uc.sessions.Get(id)
	if !ok {
		return quickadd.ConfirmOutput{}, quickadd.ErrSessionNotFound
	}

	extraction, err := s.claimPending()
	if err != nil {
		return quickadd.ConfirmOutput{}, err
	}

	committed, err := uc.schedules.Commit(ctx, extraction)
	if err != nil {
		s.release()
		return quickadd.ConfirmOutput{}, fmt.Errorf("failed to commit extraction: %w", err)
	}

	uc.sessions.Remove(id)
	uc.l.Infof(ctx, "quickadd.Confirm: session=%s committed schedule=%s", id, committed.ID)
	return quickadd.ConfirmOutput{Schedule: committed}, nil
}

// Close discards the session and cancels any in-flight extraction.
func (uc *implUseCase) Close(ctx context.Context, id string) error {
	if !uc.sessions.Remove(id) {
		return quickadd.ErrSessionNotFound
	}
	uc.l.Debugf(ctx, "quickadd.Close: session=%s", id)
	return nil
}
