package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"focus-dashboard/internal/model"
	"focus-dashboard/internal/schedule"
	"focus-dashboard/internal/schedule/repository"
	"focus-dashboard/pkg/datemath"
)

// Create validates a direct user entry and inserts it.
func (uc *implUseCase) Create(ctx context.Context, input schedule.CreateInput) (model.Schedule, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Schedule{}, fmt.Errorf("%w: title is required", schedule.ErrInvalidSchedule)
	}
	if _, err := datemath.ParseDate(input.Date); err != nil {
		return model.Schedule{}, fmt.Errorf("%w: %v", schedule.ErrInvalidSchedule, err)
	}
	if _, err := datemath.ParseClock(input.StartTime); err != nil {
		return model.Schedule{}, fmt.Errorf("%w: %v", schedule.ErrInvalidSchedule, err)
	}
	if input.DurationMinutes <= 0 || input.DurationMinutes > MaxDurationMinutes {
		return model.Schedule{}, fmt.Errorf("%w: duration must be between 1 and %d minutes", schedule.ErrInvalidSchedule, MaxDurationMinutes)
	}

	s := model.Schedule{
		ID:              uc.newID(),
		Title:           title,
		Date:            strings.TrimSpace(input.Date),
		StartTime:       strings.TrimSpace(input.StartTime),
		DurationMinutes: input.DurationMinutes,
		Tag:             model.ParseTag(input.Tag),
		Description:     strings.TrimSpace(input.Description),
	}
	if err := uc.repo.Insert(ctx, s); err != nil {
		return model.Schedule{}, fmt.Errorf("failed to insert schedule: %w", err)
	}

	uc.l.Infof(ctx, "Create: schedule id=%s date=%s start=%s", s.ID, s.Date, s.StartTime)
	return s, nil
}

// Commit inserts a confirmed extraction. The five extracted fields are copied unmodified.
func (uc *implUseCase) Commit(ctx context.Context, extraction model.Extraction) (model.Schedule, error) {
	s := extraction.ToSchedule(uc.newID())
	if err := uc.repo.Insert(ctx, s); err != nil {
		return model.Schedule{}, fmt.Errorf("failed to insert schedule: %w", err)
	}

	uc.l.Infof(ctx, "Commit: schedule id=%s date=%s start=%s", s.ID, s.Date, s.StartTime)
	return s, nil
}

// List returns entries sorted by start time, optionally for one date or an inclusive range.
func (uc *implUseCase) List(ctx context.Context, input schedule.ListInput) (schedule.ListOutput, error) {
	opt := repository.ListOptions{
		Date:     strings.TrimSpace(input.Date),
		FromDate: strings.TrimSpace(input.From),
		ToDate:   strings.TrimSpace(input.To),
	}
	for _, d := range []string{opt.Date, opt.FromDate, opt.ToDate} {
		if d == "" {
			continue
		}
		if _, err := datemath.ParseDate(d); err != nil {
			return schedule.ListOutput{}, fmt.Errorf("%w: %v", schedule.ErrInvalidSchedule, err)
		}
	}

	items, err := uc.repo.List(ctx, opt)
	if err != nil {
		return schedule.ListOutput{}, fmt.Errorf("failed to list schedules: %w", err)
	}

	return schedule.ListOutput{Schedules: items, Total: len(items)}, nil
}

// ToggleCompleted flips the completion flag of one entry.
func (uc *implUseCase) ToggleCompleted(ctx context.Context, id string) (model.Schedule, error) {
	s, err := uc.repo.ToggleCompleted(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Schedule{}, schedule.ErrScheduleNotFound
		}
		return model.Schedule{}, fmt.Errorf("failed to toggle schedule: %w", err)
	}
	return s, nil
}
