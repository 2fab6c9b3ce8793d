package usecase

import (
	"context"
	"fmt"

	"focus-dashboard/internal/model"
	"focus-dashboard/internal/schedule"
	"focus-dashboard/pkg/datemath"
)

var demoSchedules = []model.Schedule{
	{Title: "디자인 리뷰", StartTime: "10:00", DurationMinutes: 90, Tag: model.TagWork, Description: "UI/UX 개선안 검토 및 피드백 반영", Completed: true},
	{Title: "점심 식사", StartTime: "12:00", DurationMinutes: 60, Tag: model.TagOther, Description: "팀 점심 회식 @ 강남역"},
	{Title: "클라이언트 미팅", StartTime: "14:00", DurationMinutes: 60, Tag: model.TagMeeting, Description: "신규 프로젝트 계약 조건 협의"},
}

// Seed inserts the demo entries on the given date.
func (uc *implUseCase) Seed(ctx context.Context, date string) error {
	if _, err := datemath.ParseDate(date); err != nil {
		return fmt.Errorf("%w: %v", schedule.ErrInvalidSchedule, err)
	}

	for _, d := range demoSchedules {
		s := d
		s.ID = uc.newID()
		s.Date = date
		if err := uc.repo.Insert(ctx, s); err != nil {
			return fmt.Errorf("failed to seed schedule: %w", err)
		}
	}

	uc.l.Infof(ctx, "Seed: inserted %d demo schedules on %s", len(demoSchedules), date)
	return nil
}
