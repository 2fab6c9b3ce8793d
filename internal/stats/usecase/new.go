package usecase

import (
	"time"

	"focus-dashboard/internal/schedule"
	"focus-dashboard/internal/stats"
	pkgLog "focus-dashboard/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	schedules schedule.UseCase
	loc       *time.Location
	now       func() time.Time
}

// New creates a new stats UseCase instance. loc decides what "today" is.
func New(l pkgLog.Logger, schedules schedule.UseCase, loc *time.Location) stats.UseCase {
	if loc == nil {
		loc = time.Local
	}
	return &implUseCase{
		l:         l,
		schedules: schedules,
		loc:       loc,
		now:       time.Now,
	}
}
