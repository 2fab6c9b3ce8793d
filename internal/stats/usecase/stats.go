package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"focus-dashboard/internal/model"
	"focus-dashboard/internal/schedule"
	"focus-dashboard/internal/stats"
	"focus-dashboard/pkg/datemath"
)

// Weekly summarises the Monday-Sunday week containing the reference date.
func (uc *implUseCase) Weekly(ctx context.Context, input stats.WeeklyInput) (stats.WeeklyOutput, error) {
	ref, err := uc.resolveDate(input.ReferenceDate)
	if err != nil {
		return stats.WeeklyOutput{}, err
	}

	days := datemath.WeekDays(ref)
	out := stats.WeeklyOutput{
		WeekStart: datemath.FormatDate(days[0]),
		WeekEnd:   datemath.FormatDate(days[6]),
		Days:      make([]stats.DayStat, len(days)),
	}
	index := make(map[string]int, len(days))
	for i, d := range days {
		date := datemath.FormatDate(d)
		index[date] = i
		out.Days[i] = stats.DayStat{Date: date, Weekday: d.Weekday().String()[:3]}
	}

	items, err := uc.schedules.List(ctx, schedule.ListInput{From: out.WeekStart, To: out.WeekEnd})
	if err != nil {
		return stats.WeeklyOutput{}, fmt.Errorf("failed to list schedules: %w", err)
	}

	for _, s := range items.Schedules {
		i, ok := index[s.Date]
		if !ok {
			continue
		}
		out.Total++
		out.Days[i].Total++
		out.TotalMinutes += s.DurationMinutes
		if s.Completed {
			out.Completed++
			out.Days[i].Completed++
		}
	}
	out.CompletionRate = percent(out.Completed, out.Total)

	return out, nil
}

// Categories reports per-tag counts and minutes over an inclusive date range.
func (uc *implUseCase) Categories(ctx context.Context, input stats.CategoriesInput) (stats.CategoriesOutput, error) {
	from, to, err := uc.resolveRange(input)
	if err != nil {
		return stats.CategoriesOutput{}, err
	}

	tags := model.Tags()
	out := stats.CategoriesOutput{
		From:       from,
		To:         to,
		Categories: make([]stats.CategoryStat, len(tags)),
	}
	index := make(map[model.Tag]int, len(tags))
	for i, t := range tags {
		index[t] = i
		out.Categories[i].Tag = t
	}

	items, err := uc.schedules.List(ctx, schedule.ListInput{From: from, To: to})
	if err != nil {
		return stats.CategoriesOutput{}, fmt.Errorf("failed to list schedules: %w", err)
	}

	for _, s := range items.Schedules {
		i, ok := index[s.Tag]
		if !ok {
			i = index[model.TagOther]
		}
		out.Categories[i].Count++
		out.Categories[i].Minutes += s.DurationMinutes
		out.TotalCount++
		out.TotalMinutes += s.DurationMinutes
	}
	for i := range out.Categories {
		out.Categories[i].SharePercent = percent(out.Categories[i].Count, out.TotalCount)
	}

	return out, nil
}

func (uc *implUseCase) resolveDate(s string) (time.Time, error) {
	if s == "" {
		return datemath.StartOfDay(uc.now().In(uc.loc)), nil
	}
	d, err := datemath.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", stats.ErrInvalidDate, s)
	}
	return d, nil
}

func (uc *implUseCase) resolveRange(input stats.CategoriesInput) (string, string, error) {
	week := datemath.WeekDays(uc.now().In(uc.loc))
	from, to := datemath.FormatDate(week[0]), datemath.FormatDate(week[6])

	if input.From != "" {
		d, err := uc.resolveDate(input.From)
		if err != nil {
			return "", "", err
		}
		from = datemath.FormatDate(d)
	}
	if input.To != "" {
		d, err := uc.resolveDate(input.To)
		if err != nil {
			return "", "", err
		}
		to = datemath.FormatDate(d)
	}
	if from > to {
		return "", "", stats.ErrInvalidRange
	}
	return from, to, nil
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(total)))
}
