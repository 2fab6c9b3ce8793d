package http

import (
	"strings"

	"focus-dashboard/internal/model"
	"focus-dashboard/internal/schedule"
)

// --- Request DTOs ---

type listReq struct {
	Date string `form:"date"`
	From string `form:"from"`
	To   string `form:"to"`
}

func (r listReq) toInput() schedule.ListInput {
	return schedule.ListInput{
		Date: strings.TrimSpace(r.Date),
		From: strings.TrimSpace(r.From),
		To:   strings.TrimSpace(r.To),
	}
}

type createReq struct {
	Title           string `json:"title"            binding:"required,max=255"`
	Date            string `json:"date"             binding:"required"`
	StartTime       string `json:"start_time"       binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required"`
	Tag             string `json:"tag"`
	Description     string `json:"description"      binding:"max=1000"`
}

func (r createReq) toInput() schedule.CreateInput {
	return schedule.CreateInput{
		Title:           r.Title,
		Date:            r.Date,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
		Tag:             r.Tag,
		Description:     r.Description,
	}
}

// --- Response DTOs ---

type scheduleResp struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Tag             string `json:"tag"`
	Description     string `json:"description,omitempty"`
	Completed       bool   `json:"completed"`
}

func newScheduleResp(s model.Schedule) scheduleResp {
	return scheduleResp{
		ID:              s.ID,
		Title:           s.Title,
		Date:            s.Date,
		StartTime:       s.StartTime,
		DurationMinutes: s.DurationMinutes,
		Tag:             s.Tag.String(),
		Description:     s.Description,
		Completed:       s.Completed,
	}
}

type listResp struct {
	Schedules []scheduleResp `json:"schedules"`
	Total     int            `json:"total"`
}

func (h *handler) newListResp(out schedule.ListOutput) listResp {
	items := make([]scheduleResp, len(out.Schedules))
	for i, s := range out.Schedules {
		items[i] = newScheduleResp(s)
	}
	return listResp{Schedules: items, Total: out.Total}
}

type itemResp struct {
	Schedule scheduleResp `json:"schedule"`
}

func (h *handler) newItemResp(s model.Schedule) itemResp {
	return itemResp{Schedule: newScheduleResp(s)}
}
