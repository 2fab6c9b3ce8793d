package http

import "focus-dashboard/internal/stats"

type dayResp struct {
	Date      string `json:"date"`
	Weekday   string `json:"weekday"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
}

type weeklyResp struct {
	WeekStart      string    `json:"week_start"`
	WeekEnd        string    `json:"week_end"`
	Total          int       `json:"total"`
	Completed      int       `json:"completed"`
	CompletionRate int       `json:"completion_rate"`
	TotalMinutes   int       `json:"total_minutes"`
	Days           []dayResp `json:"days"`
}

type categoryResp struct {
	Tag          string `json:"tag"`
	Count        int    `json:"count"`
	Minutes      int    `json:"minutes"`
	SharePercent int    `json:"share_percent"`
}

type categoriesResp struct {
	From         string         `json:"from"`
	To           string         `json:"to"`
	TotalCount   int            `json:"total_count"`
	TotalMinutes int            `json:"total_minutes"`
	Categories   []categoryResp `json:"categories"`
}

func toWeeklyResp(out stats.WeeklyOutput) weeklyResp {
	resp := weeklyResp{
		WeekStart:      out.WeekStart,
		WeekEnd:        out.WeekEnd,
		Total:          out.Total,
		Completed:      out.Completed,
		CompletionRate: out.CompletionRate,
		TotalMinutes:   out.TotalMinutes,
		Days:           make([]dayResp, len(out.Days)),
	}
	for i, d := range out.Days {
		resp.Days[i] = dayResp(d)
	}
	return resp
}

func toCategoriesResp(out stats.CategoriesOutput) categoriesResp {
	resp := categoriesResp{
		From:         out.From,
		To:           out.To,
		TotalCount:   out.TotalCount,
		TotalMinutes: out.TotalMinutes,
		Categories:   make([]categoryResp, len(out.Categories)),
	}
	for i, cat := range out.Categories {
		resp.Categories[i] = categoryResp{
			Tag:          cat.Tag.String(),
			Count:        cat.Count,
			Minutes:      cat.Minutes,
			SharePercent: cat.SharePercent,
		}
	}
	return resp
}
