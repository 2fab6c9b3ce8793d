package http

import (
	"time"

	"focus-dashboard/internal/model"
	"focus-dashboard/internal/quickadd"
	"focus-dashboard/pkg/response"
)

// --- Request DTOs ---

type extractReq struct {
	Text string `json:"text"`
	// Now is an optional RFC3339 reference time; the server clock is used when empty.
	Now string `json:"now"`
}

func (r extractReq) toInput(id string, now time.Time) quickadd.SubmitInput {
	return quickadd.SubmitInput{
		SessionID:    id,
		Text:         r.Text,
		ReferenceNow: now,
	}
}

// --- Response DTOs ---

type extractionResp struct {
	Title           string `json:"title"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Tag             string `json:"tag"`
}

type sessionResp struct {
	ID             string            `json:"id"`
	Text           string            `json:"text"`
	State          string            `json:"state"`
	Pending        *extractionResp   `json:"pending,omitempty"`
	FailureReason  string            `json:"failure_reason,omitempty"`
	FailureMessage string            `json:"failure_message,omitempty"`
	OpenedAt       response.DateTime `json:"opened_at"`
}

// newSessionResp renders OpenedAt in the dashboard timezone.
func (h *handler) newSessionResp(s quickadd.Session) sessionResp {
	resp := sessionResp{
		ID:             s.ID,
		Text:           s.Text,
		State:          string(s.State),
		FailureReason:  string(s.FailureReason),
		FailureMessage: s.FailureMessage,
		OpenedAt:       response.DateTime(s.OpenedAt.In(h.loc)),
	}
	if s.Pending != nil {
		resp.Pending = newExtractionResp(*s.Pending)
	}
	return resp
}

func newExtractionResp(e model.Extraction) *extractionResp {
	return &extractionResp{
		Title:           e.Title,
		Date:            e.Date,
		StartTime:       e.StartTime,
		DurationMinutes: e.DurationMinutes,
		Tag:             e.Tag.String(),
	}
}

type scheduleResp struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Tag             string `json:"tag"`
	Completed       bool   `json:"completed"`
}

type confirmResp struct {
	Schedule scheduleResp `json:"schedule"`
}

func newConfirmResp(out quickadd.ConfirmOutput) confirmResp {
	s := out.Schedule
	return confirmResp{Schedule: scheduleResp{
		ID:              s.ID,
		Title:           s.Title,
		Date:            s.Date,
		StartTime:       s.StartTime,
		DurationMinutes: s.DurationMinutes,
		Tag:             s.Tag.String(),
		Completed:       s.Completed,
	}}
}
