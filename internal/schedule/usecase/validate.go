package usecase

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"

	"focus-dashboard/internal/model"
	"focus-dashboard/internal/schedule"
	"focus-dashboard/pkg/datemath"
)

// extractionPayload mirrors the five-field contract. Pointers tell a missing key from a zero value.
type extractionPayload struct {
	Title           *string  `json:"title"`
	Date            *string  `json:"date"`
	StartTime       *string  `json:"startTime"`
	DurationMinutes *float64 `json:"durationMinutes"`
	Tag             *string  `json:"tag"`
}

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// parseExtraction decodes and validates a raw service payload.
func parseExtraction(raw string) (model.Extraction, error) {
	cleaned := sanitizeJSONResponse(raw)
	if cleaned == "" {
		return model.Extraction{}, malformed(fmt.Errorf("empty payload"))
	}

	if !strings.HasPrefix(cleaned, "{") {
		return model.Extraction{}, malformed(fmt.Errorf("payload is not a JSON object"))
	}

	var p extractionPayload
	if err := json.Unmarshal([]byte(cleaned), &p); err != nil {
		return model.Extraction{}, malformed(err)
	}

	required := []struct {
		name    string
		present bool
	}{
		{fieldTitle, p.Title != nil},
		{fieldDate, p.Date != nil},
		{fieldStartTime, p.StartTime != nil},
		{fieldTag, p.Tag != nil},
	}
	for _, f := range required {
		if !f.present {
			return model.Extraction{}, malformed(fmt.Errorf("missing field %q", f.name))
		}
	}

	out := model.Extraction{
		Title:     strings.TrimSpace(*p.Title),
		Date:      strings.TrimSpace(*p.Date),
		StartTime: strings.TrimSpace(*p.StartTime),
		Tag:       model.ParseTag(*p.Tag),
	}

	if out.Title == "" {
		return model.Extraction{}, invalidField(fieldTitle, fmt.Errorf("title is blank"))
	}
	if _, err := datemath.ParseDate(out.Date); err != nil {
		return model.Extraction{}, invalidField(fieldDate, err)
	}
	if _, err := datemath.ParseClock(out.StartTime); err != nil {
		return model.Extraction{}, invalidField(fieldStartTime, err)
	}

	duration, err := normalizeDuration(p.DurationMinutes)
	if err != nil {
		return model.Extraction{}, invalidField(fieldDurationMinutes, err)
	}
	out.DurationMinutes = duration

	return out, nil
}

// normalizeDuration rounds to whole minutes and substitutes the default for absent or non-positive values.
func normalizeDuration(v *float64) (int, error) {
	if v == nil {
		return DefaultDurationMinutes, nil
	}
	rounded := math.Round(*v)
	if rounded <= 0 {
		return DefaultDurationMinutes, nil
	}
	if rounded > MaxDurationMinutes {
		return 0, fmt.Errorf("duration %v exceeds %d minutes", *v, MaxDurationMinutes)
	}
	return int(rounded), nil
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output. A top-level array is left intact so it
// fails the object decode.
func sanitizeJSONResponse(text string) string {
	text = strings.TrimSpace(text)

	if matches := codeFenceRe.FindStringSubmatch(text); len(matches) > 1 {
		text = strings.TrimSpace(matches[1])
	}
	if strings.HasPrefix(text, "[") {
		return text
	}

	start := strings.Index(text, "{")
	if start == -1 {
		return text
	}
	end := strings.LastIndex(text, "}")
	if end < start {
		return text
	}
	return text[start : end+1]
}

func malformed(err error) error {
	return schedule.NewExtractionError(schedule.ReasonMalformedResponse, "", err)
}

func invalidField(field string, err error) error {
	return schedule.NewExtractionError(schedule.ReasonInvalidFieldValue, field, err)
}
