package usecase

import (
	"fmt"
	"strings"
	"time"

	"focus-dashboard/internal/model"
	"focus-dashboard/pkg/datemath"
)

// extractionSystemPrompt is the system instruction sent with every extraction.
const extractionSystemPrompt = `You are a scheduling assistant. Your job is to turn one free-text schedule note, usually in Korean, into exactly one structured schedule entry.

RULES:
1. Return ONLY a JSON object with exactly these fields:
   - title (string): a short human summary of the event.
   - date (string): absolute calendar date in YYYY-MM-DD. Resolve relative expressions (e.g. "내일", "다음 주 월요일") against the current date.
   - startTime (string): 24-hour HH:mm, zero padded. If the note gives no time, choose a sensible time from context and the current time.
   - durationMinutes (number): estimated duration in minutes. Use 60 when it cannot be inferred.
   - tag (string): exactly one of %s. Use '%s' when nothing else fits.
2. No markdown, no code blocks, no explanation text.`

// buildSystemPrompt renders the system instruction with the closed tag set.
func buildSystemPrompt() string {
	tags := model.Tags()
	quoted := make([]string, len(tags))
	for i, t := range tags {
		quoted[i] = "'" + t.String() + "'"
	}
	return fmt.Sprintf(extractionSystemPrompt, strings.Join(quoted, ", "), model.TagOther)
}

// buildExtractionPrompt builds the user message for one utterance.
func buildExtractionPrompt(text string, now time.Time) string {
	return fmt.Sprintf("Current Date: %s\nCurrent Time: %s\n\nAnalyze the following schedule input and return ONLY the JSON object:\n%q",
		datemath.FormatDate(now), datemath.FormatClock(now), text)
}

// extractionSchema is the Gemini responseSchema for the five-field shape.
func extractionSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "OBJECT",
		"properties": map[string]interface{}{
			fieldTitle:           map[string]interface{}{"type": "STRING"},
			fieldDate:            map[string]interface{}{"type": "STRING"},
			fieldStartTime:       map[string]interface{}{"type": "STRING"},
			fieldDurationMinutes: map[string]interface{}{"type": "NUMBER"},
			fieldTag:             map[string]interface{}{"type": "STRING"},
		},
		"required": []string{fieldTitle, fieldDate, fieldStartTime, fieldDurationMinutes, fieldTag},
	}
}
