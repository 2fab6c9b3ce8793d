package usecase

import (
	"context"
	"errors"
	"strings"

	"focus-dashboard/internal/schedule"
	"focus-dashboard/pkg/llmprovider"
)

// Extract makes exactly one call to the extraction service and validates the result.
func (uc *implUseCase) Extract(ctx context.Context, input schedule.ExtractInput) (schedule.ExtractOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return schedule.ExtractOutput{}, schedule.NewExtractionError(schedule.ReasonEmptyInput, "", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	uc.l.Infof(ctx, "Extract: provider=%s input_length=%d reference=%s",
		uc.llm.Name(), len(input.Text), input.ReferenceNow.Format("2006-01-02T15:04"))

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: buildSystemPrompt()}},
		},
		Messages:    []llmprovider.Message{llmprovider.UserText(buildExtractionPrompt(input.Text, input.ReferenceNow))},
		Temperature: uc.cfg.Temperature,
		MaxTokens:   uc.cfg.MaxTokens,
		ResponseFormat: &llmprovider.ResponseFormat{
			MIMEType: llmprovider.MIMETypeJSON,
			Schema:   extractionSchema(),
		},
	}

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		return schedule.ExtractOutput{}, uc.classifyCallError(ctx, err)
	}

	raw := resp.Text()
	extraction, err := parseExtraction(raw)
	if err != nil {
		uc.l.Warnf(ctx, "Extract: rejected payload: %v raw=%q", err, truncate(raw, maxLoggedPayload))
		return schedule.ExtractOutput{}, err
	}

	uc.l.Infof(ctx, "Extract: title=%q date=%s start=%s duration=%d tag=%s",
		extraction.Title, extraction.Date, extraction.StartTime, extraction.DurationMinutes, extraction.Tag)

	return schedule.ExtractOutput{Extraction: extraction}, nil
}

// classifyCallError maps a provider failure onto the extraction taxonomy.
func (uc *implUseCase) classifyCallError(ctx context.Context, err error) error {
	if errors.Is(err, llmprovider.ErrInvalidResponse) || errors.Is(err, llmprovider.ErrEmptyResponse) {
		uc.l.Warnf(ctx, "Extract: unusable response envelope: %v", err)
		return schedule.NewExtractionError(schedule.ReasonMalformedResponse, "", err)
	}

	// Caller cancellation keeps context.Canceled in the chain.
	if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
		err = errors.Join(err, ctxErr)
	}
	uc.l.Errorf(ctx, "Extract: service call failed: %v", err)
	return schedule.NewExtractionError(schedule.ReasonServiceUnavailable, "", err)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
