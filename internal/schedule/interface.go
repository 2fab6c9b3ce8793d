package schedule

import (
	"context"

	"focus-dashboard/internal/model"
)

// Extractor turns free text into one validated schedule candidate.
// Implementations hold no mutable state between calls.
type Extractor interface {
	Extract(ctx context.Context, input ExtractInput) (ExtractOutput, error)
}

// UseCase defines the business logic interface for the schedule domain.
type UseCase interface {
	Extractor

	// Create validates a direct user entry and inserts it.
	Create(ctx context.Context, input CreateInput) (model.Schedule, error)

	// Commit inserts a confirmed extraction with a fresh id.
	Commit(ctx context.Context, extraction model.Extraction) (model.Schedule, error)

	// List returns entries sorted by start time.
	List(ctx context.Context, input ListInput) (ListOutput, error)

	// ToggleCompleted flips the completion flag of one entry.
	ToggleCompleted(ctx context.Context, id string) (model.Schedule, error)

	// Seed inserts the demo entries on the given date.
	Seed(ctx context.Context, date string) error
}
