package repository

import (
	"context"
	"errors"

	"focus-dashboard/internal/model"
)

// ErrNotFound is returned when no entry has the requested id.
var ErrNotFound = errors.New("schedule not found in repository")

// Repository owns the in-memory schedule collection.
type Repository interface {
	Insert(ctx context.Context, s model.Schedule) error
	List(ctx context.Context, opt ListOptions) ([]model.Schedule, error)
	ToggleCompleted(ctx context.Context, id string) (model.Schedule, error)
}
