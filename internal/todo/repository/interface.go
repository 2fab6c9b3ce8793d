package repository

import (
	"context"
	"errors"

	"focus-dashboard/internal/model"
)

// ErrNotFound is returned when no todo has the requested id.
var ErrNotFound = errors.New("todo not found in repository")

// Repository owns the in-memory todo list.
type Repository interface {
	Prepend(ctx context.Context, t model.Todo) error
	List(ctx context.Context) ([]model.Todo, error)
	Toggle(ctx context.Context, id string) (model.Todo, error)
}
