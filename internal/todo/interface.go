package todo

import (
	"context"

	"focus-dashboard/internal/model"
)

// UseCase defines the business logic interface for the todo domain.
type UseCase interface {
	List(ctx context.Context) (ListOutput, error)
	Create(ctx context.Context, input CreateInput) (model.Todo, error)
	Toggle(ctx context.Context, id string) (model.Todo, error)
	Seed(ctx context.Context) error
}
