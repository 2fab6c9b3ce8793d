package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"focus-dashboard/internal/model"
	"focus-dashboard/internal/todo"
	"focus-dashboard/internal/todo/repository"
)

// List returns the todos newest first with the pending badge count.
func (uc *implUseCase) List(ctx context.Context) (todo.ListOutput, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return todo.ListOutput{}, fmt.Errorf("failed to list todos: %w", err)
	}

	pending := 0
	for _, t := range items {
		if !t.Completed {
			pending++
		}
	}

	return todo.ListOutput{Todos: items, Total: len(items), PendingCount: pending}, nil
}

// Create prepends a new todo.
func (uc *implUseCase) Create(ctx context.Context, input todo.CreateInput) (model.Todo, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Todo{}, todo.ErrEmptyTitle
	}

	priority := input.Priority
	if priority == "" {
		priority = model.DefaultPriority
	}
	if !priority.IsValid() {
		return model.Todo{}, todo.ErrInvalidPriority
	}

	t := model.Todo{
		ID:       uc.newID(),
		Title:    title,
		Priority: priority,
	}
	if err := uc.repo.Prepend(ctx, t); err != nil {
		return model.Todo{}, fmt.Errorf("failed to insert todo: %w", err)
	}

	uc.l.Infof(ctx, "todo.Create: id=%s priority=%s", t.ID, t.Priority)
	return t, nil
}

// Toggle flips the completion flag of one todo.
func (uc *implUseCase) Toggle(ctx context.Context, id string) (model.Todo, error) {
	t, err := uc.repo.Toggle(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Todo{}, todo.ErrTodoNotFound
		}
		return model.Todo{}, fmt.Errorf("failed to toggle todo: %w", err)
	}
	return t, nil
}
