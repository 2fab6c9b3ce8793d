package usecase

import (
	"context"
	"fmt"

	"focus-dashboard/internal/model"
)

// demoTodos are listed newest first.
var demoTodos = []model.Todo{
	{Title: "송장 보내기", Priority: model.PriorityHigh},
	{Title: "주간 보고서 작성", Priority: model.PriorityMedium},
	{Title: "이메일 정리", Priority: model.PriorityLow, Completed: true},
}

// Seed inserts the demo todos.
func (uc *implUseCase) Seed(ctx context.Context) error {
	for i := len(demoTodos) - 1; i >= 0; i-- {
		t := demoTodos[i]
		t.ID = uc.newID()
		if err := uc.repo.Prepend(ctx, t); err != nil {
			return fmt.Errorf("failed to seed todo: %w", err)
		}
	}
	uc.l.Infof(ctx, "todo.Seed: inserted %d demo todos", len(demoTodos))
	return nil
}
