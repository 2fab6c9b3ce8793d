package memory

import (
	"context"
	"sync"

	"focus-dashboard/internal/model"
	"focus-dashboard/internal/todo/repository"
)

type implRepository struct {
	mu    sync.RWMutex
	items []model.Todo // newest first
}

// New creates an empty in-memory todo repository.
func New() repository.Repository {
	return &implRepository{}
}

func (r *implRepository) Prepend(ctx context.Context, t model.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]model.Todo{t}, r.items...)
	return nil
}

func (r *implRepository) List(ctx context.Context) ([]model.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Todo, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *implRepository) Toggle(ctx context.Context, id string) (model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Completed = !r.items[i].Completed
			return r.items[i], nil
		}
	}
	return model.Todo{}, repository.ErrNotFound
}
