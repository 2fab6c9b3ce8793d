package memory

import (
	"sync"

	"focus-dashboard/internal/model"
	"focus-dashboard/internal/schedule/repository"
)

type implRepository struct {
	mu    sync.RWMutex
	items []model.Schedule // sorted by StartTime, insertion order for ties
}

var _ repository.Repository = (*implRepository)(nil)

// New creates an empty in-memory schedule repository.
func New() repository.Repository {
	return &implRepository{}
}
