package memory

import (
	"context"
	"sort"

	"focus-dashboard/internal/model"
	"focus-dashboard/internal/schedule/repository"
)

func (r *implRepository) Insert(ctx context.Context, s model.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// First index whose StartTime is strictly greater keeps ties in insertion order.
	i := sort.Search(len(r.items), func(i int) bool {
		return r.items[i].StartTime > s.StartTime
	})
	r.items = append(r.items, model.Schedule{})
	copy(r.items[i+1:], r.items[i:])
	r.items[i] = s
	return nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Schedule, 0, len(r.items))
	for _, s := range r.items {
		if !matches(s, opt) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *implRepository) ToggleCompleted(ctx context.Context, id string) (model.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Completed = !r.items[i].Completed
			return r.items[i], nil
		}
	}
	return model.Schedule{}, repository.ErrNotFound
}

// matches compares dates as strings; YYYY-MM-DD orders lexicographically.
func matches(s model.Schedule, opt repository.ListOptions) bool {
	if opt.Date != "" && s.Date != opt.Date {
		return false
	}
	if opt.FromDate != "" && s.Date < opt.FromDate {
		return false
	}
	if opt.ToDate != "" && s.Date > opt.ToDate {
		return false
	}
	return true
}
