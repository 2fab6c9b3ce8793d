package todo

import "focus-dashboard/internal/model"

// CreateInput is a new todo entered by the user. An empty Priority means medium.
type CreateInput struct {
	Title    string
	Priority model.Priority
}

// ListOutput is the todo list, newest first.
type ListOutput struct {
	Todos        []model.Todo
	Total        int
	PendingCount int
}
