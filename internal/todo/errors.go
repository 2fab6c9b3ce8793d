package todo

import "errors"

// Domain-specific errors for the todo package.
var (
	ErrEmptyTitle      = errors.New("todo title is empty")
	ErrInvalidPriority = errors.New("todo priority must be low, medium or high")
	ErrTodoNotFound    = errors.New("todo not found")
)
