package http

import (
	"errors"
	"net/http"

	"focus-dashboard/internal/todo"
	pkgErrors "focus-dashboard/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, todo.ErrTodoNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "todo not found")
	case errors.Is(err, todo.ErrEmptyTitle), errors.Is(err, todo.ErrInvalidPriority):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
