package usecase

import (
	"github.com/google/uuid"

	"focus-dashboard/internal/todo"
	"focus-dashboard/internal/todo/repository"
	pkgLog "focus-dashboard/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	newID func() string
}

// New creates a new todo UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) todo.UseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		newID: uuid.NewString,
	}
}
