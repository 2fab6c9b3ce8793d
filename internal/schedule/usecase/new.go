package usecase

import (
	"time"

	"github.com/google/uuid"

	"focus-dashboard/internal/schedule"
	"focus-dashboard/internal/schedule/repository"
	"focus-dashboard/pkg/llmprovider"
	pkgLog "focus-dashboard/pkg/log"
)

// Config tunes the outbound extraction call.
type Config struct {
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
}

type implUseCase struct {
	l     pkgLog.Logger
	llm   llmprovider.Provider
	repo  repository.Repository
	cfg   Config
	newID func() string
}

var _ schedule.UseCase = (*implUseCase)(nil)

// New creates a new schedule UseCase instance.
func New(
	l pkgLog.Logger,
	llm llmprovider.Provider,
	repo repository.Repository,
	cfg Config,
) schedule.UseCase {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &implUseCase{
		l:     l,
		llm:   llm,
		repo:  repo,
		cfg:   cfg,
		newID: uuid.NewString,
	}
}
