package usecase

import (
	"time"

	"focus-dashboard/internal/settings"
	pkgLog "focus-dashboard/pkg/log"
)

// Config is the runtime snapshot the settings view is built from.
type Config struct {
	Provider          string
	Model             string
	APIKey            string
	Timezone          string
	ExtractionTimeout time.Duration
	SeedDemoData      bool
	Version           string
}

type implUseCase struct {
	l   pkgLog.Logger
	cfg Config
}

// New creates a new settings UseCase instance.
func New(l pkgLog.Logger, cfg Config) settings.UseCase {
	return &implUseCase{l: l, cfg: cfg}
}
