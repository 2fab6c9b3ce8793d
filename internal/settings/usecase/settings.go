package usecase

import (
	"context"
	"strings"

	"focus-dashboard/internal/model"
	"focus-dashboard/internal/settings"
)

func (uc *implUseCase) Get(ctx context.Context) (settings.Output, error) {
	return settings.Output{
		Provider:          uc.cfg.Provider,
		Model:             uc.cfg.Model,
		Timezone:          uc.cfg.Timezone,
		ExtractionTimeout: uc.cfg.ExtractionTimeout,
		SeedDemoData:      uc.cfg.SeedDemoData,
		APIKeyConfigured:  strings.TrimSpace(uc.cfg.APIKey) != "",
		Tags:              model.Tags(),
		Version:           uc.cfg.Version,
	}, nil
}
