package settings

import (
	"time"

	"focus-dashboard/internal/model"
)

// Output is the read-only settings view. Secrets are reduced to a presence flag.
type Output struct {
	Provider          string
	Model             string
	Timezone          string
	ExtractionTimeout time.Duration
	SeedDemoData      bool
	APIKeyConfigured  bool
	Tags              []model.Tag
	Version           string
}
