package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focus-dashboard/internal/model"
	"focus-dashboard/pkg/log"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name       string
		apiKey     string
		wantKeySet bool
	}{
		{name: "key configured", apiKey: "secret", wantKeySet: true},
		{name: "key missing", apiKey: "", wantKeySet: false},
		{name: "blank key", apiKey: "   ", wantKeySet: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := New(log.NewNop(), Config{
				Provider:          "gemini",
				Model:             "gemini-2.5-flash",
				APIKey:            tt.apiKey,
				Timezone:          "Asia/Seoul",
				ExtractionTimeout: 15 * time.Second,
				SeedDemoData:      true,
				Version:           "dev",
			})

			out, err := uc.Get(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantKeySet, out.APIKeyConfigured)
			assert.Equal(t, "gemini", out.Provider)
			assert.Equal(t, 15*time.Second, out.ExtractionTimeout)
			assert.Equal(t, model.Tags(), out.Tags)
		})
	}
}
