package http

import "focus-dashboard/internal/settings"

type settingsResp struct {
	Provider                 string   `json:"provider"`
	Model                    string   `json:"model"`
	Timezone                 string   `json:"timezone"`
	ExtractionTimeoutSeconds float64  `json:"extraction_timeout_seconds"`
	SeedDemoData             bool     `json:"seed_demo_data"`
	APIKeyConfigured         bool     `json:"api_key_configured"`
	Tags                     []string `json:"tags"`
	Version                  string   `json:"version"`
}

func toSettingsResp(out settings.Output) settingsResp {
	tags := make([]string, len(out.Tags))
	for i, t := range out.Tags {
		tags[i] = t.String()
	}
	return settingsResp{
		Provider:                 out.Provider,
		Model:                    out.Model,
		Timezone:                 out.Timezone,
		ExtractionTimeoutSeconds: out.ExtractionTimeout.Seconds(),
		SeedDemoData:             out.SeedDemoData,
		APIKeyConfigured:         out.APIKeyConfigured,
		Tags:                     tags,
		Version:                  out.Version,
	}
}
