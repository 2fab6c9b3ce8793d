package llmprovider

import (
	"fmt"

	"focus-dashboard/config"
	"focus-dashboard/pkg/deepseek"
	"focus-dashboard/pkg/gemini"
	"focus-dashboard/pkg/qwen"
)

// InitializeProvider creates the configured Provider from config.LLMConfig.
// Exactly one provider is active; there is no fallback chain.
func InitializeProvider(cfg *config.LLMConfig) (Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}
	if cfg.Provider == "" {
		return nil, ErrNoProvidersConfigured
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Provider)
	}

	switch cfg.Provider {
	case config.ProviderGemini:
		client, err := gemini.New(gemini.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
			APIURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case config.ProviderDeepSeek:
		client, err := deepseek.New(deepseek.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create deepseek client: %w", err)
		}
		return NewDeepSeekAdapter(client), nil

	case config.ProviderQwen:
		client, err := qwen.New(qwen.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create qwen client: %w", err)
		}
		return NewQwenAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}
