package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"focus-dashboard/config"
	"focus-dashboard/internal/schedule"
	"focus-dashboard/internal/schedule/repository/memory"
	"focus-dashboard/internal/schedule/usecase"
	"focus-dashboard/pkg/datemath"
	"focus-dashboard/pkg/llmprovider"
	"focus-dashboard/pkg/log"
)

func main() {
	if err := newRootCmd(loadApp).Execute(); err != nil {
		os.Exit(1)
	}
}

// loadApp wires one extractor against the configured provider.
func loadApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "warn",
		Mode:         cfg.Logger.Mode,
		Encoding:     "console",
		ColorEnabled: isatty.IsTerminal(os.Stderr.Fd()),
	})

	provider, err := llmprovider.InitializeProvider(&cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("initializing LLM provider: %w", err)
	}

	parser, err := datemath.NewParser(cfg.Dashboard.Timezone)
	if err != nil {
		return nil, err
	}

	var extractor schedule.Extractor = usecase.New(
		logger,
		llmprovider.NewManager(provider, &llmprovider.Config{Timeout: cfg.Extraction.Timeout}, logger),
		memory.New(),
		usecase.Config{
			Timeout:     cfg.Extraction.Timeout,
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
		},
	)

	return &app{extractor: extractor, parser: parser, now: time.Now}, nil
}
