package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"focus-dashboard/config"
	_ "focus-dashboard/docs" // Swagger docs
	"focus-dashboard/internal/httpserver"
	quickaddHTTP "focus-dashboard/internal/quickadd/delivery/http"
	quickaddUC "focus-dashboard/internal/quickadd/usecase"
	scheduleHTTP "focus-dashboard/internal/schedule/delivery/http"
	scheduleRepo "focus-dashboard/internal/schedule/repository/memory"
	scheduleUC "focus-dashboard/internal/schedule/usecase"
	settingsHTTP "focus-dashboard/internal/settings/delivery/http"
	settingsUC "focus-dashboard/internal/settings/usecase"
	statsHTTP "focus-dashboard/internal/stats/delivery/http"
	statsUC "focus-dashboard/internal/stats/usecase"
	todoHTTP "focus-dashboard/internal/todo/delivery/http"
	todoRepo "focus-dashboard/internal/todo/repository/memory"
	todoUC "focus-dashboard/internal/todo/usecase"
	"focus-dashboard/pkg/datemath"
	"focus-dashboard/pkg/llmprovider"
	"focus-dashboard/pkg/log"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

// @title       Focus Dashboard API
// @description Personal schedule dashboard with natural-language quick add, todos and weekly stats.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Focus Dashboard...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	loc, err := time.LoadLocation(cfg.Dashboard.Timezone)
	if err != nil {
		logger.Errorf(ctx, "Invalid dashboard timezone %q: %v", cfg.Dashboard.Timezone, err)
		return
	}

	// 3. LLM provider
	provider, err := llmprovider.InitializeProvider(&cfg.LLM)
	if err != nil {
		// The dashboard still serves; extraction reports ServiceUnavailable.
		logger.Warnf(ctx, "LLM provider not available: %v", err)
	} else {
		logger.Infof(ctx, "LLM provider: %s (%s)", provider.Name(), provider.Model())
	}
	llm := llmprovider.NewManager(provider, &llmprovider.Config{Timeout: cfg.Extraction.Timeout}, logger)

	// 4. Domains
	schedules := scheduleUC.New(logger, llm, scheduleRepo.New(), scheduleUC.Config{
		Timeout:     cfg.Extraction.Timeout,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	})
	quickAdd := quickaddUC.New(logger, schedules, quickaddUC.Config{
		SessionTTL:      cfg.QuickAdd.SessionTTL,
		MaxSessions:     cfg.QuickAdd.MaxSessions,
		RateLimitPerMin: cfg.Extraction.RateLimitPerMin,
		RateLimitBurst:  cfg.Extraction.RateLimitBurst,
	})
	todos := todoUC.New(logger, todoRepo.New())
	stats := statsUC.New(logger, schedules, loc)
	settings := settingsUC.New(logger, settingsUC.Config{
		Provider:          cfg.LLM.Provider,
		Model:             llm.Model(),
		APIKey:            cfg.LLM.APIKey,
		Timezone:          cfg.Dashboard.Timezone,
		ExtractionTimeout: cfg.Extraction.Timeout,
		SeedDemoData:      cfg.Dashboard.SeedDemoData,
		Version:           Version,
	})

	if cfg.Dashboard.SeedDemoData {
		today := datemath.FormatDate(time.Now().In(loc))
		if err := schedules.Seed(ctx, today); err != nil {
			logger.Warnf(ctx, "Failed to seed schedules: %v", err)
		}
		if err := todos.Seed(ctx); err != nil {
			logger.Warnf(ctx, "Failed to seed todos: %v", err)
		}
		logger.Infof(ctx, "Demo data seeded for %s", today)
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AllowedOrigins:  cfg.HTTPServer.AllowedOrigins,
		ScheduleHandler: scheduleHTTP.New(logger, schedules),
		QuickAddHandler: quickaddHTTP.New(logger, quickAdd, loc),
		TodoHandler:     todoHTTP.New(logger, todos),
		StatsHandler:    statsHTTP.New(logger, stats),
		SettingsHandler: settingsHTTP.New(logger, settings),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
