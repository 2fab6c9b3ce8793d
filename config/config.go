package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Supported LLM providers.
const (
	ProviderGemini   = "gemini"
	ProviderDeepSeek = "deepseek"
	ProviderQwen     = "qwen"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// LLM Provider
	LLM LLMConfig

	// Dashboard specifics
	Extraction ExtractionConfig
	QuickAdd   QuickAddConfig
	Dashboard  DashboardConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port           int
	Mode           string
	AllowedOrigins []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// LLMConfig holds configuration for the single active LLM provider
type LLMConfig struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float64
	MaxTokens   int
}

// ExtractionConfig bounds outbound extraction calls.
type ExtractionConfig struct {
	Timeout         time.Duration
	RateLimitPerMin int
	RateLimitBurst  int
}

type QuickAddConfig struct {
	SessionTTL  time.Duration
	MaxSessions int
}

type DashboardConfig struct {
	Timezone     string
	SeedDemoData bool
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	return load(viper.New(), "./config", ".", "/etc/app/")
}

func load(v *viper.Viper, paths ...string) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.AllowedOrigins = v.GetStringSlice("http_server.allowed_origins")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// LLM Provider
	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(v.GetString("llm.provider")))
	cfg.LLM.Model = v.GetString("llm.model")
	cfg.LLM.APIKey = expandEnvVar(v, v.GetString("llm.api_key"))
	cfg.LLM.BaseURL = v.GetString("llm.base_url")
	cfg.LLM.Temperature = v.GetFloat64("llm.temperature")
	cfg.LLM.MaxTokens = v.GetInt("llm.max_tokens")
	if key := v.GetString("llm_api_key"); key != "" {
		cfg.LLM.APIKey = key
	}
	if key := v.GetString("gemini_api_key"); key != "" && cfg.LLM.Provider == ProviderGemini {
		cfg.LLM.APIKey = key
	}

	// Extraction
	cfg.Extraction.Timeout = v.GetDuration("extraction.timeout")
	cfg.Extraction.RateLimitPerMin = v.GetInt("extraction.rate_limit_per_min")
	cfg.Extraction.RateLimitBurst = v.GetInt("extraction.rate_limit_burst")

	// Quick add
	cfg.QuickAdd.SessionTTL = v.GetDuration("quick_add.session_ttl")
	cfg.QuickAdd.MaxSessions = v.GetInt("quick_add.max_sessions")

	// Dashboard
	cfg.Dashboard.Timezone = v.GetString("dashboard.timezone")
	cfg.Dashboard.SeedDemoData = v.GetBool("dashboard.seed_demo_data")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	// LLM defaults
	v.SetDefault("llm.provider", ProviderGemini)
	v.SetDefault("llm.temperature", 0.2)
	v.SetDefault("llm.max_tokens", 1024)

	v.SetDefault("extraction.timeout", "15s")
	v.SetDefault("extraction.rate_limit_per_min", 30)
	v.SetDefault("extraction.rate_limit_burst", 5)

	v.SetDefault("quick_add.session_ttl", "10m")
	v.SetDefault("quick_add.max_sessions", 128)

	v.SetDefault("dashboard.timezone", "Asia/Seoul")
	v.SetDefault("dashboard.seed_demo_data", true)
}

// validate checks the values the service cannot start without.
func validate(cfg *Config) error {
	switch cfg.LLM.Provider {
	case ProviderGemini, ProviderDeepSeek, ProviderQwen:
	default:
		return fmt.Errorf("llm.provider: unsupported provider %q", cfg.LLM.Provider)
	}
	if cfg.Extraction.Timeout <= 0 {
		return fmt.Errorf("extraction.timeout must be positive")
	}
	if cfg.Extraction.RateLimitPerMin <= 0 {
		return fmt.Errorf("extraction.rate_limit_per_min must be positive")
	}
	if cfg.QuickAdd.SessionTTL <= 0 || cfg.QuickAdd.MaxSessions <= 0 {
		return fmt.Errorf("quick_add: session_ttl and max_sessions must be positive")
	}
	if _, err := time.LoadLocation(cfg.Dashboard.Timezone); err != nil {
		return fmt.Errorf("dashboard.timezone: %w", err)
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}
