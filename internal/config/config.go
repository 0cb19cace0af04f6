package config

import (
	"os"
	"strconv"
	"time"

	"triagelock/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	LLM      LLMConfig
	Database DatabaseConfig
	Session  SessionConfig
	Matcher  MatcherConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// LLMConfig holds external model settings
type LLMConfig struct {
	Provider    string // "openai", "gemini" or "mock"
	APIKey      string
	Model       string
	BaseURL     string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
	RPM         int // requests per minute budget for the call limiter
}

// DatabaseConfig holds optional persistence settings. An empty URL selects
// the in-memory stores.
type DatabaseConfig struct {
	URL string
}

// SessionConfig holds per-session credit settings
type SessionConfig struct {
	StartingCredits int
}

// MatcherConfig holds the domain-mismatch heuristic thresholds. These are
// tuning values, not a fixed law, so they are env-overridable.
type MatcherConfig struct {
	MinBestHits    int
	DominanceRatio float64
}

const (
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
)

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		LLM:      loadLLMConfig(),
		Database: DatabaseConfig{URL: getEnvOrDefault("DATABASE_URL", "")},
		Session: SessionConfig{
			StartingCredits: getEnvIntOrDefault("STARTING_CREDITS", 10),
		},
		Matcher: MatcherConfig{
			MinBestHits:    getEnvIntOrDefault("MATCHER_MIN_BEST_HITS", 2),
			DominanceRatio: getEnvFloatOrDefault("MATCHER_DOMINANCE_RATIO", 1.5),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

func loadLLMConfig() LLMConfig {
	provider := getEnvOrDefault("LLM_PROVIDER", "openai")

	cfg := LLMConfig{
		Provider:    provider,
		MaxTokens:   getEnvIntOrDefault("LLM_MAX_TOKENS", 4000),
		Temperature: getEnvFloatOrDefault("LLM_TEMPERATURE", 0.1),
		Timeout:     time.Duration(getEnvIntOrDefault("LLM_TIMEOUT_MS", 120000)) * time.Millisecond,
		RPM:         getEnvIntOrDefault("LLM_RPM", 60),
	}

	switch provider {
	case "gemini":
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
		cfg.Model = getEnvOrDefault("GEMINI_MODEL", "gemini-3-pro-preview")
		cfg.BaseURL = getEnvOrDefault("LLM_BASE_URL", defaultGeminiBaseURL)
	default:
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		cfg.Model = getEnvOrDefault("LLM_MODEL", "gpt-4o")
		cfg.BaseURL = getEnvOrDefault("LLM_BASE_URL", defaultOpenAIBaseURL)
	}
	return cfg
}

func validate(cfg *Config) error {
	switch cfg.LLM.Provider {
	case "openai":
		if cfg.LLM.APIKey == "" {
			return errors.ConfigInvalid("OPENAI_API_KEY is required when LLM_PROVIDER=openai")
		}
	case "gemini":
		if cfg.LLM.APIKey == "" {
			return errors.ConfigInvalid("GEMINI_API_KEY is required when LLM_PROVIDER=gemini")
		}
	case "mock":
		// no credentials needed
	default:
		return errors.ConfigInvalid("LLM_PROVIDER must be one of openai, gemini, mock")
	}

	if cfg.Session.StartingCredits <= 0 {
		return errors.ConfigInvalid("STARTING_CREDITS must be positive")
	}
	if cfg.Matcher.MinBestHits < 1 {
		return errors.ConfigInvalid("MATCHER_MIN_BEST_HITS must be at least 1")
	}
	if cfg.Matcher.DominanceRatio < 1.0 {
		return errors.ConfigInvalid("MATCHER_DOMINANCE_RATIO must be at least 1.0")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
