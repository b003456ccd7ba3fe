package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/kevinwkt/authenticator/internal/authorizer"
)

// Config aggregates application configuration values.
type Config struct {
	Rules   RulesConfig
	Logging LoggingConfig
}

// RulesConfig carries the window and allowance for each time-based rule.
type RulesConfig struct {
	FrequencyWindow time.Duration
	MaxFrequency    int
	RepeatWindow    time.Duration
	MaxRepetition   int
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level  string
	Format string // text|json
}

const (
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Rules: RulesConfig{
			FrequencyWindow: authorizer.FrequencyWindow,
			MaxFrequency:    parseIntWithDefault("MAX_FREQUENCY", authorizer.MaxFrequency),
			RepeatWindow:    authorizer.RepeatWindow,
			MaxRepetition:   parseIntWithDefault("MAX_REPETITION", authorizer.MaxRepetition),
		},
		Logging: LoggingConfig{
			Level:  valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format: valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
		},
	}

	if v := os.Getenv("FREQUENCY_WINDOW"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid FREQUENCY_WINDOW: %w", err)
		}
		cfg.Rules.FrequencyWindow = d
	}

	if v := os.Getenv("REPEAT_WINDOW"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid REPEAT_WINDOW: %w", err)
		}
		cfg.Rules.RepeatWindow = d
	}

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseIntWithDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			return val
		}
	}
	return fallback
}
