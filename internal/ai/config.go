package ai

import (
	"os"
	"strconv"
)

// Config holds configuration for the suggestion generator.
type Config struct {
	Enabled     bool
	LogCalls    bool
	Endpoint    string
	Model       string
	TimeoutMs   int
	MaxRetries  int
	Temperature float64
	MaxTokens   int
}

// DefaultConfig returns a Config with sensible defaults. Generation is
// disabled by default; the fallback set serves until it is switched on.
func DefaultConfig() Config {
	return Config{
		Enabled:     false,
		LogCalls:    false,
		Endpoint:    "http://localhost:11434",
		Model:       "llama3.2",
		TimeoutMs:   15000,
		MaxRetries:  1,
		Temperature: 0.4,
		MaxTokens:   1024,
	}
}

// LoadConfig reads generator configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("DAYFLOW_AI_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("DAYFLOW_AI_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("DAYFLOW_AI_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("DAYFLOW_AI_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("DAYFLOW_AI_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("DAYFLOW_AI_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("DAYFLOW_AI_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 2 {
			cfg.Temperature = f
		}
	}
	return cfg
}
