package provider

import (
	"os"
	"strconv"
)

// Config holds all provider credentials and tuning. It is built once (from
// the environment or by the caller directly) and passed in at construction;
// adapters never read ambient state mid-call.
type Config struct {
	GeminiAPIKey   string
	GeminiModel    string
	GeminiEndpoint string

	OpenRouterAPIKey   string
	OpenRouterModel    string
	OpenRouterEndpoint string

	// TimeoutMs bounds each provider call. The upstream design left provider
	// calls unbounded; a hung provider must trigger fallback, not a hung
	// request, so every adapter applies this via context.
	TimeoutMs int

	LogCalls bool
}

// DefaultConfig returns a Config with production endpoints and no keys.
func DefaultConfig() Config {
	return Config{
		GeminiModel:        "gemini-2.0-flash-exp",
		GeminiEndpoint:     "https://generativelanguage.googleapis.com",
		OpenRouterModel:    "anthropic/claude-3.5-sonnet",
		OpenRouterEndpoint: "https://openrouter.ai/api/v1",
		TimeoutMs:          15000,
	}
}

// LoadConfig reads provider configuration from DRIVELINE_* environment
// variables, falling back to defaults for anything unset.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("DRIVELINE_GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v := os.Getenv("DRIVELINE_GEMINI_MODEL"); v != "" {
		cfg.GeminiModel = v
	}
	if v := os.Getenv("DRIVELINE_GEMINI_ENDPOINT"); v != "" {
		cfg.GeminiEndpoint = v
	}
	if v := os.Getenv("DRIVELINE_OPENROUTER_API_KEY"); v != "" {
		cfg.OpenRouterAPIKey = v
	}
	if v := os.Getenv("DRIVELINE_OPENROUTER_MODEL"); v != "" {
		cfg.OpenRouterModel = v
	}
	if v := os.Getenv("DRIVELINE_OPENROUTER_ENDPOINT"); v != "" {
		cfg.OpenRouterEndpoint = v
	}
	if v := os.Getenv("DRIVELINE_PROVIDER_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("DRIVELINE_LOG_PROVIDER_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
