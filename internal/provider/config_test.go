package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "gemini-2.0-flash-exp", cfg.GeminiModel)
	assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.GeminiEndpoint)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.OpenRouterEndpoint)
	assert.Equal(t, 15000, cfg.TimeoutMs)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DRIVELINE_GEMINI_API_KEY", "g-key")
	t.Setenv("DRIVELINE_OPENROUTER_API_KEY", "or-key")
	t.Setenv("DRIVELINE_PROVIDER_TIMEOUT_MS", "5000")
	t.Setenv("DRIVELINE_GEMINI_MODEL", "gemini-next")

	cfg := LoadConfig()

	assert.Equal(t, "g-key", cfg.GeminiAPIKey)
	assert.Equal(t, "or-key", cfg.OpenRouterAPIKey)
	assert.Equal(t, 5000, cfg.TimeoutMs)
	assert.Equal(t, "gemini-next", cfg.GeminiModel)
}

func TestLoadConfig_IgnoresInvalidTimeout(t *testing.T) {
	t.Setenv("DRIVELINE_PROVIDER_TIMEOUT_MS", "not-a-number")

	cfg := LoadConfig()
	assert.Equal(t, 15000, cfg.TimeoutMs)
}
