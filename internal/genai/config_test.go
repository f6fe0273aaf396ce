package genai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, "https://generativelanguage.googleapis.com/v1beta", cfg.Endpoint)
	assert.Equal(t, "gemini-3-pro-preview", cfg.TextModel)
	assert.Equal(t, "veo-3.1-fast-generate-preview", cfg.VideoModel)
	assert.InDelta(t, 0.7, cfg.Temperature, 0.001)
	assert.InDelta(t, 0.95, cfg.TopP, 0.001)
	assert.Equal(t, 40, cfg.TopK)
	assert.Equal(t, 10*time.Second, cfg.PollInterval)
	assert.Equal(t, "720p", cfg.Resolution)
	assert.False(t, cfg.LogCalls)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PAMOUT_API_KEY", "secret")
	t.Setenv("PAMOUT_GENAI_ENDPOINT", "http://localhost:9999/v1beta")
	t.Setenv("PAMOUT_TEXT_MODEL", "gemini-other")
	t.Setenv("PAMOUT_VIDEO_MODEL", "veo-other")
	t.Setenv("PAMOUT_GENAI_TIMEOUT_MS", "1500")
	t.Setenv("PAMOUT_VIDEO_POLL_MS", "250")
	t.Setenv("PAMOUT_GENAI_LOG_CALLS", "true")

	cfg := LoadConfig()

	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, "http://localhost:9999/v1beta", cfg.Endpoint)
	assert.Equal(t, "gemini-other", cfg.TextModel)
	assert.Equal(t, "veo-other", cfg.VideoModel)
	assert.Equal(t, 1500, cfg.TimeoutMs)
	assert.Equal(t, 250*time.Millisecond, cfg.PollInterval)
	assert.True(t, cfg.LogCalls)
}

func TestLoadConfig_IgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("PAMOUT_GENAI_TIMEOUT_MS", "not-a-number")
	t.Setenv("PAMOUT_VIDEO_POLL_MS", "-5")

	cfg := LoadConfig()

	assert.Equal(t, DefaultConfig().TimeoutMs, cfg.TimeoutMs)
	assert.Equal(t, 10*time.Second, cfg.PollInterval)
}
