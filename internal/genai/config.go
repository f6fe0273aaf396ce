package genai

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the generative-AI subsystem.
type Config struct {
	APIKey       string
	Endpoint     string
	TextModel    string
	VideoModel   string
	Temperature  float64
	TopP         float64
	TopK         int
	TimeoutMs    int
	PollInterval time.Duration
	Resolution   string
	LogCalls     bool
}

// DefaultConfig returns a Config with the production endpoint and the
// model/sampling defaults the assistant ships with. The API key is
// intentionally empty: a missing key disables the feature, not the app.
func DefaultConfig() Config {
	return Config{
		Endpoint:     "https://generativelanguage.googleapis.com/v1beta",
		TextModel:    "gemini-3-pro-preview",
		VideoModel:   "veo-3.1-fast-generate-preview",
		Temperature:  0.7,
		TopP:         0.95,
		TopK:         40,
		TimeoutMs:    60000,
		PollInterval: 10 * time.Second,
		Resolution:   "720p",
	}
}

// LoadConfig reads generative-AI configuration from environment
// variables, falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("PAMOUT_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("PAMOUT_GENAI_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("PAMOUT_TEXT_MODEL"); v != "" {
		cfg.TextModel = v
	}
	if v := os.Getenv("PAMOUT_VIDEO_MODEL"); v != "" {
		cfg.VideoModel = v
	}
	if v := os.Getenv("PAMOUT_GENAI_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("PAMOUT_VIDEO_POLL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PollInterval = time.Duration(n) * time.Millisecond
		}
	}
	if v := os.Getenv("PAMOUT_GENAI_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
