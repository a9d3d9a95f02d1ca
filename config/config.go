// Package config manages application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration for transcript collection.
type Config struct {
	// APIKey is the YouTube Data API v3 key.
	APIKey string
	// YtdlpPath is the path to the yt-dlp executable (default: "yt-dlp").
	YtdlpPath string
	// ChannelIDTimeout bounds yt-dlp channel resolution (default 15s).
	ChannelIDTimeout time.Duration
	// APITimeout bounds each Data API request (default 5s).
	APITimeout time.Duration
	// Language is the preferred transcript language code (default "en").
	Language string
	// MaxPages caps playlist pagination per run. 0 means unbounded.
	MaxPages int
}

// DefaultConfig returns configuration with safe defaults.
func DefaultConfig() *Config {
	return &Config{
		YtdlpPath:        "yt-dlp",
		ChannelIDTimeout: 15 * time.Second,
		APITimeout:       5 * time.Second,
		Language:         "en",
		MaxPages:         0,
	}
}

// Load loads configuration from a .env file (if present) and environment
// variables, then validates it. Env vars take precedence over the .env file.
// The API key is read once here and passed to consumers explicitly; nothing
// reads it from the environment at call time.
func Load() (*Config, error) {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg := DefaultConfig()
	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromEnv overrides config with environment variables.
func (c *Config) loadFromEnv() {
	if v := os.Getenv("API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("WTS_YTDLP_PATH"); v != "" {
		c.YtdlpPath = v
	}
	if v := os.Getenv("WTS_CHANNEL_ID_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.ChannelIDTimeout = d
		}
	}
	if v := os.Getenv("WTS_API_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.APITimeout = d
		}
	}
	if v := os.Getenv("WTS_LANGUAGE"); v != "" {
		c.Language = v
	}
	if v := os.Getenv("WTS_MAX_PAGES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxPages = n
		}
	}
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	if c.YtdlpPath == "" {
		return fmt.Errorf("ytdlp_path must not be empty")
	}
	if c.ChannelIDTimeout <= 0 {
		return fmt.Errorf("channel_id_timeout must be positive")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("api_timeout must be positive")
	}
	if c.MaxPages < 0 {
		return fmt.Errorf("max_pages must be non-negative")
	}
	return nil
}
