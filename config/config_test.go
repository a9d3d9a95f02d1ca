package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.YtdlpPath != "yt-dlp" {
		t.Errorf("YtdlpPath = %q, want %q", cfg.YtdlpPath, "yt-dlp")
	}
	if cfg.ChannelIDTimeout != 15*time.Second {
		t.Errorf("ChannelIDTimeout = %v, want 15s", cfg.ChannelIDTimeout)
	}
	if cfg.APITimeout != 5*time.Second {
		t.Errorf("APITimeout = %v, want 5s", cfg.APITimeout)
	}
	if cfg.Language != "en" {
		t.Errorf("Language = %q, want %q", cfg.Language, "en")
	}
	if cfg.MaxPages != 0 {
		t.Errorf("MaxPages = %d, want 0 (unbounded)", cfg.MaxPages)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("API_KEY", "secret-key")
	t.Setenv("WTS_YTDLP_PATH", "/opt/bin/yt-dlp")
	t.Setenv("WTS_CHANNEL_ID_TIMEOUT", "30s")
	t.Setenv("WTS_API_TIMEOUT", "2s")
	t.Setenv("WTS_LANGUAGE", "de")
	t.Setenv("WTS_MAX_PAGES", "40")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.APIKey != "secret-key" {
		t.Errorf("APIKey = %q, want %q", cfg.APIKey, "secret-key")
	}
	if cfg.YtdlpPath != "/opt/bin/yt-dlp" {
		t.Errorf("YtdlpPath = %q, want %q", cfg.YtdlpPath, "/opt/bin/yt-dlp")
	}
	if cfg.ChannelIDTimeout != 30*time.Second {
		t.Errorf("ChannelIDTimeout = %v, want 30s", cfg.ChannelIDTimeout)
	}
	if cfg.APITimeout != 2*time.Second {
		t.Errorf("APITimeout = %v, want 2s", cfg.APITimeout)
	}
	if cfg.Language != "de" {
		t.Errorf("Language = %q, want %q", cfg.Language, "de")
	}
	if cfg.MaxPages != 40 {
		t.Errorf("MaxPages = %d, want 40", cfg.MaxPages)
	}
}

func TestLoadIgnoresMalformedEnvValues(t *testing.T) {
	t.Setenv("WTS_API_TIMEOUT", "not-a-duration")
	t.Setenv("WTS_MAX_PAGES", "many")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.APITimeout != 5*time.Second {
		t.Errorf("APITimeout = %v, want default 5s", cfg.APITimeout)
	}
	if cfg.MaxPages != 0 {
		t.Errorf("MaxPages = %d, want default 0", cfg.MaxPages)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"empty ytdlp path", func(c *Config) { c.YtdlpPath = "" }, true},
		{"zero channel timeout", func(c *Config) { c.ChannelIDTimeout = 0 }, true},
		{"negative api timeout", func(c *Config) { c.APITimeout = -time.Second }, true},
		{"negative max pages", func(c *Config) { c.MaxPages = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
