package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	defaults := NewDefaultConfig()
	if cfg.BaseURL != defaults.BaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, defaults.BaseURL)
	}
	if cfg.TimeoutSeconds != defaults.TimeoutSeconds {
		t.Errorf("TimeoutSeconds = %d, want %d", cfg.TimeoutSeconds, defaults.TimeoutSeconds)
	}
	if cfg.Greeting != defaults.Greeting {
		t.Errorf("Greeting = %q, want default greeting", cfg.Greeting)
	}
	if cfg.ListenAddr != defaults.ListenAddr {
		t.Errorf("ListenAddr = %q, want %q", cfg.ListenAddr, defaults.ListenAddr)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("base_url", "http://example.test:9000")
	viper.Set("timeout_seconds", 5)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.BaseURL != "http://example.test:9000" {
		t.Errorf("BaseURL = %q, want override", cfg.BaseURL)
	}
	if cfg.Timeout() != 5*time.Second {
		t.Errorf("Timeout() = %v, want 5s", cfg.Timeout())
	}
}
