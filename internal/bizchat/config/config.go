package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// DefaultGreeting seeds the transcript on start and after a clear.
const DefaultGreeting = "¡Hola! Soy el asistente de BizChat. ¿En qué puedo ayudarte?"

// Config holds the configuration for the bizchat client and dev server.
type Config struct {
	BaseURL        string `toml:"base_url" mapstructure:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds" mapstructure:"timeout_seconds"`
	Greeting       string `toml:"greeting" mapstructure:"greeting"`
	ListenAddr     string `toml:"listen_addr" mapstructure:"listen_addr"`       // serve: bind address
	KnowledgeBase  string `toml:"knowledge_base" mapstructure:"knowledge_base"` // serve: intents file, empty = built-in
}

// NewDefaultConfig returns a new Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		BaseURL:        "http://localhost:8000",
		TimeoutSeconds: 30,
		Greeting:       DefaultGreeting,
		ListenAddr:     ":8000",
		KnowledgeBase:  "",
	}
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LoadConfig loads configuration from viper.
func LoadConfig() (*Config, error) {
	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %v", err)
	}

	defaults := NewDefaultConfig()
	if config.BaseURL == "" {
		config.BaseURL = defaults.BaseURL
	}
	if config.TimeoutSeconds <= 0 {
		config.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if config.Greeting == "" {
		config.Greeting = defaults.Greeting
	}
	if config.ListenAddr == "" {
		config.ListenAddr = defaults.ListenAddr
	}

	return config, nil
}
