package server

import (
	"fmt"

	"github.com/caarlos0/env/v9"
)

// Config is the process configuration, read from the environment.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port int `env:"PORT" envDefault:"8000"`
	// Provider selects the model backend ("openai" or "anthropic").
	Provider string `env:"MODEL_PROVIDER" envDefault:"openai"`
	// ModelName overrides the provider's default model.
	ModelName string `env:"MODEL_NAME"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// LogFormat is "json" or "text".
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// ConfigFromEnv parses the configuration from process environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address derived from Port.
func (c Config) Addr() string { return fmt.Sprintf(":%d", c.Port) }
