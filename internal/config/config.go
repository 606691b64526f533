// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
)

// Config holds game configuration options.
type Config struct {
	// Seed for shuffling the dungeon. Used for reproducible games.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `env:"SCOUNDREL_SEED" envDefault:"0"`

	// LogFile receives structured logs; the terminal itself is owned by the UI.
	LogFile  string        `env:"SCOUNDREL_LOG_FILE" envDefault:"scoundrel.log"`
	LogLevel zapcore.Level `env:"SCOUNDREL_LOG_LEVEL" envDefault:"info"`

	Telemetry Telemetry
}

// Telemetry configures trace export to Honeycomb over OTLP/HTTP.
type Telemetry struct {
	Enabled  bool   `env:"SCOUNDREL_TELEMETRY_ENABLED" envDefault:"false"`
	Endpoint string `env:"SCOUNDREL_OTLP_ENDPOINT" envDefault:"https://api.honeycomb.io"`
	APIKey   string `env:"HONEYCOMB_API_KEY"`
	Dataset  string `env:"HONEYCOMB_DATASET" envDefault:"scoundrel"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
