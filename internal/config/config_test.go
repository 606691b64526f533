package config

import (
	"os"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"SCOUNDREL_SEED",
		"SCOUNDREL_LOG_FILE",
		"SCOUNDREL_LOG_LEVEL",
		"SCOUNDREL_TELEMETRY_ENABLED",
		"HONEYCOMB_DATASET",
	} {
		// Setenv registers the restore; Unsetenv makes the key absent for the test.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
	if cfg.LogFile != "scoundrel.log" {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, "scoundrel.log")
	}
	if cfg.LogLevel != zapcore.InfoLevel {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry should be disabled by default")
	}
	if cfg.Telemetry.Dataset != "scoundrel" {
		t.Errorf("Dataset = %q, want %q", cfg.Telemetry.Dataset, "scoundrel")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SCOUNDREL_SEED", "12345")
	t.Setenv("SCOUNDREL_LOG_FILE", "/tmp/game.log")
	t.Setenv("SCOUNDREL_LOG_LEVEL", "debug")
	t.Setenv("SCOUNDREL_TELEMETRY_ENABLED", "true")
	t.Setenv("HONEYCOMB_API_KEY", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Seed != 12345 {
		t.Errorf("Seed = %d, want 12345", cfg.Seed)
	}
	if cfg.LogFile != "/tmp/game.log" {
		t.Errorf("LogFile = %q, want /tmp/game.log", cfg.LogFile)
	}
	if cfg.LogLevel != zapcore.DebugLevel {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if !cfg.Telemetry.Enabled || cfg.Telemetry.APIKey != "secret" {
		t.Errorf("Telemetry = %+v, want enabled with key", cfg.Telemetry)
	}
}

func TestLoadInvalidSeed(t *testing.T) {
	t.Setenv("SCOUNDREL_SEED", "not-a-number")

	if _, err := Load(); err == nil {
		t.Error("Load() with a bad seed should fail")
	}
}
