// Package main is the entry point for Scoundrel.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/samdwyer/scoundrel/internal/config"
	"github.com/samdwyer/scoundrel/internal/game"
	"github.com/samdwyer/scoundrel/internal/gamedata"
	"github.com/samdwyer/scoundrel/internal/telemetry"
	"github.com/samdwyer/scoundrel/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	logger, err := telemetry.NewLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	setupOTelEnv(cfg.Telemetry)
	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry.Enabled)
	if err != nil {
		// Continue without telemetry - game still works
		logger.Warn("telemetry setup failed", zap.Error(err))
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Warn("telemetry shutdown failed", zap.Error(err))
			}
		}()
	}

	narration, err := gamedata.LoadNarration()
	if err != nil {
		return fmt.Errorf("load narration: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logger.Info("scoundrel starting", zap.Int64("seed", seed))

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer screen.Close()
	term := ui.NewTerminal(screen, narration, logger)

	for {
		action, err := term.Menu(ctx)
		if errors.Is(err, game.ErrAbandoned) {
			return nil
		}
		if err != nil {
			return err
		}

		switch action {
		case game.MenuPlay:
			g := game.New(rng, game.WithLogger(logger), game.WithNarration(narration))
			if _, err := g.Play(ctx, term); err != nil && !errors.Is(err, game.ErrAbandoned) {
				return err
			}
		case game.MenuRules:
			term.ShowRules()
		case game.MenuQuit:
			return nil
		}
	}
}

// setupOTelEnv configures OTEL environment variables from our config.
func setupOTelEnv(cfg config.Telemetry) {
	if !cfg.Enabled {
		return
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Endpoint)
	if cfg.APIKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", cfg.APIKey, cfg.Dataset))
	}
}
