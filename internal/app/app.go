// Package app wires configuration, logging, telemetry and the engine
// together for the command-line entry points.
package app

import (
	"context"
	"fmt"
	"log"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/minesweep/internal/config"
	"github.com/samdwyer/minesweep/internal/engine"
	"github.com/samdwyer/minesweep/internal/gamedata"
	"github.com/samdwyer/minesweep/internal/logging"
	"github.com/samdwyer/minesweep/internal/telemetry"
)

// App holds everything a frontend needs to run one session.
type App struct {
	Engine *engine.Engine
	Log    *logrus.Logger
	// Preset is the display name of the board, "Custom" when overridden.
	Preset string

	engineOpts        []engine.Option
	closeLog          func() error
	shutdownTelemetry func(context.Context) error
}

// Start validates cfg and builds the logger, tracer provider and engine.
func Start(ctx context.Context, cfg config.Config, frontend string) (*App, error) {
	presets, err := gamedata.LoadPresetRegistry()
	if err != nil {
		return nil, fmt.Errorf("load presets: %w", err)
	}
	if err := cfg.Validate(presets); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	width, height, mines, _ := cfg.Board(presets)
	policy, _ := cfg.Policy()
	level, _ := cfg.Level()

	logger, closeLog := logging.New(logging.Options{
		File:   cfg.LogFile,
		Level:  level,
		Format: cfg.LogFormat,
	})

	a := &App{
		Log:               logger,
		Preset:            presetName(cfg, presets),
		closeLog:          closeLog,
		shutdownTelemetry: func(context.Context) error { return nil },
	}

	shutdown, err := telemetry.Setup(ctx, telemetry.Options{
		Enabled:  cfg.Telemetry,
		APIKey:   cfg.HoneycombAPIKey,
		Dataset:  cfg.HoneycombDataset,
		Frontend: frontend,
	})
	if err != nil {
		// Not fatal; the game runs without traces.
		log.Printf("Warning: telemetry setup failed: %v", err)
		logger.WithError(err).Warn("telemetry disabled")
	} else {
		a.shutdownTelemetry = shutdown
	}

	a.engineOpts = []engine.Option{
		engine.WithSeed(cfg.Seed),
		engine.WithSafeZone(policy),
		engine.WithLogger(logger.WithField("frontend", frontend)),
		engine.WithTracer(telemetry.Tracer("engine")),
	}
	a.Engine, err = a.NewEngine(width, height, mines)
	if err != nil {
		a.Close(ctx)
		return nil, fmt.Errorf("create game: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"frontend": frontend,
		"preset":   a.Preset,
		"width":    width,
		"height":   height,
		"mines":    mines,
		"seed":     cfg.Seed,
	}).Info("starting")
	return a, nil
}

// NewEngine builds an engine of the given size with the configured seed,
// safe zone, logger and tracer.
func (a *App) NewEngine(width, height, mines int) (*engine.Engine, error) {
	return engine.New(width, height, mines, a.engineOpts...)
}

// Close flushes telemetry and closes the log file.
func (a *App) Close(ctx context.Context) {
	if err := a.shutdownTelemetry(ctx); err != nil {
		log.Printf("Error shutting down telemetry: %v", err)
	}
	if err := a.closeLog(); err != nil {
		log.Printf("Error closing log file: %v", err)
	}
}

func presetName(cfg config.Config, presets *gamedata.PresetRegistry) string {
	if cfg.Custom() {
		return "Custom"
	}
	return presets.GetByID(cfg.Preset).Name
}
