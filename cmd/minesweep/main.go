// Package main is the entry point for the terminal-UI minesweeper.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/samdwyer/minesweep/internal/app"
	"github.com/samdwyer/minesweep/internal/config"
	"github.com/samdwyer/minesweep/internal/game"
	"github.com/samdwyer/minesweep/internal/gamedata"
)

func main() {
	// Load .env and environment; flags override both.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a, err := app.Start(ctx, cfg, "tui")
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer a.Close(context.Background())

	g, err := game.New(a.Engine, a.NewEngine, gamedata.MustLoadTheme(), a.Preset, a.Log)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}
	defer g.Close()

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}
