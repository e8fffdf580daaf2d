// Package main is the entry point for the plain-text minesweeper.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/samdwyer/minesweep/internal/app"
	"github.com/samdwyer/minesweep/internal/config"
	"github.com/samdwyer/minesweep/internal/textui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a, err := app.Start(ctx, cfg, "text")
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer a.Close(context.Background())

	session := textui.NewSession(a.Engine, os.Stdin, os.Stdout, a.Log)
	if err := session.Run(ctx); err != nil {
		log.Fatalf("Session error: %v", err)
	}
}
