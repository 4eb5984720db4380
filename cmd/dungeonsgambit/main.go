// Package main is the entry point for Dungeon's Gambit.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/samdwyer/dungeonsgambit/internal/config"
	"github.com/samdwyer/dungeonsgambit/internal/game"
	"github.com/samdwyer/dungeonsgambit/internal/telemetry"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run plays until the player quits and returns the process exit code.
func run(args []string) int {
	flags := flag.NewFlagSet("dungeonsgambit", flag.ContinueOnError)
	configPath := flags.String("config", config.DefaultPath, "path to an optional YAML settings file")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	// Loads .env as well, so HONEYCOMB_DUNGEON_API_KEY can live there
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}

	// The terminal belongs to tcell once the game starts
	logger, closeLog := openLog(cfg.LogFile)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, telemetry.Options{
		Enabled: cfg.Telemetry.Enabled,
		APIKey:  cfg.Telemetry.APIKey,
		Dataset: cfg.Telemetry.Dataset,
	})
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	g, err := game.New(*cfg, logger)
	if err != nil {
		log.Printf("Failed to initialize game: %v", err)
		return 1
	}

	if err := g.Run(ctx); err != nil {
		log.Printf("Game error: %v", err)
		return 1
	}
	return 0
}

// openLog returns a logger writing to path, or discarding when path is empty.
func openLog(path string) (*log.Logger, func()) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("Note: log file not opened: %v", err)
		return log.New(io.Discard, "", 0), func() {}
	}
	return log.New(f, "dungeonsgambit ", log.LstdFlags|log.Lmicroseconds), func() { f.Close() }
}
