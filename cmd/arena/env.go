package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ortho-arena/internal/config"
	"github.com/vovakirdan/ortho-arena/internal/data"
	"github.com/vovakirdan/ortho-arena/internal/logging"
	"github.com/vovakirdan/ortho-arena/internal/storage"
)

// env is everything a command needs after flag parsing.
type env struct {
	cfg    config.ArenaConfig
	tables *data.Tables
	logger *log.Logger
}

// loadEnv loads config and tables and applies the global flag overrides.
// Logs go to out so they do not tear the alternate screen.
func loadEnv(out io.Writer) (env, error) {
	cfg, err := config.LoadArena(flagConfig)
	if err != nil {
		return env{}, err
	}
	tables, err := config.LoadTables(flagTables)
	if err != nil {
		return env{}, err
	}

	if flagFPS > 0 {
		cfg.Simulation.TickRate = flagFPS
	}
	if flagSeed != 0 {
		cfg.Simulation.Seed = flagSeed
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}

	logger := logging.New(logging.Options{
		Level:      cfg.Logging.Level,
		Prefix:     "arena",
		Timestamps: true,
		Output:     out,
	})
	return env{cfg: cfg, tables: tables, logger: logger}, nil
}

// dbPath resolves the runs database: flag, then config, then ~/.arena/runs.db.
func (e env) dbPath() string {
	if flagDBPath != "" {
		return flagDBPath
	}
	if e.cfg.Storage.Path != "" {
		return e.cfg.Storage.Path
	}
	return filepath.Join(config.DefaultDataDir(), "runs.db")
}

func (e env) openStore() (*storage.Store, error) {
	store, err := storage.Open(e.dbPath())
	if err != nil {
		return nil, fmt.Errorf("opening runs database: %w", err)
	}
	return store, nil
}
