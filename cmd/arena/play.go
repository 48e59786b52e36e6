package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ortho-arena/internal/config"
	"github.com/vovakirdan/ortho-arena/internal/core"
	"github.com/vovakirdan/ortho-arena/internal/platform/tui"
	"github.com/vovakirdan/ortho-arena/internal/registry"
	"github.com/vovakirdan/ortho-arena/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the specified level, or pick one from a menu when no
level is given.

Controls:
  WASD          - Move
  Arrows/IJKL   - Aim
  Space         - Fire (hold for automatic weapons)
  E             - Pick up
  Tab           - Swap weapon
  1/2           - Select primary/secondary
  R             - Reload
  P             - Pause
  Esc/B         - Pause, then back to menu
  Ctrl+S        - Screenshot
  Q/Ctrl+C      - Quit

Examples:
  arena play
  arena play range
  arena play warehouse --seed 42
  arena play range --config ./my-arena.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// playLog opens ~/.arena/arena.log for the duration of a TUI session.
func playLog() (io.Writer, func()) {
	dir := config.DefaultDataDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "arena.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}

func playerName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return "local"
}

func runPlay(cmd *cobra.Command, args []string) error {
	out, closeLog := playLog()
	defer closeLog()

	e, err := loadEnv(out)
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = width, height
	cfg.Seed = e.cfg.Simulation.Seed
	if e.cfg.Simulation.TickRate > 0 {
		cfg.TickRate = e.cfg.Simulation.TickRate
	}

	// Open run storage
	store, err := e.openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		// Continue without storage - the arena still works
		store = nil
	}
	defer func(s *storage.Store) {
		if s != nil {
			s.Close()
		}
	}(store)

	deps := tui.Deps{Config: e.cfg, Tables: e.tables, Store: store, Logger: e.logger}

	if len(args) == 0 {
		return tui.RunSession(deps, cfg, playerName())
	}

	level, err := registry.Create(args[0])
	if err != nil {
		return fmt.Errorf("%w\nRun 'arena list' to see available levels", err)
	}
	return tui.Run(level, deps, cfg, playerName())
}
