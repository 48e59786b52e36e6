// arena is a terminal front-end and headless runner for the ortho-arena
// combat and interaction simulation.
//
// Usage:
//
//	arena list               - List available levels
//	arena play [level]       - Play a level (menu when no level is given)
//	arena serve              - Start SSH server for remote play
//	arena simulate <level>   - Run a scripted headless simulation
//	arena runs [level]       - Show recorded runs
//	arena data               - Print the loaded static data tables
//
// Global flags:
//
//	--config <path>  - Arena config file (.yaml or .toml)
//	--tables <path>  - Static data tables file
//	--fps <rate>     - Override tick rate
//	--seed <value>   - Set RNG seed for reproducible runs
//	--db <path>      - Set database path (default: ~/.arena/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import levels to register them
	_ "github.com/vovakirdan/ortho-arena/internal/levels"
)

var (
	// Global flags
	flagConfig   string
	flagTables   string
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Ortho Arena - top-down combat sandbox in your terminal",
	Long: `Ortho Arena runs a fixed-tick combat and interaction simulation:
weapons with fire modes and magazines, projectiles, ground loot and a
two-slot loadout with stackable items.

Available commands:
  list      - Show all available levels
  play      - Play a level (interactive menu without arguments)
  serve     - Start SSH server for remote play
  simulate  - Headless scripted run, optional websocket HUD feed
  runs      - View recorded runs
  data      - Print the static data tables

Examples:
  arena list
  arena play range
  arena serve --ssh :2222
  arena simulate warehouse --ticks 600 --hud 127.0.0.1:8089
  arena runs range`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to arena config (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagTables, "tables", "", "Path to static data tables (.yaml or .toml)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, else time based)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to runs database (default: ~/.arena/runs.db)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(dataCmd)
}
