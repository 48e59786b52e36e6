package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ortho-arena/internal/core"
	"github.com/vovakirdan/ortho-arena/internal/hudfeed"
	"github.com/vovakirdan/ortho-arena/internal/registry"
	"github.com/vovakirdan/ortho-arena/internal/sim"
	"github.com/vovakirdan/ortho-arena/internal/storage"
)

var (
	flagTicks    int
	flagHUDAddr  string
	flagRealtime bool
	flagNoSave   bool
	flagTimeline bool
	flagWeapon   string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <level>",
	Short: "Run a scripted headless simulation",
	Long: `Run a level without a terminal UI. A scripted player sweeps its aim,
fires in bursts, walks to the nearest loot and picks it up, reloads when
empty and swaps weapons every few seconds.

With --hud the snapshots are streamed as JSON over a websocket at
ws://<addr>/hud and the run is paced in real time.

Examples:
  arena simulate range
  arena simulate warehouse --ticks 1200 --seed 7 --timeline
  arena simulate range --hud 127.0.0.1:8089`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Number of ticks to simulate")
	simulateCmd.Flags().StringVar(&flagHUDAddr, "hud", "", "Serve the websocket HUD feed on this address")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks in real time (implied by --hud)")
	simulateCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run")
	simulateCmd.Flags().BoolVar(&flagTimeline, "timeline", false, "Print the event timeline")
	simulateCmd.Flags().StringVar(&flagWeapon, "weapon", "pistol", "Weapon granted at spawn (empty for none)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(os.Stderr)
	if err != nil {
		return err
	}

	level, err := registry.Create(args[0])
	if err != nil {
		return fmt.Errorf("%w\nRun 'arena list' to see available levels", err)
	}

	cfg := e.cfg
	if cmd.Flags().Changed("weapon") || cfg.Player.StartWeapon == "" {
		cfg.Player.StartWeapon = flagWeapon
	}
	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s, err := sim.New(sim.Options{
		Config: cfg,
		Tables: e.tables,
		Level:  level,
		Logger: e.logger,
		Seed:   seed,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var hub *hudfeed.Hub
	if flagHUDAddr != "" {
		hub = hudfeed.NewHub(e.logger)
		go func() {
			if err := hub.Serve(ctx, flagHUDAddr); err != nil {
				e.logger.Error("hud feed stopped", "err", err)
			}
		}()
		flagRealtime = true
	}

	var pace <-chan time.Time
	if flagRealtime {
		ticker := time.NewTicker(s.Context().Dt)
		defer ticker.Stop()
		pace = ticker.C
	}

	rate := cfg.Simulation.TickRate
loop:
	for i := 0; i < flagTicks; i++ {
		if pace != nil {
			select {
			case <-ctx.Done():
				break loop
			case <-pace:
			}
		} else if ctx.Err() != nil {
			break
		}

		s.Step(sweepIntent(s.Snapshot(), s.Tick(), rate))
		if hub != nil {
			hub.Publish(s.Snapshot())
		}
	}

	printSummary(s, seed)

	if !flagNoSave {
		store, err := e.openStore()
		if err != nil {
			return err
		}
		defer store.Close()
		id, err := store.SaveRun(storage.RecordFromSim(s, "simulate"))
		if err != nil {
			return err
		}
		fmt.Printf("Recorded run #%d\n", id)
	}
	return nil
}

// sweepIntent is the scripted player: aim rotates a quarter turn per
// second, fire toggles every quarter second, and the player walks to the
// nearest loot and interacts when in reach.
func sweepIntent(snap sim.Snapshot, tick uint64, rate int) core.Intent {
	if rate <= 0 {
		rate = 60
	}
	quarter := uint64(max(rate/4, 1))
	angle := float64(tick) / float64(rate) * math.Pi / 2

	in := core.Intent{
		Aim:      core.V3(math.Sin(angle), 0, -math.Cos(angle)),
		Firing:   (tick/quarter)%2 == 0,
		Interact: snap.Nearby != "",
	}

	if sel := snap.Loadout.Selected; sel != nil && sel.AmmoTracked && sel.Ammo == 0 && sel.Reserve > 0 {
		in.Reload = true
	}
	if tick > 0 && tick%uint64(3*rate) == 0 {
		in.ToggleWeapon = true
	}

	best := math.Inf(1)
	for _, l := range snap.Loot {
		dx, dz := l.Pos.X-snap.Player.X, l.Pos.Z-snap.Player.Z
		if d := dx*dx + dz*dz; d < best {
			best = d
			in.Move = core.Vec2{X: dx, Y: dz}.NormalizeOrZero()
		}
	}
	return in
}

func printSummary(s *sim.Simulation, seed int64) {
	st := s.Stats()
	fmt.Printf("Level %s, seed %d, %d ticks (%s simulated)\n", s.Level(), seed, st.Ticks, s.Now())
	fmt.Printf("  shots    %d\n", st.Shots)
	fmt.Printf("  hits     %d\n", st.Hits)
	fmt.Printf("  fizzles  %d\n", st.Fizzles)
	fmt.Printf("  pickups  %d (rejected %d)\n", st.Pickups, st.Rejected)
	fmt.Printf("  reloads  %d\n", st.Reloads)

	if flagTimeline {
		printTimeline(s.History())
	}
}

func printTimeline(marks []sim.Mark) {
	fmt.Println()
	fmt.Printf("  %-6s  %-9s  %-15s  %s\n", "Tick", "Event", "Position", "Note")
	fmt.Printf("  %-6s  %-9s  %-15s  %s\n", "----", "-----", "--------", "----")
	for _, m := range marks {
		pos := fmt.Sprintf("(%.1f, %.1f)", m.X, m.Z)
		fmt.Printf("  %-6d  %-9s  %-15s  %s\n", m.Tick, m.Kind, pos, m.Note)
	}
}
