package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ortho-arena/internal/config"
	"github.com/vovakirdan/ortho-arena/internal/core"
	"github.com/vovakirdan/ortho-arena/internal/data"
	"github.com/vovakirdan/ortho-arena/internal/hudfeed"
	"github.com/vovakirdan/ortho-arena/internal/registry"
	"github.com/vovakirdan/ortho-arena/internal/sim"
	"github.com/vovakirdan/ortho-arena/internal/storage"
)

// Deps are the shared collaborators of every arena session.
type Deps struct {
	Config config.ArenaConfig
	Tables *data.Tables
	Store  *storage.Store // optional, runs are not recorded when nil
	Hub    *hudfeed.Hub   // optional HUD feed
	Logger *log.Logger
}

// statusTicks is how long a status message stays on the HUD.
const statusTicks = 90

// Model is the Bubble Tea model for playing one arena level.
type Model struct {
	sim        *sim.Simulation
	deps       Deps
	screen     *core.Screen
	config     core.RuntimeConfig
	player     string
	keyMapper  *KeyMapper
	input      *HeldInput
	facing     core.Vec3
	status     string
	statusLeft int
	paused     bool
	quitting   bool
	backToMenu bool
	runSaved   bool
}

// NewModel creates a model running a fresh simulation of level.
func NewModel(level registry.Level, deps Deps, cfg core.RuntimeConfig, player string) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = deps.Config.Simulation.TickRate
	}

	s, err := sim.New(sim.Options{
		Config: deps.Config,
		Tables: deps.Tables,
		Level:  level,
		Logger: deps.Logger,
		Seed:   cfg.Seed,
	})
	if err != nil {
		return Model{}, fmt.Errorf("tui: cannot start level %s: %w", level.ID(), err)
	}

	return Model{
		sim:       s,
		deps:      deps,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		player:    player,
		keyMapper: NewKeyMapper(),
		input:     NewHeldInput(),
		facing:    s.Facing(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickDuration())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.finish()
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionPause:
		m.paused = !m.paused
		m.input.Release()
		return m, nil
	case action == core.ActionBack:
		if m.paused {
			m.finish()
			m.backToMenu = true
			return m, nil
		}
		m.paused = true
		m.input.Release()
		return m, nil
	}

	if !m.paused {
		m.input.Press(action, m.sim.Now())
	}
	return m, nil
}

// handleTick advances the simulation by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}
	if m.paused {
		return m, tickCmd(m.config.TickDuration())
	}

	frame := m.input.Frame(m.sim.Now())
	m.facing = core.AimFromFrame(frame, m.facing)
	res := m.sim.Step(core.Normalize(frame, m.facing))
	m.noteResult(res)

	if m.deps.Hub != nil {
		m.deps.Hub.Publish(m.sim.Snapshot())
	}

	return m, tickCmd(m.config.TickDuration())
}

func (m *Model) noteResult(res sim.StepResult) {
	var status string
	switch {
	case len(res.Pickups) > 0:
		it := res.Pickups[0].Item
		status = "picked up " + m.deps.Tables.DisplayName(it.Kind, it.ID)
	case res.PickupRejected:
		status = "cannot carry that"
	case res.Reloaded:
		status = "reloaded"
	}

	if status != "" {
		m.status = status
		m.statusLeft = statusTicks
		return
	}
	if m.statusLeft > 0 {
		m.statusLeft--
		if m.statusLeft == 0 {
			m.status = ""
		}
	}
}

// finish records the run once, best effort.
func (m *Model) finish() {
	if m.runSaved || m.deps.Store == nil || m.sim.Tick() == 0 {
		return
	}
	m.runSaved = true
	if _, err := m.deps.Store.SaveRun(storage.RecordFromSim(m.sim, m.player)); err != nil && m.deps.Logger != nil {
		m.deps.Logger.Warn("could not save run", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".arena", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.sim.Level(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, play continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

func (m *Model) draw() sim.Snapshot {
	snap := m.sim.Snapshot()
	m.screen.Clear()
	h := m.screen.Height() - hudRows
	if h < 1 {
		h = 1
	}
	frame := core.NewRect(0, 0, m.screen.Width(), h)
	if frame.W < 3 || frame.H < 3 {
		DrawArena(m.screen, frame, snap)
		return snap
	}
	m.screen.DrawBox(frame, core.ColorGray)
	DrawArena(m.screen, core.NewRect(1, 1, frame.W-2, frame.H-2), snap)
	return snap
}

// View renders the arena and the HUD.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	snap := m.draw()
	arena := RenderScreen(m.screen)
	// The screen's bottom rows are left blank for the HUD.
	lines := m.screen.Height() - hudRows
	if lines < 1 {
		lines = 1
	}
	return trimLines(arena, lines) + "\n" + RenderHUD(snap, m.status, m.paused, m.config.ScreenW)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Simulation returns the running simulation.
func (m Model) Simulation() *sim.Simulation {
	return m.sim
}

func trimLines(s string, n int) string {
	count := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			count++
			if count == n {
				return s[:i]
			}
		}
	}
	return s
}

// Run plays one level in the local terminal.
func Run(level registry.Level, deps Deps, cfg core.RuntimeConfig, player string) error {
	model, err := NewModel(level, deps, cfg, player)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		fm.finish()
	}
	return nil
}
