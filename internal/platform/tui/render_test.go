package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/ortho-arena/internal/core"
	"github.com/vovakirdan/ortho-arena/internal/sim"
)

func TestViewportCell(t *testing.T) {
	vp := Viewport{Area: core.NewRect(0, 0, 41, 21), Width: 40, Depth: 20}
	tests := []struct {
		p      sim.Point
		x, y   int
		inside bool
	}{
		{sim.Point{X: 0, Z: 0}, 20, 10, true},
		{sim.Point{X: -20, Z: -10}, 0, 0, true},
		{sim.Point{X: 20, Z: 10}, 40, 20, true},
		{sim.Point{X: 30, Z: 0}, 50, 10, false},
	}
	for _, tt := range tests {
		x, y, ok := vp.Cell(tt.p)
		if x != tt.x || y != tt.y || ok != tt.inside {
			t.Errorf("Cell(%+v) = %d,%d,%v; expected %d,%d,%v", tt.p, x, y, ok, tt.x, tt.y, tt.inside)
		}
	}
}

func TestDrawArena(t *testing.T) {
	screen := core.NewScreen(21, 11)
	snap := sim.Snapshot{
		Width:       20,
		Depth:       10,
		Player:      sim.Point{X: 0, Z: 0},
		Facing:      sim.Point{X: 0, Z: -1},
		Projectiles: []sim.ProjectileView{{Pos: sim.Point{X: 0, Z: -4}}},
		Loot:        []sim.LootView{{Pos: sim.Point{X: 5, Z: 0}, Glyph: '$', Color: core.ColorYellow}},
		Obstacles:   []sim.ObstacleView{{Min: sim.Point{X: -10, Z: 4}, Max: sim.Point{X: 10, Z: 5}}},
	}

	DrawArena(screen, core.NewRect(0, 0, 21, 11), snap)

	if r := screen.Get(10, 5); r != '@' {
		t.Errorf("player cell = %q", r)
	}
	if r := screen.Get(10, 4); r != '|' {
		t.Errorf("facing marker = %q", r)
	}
	if r := screen.Get(10, 1); r != '*' {
		t.Errorf("projectile cell = %q", r)
	}
	if c := screen.GetCell(15, 5); c.Rune != '$' || c.Color != core.ColorYellow {
		t.Errorf("loot cell = %+v", c)
	}
	if row := screen.Row(10); strings.Count(row, "#") != 21 {
		t.Errorf("obstacle row = %q", row)
	}
}

func TestDrawArenaClipsObstaclesToArea(t *testing.T) {
	screen := core.NewScreen(12, 7)
	screen.DrawBox(core.NewRect(0, 0, 12, 7), core.ColorGray)
	snap := sim.Snapshot{
		Width:     10,
		Depth:     5,
		Player:    sim.Point{X: 0, Z: -2},
		Obstacles: []sim.ObstacleView{{Min: sim.Point{X: -40, Z: 0}, Max: sim.Point{X: 40, Z: 0.5}}},
	}

	DrawArena(screen, core.NewRect(1, 1, 10, 5), snap)

	tests := []struct {
		x, y int
		want rune
	}{
		{0, 3, '│'},
		{11, 3, '│'},
		{1, 3, '#'},
		{10, 3, '#'},
		{0, 0, '┌'},
	}
	for _, tt := range tests {
		if got := screen.Get(tt.x, tt.y); got != tt.want {
			t.Errorf("cell (%d,%d) = %q, expected %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRenderHUDShowsBurst(t *testing.T) {
	out := RenderHUD(sim.Snapshot{Burst: 2}, "", false, 200)
	if !strings.Contains(out, "burst 2") {
		t.Errorf("HUD %q missing burst counter", out)
	}
}

func TestRenderHUDShowsLoadoutAndNearby(t *testing.T) {
	snap := sim.Snapshot{Tick: 12, Nearby: "Heavy Ammo"}
	out := RenderHUD(snap, "reloaded", true, 200)
	for _, want := range []string{"empty", "tick 12", "pick up Heavy Ammo", "PAUSED", "reloaded"} {
		if !strings.Contains(out, want) {
			t.Errorf("HUD %q missing %q", out, want)
		}
	}
}
