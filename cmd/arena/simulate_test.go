package main

import (
	"testing"

	"github.com/vovakirdan/ortho-arena/internal/inventory"
	"github.com/vovakirdan/ortho-arena/internal/sim"
)

func TestSweepIntent(t *testing.T) {
	snap := sim.Snapshot{
		Player: sim.Point{X: 0, Z: 0},
		Loot: []sim.LootView{
			{Pos: sim.Point{X: 10, Z: 0}},
			{Pos: sim.Point{X: 0, Z: -3}},
		},
		Nearby: "Light Ammo",
		Loadout: inventory.Snapshot{
			Selected: &inventory.WeaponView{AmmoTracked: true, Ammo: 0, Reserve: 5},
		},
	}

	in := sweepIntent(snap, 0, 60)
	if !in.Firing {
		t.Error("fire should be held in the first quarter second")
	}
	if in.Move.X != 0 || in.Move.Y != -1 {
		t.Errorf("Move = %+v, expected toward the nearest loot", in.Move)
	}
	if !in.Interact || !in.Reload {
		t.Errorf("expected interact and reload, got %+v", in)
	}
	if in.ToggleWeapon {
		t.Error("no weapon swap on tick 0")
	}

	if in := sweepIntent(sim.Snapshot{}, 15, 60); in.Firing {
		t.Error("fire should be released in the second quarter second")
	}
	if in := sweepIntent(sim.Snapshot{}, 180, 60); !in.ToggleWeapon {
		t.Error("expected a weapon swap every three seconds")
	}
}

func TestPercent(t *testing.T) {
	if got := percent(0.755); got != "76%" {
		t.Errorf("percent(0.755) = %q", got)
	}
}
