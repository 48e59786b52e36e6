package sim

import (
	"fmt"

	"github.com/vovakirdan/ortho-arena/internal/data"
	"github.com/vovakirdan/ortho-arena/internal/inventory"
	"github.com/vovakirdan/ortho-arena/internal/world"
)

// populate spawns obstacles, the player at a seeded spawn point and a
// seeded random loot pile on every loot spawn.
func (s *Simulation) populate() error {
	ctx := &s.ctx
	cfg := ctx.Config

	if len(s.layout.PlayerSpawns) == 0 {
		return fmt.Errorf("sim: level %s has no player spawn", s.level)
	}

	for _, box := range s.layout.Boxes {
		ctx.World.SpawnObstacle(box)
	}

	loadout := inventory.New(ctx.Tables, inventory.Options{
		Capacity:       cfg.Inventory.Capacity,
		ToggleDebounce: cfg.Inventory.ToggleDebounce,
		SelectDebounce: cfg.Inventory.SelectDebounce,
	})
	if cfg.Player.StartWeapon != "" {
		wt, err := ctx.Tables.ParseWeapon(cfg.Player.StartWeapon)
		if err != nil {
			return fmt.Errorf("sim: start weapon: %w", err)
		}
		loadout.AddItem(data.WeaponItem(wt))
	}

	spawn := s.layout.PlayerSpawns[s.rng.Intn(len(s.layout.PlayerSpawns))]
	s.player = ctx.World.SpawnPlayer(world.PlayerSpec{
		Name:     "player",
		Position: spawn,
		Radius:   cfg.Player.Radius,
		Height:   cfg.Player.Height,
		Loadout:  loadout,
	})

	pool := ctx.Tables.LootPool()
	if len(pool) == 0 {
		return nil
	}
	for _, at := range s.layout.LootSpawns {
		ctx.World.SpawnGroundLoot(world.LootSpec{
			Item:         RandomItem(s.rng, pool),
			Position:     at,
			BodyRadius:   cfg.Loot.BodyRadius,
			SensorRadius: cfg.Loot.SensorRadius,
		})
	}

	ctx.Logger.Info("level populated",
		"level", s.level,
		"seed", s.seed,
		"obstacles", len(s.layout.Boxes),
		"loot", len(s.layout.LootSpawns))
	return nil
}

// intner is the part of *rand.Rand used for loot rolls.
type intner interface {
	Intn(n int) int
}

// RandomItem draws one payload from the loot pool.
func RandomItem(rng intner, pool []data.Item) data.Item {
	return pool[rng.Intn(len(pool))]
}
