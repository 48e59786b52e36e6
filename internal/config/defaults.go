package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

//go:embed defaults/tables.yaml
var defaultTablesYAML []byte

// DefaultArenaConfig returns the built-in arena configuration.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Simulation: SimulationConfig{
			TickRate: 60,
			Seed:     0,
			Level:    "range",
		},
		Player: PlayerConfig{
			MoveSpeed:    8,
			Radius:       0.5,
			Height:       2,
			MuzzleHeight: 1,
		},
		Inventory: InventoryConfig{
			Capacity:       4,
			ToggleDebounce: 200 * time.Millisecond,
			SelectDebounce: 100 * time.Millisecond,
		},
		Projectile: ProjectileConfig{
			Radius: 0.1,
		},
		Loot: LootConfig{
			BodyRadius:   0.3,
			SensorRadius: 0.5,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		HUD: HUDConfig{
			Addr: "127.0.0.1:8089",
		},
	}
}
