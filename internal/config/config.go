// Package config provides YAML/TOML configuration loading for the arena
// simulation and its static data tables.
package config

import "time"

// ArenaConfig contains all tunables for a simulation and its front-ends.
type ArenaConfig struct {
	Simulation SimulationConfig `yaml:"simulation" toml:"simulation"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Inventory  InventoryConfig  `yaml:"inventory" toml:"inventory"`
	Projectile ProjectileConfig `yaml:"projectile" toml:"projectile"`
	Loot       LootConfig       `yaml:"loot" toml:"loot"`
	Logging    LoggingConfig    `yaml:"logging" toml:"logging"`
	Storage    StorageConfig    `yaml:"storage" toml:"storage"`
	HUD        HUDConfig        `yaml:"hud" toml:"hud"`
}

// SimulationConfig defines the fixed-step clock and level selection.
type SimulationConfig struct {
	TickRate int    `yaml:"tick_rate" toml:"tick_rate"` // ticks per second
	Seed     int64  `yaml:"seed" toml:"seed"`           // 0 = time based
	Level    string `yaml:"level" toml:"level"`
}

// PlayerConfig defines the player body.
type PlayerConfig struct {
	MoveSpeed    float64 `yaml:"move_speed" toml:"move_speed"`
	Radius       float64 `yaml:"radius" toml:"radius"`
	Height       float64 `yaml:"height" toml:"height"`
	MuzzleHeight float64 `yaml:"muzzle_height" toml:"muzzle_height"`
	// StartWeapon is granted at spawn when non-empty.
	StartWeapon string `yaml:"start_weapon" toml:"start_weapon"`
}

// InventoryConfig defines loadout limits and input debounces.
type InventoryConfig struct {
	Capacity       int           `yaml:"capacity" toml:"capacity"` // distinct stack slots
	ToggleDebounce time.Duration `yaml:"toggle_debounce" toml:"toggle_debounce"`
	SelectDebounce time.Duration `yaml:"select_debounce" toml:"select_debounce"`
}

// ProjectileConfig defines projectile bodies.
type ProjectileConfig struct {
	Radius float64 `yaml:"radius" toml:"radius"`
}

// LootConfig defines ground loot bodies.
type LootConfig struct {
	BodyRadius   float64 `yaml:"body_radius" toml:"body_radius"`
	SensorRadius float64 `yaml:"sensor_radius" toml:"sensor_radius"`
}

// LoggingConfig defines the log level.
type LoggingConfig struct {
	Level string `yaml:"level" toml:"level"`
}

// StorageConfig defines where run records are kept. Empty means the
// default ~/.arena/runs.db.
type StorageConfig struct {
	Path string `yaml:"path" toml:"path"`
}

// HUDConfig defines the websocket HUD feed.
type HUDConfig struct {
	Addr string `yaml:"addr" toml:"addr"`
}
