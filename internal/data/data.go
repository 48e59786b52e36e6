// Package data holds the static weapon, ammo and item tables. Tables are
// loaded once at start and shared read-only by every simulation.
package data

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors returned by table validation and lookups.
var (
	ErrUnknownWeapon = errors.New("data: unknown weapon type")
	ErrUnknownAmmo   = errors.New("data: unknown ammo type")
	ErrInvalidValue  = errors.New("data: invalid value")
)

// WeaponType identifies a weapon row.
type WeaponType string

// AmmoType identifies an ammo row.
type AmmoType string

const (
	Pistol WeaponType = "pistol"
	SMG    WeaponType = "smg"
	Rifle  WeaponType = "rifle"

	LightAmmo AmmoType = "light"
	HeavyAmmo AmmoType = "heavy"
)

// ItemKind is the closed set of things a loadout can hold.
type ItemKind uint8

const (
	KindWeapon ItemKind = iota
	KindAmmo
	KindThrowable
	KindConsumable
)

var kindNames = [...]string{"weapon", "ammo", "throwable", "consumable"}

// String returns the kind name.
func (k ItemKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Stackable reports whether items of this kind live in counted stacks.
func (k ItemKind) Stackable() bool {
	return k != KindWeapon
}

// Item is a grantable payload: one weapon or an amount of a stackable.
type Item struct {
	Kind   ItemKind
	ID     string // weapon, ammo, throwable or consumable id
	Amount int    // ignored for weapons
}

// WeaponItem returns an item granting one weapon.
func WeaponItem(t WeaponType) Item {
	return Item{Kind: KindWeapon, ID: string(t)}
}

// AmmoItem returns an item granting n rounds of ammo.
func AmmoItem(t AmmoType, n int) Item {
	return Item{Kind: KindAmmo, ID: string(t), Amount: n}
}

// StackItem returns a stackable item of any kind.
func StackItem(kind ItemKind, id string, n int) Item {
	return Item{Kind: kind, ID: id, Amount: n}
}

// Key returns the stack key for stackable items.
func (i Item) Key() StackKey {
	return StackKey{Kind: i.Kind, ID: i.ID}
}

// String formats the item for logs.
func (i Item) String() string {
	if i.Kind == KindWeapon {
		return fmt.Sprintf("weapon:%s", i.ID)
	}
	return fmt.Sprintf("%s:%s x%d", i.Kind, i.ID, i.Amount)
}

// StackKey identifies one stack in a loadout.
type StackKey struct {
	Kind ItemKind
	ID   string
}

// WeaponData is the static row for a weapon type.
type WeaponData struct {
	Name            string        `yaml:"name" toml:"name"`
	Ammo            AmmoType      `yaml:"ammo" toml:"ammo"`
	MagazineSize    int           `yaml:"magazine_size" toml:"magazine_size"`
	FireMode        FireMode      `yaml:"fire_mode" toml:"fire_mode"`
	FireInterval    time.Duration `yaml:"fire_interval" toml:"fire_interval"`
	ProjectileSpeed float64       `yaml:"projectile_speed" toml:"projectile_speed"`
	Damage          int           `yaml:"damage" toml:"damage"`
	Range           float64       `yaml:"range" toml:"range"` // max projectile travel distance
}

// AmmoData is the static row for an ammo type.
type AmmoData struct {
	Name      string `yaml:"name" toml:"name"`
	LootSize  int    `yaml:"loot_size" toml:"loot_size"`
	StackSize int    `yaml:"stack_size" toml:"stack_size"`
}

// ItemData is the static row for throwables and consumables.
type ItemData struct {
	Name      string `yaml:"name" toml:"name"`
	LootSize  int    `yaml:"loot_size" toml:"loot_size"`
	StackSize int    `yaml:"stack_size" toml:"stack_size"`
}
