package world

import (
	"github.com/yohamta/donburi"

	"github.com/vovakirdan/ortho-arena/internal/core"
	"github.com/vovakirdan/ortho-arena/internal/data"
	"github.com/vovakirdan/ortho-arena/internal/inventory"
	"github.com/vovakirdan/ortho-arena/internal/physics"
	"github.com/vovakirdan/ortho-arena/internal/weapon"
)

// BodyData links an entity to its physics body.
type BodyData struct {
	ID physics.BodyID
}

// HierarchyData links parents and children. Despawning a parent despawns
// its children.
type HierarchyData struct {
	Parent   donburi.Entity
	Children []donburi.Entity
}

// InteractableKind tags an entity as something a player can interact with.
type InteractableKind uint8

const (
	InteractableGroundLoot InteractableKind = iota + 1
)

func (k InteractableKind) String() string {
	if k == InteractableGroundLoot {
		return "ground_loot"
	}
	return "unknown"
}

// ModelData stands in for a visual: the glyph and color a renderer draws.
type ModelData struct {
	Glyph rune
	Color core.Color
}

// PlayerData is the per-player state.
type PlayerData struct {
	Name    string
	Loadout *inventory.Loadout
	Facing  core.Vec3 // last non-zero aim, unit length
	Trigger weapon.Trigger
}

// ProjectileData is the bookkeeping of a live projectile. Its transform and
// velocity belong to the physics provider.
type ProjectileData struct {
	Owner       donburi.Entity
	Origin      core.Vec3
	MaxDistance float64
	Weapon      data.WeaponType
	Damage      int
}

// GroundLootData is the immutable payload of a loot pile.
type GroundLootData struct {
	Item data.Item
}

// ObstacleData marks static level geometry.
type ObstacleData struct {
	Half core.Vec3
}

// Component types.
var (
	Body         = donburi.NewComponentType[BodyData]()
	Hierarchy    = donburi.NewComponentType[HierarchyData]()
	Interactable = donburi.NewComponentType[InteractableKind]()
	Model        = donburi.NewComponentType[ModelData]()
	Player       = donburi.NewComponentType[PlayerData]()
	Projectile   = donburi.NewComponentType[ProjectileData]()
	GroundLoot   = donburi.NewComponentType[GroundLootData]()
	Obstacle     = donburi.NewComponentType[ObstacleData]()
)
