package world

import (
	"github.com/yohamta/donburi"

	"github.com/vovakirdan/ortho-arena/internal/core"
	"github.com/vovakirdan/ortho-arena/internal/data"
	"github.com/vovakirdan/ortho-arena/internal/inventory"
	"github.com/vovakirdan/ortho-arena/internal/physics"
)

// PlayerSpec describes a player to spawn.
type PlayerSpec struct {
	Name     string
	Position core.Vec3
	Radius   float64
	Height   float64
	Loadout  *inventory.Loadout
}

// SpawnPlayer creates a player entity with a capsule body and a model child.
func (w *World) SpawnPlayer(spec PlayerSpec) donburi.Entity {
	entry := w.Create(donburi.Null, Player)
	Player.SetValue(entry, PlayerData{
		Name:    spec.Name,
		Loadout: spec.Loadout,
		Facing:  core.V3(0, 0, -1),
	})
	w.AttachBody(entry, physics.BodySpec{
		Shape:    physics.CapsuleShape(spec.Radius, spec.Height),
		Layer:    physics.LayerPlayer,
		Position: spec.Position,
		Blocking: true,
	})

	model := w.Create(entry.Entity(), Model)
	Model.SetValue(model, ModelData{Glyph: '@', Color: core.ColorBrightYellow})
	return entry.Entity()
}

// LootSpec describes a ground loot pile to spawn.
type LootSpec struct {
	Item         data.Item
	Position     core.Vec3
	BodyRadius   float64
	SensorRadius float64
}

// SpawnGroundLoot creates a loot root carrying the payload, with a model
// child and an interactable sensor child. Despawning the root removes all
// three.
func (w *World) SpawnGroundLoot(spec LootSpec) donburi.Entity {
	root := w.Create(donburi.Null, GroundLoot)
	GroundLoot.SetValue(root, GroundLootData{Item: spec.Item})
	w.AttachBody(root, physics.BodySpec{
		Shape:    physics.SphereShape(spec.BodyRadius),
		Layer:    physics.LayerLoot,
		Position: spec.Position,
		Static:   true,
	})

	model := w.Create(root.Entity(), Model)
	glyph, color := lootGlyph(spec.Item.Kind)
	Model.SetValue(model, ModelData{Glyph: glyph, Color: color})

	sensor := w.Create(root.Entity(), Interactable)
	Interactable.SetValue(sensor, InteractableGroundLoot)
	w.AttachBody(sensor, physics.BodySpec{
		Shape:    physics.SphereShape(spec.SensorRadius),
		Layer:    physics.LayerInteractable,
		Position: spec.Position,
		Sensor:   true,
		Static:   true,
	})
	return root.Entity()
}

func lootGlyph(kind data.ItemKind) (rune, core.Color) {
	switch kind {
	case data.KindWeapon:
		return 'W', core.ColorBrightCyan
	case data.KindAmmo:
		return 'a', core.ColorYellow
	case data.KindThrowable:
		return 'g', core.ColorOrange
	default:
		return '+', core.ColorBrightGreen
	}
}

// SpawnObstacle creates static level geometry on the World layer.
func (w *World) SpawnObstacle(box core.Box) donburi.Entity {
	entry := w.Create(donburi.Null, Obstacle)
	Obstacle.SetValue(entry, ObstacleData{Half: box.Half})
	w.AttachBody(entry, physics.BodySpec{
		Shape:    physics.BoxShape(box.Half),
		Layer:    physics.LayerWorld,
		Position: box.Center,
		Static:   true,
	})
	return entry.Entity()
}
