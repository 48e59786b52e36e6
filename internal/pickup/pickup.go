// Package pickup resolves interact intents against the interactable
// volumes a player overlaps.
package pickup

import (
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"

	"github.com/vovakirdan/ortho-arena/internal/data"
	"github.com/vovakirdan/ortho-arena/internal/event"
	"github.com/vovakirdan/ortho-arena/internal/invariant"
	"github.com/vovakirdan/ortho-arena/internal/inventory"
	"github.com/vovakirdan/ortho-arena/internal/physics"
	"github.com/vovakirdan/ortho-arena/internal/world"
)

// Result reports the outcome of one interact.
type Result struct {
	PickedUp bool
	Loot     donburi.Entity // loot root that was tried, Null when none
	Item     data.Item
}

// Candidates returns the live interactable sensors overlapping player, in
// overlap report order.
func Candidates(w *world.World, player donburi.Entity, overlaps []physics.Pair) []donburi.Entity {
	body, ok := w.BodyOf(player)
	if !ok {
		return nil
	}
	var out []donburi.Entity
	for _, pair := range overlaps {
		if !pair.Has(body) {
			continue
		}
		e, ok := w.EntityOf(pair.Other(body))
		if !ok {
			continue
		}
		if entry := w.Entry(e); entry.HasComponent(world.Interactable) {
			out = append(out, e)
		}
	}
	return out
}

// Payload resolves the item granted by an interactable sensor.
func Payload(w *world.World, sensor donburi.Entity) (donburi.Entity, data.Item, bool) {
	entry := w.Entry(sensor)
	if entry == nil || !entry.HasComponent(world.Interactable) {
		return donburi.Null, data.Item{}, false
	}
	switch *world.Interactable.Get(entry) {
	case world.InteractableGroundLoot:
		root := w.Entry(w.Root(sensor))
		if root == nil || !root.HasComponent(world.GroundLoot) {
			return donburi.Null, data.Item{}, false
		}
		return root.Entity(), world.GroundLoot.Get(root).Item, true
	}
	return donburi.Null, data.Item{}, false
}

// Interact handles one interact intent. The first interactable in overlap
// order is offered to the loadout; on success the loot root is despawned
// with its model and sensor and a PickedUp event is raised. On failure
// nothing changes and the player has to interact again.
func Interact(w *world.World, player donburi.Entity, overlaps []physics.Pair, loadout *inventory.Loadout, picked *event.Queue[event.PickedUp], logger *log.Logger) Result {
	for _, sensor := range Candidates(w, player, overlaps) {
		root, item, ok := Payload(w, sensor)
		if !ok {
			continue
		}
		if !loadout.AddItem(item) {
			logger.Debug("pickup rejected", "loot", root, "item", item)
			return Result{Loot: root, Item: item}
		}
		invariant.Check(logger, w.Despawn(root), "picked loot was already despawned", "loot", root)
		picked.Push(event.PickedUp{Player: player, Loot: root, Item: item})
		logger.Info("picked up ground loot", "item", item)
		return Result{PickedUp: true, Loot: root, Item: item}
	}
	return Result{Loot: donburi.Null}
}
