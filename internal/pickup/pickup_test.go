package pickup

import (
	"testing"
	"time"

	"github.com/yohamta/donburi"

	"github.com/vovakirdan/ortho-arena/internal/core"
	"github.com/vovakirdan/ortho-arena/internal/data"
	"github.com/vovakirdan/ortho-arena/internal/event"
	"github.com/vovakirdan/ortho-arena/internal/inventory"
	"github.com/vovakirdan/ortho-arena/internal/logging"
	"github.com/vovakirdan/ortho-arena/internal/physics"
	"github.com/vovakirdan/ortho-arena/internal/world"
)

type fixture struct {
	w       *world.World
	k       *physics.Kinematic
	player  donburi.Entity
	loadout *inventory.Loadout
	picked  event.Queue[event.PickedUp]
}

func newFixture(capacity int) *fixture {
	k := physics.NewKinematic()
	w := world.New(k, logging.Discard())
	l := inventory.New(data.Default(), inventory.Options{Capacity: capacity})
	p := w.SpawnPlayer(world.PlayerSpec{Position: core.V3(0, 1, 0), Radius: 0.5, Height: 2, Loadout: l})
	return &fixture{w: w, k: k, player: p, loadout: l}
}

func (f *fixture) loot(item data.Item, at core.Vec3) donburi.Entity {
	return f.w.SpawnGroundLoot(world.LootSpec{Item: item, Position: at, BodyRadius: 0.3, SensorRadius: 0.5})
}

func (f *fixture) interact() Result {
	pairs := f.k.Step(time.Second / 60)
	return Interact(f.w, f.player, pairs, f.loadout, &f.picked, logging.Discard())
}

func TestInteractPicksUpOverlappedLoot(t *testing.T) {
	f := newFixture(4)
	root := f.loot(data.WeaponItem(data.Pistol), core.V3(0.6, 0.5, 0))
	children := f.w.Children(root)

	res := f.interact()

	if !res.PickedUp || res.Loot != root {
		t.Fatalf("Interact = %+v", res)
	}
	if w := f.loadout.Selected(); w == nil || w.Type != data.Pistol || w.Ammo != 10 {
		t.Errorf("loadout selected = %+v", w)
	}
	for _, e := range append(children, root) {
		if f.w.Alive(e) {
			t.Errorf("entity %v survived pickup", e)
		}
	}
	if f.k.Len() != 1 {
		t.Errorf("physics has %d bodies, expected only the player", f.k.Len())
	}
	if f.picked.Len() != 1 {
		t.Errorf("PickedUp events = %d", f.picked.Len())
	}

	// Interacting again with nothing new in range does nothing.
	again := f.interact()
	if again.PickedUp || again.Loot != donburi.Null {
		t.Errorf("second interact = %+v", again)
	}
	if f.loadout.Slot(core.SlotSecondary) != nil || f.picked.Len() != 1 {
		t.Error("second interact changed state")
	}
}

func TestInteractFailureLeavesLootInPlace(t *testing.T) {
	f := newFixture(4)
	f.loadout.AddItem(data.WeaponItem(data.Pistol))
	f.loadout.AddItem(data.WeaponItem(data.SMG))
	root := f.loot(data.WeaponItem(data.Rifle), core.V3(0.6, 0.5, 0))

	res := f.interact()

	if res.PickedUp || res.Loot != root {
		t.Fatalf("Interact = %+v", res)
	}
	if !f.w.Alive(root) || len(f.w.Children(root)) != 2 {
		t.Error("loot must stay untouched when the loadout is full")
	}
	if f.picked.Len() != 0 {
		t.Error("no event expected on failure")
	}
}

func TestInteractFirstOverlapWins(t *testing.T) {
	f := newFixture(4)
	first := f.loot(data.AmmoItem(data.LightAmmo, 20), core.V3(0.6, 0.5, 0))
	second := f.loot(data.StackItem(data.KindConsumable, "medkit", 1), core.V3(-0.6, 0.5, 0))

	res := f.interact()

	if !res.PickedUp || res.Loot != first {
		t.Fatalf("expected the first reported loot, got %+v", res)
	}
	if !f.w.Alive(second) {
		t.Error("only one loot pile per interact")
	}
	if f.loadout.Count(data.StackKey{Kind: data.KindAmmo, ID: "light"}) != 20 {
		t.Error("ammo not added")
	}
}

func TestInteractOutOfRange(t *testing.T) {
	f := newFixture(4)
	root := f.loot(data.WeaponItem(data.Pistol), core.V3(3, 0.5, 0))

	if res := f.interact(); res.PickedUp {
		t.Error("loot out of reach was picked up")
	}
	if !f.w.Alive(root) {
		t.Error("loot despawned")
	}
}

func TestInteractSkipsStaleCandidate(t *testing.T) {
	f := newFixture(4)
	stale := f.loot(data.WeaponItem(data.Pistol), core.V3(0.6, 0.5, 0))
	live := f.loot(data.WeaponItem(data.SMG), core.V3(-0.6, 0.5, 0))

	pairs := f.k.Step(time.Second / 60)
	f.w.Despawn(stale)

	res := Interact(f.w, f.player, pairs, f.loadout, &f.picked, logging.Discard())
	if !res.PickedUp || res.Loot != live {
		t.Errorf("expected the live candidate, got %+v", res)
	}
}
