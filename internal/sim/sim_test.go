package sim

import (
	"errors"
	"testing"

	"github.com/vovakirdan/ortho-arena/internal/config"
	"github.com/vovakirdan/ortho-arena/internal/core"
	"github.com/vovakirdan/ortho-arena/internal/data"
	"github.com/vovakirdan/ortho-arena/internal/logging"
	"github.com/vovakirdan/ortho-arena/internal/world"
)

type testLevel struct {
	layout core.Layout
}

func (testLevel) ID() string            { return "test" }
func (testLevel) Title() string         { return "Test" }
func (testLevel) Description() string   { return "" }
func (l testLevel) Layout() core.Layout { return l.layout }

func openLevel() testLevel {
	return testLevel{core.Layout{
		Width:        100,
		Depth:        100,
		PlayerSpawns: []core.Vec3{core.V3(0, 1, 0)},
	}}
}

func newSim(t *testing.T, level testLevel, startWeapon string) *Simulation {
	t.Helper()
	cfg := config.DefaultArenaConfig()
	cfg.Player.StartWeapon = startWeapon
	s, err := New(Options{
		Config: cfg,
		Tables: data.Default(),
		Level:  level,
		Logger: logging.Discard(),
		Seed:   1,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func firing() core.Intent {
	return core.Intent{Firing: true}
}

func TestNewRequiresSpawnAndKnownStartWeapon(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	if _, err := New(Options{Config: cfg, Tables: data.Default(), Level: testLevel{}}); err == nil {
		t.Error("level without player spawn should fail")
	}

	cfg.Player.StartWeapon = "bow"
	if _, err := New(Options{Config: cfg, Tables: data.Default(), Level: openLevel()}); !errors.Is(err, data.ErrUnknownWeapon) {
		t.Errorf("expected ErrUnknownWeapon, got %v", err)
	}
}

func TestFireSpawnsProjectileThatFizzles(t *testing.T) {
	s := newSim(t, openLevel(), "pistol")

	res := s.Step(firing())
	if len(res.Fires) != 1 {
		t.Fatalf("tick 0 fires = %d, expected 1", len(res.Fires))
	}
	if snap := s.Snapshot(); len(snap.Projectiles) != 1 || snap.Loadout.Selected.Ammo != 9 {
		t.Fatalf("after fire: projectiles %d ammo %d", len(snap.Projectiles), snap.Loadout.Selected.Ammo)
	}

	// 200 u/s at 60 Hz moves 3.33 u per tick: past 25 u on tick 7.
	var fizzleTick uint64
	for i := 0; i < 20; i++ {
		res = s.Step(firing())
		if len(res.Fires) != 0 {
			t.Fatalf("held semi-auto trigger fired again on tick %d", res.Tick)
		}
		if len(res.Collisions) != 0 {
			t.Fatalf("unexpected collision on tick %d", res.Tick)
		}
		if len(res.Fizzles) == 1 {
			fizzleTick = res.Tick
		}
	}
	if fizzleTick != 7 {
		t.Errorf("fizzled on tick %d, expected 7", fizzleTick)
	}
	if st := s.Stats(); st.Shots != 1 || st.Fizzles != 1 || st.Hits != 0 {
		t.Errorf("stats = %+v", st)
	}
	if len(s.Snapshot().Projectiles) != 0 {
		t.Error("projectile should be gone")
	}
}

func TestProjectileCollidesWithWall(t *testing.T) {
	level := openLevel()
	level.layout.Boxes = []core.Box{{Center: core.V3(0, 1, -10), Half: core.V3(3, 1, 0.5)}}
	s := newSim(t, level, "pistol")

	collisions, fizzles := 0, 0
	for i := 0; i < 30; i++ {
		res := s.Step(core.Intent{Firing: i == 0})
		collisions += len(res.Collisions)
		fizzles += len(res.Fizzles)
		for _, c := range res.Collisions {
			if c.Target == s.Player() {
				t.Fatal("projectile collided with its owner")
			}
		}
	}

	if collisions != 1 || fizzles != 0 {
		t.Errorf("collisions = %d fizzles = %d, expected exactly one collision", collisions, fizzles)
	}
}

func TestCollisionWinsOverFizzleOnSameTick(t *testing.T) {
	// The pistol passes its 25 u range on tick 7 at z=-26.67, inside this wall.
	level := openLevel()
	level.layout.Boxes = []core.Box{{Center: core.V3(0, 1, -26.8), Half: core.V3(3, 1, 0.5)}}
	s := newSim(t, level, "pistol")

	collisions, fizzles := 0, 0
	var hitTick uint64
	for i := 0; i < 12; i++ {
		res := s.Step(core.Intent{Firing: i == 0})
		collisions += len(res.Collisions)
		fizzles += len(res.Fizzles)
		if len(res.Collisions) > 0 {
			hitTick = res.Tick
		}
	}

	if collisions != 1 || fizzles != 0 {
		t.Errorf("collisions = %d fizzles = %d, expected the collision to win", collisions, fizzles)
	}
	if hitTick != 7 {
		t.Errorf("collided on tick %d, expected 7", hitTick)
	}
	if st := s.Stats(); st.Hits != 1 || st.Fizzles != 0 {
		t.Errorf("stats = %+v", st)
	}
}

func TestSnapshotReportsQueuedBurst(t *testing.T) {
	s := newSim(t, openLevel(), "rifle")

	if res := s.Step(firing()); len(res.Fires) != 1 {
		t.Fatalf("fires = %d, expected 1", len(res.Fires))
	}
	if got := s.Snapshot().Burst; got != 2 {
		t.Errorf("Burst = %d, expected 2 queued shots", got)
	}
}

func TestEventsDoNotOutliveTheirTick(t *testing.T) {
	s := newSim(t, openLevel(), "pistol")
	s.Step(firing())

	res := s.Step(core.Intent{})
	if len(res.Fires) != 0 {
		t.Error("fire event leaked into the next tick")
	}
	if !s.Context().Bus.Empty() {
		t.Error("bus should be empty between ticks")
	}
}

func TestPickupThroughStep(t *testing.T) {
	s := newSim(t, openLevel(), "")
	loot := s.Context().World.SpawnGroundLoot(world.LootSpec{
		Item:         data.WeaponItem(data.SMG),
		Position:     core.V3(0.6, 0.5, 0),
		BodyRadius:   0.3,
		SensorRadius: 0.5,
	})

	s.Step(core.Intent{})
	if got := s.Snapshot().Nearby; got != "SMG" {
		t.Errorf("Nearby = %q, expected SMG", got)
	}

	res := s.Step(core.Intent{Interact: true})
	if len(res.Pickups) != 1 || res.Pickups[0].Loot != loot {
		t.Fatalf("pickups = %+v", res.Pickups)
	}
	snap := s.Snapshot()
	if snap.Loadout.Selected == nil || snap.Loadout.Selected.Type != "smg" || snap.Loadout.Selected.Ammo != 30 {
		t.Errorf("loadout = %+v", snap.Loadout.Selected)
	}
	if len(snap.Loot) != 0 || snap.Nearby != "" {
		t.Error("loot should be gone")
	}

	if res := s.Step(core.Intent{Interact: true}); len(res.Pickups) != 0 || res.PickupRejected {
		t.Error("interact with nothing in range should do nothing")
	}
}

func TestLoadoutActionsThroughStep(t *testing.T) {
	s := newSim(t, openLevel(), "pistol")
	p := s.playerData()
	p.Loadout.AddItem(data.WeaponItem(data.SMG))
	p.Loadout.AddItem(data.AmmoItem(data.LightAmmo, 20))

	secondary := core.SlotSecondary
	s.Step(core.Intent{SelectSlot: &secondary})
	if got := s.Snapshot().Loadout.Selected.Type; got != "smg" {
		t.Fatalf("selected = %s, expected smg", got)
	}

	s.Step(core.Intent{ToggleWeapon: true})
	if got := s.Snapshot().Loadout.Selected.Type; got != "pistol" {
		t.Fatalf("selected after toggle = %s, expected pistol", got)
	}

	s.Step(firing())
	s.Step(core.Intent{})
	res := s.Step(core.Intent{Reload: true})
	if !res.Reloaded {
		t.Fatal("reload should succeed")
	}
	sel := s.Snapshot().Loadout.Selected
	if sel.Ammo != 10 || sel.Reserve != 19 {
		t.Errorf("after reload ammo %d reserve %d", sel.Ammo, sel.Reserve)
	}
}

func TestAimChangesFacing(t *testing.T) {
	s := newSim(t, openLevel(), "pistol")
	res := s.Step(core.Intent{Aim: core.V3(1, 0, 0), Firing: true})

	if len(res.Fires) != 1 || res.Fires[0].Direction != core.V3(1, 0, 0) {
		t.Fatalf("fires = %+v", res.Fires)
	}
	if s.Facing() != core.V3(1, 0, 0) {
		t.Errorf("Facing = %v", s.Facing())
	}
	if res.Fires[0].Origin.Y != 1 {
		t.Errorf("muzzle height = %v, expected 1", res.Fires[0].Origin.Y)
	}
}

func TestMovement(t *testing.T) {
	s := newSim(t, openLevel(), "")
	for i := 0; i < 60; i++ {
		s.Step(core.Intent{Move: core.Vec2{X: 1}})
	}
	if x := s.Snapshot().Player.X; x < 7.99 || x > 8.01 {
		t.Errorf("player X = %v after 1s, expected 8", x)
	}
}

func TestPopulateIsSeeded(t *testing.T) {
	level := openLevel()
	level.layout.PlayerSpawns = []core.Vec3{core.V3(-5, 1, 0), core.V3(5, 1, 0), core.V3(0, 1, 5)}
	for i := 0; i < 8; i++ {
		level.layout.LootSpawns = append(level.layout.LootSpawns, core.V3(float64(i*3), 0.5, 20))
	}

	a, b := newSim(t, level, ""), newSim(t, level, "")
	sa, sb := a.Snapshot(), b.Snapshot()

	if sa.Player != sb.Player {
		t.Errorf("player spawns differ: %v vs %v", sa.Player, sb.Player)
	}
	if len(sa.Loot) != 8 || len(sb.Loot) != 8 {
		t.Fatalf("loot counts %d %d", len(sa.Loot), len(sb.Loot))
	}
	for i := range sa.Loot {
		if sa.Loot[i].Name != sb.Loot[i].Name {
			t.Errorf("loot %d differs: %s vs %s", i, sa.Loot[i].Name, sb.Loot[i].Name)
		}
	}
}
