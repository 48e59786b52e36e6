package sim

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"

	"github.com/vovakirdan/ortho-arena/internal/core"
	"github.com/vovakirdan/ortho-arena/internal/inventory"
	"github.com/vovakirdan/ortho-arena/internal/pickup"
	"github.com/vovakirdan/ortho-arena/internal/projectile"
	"github.com/vovakirdan/ortho-arena/internal/world"
)

// Point is a position on the floor plane.
type Point struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

func pointOf(v core.Vec3) Point {
	return Point{X: v.X, Z: v.Z}
}

// ProjectileView is a projectile in a snapshot.
type ProjectileView struct {
	ID  uint64 `json:"id"`
	Pos Point  `json:"pos"`
}

// LootView is a ground loot pile in a snapshot.
type LootView struct {
	ID    uint64     `json:"id"`
	Pos   Point      `json:"pos"`
	Kind  string     `json:"kind"`
	Name  string     `json:"name"`
	Glyph rune       `json:"-"`
	Color core.Color `json:"-"`
}

// ObstacleView is a static box in a snapshot.
type ObstacleView struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// Snapshot is a read-only view of the arena for renderers and the HUD feed.
type Snapshot struct {
	Level       string             `json:"level"`
	Tick        uint64             `json:"tick"`
	Width       float64            `json:"width"`
	Depth       float64            `json:"depth"`
	Player      Point              `json:"player"`
	Facing      Point              `json:"facing"`
	Loadout     inventory.Snapshot `json:"loadout"`
	Nearby      string             `json:"nearby,omitempty"` // name of the loot an interact would try
	Burst       int                `json:"burst,omitempty"`  // burst shots still queued
	Projectiles []ProjectileView   `json:"projectiles"`
	Loot        []LootView         `json:"loot"`
	Obstacles   []ObstacleView     `json:"obstacles"`
	Stats       Stats              `json:"stats"`
}

var (
	lootQuery     = query.NewQuery(filter.Contains(world.GroundLoot))
	obstacleQuery = query.NewQuery(filter.Contains(world.Obstacle))
)

// Snapshot builds the current view.
func (s *Simulation) Snapshot() Snapshot {
	w := s.ctx.World
	snap := Snapshot{
		Level:       s.level,
		Tick:        s.tick,
		Width:       s.layout.Width,
		Depth:       s.layout.Depth,
		Projectiles: []ProjectileView{},
		Loot:        []LootView{},
		Obstacles:   []ObstacleView{},
		Stats:       s.stats,
	}

	if p := s.playerData(); p != nil {
		pos, _ := w.Position(s.player)
		snap.Player = pointOf(pos)
		snap.Facing = pointOf(p.Facing)
		snap.Loadout = p.Loadout.Snapshot()
		snap.Burst = p.Trigger.Armed()
		for _, sensor := range s.nearby {
			if _, item, ok := pickup.Payload(w, sensor); ok {
				snap.Nearby = s.ctx.Tables.DisplayName(item.Kind, item.ID)
				break
			}
		}
	}

	projectile.Each(w, func(e donburi.Entity, _ world.ProjectileData) {
		pos, ok := w.Position(e)
		if !ok {
			return
		}
		snap.Projectiles = append(snap.Projectiles, ProjectileView{ID: uint64(e), Pos: pointOf(pos)})
	})

	lootQuery.Each(w.ECS(), func(entry *donburi.Entry) {
		pos, ok := w.Position(entry.Entity())
		if !ok {
			return
		}
		item := world.GroundLoot.Get(entry).Item
		view := LootView{
			ID:   uint64(entry.Entity()),
			Pos:  pointOf(pos),
			Kind: item.Kind.String(),
			Name: s.ctx.Tables.DisplayName(item.Kind, item.ID),
		}
		for _, c := range w.Children(entry.Entity()) {
			if ce := w.Entry(c); ce != nil && ce.HasComponent(world.Model) {
				m := world.Model.Get(ce)
				view.Glyph, view.Color = m.Glyph, m.Color
			}
		}
		snap.Loot = append(snap.Loot, view)
	})

	obstacleQuery.Each(w.ECS(), func(entry *donburi.Entry) {
		pos, ok := w.Position(entry.Entity())
		if !ok {
			return
		}
		half := world.Obstacle.Get(entry).Half
		snap.Obstacles = append(snap.Obstacles, ObstacleView{
			Min: Point{X: pos.X - half.X, Z: pos.Z - half.Z},
			Max: Point{X: pos.X + half.X, Z: pos.Z + half.Z},
		})
	})

	return snap
}
