// Package projectile spawns projectiles from fire events and expires them
// once they travel past their maximum distance.
package projectile

import (
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"

	"github.com/vovakirdan/ortho-arena/internal/core"
	"github.com/vovakirdan/ortho-arena/internal/data"
	"github.com/vovakirdan/ortho-arena/internal/event"
	"github.com/vovakirdan/ortho-arena/internal/physics"
	"github.com/vovakirdan/ortho-arena/internal/world"
)

var live = query.NewQuery(filter.Contains(world.Projectile))

// Spawn creates a projectile for one fire event: velocity is the weapon's
// projectile speed along the aim direction and the max distance is the
// weapon's range.
func Spawn(w *world.World, evt event.Fire, datum data.WeaponData, radius float64) donburi.Entity {
	entry := w.Create(donburi.Null, world.Projectile)
	world.Projectile.SetValue(entry, world.ProjectileData{
		Owner:       evt.Owner,
		Origin:      evt.Origin,
		MaxDistance: datum.Range,
		Weapon:      evt.Weapon,
		Damage:      datum.Damage,
	})
	w.AttachBody(entry, physics.BodySpec{
		Shape:    physics.SphereShape(radius),
		Layer:    physics.LayerProjectile,
		Position: evt.Origin,
		Velocity: evt.Direction.Scale(datum.ProjectileSpeed),
	})

	model := w.Create(entry.Entity(), world.Model)
	world.Model.SetValue(model, world.ModelData{Glyph: '*', Color: core.ColorBrightRed})
	return entry.Entity()
}

// SpawnAll drains the fire queue and spawns one projectile per event.
// Events naming an unknown weapon are dropped.
func SpawnAll(w *world.World, tables *data.Tables, fires *event.Queue[event.Fire], radius float64, logger *log.Logger) []donburi.Entity {
	var spawned []donburi.Entity
	for _, evt := range fires.Drain() {
		datum, ok := tables.Weapon(evt.Weapon)
		if !ok {
			logger.Warn("fire event for unknown weapon", "weapon", evt.Weapon)
			continue
		}
		e := Spawn(w, evt, datum, radius)
		logger.Debug("projectile spawned", "projectile", e, "owner", evt.Owner, "weapon", evt.Weapon)
		spawned = append(spawned, e)
	}
	return spawned
}

// Expire fizzles and despawns every projectile farther than its max
// distance from its origin. Run it after collision resolution so a
// projectile that both collides and expires in one tick counts as a
// collision.
func Expire(w *world.World, fizzles *event.Queue[event.Fizzle], logger *log.Logger) int {
	var expired []event.Fizzle
	live.Each(w.ECS(), func(entry *donburi.Entry) {
		p := world.Projectile.Get(entry)
		pos, ok := w.Position(entry.Entity())
		if !ok {
			return
		}
		if p.Origin.Distance(pos) > p.MaxDistance {
			expired = append(expired, event.Fizzle{
				Projectile: entry.Entity(),
				Origin:     p.Origin,
				Position:   pos,
			})
		}
	})

	n := 0
	for _, f := range expired {
		if !w.Despawn(f.Projectile) {
			continue
		}
		fizzles.Push(f)
		logger.Debug("projectile fizzled", "projectile", f.Projectile)
		n++
	}
	return n
}

// Count returns the number of live projectiles.
func Count(w *world.World) int {
	return live.Count(w.ECS())
}

// Each calls fn for every live projectile.
func Each(w *world.World, fn func(e donburi.Entity, p world.ProjectileData)) {
	live.Each(w.ECS(), func(entry *donburi.Entry) {
		fn(entry.Entity(), *world.Projectile.Get(entry))
	})
}
