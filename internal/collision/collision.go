// Package collision turns raw overlap pairs into projectile collision
// events. It runs after the physics step in two passes: owner exclusion,
// then resolution.
package collision

import (
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"

	"github.com/vovakirdan/ortho-arena/internal/event"
	"github.com/vovakirdan/ortho-arena/internal/physics"
	"github.com/vovakirdan/ortho-arena/internal/world"
)

// projectileOf returns the projectile data when e is a live projectile.
func projectileOf(w *world.World, e donburi.Entity) (world.ProjectileData, bool) {
	entry := w.Entry(e)
	if entry == nil || !entry.HasComponent(world.Projectile) {
		return world.ProjectileData{}, false
	}
	return *world.Projectile.Get(entry), true
}

// ownedBy reports whether e is a projectile whose owner is other or
// other's root.
func ownedBy(w *world.World, e, other donburi.Entity) bool {
	p, ok := projectileOf(w, e)
	if !ok || p.Owner == donburi.Null {
		return false
	}
	return p.Owner == other || p.Owner == w.Root(other)
}

// Filter drops pairs between a projectile and the entity that fired it,
// in either order. The result preserves the input order.
func Filter(w *world.World, pairs []physics.Pair) []physics.Pair {
	out := pairs[:0:0]
	for _, pair := range pairs {
		a, okA := w.EntityOf(pair.A)
		b, okB := w.EntityOf(pair.B)
		if okA && okB && (ownedBy(w, a, b) || ownedBy(w, b, a)) {
			continue
		}
		out = append(out, pair)
	}
	return out
}

// Resolve raises one collision event per struck projectile and despawns
// it. Later pairs naming an already despawned projectile are ignored, as
// are pairs whose bodies no longer map to entities. Damage is left to the
// event's consumers.
func Resolve(w *world.World, pairs []physics.Pair, collisions *event.Queue[event.Collision], logger *log.Logger) int {
	n := 0
	for _, pair := range pairs {
		a, okA := w.EntityOf(pair.A)
		b, okB := w.EntityOf(pair.B)
		if !okA || !okB {
			continue
		}
		if hit(w, a, b, collisions, logger) {
			n++
		}
		if hit(w, b, a, collisions, logger) {
			n++
		}
	}
	return n
}

func hit(w *world.World, proj, target donburi.Entity, collisions *event.Queue[event.Collision], logger *log.Logger) bool {
	p, ok := projectileOf(w, proj)
	if !ok {
		return false
	}
	pos, _ := w.Position(proj)
	if !w.Despawn(proj) {
		return false
	}
	collisions.Push(event.Collision{
		Projectile: proj,
		Target:     target,
		Weapon:     p.Weapon,
		Damage:     p.Damage,
		Position:   pos,
	})
	logger.Debug("projectile collides", "projectile", proj, "target", target)
	return true
}
