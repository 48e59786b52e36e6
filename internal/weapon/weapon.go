// Package weapon implements the per-weapon cooldown and ammo gate and the
// per-player trigger that turns fire intents into shots.
package weapon

import (
	"time"

	"github.com/yohamta/donburi"

	"github.com/vovakirdan/ortho-arena/internal/core"
	"github.com/vovakirdan/ortho-arena/internal/data"
	"github.com/vovakirdan/ortho-arena/internal/event"
	"github.com/vovakirdan/ortho-arena/internal/invariant"
	"github.com/vovakirdan/ortho-arena/internal/inventory"
)

// Shot carries the per-attempt context of a fire.
type Shot struct {
	Owner     donburi.Entity
	Now       time.Duration
	Origin    core.Vec3
	Direction core.Vec3
}

// CanFire reports whether w may fire at now: a round is loaded (when ammo
// is tracked) and the fire interval has elapsed since the last shot.
func CanFire(w *inventory.Weapon, datum data.WeaponData, now time.Duration) bool {
	if w == nil {
		return false
	}
	if w.AmmoTracked && w.Ammo < 1 {
		return false
	}
	return !w.HasFired || now-w.LastFire >= datum.FireInterval
}

// Fire attempts one shot. A rejected attempt returns false and mutates
// nothing. On success it spends one round (when tracked), stamps LastFire
// and pushes a Fire event; spawning is left to the event's consumer.
// A zero direction is rejected.
func Fire(w *inventory.Weapon, datum data.WeaponData, shot Shot, q *event.Queue[event.Fire]) bool {
	if !CanFire(w, datum, shot.Now) {
		return false
	}
	dir := shot.Direction.NormalizeOrZero()
	if dir.IsZero() {
		return false
	}

	if w.AmmoTracked {
		w.Ammo = invariant.NonNegative(nil, w.Ammo-1, "weapon ammo")
	}
	w.LastFire = shot.Now
	w.HasFired = true

	q.Push(event.Fire{
		Owner:     shot.Owner,
		Weapon:    w.Type,
		Origin:    shot.Origin,
		Direction: dir,
	})
	return true
}
