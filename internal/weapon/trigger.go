package weapon

import (
	"github.com/vovakirdan/ortho-arena/internal/data"
	"github.com/vovakirdan/ortho-arena/internal/event"
	"github.com/vovakirdan/ortho-arena/internal/inventory"
)

// Trigger turns the per-tick firing flag into fire attempts according to
// the selected weapon's fire mode:
//
//   - semi-auto fires on the press edge only
//   - full-auto attempts every tick the trigger is held
//   - burst-N arms N shots on the press edge; each is attempted as soon as
//     the cooldown allows. The burst ends after N shots, on an empty
//     magazine or on a weapon switch. Holding does not re-arm.
type Trigger struct {
	held   bool
	armed  int
	weapon *inventory.Weapon
}

// Pull evaluates one tick and reports whether a shot was fired.
func (t *Trigger) Pull(l *inventory.Loadout, firing bool, shot Shot, q *event.Queue[event.Fire]) bool {
	edge := firing && !t.held
	t.held = firing

	w := l.Selected()
	if w != t.weapon {
		t.armed = 0
		t.weapon = w
	}
	if w == nil {
		return false
	}
	datum, ok := l.Tables().Weapon(w.Type)
	if !ok {
		return false
	}

	switch datum.FireMode.Kind {
	case data.SemiAuto:
		return edge && Fire(w, datum, shot, q)
	case data.FullAuto:
		return firing && Fire(w, datum, shot, q)
	case data.Burst:
		if edge && t.armed == 0 {
			t.armed = datum.FireMode.Burst
		}
		if t.armed == 0 {
			return false
		}
		if w.AmmoTracked && w.Ammo < 1 {
			t.armed = 0
			return false
		}
		if !Fire(w, datum, shot, q) {
			return false
		}
		t.armed--
		if w.AmmoTracked && w.Ammo == 0 {
			t.armed = 0
		}
		return true
	}
	return false
}

// Armed returns the burst shots still pending.
func (t *Trigger) Armed() int {
	return t.armed
}

// Reset releases the trigger and cancels any burst.
func (t *Trigger) Reset() {
	*t = Trigger{}
}
