package weapon

import (
	"testing"
	"time"

	"github.com/vovakirdan/ortho-arena/internal/core"
	"github.com/vovakirdan/ortho-arena/internal/data"
	"github.com/vovakirdan/ortho-arena/internal/event"
	"github.com/vovakirdan/ortho-arena/internal/inventory"
)

func loadoutWith(types ...data.WeaponType) *inventory.Loadout {
	l := inventory.New(data.Default(), inventory.Options{Capacity: 4})
	for _, wt := range types {
		l.AddItem(data.WeaponItem(wt))
	}
	return l
}

// run pulls the trigger once per tick with the given held pattern and
// returns the tick indexes that fired.
func run(trig *Trigger, l *inventory.Loadout, held []bool, tick time.Duration) []int {
	var q event.Queue[event.Fire]
	var fired []int
	for i, h := range held {
		if trig.Pull(l, h, shotAt(time.Duration(i)*tick), &q) {
			fired = append(fired, i)
		}
	}
	return fired
}

func repeat(v bool, n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestTriggerSemiAutoFiresOnEdgeOnly(t *testing.T) {
	var trig Trigger
	l := loadoutWith(data.Pistol)

	held := append(repeat(true, 30), repeat(false, 2)...)
	held = append(held, true)
	fired := run(&trig, l, held, 50*ms)

	if len(fired) != 2 || fired[0] != 0 || fired[1] != 32 {
		t.Errorf("fired on ticks %v, expected [0 32]", fired)
	}
}

func TestTriggerFullAutoFiresAtCadence(t *testing.T) {
	var trig Trigger
	l := loadoutWith(data.SMG)

	// 100ms interval, 50ms ticks, held for 1s: every other tick.
	fired := run(&trig, l, repeat(true, 20), 50*ms)
	if len(fired) != 10 {
		t.Errorf("fired %d times, expected 10: %v", len(fired), fired)
	}
	if l.Selected().Ammo != 20 {
		t.Errorf("ammo = %d, expected 20", l.Selected().Ammo)
	}
}

func TestTriggerBurstFiresArmedShotsOnce(t *testing.T) {
	var trig Trigger
	l := loadoutWith(data.Rifle)

	// 80ms interval, 40ms ticks: burst shots land on ticks 0, 2, 4.
	fired := run(&trig, l, repeat(true, 20), 40*ms)
	if len(fired) != 3 || fired[0] != 0 || fired[1] != 2 || fired[2] != 4 {
		t.Errorf("fired on ticks %v, expected [0 2 4]", fired)
	}
	if trig.Armed() != 0 {
		t.Errorf("Armed = %d after burst", trig.Armed())
	}
}

func TestTriggerBurstContinuesAfterRelease(t *testing.T) {
	var trig Trigger
	l := loadoutWith(data.Rifle)

	held := append([]bool{true}, repeat(false, 9)...)
	if fired := run(&trig, l, held, 40*ms); len(fired) != 3 {
		t.Errorf("a tap should complete the burst, fired %v", fired)
	}
}

func TestTriggerBurstStopsOnEmptyMagazine(t *testing.T) {
	var trig Trigger
	l := loadoutWith(data.Rifle)
	l.Selected().Ammo = 2

	fired := run(&trig, l, repeat(true, 10), 40*ms)
	if len(fired) != 2 {
		t.Errorf("fired %v, expected two shots", fired)
	}
	if trig.Armed() != 0 {
		t.Error("empty magazine should end the burst")
	}
}

func TestTriggerWeaponSwitchCancelsBurst(t *testing.T) {
	var trig Trigger
	var q event.Queue[event.Fire]
	l := loadoutWith(data.Rifle, data.Pistol)

	if !trig.Pull(l, true, shotAt(0), &q) {
		t.Fatal("first burst shot should fire")
	}
	if trig.Armed() != 2 {
		t.Fatalf("Armed = %d, expected 2", trig.Armed())
	}

	l.Select(core.SlotSecondary)
	if trig.Pull(l, true, shotAt(time.Second), &q) {
		t.Error("held trigger after switching to a semi-auto should not fire")
	}
	if trig.Armed() != 0 {
		t.Error("switch should cancel the burst")
	}

	l.Select(core.SlotPrimary)
	if trig.Pull(l, true, shotAt(2*time.Second), &q) {
		t.Error("switching back should not resume the burst")
	}
}

func TestTriggerWithoutWeapon(t *testing.T) {
	var trig Trigger
	var q event.Queue[event.Fire]
	if trig.Pull(loadoutWith(), true, shotAt(0), &q) {
		t.Error("empty loadout cannot fire")
	}
}
