package inventory

import (
	"testing"
	"time"

	"github.com/vovakirdan/ortho-arena/internal/core"
	"github.com/vovakirdan/ortho-arena/internal/data"
)

func newTestLoadout(capacity int) *Loadout {
	return New(data.Default(), Options{
		Capacity:       capacity,
		ToggleDebounce: 200 * time.Millisecond,
		SelectDebounce: 100 * time.Millisecond,
	})
}

var lightKey = data.StackKey{Kind: data.KindAmmo, ID: string(data.LightAmmo)}

func TestAddWeaponToEmptyLoadout(t *testing.T) {
	l := newTestLoadout(4)
	if l.HasWeapon() {
		t.Fatal("new loadout should have no weapon")
	}

	if !l.AddItem(data.WeaponItem(data.Pistol)) {
		t.Fatal("AddItem(pistol) failed on empty loadout")
	}

	w := l.Selected()
	if w == nil || w.Type != data.Pistol {
		t.Fatalf("selected slot = %+v, expected pistol", w)
	}
	if !w.AmmoTracked || w.Ammo != 10 {
		t.Errorf("pistol ammo = %d (tracked %v), expected full magazine of 10", w.Ammo, w.AmmoTracked)
	}
	if !l.HasWeapon() {
		t.Error("HasWeapon should be true after pickup")
	}
}

func TestAddWeaponFillsOtherSlotThenFails(t *testing.T) {
	l := newTestLoadout(4)
	l.Select(core.SlotSecondary)

	l.AddItem(data.WeaponItem(data.Pistol))
	if l.Slot(core.SlotSecondary) == nil || l.Slot(core.SlotPrimary) != nil {
		t.Fatal("first weapon should fill the selected (secondary) slot")
	}

	l.AddItem(data.WeaponItem(data.SMG))
	if w := l.Slot(core.SlotPrimary); w == nil || w.Type != data.SMG {
		t.Fatal("second weapon should fill the other slot")
	}

	before1, before2 := *l.Slot(core.SlotPrimary), *l.Slot(core.SlotSecondary)
	if l.AddItem(data.WeaponItem(data.Rifle)) {
		t.Fatal("AddItem should fail with both slots occupied")
	}
	if *l.Slot(core.SlotPrimary) != before1 || *l.Slot(core.SlotSecondary) != before2 {
		t.Error("failed AddItem mutated the slots")
	}
}

func TestAddUnknownWeaponFails(t *testing.T) {
	l := newTestLoadout(4)
	if l.AddItem(data.WeaponItem("railgun")) {
		t.Error("unknown weapon type should be rejected")
	}
	if l.HasWeapon() {
		t.Error("rejected weapon should not occupy a slot")
	}
}

func TestAddStack(t *testing.T) {
	tests := []struct {
		name      string
		capacity  int
		existing  []data.Item
		add       data.Item
		wantOK    bool
		wantCount int
	}{
		{"new stack", 4, nil, data.AmmoItem(data.LightAmmo, 20), true, 20},
		{"grow stack", 4, []data.Item{data.AmmoItem(data.LightAmmo, 20)}, data.AmmoItem(data.LightAmmo, 20), true, 40},
		{"grow to exact cap", 4, []data.Item{data.AmmoItem(data.LightAmmo, 30)}, data.AmmoItem(data.LightAmmo, 20), true, 50},
		{"over per-kind cap", 4, []data.Item{data.AmmoItem(data.LightAmmo, 40)}, data.AmmoItem(data.LightAmmo, 20), false, 40},
		{"new stack over cap", 4, nil, data.AmmoItem(data.LightAmmo, 51), false, 0},
		{"zero amount", 4, nil, data.AmmoItem(data.LightAmmo, 0), false, 0},
		{"no capacity", 0, nil, data.AmmoItem(data.LightAmmo, 20), false, 0},
		{"unknown ammo", 4, nil, data.AmmoItem("plasma", 5), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLoadout(tt.capacity)
			for _, it := range tt.existing {
				if !l.AddItem(it) {
					t.Fatalf("setup AddItem(%v) failed", it)
				}
			}

			if got := l.AddItem(tt.add); got != tt.wantOK {
				t.Errorf("AddItem = %v, expected %v", got, tt.wantOK)
			}
			if got := l.Count(lightKey); got != tt.wantCount {
				t.Errorf("Count = %d, expected %d", got, tt.wantCount)
			}
		})
	}
}

func TestAddStackCapacityExhausted(t *testing.T) {
	l := newTestLoadout(2)
	l.AddItem(data.AmmoItem(data.LightAmmo, 20))
	l.AddItem(data.StackItem(data.KindConsumable, "medkit", 1))

	before := l.Stacks()
	if l.AddItem(data.StackItem(data.KindThrowable, "frag", 1)) {
		t.Fatal("third distinct stack should not fit in capacity 2")
	}
	after := l.Stacks()
	if len(after) != len(before) {
		t.Fatalf("stacks changed on failure: %v -> %v", before, after)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("stack %d changed: %v -> %v", i, before[i], after[i])
		}
	}

	// Existing kinds can still grow.
	if !l.AddItem(data.StackItem(data.KindConsumable, "medkit", 1)) {
		t.Error("existing stack should still grow when capacity is full")
	}
}

func TestSelectAndToggle(t *testing.T) {
	l := newTestLoadout(4)
	if l.SelectedSlot() != core.SlotPrimary {
		t.Fatal("primary should be selected initially")
	}

	l.Select(core.SlotSecondary)
	l.Select(core.SlotSecondary)
	if l.SelectedSlot() != core.SlotSecondary {
		t.Error("Select should be idempotent")
	}

	l.ToggleSelected()
	if l.SelectedSlot() != core.SlotPrimary {
		t.Error("ToggleSelected should swap back to primary")
	}

	l.Select(core.Slot(7))
	if l.SelectedSlot() != core.SlotPrimary {
		t.Error("unknown slot should be ignored")
	}
	if l.Slot(core.Slot(7)) != nil {
		t.Error("Slot on unknown slot should return nil")
	}
}

func TestDebouncesAreIndependent(t *testing.T) {
	l := newTestLoadout(4)
	ms := time.Millisecond

	if !l.TryToggle(0) {
		t.Fatal("first toggle should pass")
	}
	if l.TryToggle(150 * ms) {
		t.Error("toggle inside 200ms window should be rejected")
	}
	if !l.TrySelect(core.SlotPrimary, 150*ms) {
		t.Error("select uses its own window and should pass")
	}
	if l.TrySelect(core.SlotSecondary, 200*ms) {
		t.Error("select inside 100ms window should be rejected")
	}
	if !l.TryToggle(200 * ms) {
		t.Error("toggle at window edge should pass")
	}
	if l.SelectedSlot() != core.SlotSecondary {
		t.Errorf("selected = %v, expected secondary", l.SelectedSlot())
	}
}

func TestReload(t *testing.T) {
	l := newTestLoadout(4)
	if l.Reload() {
		t.Fatal("Reload without a weapon should fail")
	}

	l.AddItem(data.WeaponItem(data.Pistol))
	w := l.Selected()
	if l.Reload() {
		t.Error("Reload with a full magazine should fail")
	}

	w.Ammo = 3
	if l.Reload() {
		t.Error("Reload without ammo stack should fail")
	}
	if w.Ammo != 3 {
		t.Error("failed Reload mutated ammo")
	}

	l.AddItem(data.AmmoItem(data.LightAmmo, 20))
	if !l.Reload() {
		t.Fatal("Reload should succeed")
	}
	if w.Ammo != 10 || l.Count(lightKey) != 13 {
		t.Errorf("after reload ammo = %d reserve = %d, expected 10 and 13", w.Ammo, l.Count(lightKey))
	}

	w.Ammo = 0
	l.stacks[0].Count = 4
	if !l.Reload() {
		t.Fatal("partial Reload should succeed")
	}
	if w.Ammo != 4 || len(l.Stacks()) != 0 {
		t.Errorf("partial reload: ammo = %d stacks = %v", w.Ammo, l.Stacks())
	}
}

func TestSnapshot(t *testing.T) {
	l := newTestLoadout(4)
	l.AddItem(data.WeaponItem(data.Pistol))
	l.AddItem(data.WeaponItem(data.Rifle))
	l.AddItem(data.AmmoItem(data.LightAmmo, 20))

	snap := l.Snapshot()
	if snap.Selected == nil || snap.Selected.Name != "Pistol" || snap.Selected.Ammo != 10 {
		t.Errorf("Selected = %+v", snap.Selected)
	}
	if snap.Selected.Reserve != 20 {
		t.Errorf("Reserve = %d, expected 20", snap.Selected.Reserve)
	}
	if snap.Unselected == nil || snap.Unselected.FireMode != "burst-3" {
		t.Errorf("Unselected = %+v", snap.Unselected)
	}
	if len(snap.Stacks) != 1 || snap.Stacks[0].Name != "Light" || snap.Stacks[0].Max != 50 {
		t.Errorf("Stacks = %+v", snap.Stacks)
	}

	snap.Selected.Ammo = 0
	if l.Selected().Ammo != 10 {
		t.Error("snapshot must not alias loadout state")
	}
}
