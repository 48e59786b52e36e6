// Package inventory owns a player's weapon slots and stackable item counts.
// It is the single source of truth for what a player currently holds.
package inventory

import (
	"time"

	"github.com/vovakirdan/ortho-arena/internal/core"
	"github.com/vovakirdan/ortho-arena/internal/data"
)

// Stack is a counted pile of one stackable item.
type Stack struct {
	Key   data.StackKey
	Count int
}

// Options configures a new loadout.
type Options struct {
	Capacity       int // distinct stack slots
	ToggleDebounce time.Duration
	SelectDebounce time.Duration
}

// debounce gates a repeated action to one per window.
type debounce struct {
	window time.Duration
	last   time.Duration
	used   bool
}

func (d *debounce) allow(now time.Duration) bool {
	if d.used && now-d.last < d.window {
		return false
	}
	d.used = true
	d.last = now
	return true
}

// Loadout holds two weapon slots, the selected slot indicator and an
// ordered set of item stacks.
type Loadout struct {
	tables   *data.Tables
	primary  *Weapon
	second   *Weapon
	selected core.Slot
	stacks   []Stack
	capacity int

	toggle debounce
	sel    debounce
}

// New creates an empty loadout with the primary slot selected.
func New(tables *data.Tables, opts Options) *Loadout {
	return &Loadout{
		tables:   tables,
		selected: core.SlotPrimary,
		capacity: max(opts.Capacity, 0),
		toggle:   debounce{window: opts.ToggleDebounce},
		sel:      debounce{window: opts.SelectDebounce},
	}
}

// Tables returns the static tables the loadout resolves items against.
func (l *Loadout) Tables() *data.Tables {
	return l.tables
}

// HasWeapon reports whether either slot is occupied.
func (l *Loadout) HasWeapon() bool {
	return l.primary != nil || l.second != nil
}

// Slot returns the weapon in slot s, or nil when empty or unknown.
func (l *Loadout) Slot(s core.Slot) *Weapon {
	switch s {
	case core.SlotPrimary:
		return l.primary
	case core.SlotSecondary:
		return l.second
	}
	return nil
}

func (l *Loadout) setSlot(s core.Slot, w *Weapon) {
	if s == core.SlotSecondary {
		l.second = w
		return
	}
	l.primary = w
}

// SelectedSlot returns the selected slot.
func (l *Loadout) SelectedSlot() core.Slot {
	return l.selected
}

// Selected returns the weapon in the selected slot, or nil.
func (l *Loadout) Selected() *Weapon {
	return l.Slot(l.selected)
}

// Select sets the selected slot. Unknown slots are ignored.
func (l *Loadout) Select(s core.Slot) {
	if s.Valid() {
		l.selected = s
	}
}

// ToggleSelected swaps the selected slot.
func (l *Loadout) ToggleSelected() {
	l.selected = l.selected.Other()
}

// TrySelect selects s unless an explicit select happened within the select
// debounce window.
func (l *Loadout) TrySelect(s core.Slot, now time.Duration) bool {
	if !s.Valid() || !l.sel.allow(now) {
		return false
	}
	l.Select(s)
	return true
}

// TryToggle toggles unless a toggle happened within the toggle debounce
// window. The two windows are independent.
func (l *Loadout) TryToggle(now time.Duration) bool {
	if !l.toggle.allow(now) {
		return false
	}
	l.ToggleSelected()
	return true
}

// AddItem adds a weapon or stackable item. It returns false and changes
// nothing when the item does not fit.
//
// Weapons go to the selected slot if empty, else the other slot if empty.
// Stackables grow an existing stack when the result stays within the stack
// limit, or open a new stack when a stack slot is free.
func (l *Loadout) AddItem(item data.Item) bool {
	if item.Kind == data.KindWeapon {
		return l.addWeapon(data.WeaponType(item.ID))
	}
	return l.addStack(item)
}

func (l *Loadout) addWeapon(t data.WeaponType) bool {
	datum, ok := l.tables.Weapon(t)
	if !ok {
		return false
	}
	for _, s := range []core.Slot{l.selected, l.selected.Other()} {
		if l.Slot(s) == nil {
			l.setSlot(s, NewWeapon(t, datum))
			return true
		}
	}
	return false
}

func (l *Loadout) addStack(item data.Item) bool {
	if !item.Kind.Stackable() || item.Amount <= 0 {
		return false
	}
	limit, ok := l.tables.StackLimit(item.Key())
	if !ok {
		return false
	}

	if i := l.find(item.Key()); i >= 0 {
		if l.stacks[i].Count+item.Amount > limit {
			return false
		}
		l.stacks[i].Count += item.Amount
		return true
	}

	if len(l.stacks) >= l.capacity || item.Amount > limit {
		return false
	}
	l.stacks = append(l.stacks, Stack{Key: item.Key(), Count: item.Amount})
	return true
}

func (l *Loadout) find(key data.StackKey) int {
	for i, s := range l.stacks {
		if s.Key == key {
			return i
		}
	}
	return -1
}

// Count returns the number of units held for a stack key.
func (l *Loadout) Count(key data.StackKey) int {
	if i := l.find(key); i >= 0 {
		return l.stacks[i].Count
	}
	return 0
}

// Stacks returns a copy of the stacks in insertion order.
func (l *Loadout) Stacks() []Stack {
	out := make([]Stack, len(l.stacks))
	copy(out, l.stacks)
	return out
}

// Capacity returns the number of distinct stack slots.
func (l *Loadout) Capacity() int {
	return l.capacity
}

// Reload refills the selected weapon's magazine from its ammo stack. It
// returns false and changes nothing when there is no selected weapon, the
// magazine is full or no matching ammo is held. An emptied stack frees its
// slot.
func (l *Loadout) Reload() bool {
	w := l.Selected()
	if w == nil || !w.AmmoTracked {
		return false
	}
	datum, ok := l.tables.Weapon(w.Type)
	if !ok || w.Ammo >= datum.MagazineSize {
		return false
	}
	i := l.find(data.StackKey{Kind: data.KindAmmo, ID: string(datum.Ammo)})
	if i < 0 {
		return false
	}

	take := min(datum.MagazineSize-w.Ammo, l.stacks[i].Count)
	w.Ammo += take
	l.stacks[i].Count -= take
	if l.stacks[i].Count == 0 {
		l.stacks = append(l.stacks[:i], l.stacks[i+1:]...)
	}
	return true
}
