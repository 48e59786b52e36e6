package data

import (
	"fmt"
	"sort"
	"time"
)

// Tables bundles every static row. Values are never mutated after load.
type Tables struct {
	Weapons     map[WeaponType]WeaponData `yaml:"weapons" toml:"weapons"`
	Ammo        map[AmmoType]AmmoData     `yaml:"ammo" toml:"ammo"`
	Throwables  map[string]ItemData       `yaml:"throwables" toml:"throwables"`
	Consumables map[string]ItemData       `yaml:"consumables" toml:"consumables"`
}

// Weapon returns the row for a weapon type.
func (t *Tables) Weapon(wt WeaponType) (WeaponData, bool) {
	d, ok := t.Weapons[wt]
	return d, ok
}

// AmmoFor returns the ammo row consumed by a weapon type.
func (t *Tables) AmmoFor(wt WeaponType) (AmmoType, AmmoData, bool) {
	w, ok := t.Weapons[wt]
	if !ok {
		return "", AmmoData{}, false
	}
	a, ok := t.Ammo[w.Ammo]
	return w.Ammo, a, ok
}

// ParseWeapon resolves a weapon id or display name.
func (t *Tables) ParseWeapon(s string) (WeaponType, error) {
	if _, ok := t.Weapons[WeaponType(s)]; ok {
		return WeaponType(s), nil
	}
	for wt, d := range t.Weapons {
		if d.Name == s {
			return wt, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWeapon, s)
}

// StackLimit returns the maximum stack size for a stackable key.
func (t *Tables) StackLimit(key StackKey) (int, bool) {
	switch key.Kind {
	case KindAmmo:
		d, ok := t.Ammo[AmmoType(key.ID)]
		return d.StackSize, ok
	case KindThrowable:
		d, ok := t.Throwables[key.ID]
		return d.StackSize, ok
	case KindConsumable:
		d, ok := t.Consumables[key.ID]
		return d.StackSize, ok
	}
	return 0, false
}

// LootSize returns how many units a ground loot pile of key grants.
func (t *Tables) LootSize(key StackKey) int {
	switch key.Kind {
	case KindAmmo:
		return t.Ammo[AmmoType(key.ID)].LootSize
	case KindThrowable:
		return t.Throwables[key.ID].LootSize
	case KindConsumable:
		return t.Consumables[key.ID].LootSize
	}
	return 0
}

// DisplayName returns the human name for an item's id.
func (t *Tables) DisplayName(kind ItemKind, id string) string {
	var name string
	switch kind {
	case KindWeapon:
		name = t.Weapons[WeaponType(id)].Name
	case KindAmmo:
		name = t.Ammo[AmmoType(id)].Name
	case KindThrowable:
		name = t.Throwables[id].Name
	case KindConsumable:
		name = t.Consumables[id].Name
	}
	if name == "" {
		return id
	}
	return name
}

// WeaponTypes returns weapon ids in sorted order.
func (t *Tables) WeaponTypes() []WeaponType {
	out := make([]WeaponType, 0, len(t.Weapons))
	for wt := range t.Weapons {
		out = append(out, wt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// LootPool returns every item the random loot generator may grant, in a
// stable order so seeded draws are reproducible.
func (t *Tables) LootPool() []Item {
	var pool []Item
	for _, wt := range t.WeaponTypes() {
		pool = append(pool, WeaponItem(wt))
	}
	for _, id := range sortedKeys(t.Ammo) {
		pool = append(pool, AmmoItem(AmmoType(id), t.Ammo[AmmoType(id)].LootSize))
	}
	for _, id := range sortedKeys(t.Throwables) {
		pool = append(pool, StackItem(KindThrowable, id, t.Throwables[id].LootSize))
	}
	for _, id := range sortedKeys(t.Consumables) {
		pool = append(pool, StackItem(KindConsumable, id, t.Consumables[id].LootSize))
	}
	return pool
}

func sortedKeys[K ~string, V any](m map[K]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, string(k))
	}
	sort.Strings(out)
	return out
}

// Validate checks cross references and value ranges.
func (t *Tables) Validate() error {
	if len(t.Weapons) == 0 {
		return fmt.Errorf("%w: no weapons defined", ErrInvalidValue)
	}
	for wt, w := range t.Weapons {
		if _, ok := t.Ammo[w.Ammo]; !ok {
			return fmt.Errorf("weapon %s: %w %q", wt, ErrUnknownAmmo, w.Ammo)
		}
		switch {
		case w.MagazineSize < 1:
			return fmt.Errorf("weapon %s: %w: magazine_size %d", wt, ErrInvalidValue, w.MagazineSize)
		case w.FireInterval < 0:
			return fmt.Errorf("weapon %s: %w: fire_interval %s", wt, ErrInvalidValue, w.FireInterval)
		case w.ProjectileSpeed <= 0:
			return fmt.Errorf("weapon %s: %w: projectile_speed %v", wt, ErrInvalidValue, w.ProjectileSpeed)
		case w.Range <= 0:
			return fmt.Errorf("weapon %s: %w: range %v", wt, ErrInvalidValue, w.Range)
		case w.FireMode.Kind == Burst && w.FireMode.Burst < 1:
			return fmt.Errorf("weapon %s: %w: burst size %d", wt, ErrInvalidValue, w.FireMode.Burst)
		}
	}
	for at, a := range t.Ammo {
		if a.StackSize < 1 || a.LootSize < 1 || a.LootSize > a.StackSize {
			return fmt.Errorf("ammo %s: %w: loot_size %d stack_size %d", at, ErrInvalidValue, a.LootSize, a.StackSize)
		}
	}
	for _, group := range []map[string]ItemData{t.Throwables, t.Consumables} {
		for id, d := range group {
			if d.StackSize < 1 || d.LootSize < 1 || d.LootSize > d.StackSize {
				return fmt.Errorf("item %s: %w: loot_size %d stack_size %d", id, ErrInvalidValue, d.LootSize, d.StackSize)
			}
		}
	}
	return nil
}

// Default returns the built-in tables. Used when no tables file is found
// and by tests.
func Default() *Tables {
	return &Tables{
		Weapons: map[WeaponType]WeaponData{
			Pistol: {
				Name:            "Pistol",
				Ammo:            LightAmmo,
				MagazineSize:    10,
				FireMode:        FireMode{Kind: SemiAuto},
				FireInterval:    250 * time.Millisecond,
				ProjectileSpeed: 200,
				Damage:          10,
				Range:           25,
			},
			SMG: {
				Name:            "SMG",
				Ammo:            LightAmmo,
				MagazineSize:    30,
				FireMode:        FireMode{Kind: FullAuto},
				FireInterval:    100 * time.Millisecond,
				ProjectileSpeed: 180,
				Damage:          6,
				Range:           20,
			},
			Rifle: {
				Name:            "Rifle",
				Ammo:            HeavyAmmo,
				MagazineSize:    24,
				FireMode:        BurstOf(3),
				FireInterval:    80 * time.Millisecond,
				ProjectileSpeed: 260,
				Damage:          14,
				Range:           40,
			},
		},
		Ammo: map[AmmoType]AmmoData{
			LightAmmo: {Name: "Light", LootSize: 20, StackSize: 50},
			HeavyAmmo: {Name: "Heavy", LootSize: 12, StackSize: 36},
		},
		Throwables: map[string]ItemData{
			"frag": {Name: "Frag Grenade", LootSize: 1, StackSize: 3},
		},
		Consumables: map[string]ItemData{
			"medkit": {Name: "Medkit", LootSize: 1, StackSize: 5},
		},
	}
}
