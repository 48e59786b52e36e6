package inventory

import (
	"github.com/vovakirdan/ortho-arena/internal/core"
	"github.com/vovakirdan/ortho-arena/internal/data"
)

// WeaponView is the read-only HUD view of a weapon.
type WeaponView struct {
	Slot        string `json:"slot"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Ammo        int    `json:"ammo"`
	AmmoTracked bool   `json:"ammo_tracked"`
	Magazine    int    `json:"magazine"`
	FireMode    string `json:"fire_mode"`
	Reserve     int    `json:"reserve"` // matching ammo held in stacks
}

// StackView is the read-only HUD view of a stack.
type StackView struct {
	Kind  string `json:"kind"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
	Max   int    `json:"max"`
}

// Snapshot is a read-only view of a loadout for display.
type Snapshot struct {
	Selected   *WeaponView `json:"selected,omitempty"`
	Unselected *WeaponView `json:"unselected,omitempty"`
	Stacks     []StackView `json:"stacks"`
	Capacity   int         `json:"capacity"`
}

// Snapshot builds the HUD view.
func (l *Loadout) Snapshot() Snapshot {
	snap := Snapshot{
		Selected:   l.weaponView(l.selected),
		Unselected: l.weaponView(l.selected.Other()),
		Stacks:     make([]StackView, 0, len(l.stacks)),
		Capacity:   l.capacity,
	}
	for _, s := range l.stacks {
		limit, _ := l.tables.StackLimit(s.Key)
		snap.Stacks = append(snap.Stacks, StackView{
			Kind:  s.Key.Kind.String(),
			ID:    s.Key.ID,
			Name:  l.tables.DisplayName(s.Key.Kind, s.Key.ID),
			Count: s.Count,
			Max:   limit,
		})
	}
	return snap
}

func (l *Loadout) weaponView(s core.Slot) *WeaponView {
	w := l.Slot(s)
	if w == nil {
		return nil
	}
	datum, _ := l.tables.Weapon(w.Type)
	ammo, _, _ := l.tables.AmmoFor(w.Type)
	return &WeaponView{
		Slot:        s.String(),
		Type:        string(w.Type),
		Name:        l.tables.DisplayName(data.KindWeapon, string(w.Type)),
		Ammo:        w.Ammo,
		AmmoTracked: w.AmmoTracked,
		Magazine:    datum.MagazineSize,
		FireMode:    datum.FireMode.String(),
		Reserve:     l.Count(data.StackKey{Kind: data.KindAmmo, ID: string(ammo)}),
	}
}
