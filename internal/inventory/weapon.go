package inventory

import (
	"time"

	"github.com/vovakirdan/ortho-arena/internal/data"
)

// Weapon is a weapon instance held in a loadout slot.
type Weapon struct {
	Type data.WeaponType
	// AmmoTracked is false for weapons whose ammo lives elsewhere; Ammo is
	// then ignored.
	AmmoTracked bool
	Ammo        int
	LastFire    time.Duration
	HasFired    bool // LastFire is meaningful
}

// NewWeapon returns a weapon with a full magazine.
func NewWeapon(t data.WeaponType, datum data.WeaponData) *Weapon {
	return &Weapon{
		Type:        t,
		AmmoTracked: true,
		Ammo:        datum.MagazineSize,
	}
}
