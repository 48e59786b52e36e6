package event

import (
	"github.com/yohamta/donburi"

	"github.com/vovakirdan/ortho-arena/internal/core"
	"github.com/vovakirdan/ortho-arena/internal/data"
)

// Fire is raised by a successful weapon fire.
type Fire struct {
	Owner     donburi.Entity
	Weapon    data.WeaponType
	Origin    core.Vec3
	Direction core.Vec3 // unit length
}

// Collision is raised once when a projectile strikes something other than
// its owner.
type Collision struct {
	Projectile donburi.Entity
	Target     donburi.Entity
	Weapon     data.WeaponType
	Damage     int
	Position   core.Vec3
}

// Fizzle is raised when a projectile passes its max distance without
// striking anything.
type Fizzle struct {
	Projectile donburi.Entity
	Origin     core.Vec3
	Position   core.Vec3
}

// PickedUp is raised when a ground loot payload enters a loadout.
type PickedUp struct {
	Player donburi.Entity
	Loot   donburi.Entity
	Item   data.Item
}

// Bus owns one queue per event kind for a simulation.
type Bus struct {
	Fire      Queue[Fire]
	Collision Queue[Collision]
	Fizzle    Queue[Fizzle]
	PickedUp  Queue[PickedUp]
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Reset clears every queue. Called unconditionally at tick end.
func (b *Bus) Reset() {
	b.Fire.Reset()
	b.Collision.Reset()
	b.Fizzle.Reset()
	b.PickedUp.Reset()
}

// Empty reports whether no events were raised this tick.
func (b *Bus) Empty() bool {
	return b.Fire.Len() == 0 && b.Collision.Len() == 0 && b.Fizzle.Len() == 0 && b.PickedUp.Len() == 0
}
