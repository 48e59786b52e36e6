// Package physicstest provides a scripted physics.Provider for tests.
package physicstest

import (
	"time"

	"github.com/vovakirdan/ortho-arena/internal/core"
	"github.com/vovakirdan/ortho-arena/internal/physics"
)

// Fake integrates velocities like a real provider but reports only the
// overlap pairs queued with Script.
type Fake struct {
	Specs     map[physics.BodyID]physics.BodySpec
	pos       map[physics.BodyID]core.Vec3
	vel       map[physics.BodyID]core.Vec3
	next      physics.BodyID
	scripted  [][]physics.Pair
	Despawned []physics.BodyID
	Steps     int
}

// New returns an empty fake.
func New() *Fake {
	return &Fake{
		Specs: make(map[physics.BodyID]physics.BodySpec),
		pos:   make(map[physics.BodyID]core.Vec3),
		vel:   make(map[physics.BodyID]core.Vec3),
	}
}

// Script queues the pairs returned by the next Step call. Each call queues
// one step.
func (f *Fake) Script(pairs ...physics.Pair) {
	f.scripted = append(f.scripted, pairs)
}

// Teleport moves a body.
func (f *Fake) Teleport(id physics.BodyID, p core.Vec3) {
	if _, ok := f.pos[id]; ok {
		f.pos[id] = p
	}
}

// SpawnBody implements physics.Provider.
func (f *Fake) SpawnBody(spec physics.BodySpec) physics.BodyID {
	f.next++
	f.Specs[f.next] = spec
	f.pos[f.next] = spec.Position
	f.vel[f.next] = spec.Velocity
	return f.next
}

// DespawnBody implements physics.Provider.
func (f *Fake) DespawnBody(id physics.BodyID) {
	if _, ok := f.pos[id]; !ok {
		return
	}
	delete(f.pos, id)
	delete(f.vel, id)
	f.Despawned = append(f.Despawned, id)
}

// Position implements physics.Provider.
func (f *Fake) Position(id physics.BodyID) (core.Vec3, bool) {
	p, ok := f.pos[id]
	return p, ok
}

// SetVelocity implements physics.Provider.
func (f *Fake) SetVelocity(id physics.BodyID, v core.Vec3) {
	if _, ok := f.vel[id]; ok {
		f.vel[id] = v
	}
}

// Velocity returns the current velocity of a body.
func (f *Fake) Velocity(id physics.BodyID) core.Vec3 {
	return f.vel[id]
}

// Live returns the number of bodies not yet despawned.
func (f *Fake) Live() int {
	return len(f.pos)
}

// Step implements physics.Provider.
func (f *Fake) Step(dt time.Duration) []physics.Pair {
	f.Steps++
	for id, v := range f.vel {
		f.pos[id] = f.pos[id].Add(v.Scale(dt.Seconds()))
	}
	if len(f.scripted) == 0 {
		return nil
	}
	pairs := f.scripted[0]
	f.scripted = f.scripted[1:]
	return pairs
}
