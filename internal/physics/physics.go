// Package physics defines the narrow motion and overlap interface the
// combat core depends on, plus a small kinematic implementation of it.
package physics

import (
	"time"

	"github.com/vovakirdan/ortho-arena/internal/core"
)

// BodyID is an opaque handle to a body owned by a Provider. Zero is never
// issued.
type BodyID uint32

// Layer is the collision layer a body belongs to.
type Layer uint8

const (
	LayerDefault Layer = iota
	LayerWorld
	LayerPlayer
	LayerLoot
	LayerProjectile
	LayerInteractable
)

var layerNames = [...]string{"default", "world", "player", "loot", "projectile", "interactable"}

func (l Layer) String() string {
	if int(l) < len(layerNames) {
		return layerNames[l]
	}
	return "unknown"
}

// Bit returns the mask bit for the layer.
func (l Layer) Bit() Mask {
	return 1 << l
}

// Mask is a set of layers.
type Mask uint8

// MaskOf builds a mask from layers.
func MaskOf(layers ...Layer) Mask {
	var m Mask
	for _, l := range layers {
		m |= l.Bit()
	}
	return m
}

// Has reports whether the mask contains l.
func (m Mask) Has(l Layer) bool {
	return m&l.Bit() != 0
}

var defaultMasks = [...]Mask{
	LayerDefault:      MaskOf(LayerDefault, LayerWorld, LayerPlayer, LayerLoot, LayerProjectile),
	LayerWorld:        MaskOf(LayerDefault, LayerPlayer, LayerLoot, LayerProjectile),
	LayerPlayer:       MaskOf(LayerDefault, LayerWorld, LayerProjectile, LayerInteractable),
	LayerLoot:         MaskOf(LayerDefault, LayerWorld),
	LayerProjectile:   MaskOf(LayerDefault, LayerWorld, LayerPlayer),
	LayerInteractable: MaskOf(LayerPlayer),
}

// DefaultMask returns the fixed interaction mask of a layer.
func DefaultMask(l Layer) Mask {
	if int(l) < len(defaultMasks) {
		return defaultMasks[l]
	}
	return 0
}

// Interacts reports whether two bodies may overlap-test: each side's mask
// must contain the other's layer.
func Interacts(la Layer, ma Mask, lb Layer, mb Mask) bool {
	return ma.Has(lb) && mb.Has(la)
}

// ShapeKind enumerates collider shapes.
type ShapeKind uint8

const (
	Sphere ShapeKind = iota
	Capsule
	Box
)

// Shape is a collider centered on the body position. Capsules are upright
// with total height Height.
type Shape struct {
	Kind   ShapeKind
	Radius float64
	Height float64
	Half   core.Vec3
}

// SphereShape returns a sphere collider.
func SphereShape(r float64) Shape { return Shape{Kind: Sphere, Radius: r} }

// CapsuleShape returns an upright capsule collider.
func CapsuleShape(r, height float64) Shape { return Shape{Kind: Capsule, Radius: r, Height: height} }

// BoxShape returns an axis-aligned box collider.
func BoxShape(half core.Vec3) Shape { return Shape{Kind: Box, Half: half} }

// BodySpec describes a body to spawn.
type BodySpec struct {
	Shape    Shape
	Layer    Layer
	Mask     Mask // zero means DefaultMask(Layer)
	Position core.Vec3
	Velocity core.Vec3
	Sensor   bool // overlap only, never blocks
	Static   bool // never moves
	Blocking bool // pushed out of static solid bodies
}

// Pair is an overlap between two bodies reported by Step. A was spawned
// before B.
type Pair struct {
	A, B BodyID
}

// Has reports whether the pair involves id.
func (p Pair) Has(id BodyID) bool {
	return p.A == id || p.B == id
}

// Other returns the body paired with id.
func (p Pair) Other(id BodyID) BodyID {
	if p.A == id {
		return p.B
	}
	return p.A
}

// Provider is the motion and overlap collaborator.
type Provider interface {
	SpawnBody(spec BodySpec) BodyID
	// DespawnBody is a no-op for unknown ids.
	DespawnBody(id BodyID)
	Position(id BodyID) (core.Vec3, bool)
	SetVelocity(id BodyID, v core.Vec3)
	// Step advances motion by dt and returns this step's overlaps.
	Step(dt time.Duration) []Pair
}
