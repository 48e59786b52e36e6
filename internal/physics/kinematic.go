package physics

import (
	"math"
	"time"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/ortho-arena/internal/core"
)

type body struct {
	spec  BodySpec
	pos   core.Vec3
	vel   core.Vec3
	mask  Mask
	floor footprint
}

// Kinematic is a Provider that integrates constant velocities and tests
// overlaps between spheres, upright capsules and axis-aligned boxes. Pairs
// are reported in spawn order, which keeps runs deterministic.
type Kinematic struct {
	bodies map[BodyID]*body
	order  []BodyID
	nextID BodyID
}

// NewKinematic creates an empty provider.
func NewKinematic() *Kinematic {
	return &Kinematic{bodies: make(map[BodyID]*body)}
}

// SpawnBody implements Provider.
func (k *Kinematic) SpawnBody(spec BodySpec) BodyID {
	k.nextID++
	id := k.nextID
	mask := spec.Mask
	if mask == 0 {
		mask = DefaultMask(spec.Layer)
	}
	k.bodies[id] = &body{
		spec:  spec,
		pos:   spec.Position,
		vel:   spec.Velocity,
		mask:  mask,
		floor: newFootprint(spec.Shape, spec.Position),
	}
	k.order = append(k.order, id)
	return id
}

// DespawnBody implements Provider.
func (k *Kinematic) DespawnBody(id BodyID) {
	if _, ok := k.bodies[id]; !ok {
		return
	}
	delete(k.bodies, id)
	for i, o := range k.order {
		if o == id {
			k.order = append(k.order[:i], k.order[i+1:]...)
			break
		}
	}
}

// Position implements Provider.
func (k *Kinematic) Position(id BodyID) (core.Vec3, bool) {
	b, ok := k.bodies[id]
	if !ok {
		return core.Vec3{}, false
	}
	return b.pos, true
}

// SetVelocity implements Provider. Static bodies ignore it.
func (k *Kinematic) SetVelocity(id BodyID, v core.Vec3) {
	if b, ok := k.bodies[id]; ok && !b.spec.Static {
		b.vel = v
	}
}

// Len returns the number of live bodies.
func (k *Kinematic) Len() int {
	return len(k.bodies)
}

// Step implements Provider.
func (k *Kinematic) Step(dt time.Duration) []Pair {
	secs := dt.Seconds()
	for _, id := range k.order {
		b := k.bodies[id]
		if b.spec.Static || b.vel.IsZero() {
			continue
		}
		b.pos = b.pos.Add(b.vel.Scale(secs))
	}

	k.resolveBlocking()
	for _, id := range k.order {
		b := k.bodies[id]
		if !b.spec.Static {
			b.floor.place(b.spec.Shape, b.pos)
		}
	}

	var pairs []Pair
	for i, ida := range k.order {
		a := k.bodies[ida]
		for _, idb := range k.order[i+1:] {
			b := k.bodies[idb]
			if a.spec.Static && b.spec.Static {
				continue
			}
			if !Interacts(a.spec.Layer, a.mask, b.spec.Layer, b.mask) {
				continue
			}
			if !verticalOverlap(a.spec.Shape, a.pos, b.spec.Shape, b.pos) {
				continue
			}
			if floorOverlap(a.floor, a.pos, b.floor, b.pos) {
				pairs = append(pairs, Pair{A: ida, B: idb})
			}
		}
	}
	return pairs
}

// resolveBlocking pushes blocking rounded bodies out of static solid boxes
// along the XZ plane.
func (k *Kinematic) resolveBlocking() {
	for _, id := range k.order {
		b := k.bodies[id]
		if !b.spec.Blocking || b.spec.Sensor || b.spec.Shape.Kind == Box {
			continue
		}
		for _, sid := range k.order {
			s := k.bodies[sid]
			if !s.spec.Static || s.spec.Sensor || s.spec.Shape.Kind != Box {
				continue
			}
			if !Interacts(b.spec.Layer, b.mask, s.spec.Layer, s.mask) {
				continue
			}
			if !verticalOverlap(b.spec.Shape, b.pos, s.spec.Shape, s.pos) {
				continue
			}
			b.pos = pushOut(b, s)
		}
	}
}

// pushOut moves a rounded body out of a static box using the contact's
// minimum translation vector, oriented away from the box center.
func pushOut(b, box *body) core.Vec3 {
	circle := b.floor.circle
	circle.SetPosition(b.pos.X, b.pos.Z)
	contact := circle.Intersection(0, 0, box.floor.rect)
	if contact == nil {
		if !box.floor.rect.PointInside(floorPoint(b.pos)) {
			return b.pos
		}
		return exitNearestFace(b.pos, b.spec.Shape.Radius, box.pos, box.spec.Shape.Half)
	}

	mx, mz := contact.MTV.X, contact.MTV.Y
	if mx*(b.pos.X-box.pos.X)+mz*(b.pos.Z-box.pos.Z) < 0 {
		mx, mz = -mx, -mz
	}
	p := b.pos
	p.X += mx
	p.Z += mz
	return p
}

// exitNearestFace handles a circle whose center sits inside the box without
// crossing an edge.
func exitNearestFace(p core.Vec3, r float64, c, h core.Vec3) core.Vec3 {
	left := p.X - (c.X - h.X)
	right := (c.X + h.X) - p.X
	top := p.Z - (c.Z - h.Z)
	bottom := (c.Z + h.Z) - p.Z
	switch math.Min(math.Min(left, right), math.Min(top, bottom)) {
	case left:
		p.X = c.X - h.X - r
	case right:
		p.X = c.X + h.X + r
	case top:
		p.Z = c.Z - h.Z - r
	default:
		p.Z = c.Z + h.Z + r
	}
	return p
}

// extent returns the vertical interval a shape occupies at p.
func extent(s Shape, p core.Vec3) (lo, hi float64) {
	switch s.Kind {
	case Box:
		return p.Y - s.Half.Y, p.Y + s.Half.Y
	case Capsule:
		half := math.Max(s.Height/2, s.Radius)
		return p.Y - half, p.Y + half
	}
	return p.Y - s.Radius, p.Y + s.Radius
}

func verticalOverlap(sa Shape, pa core.Vec3, sb Shape, pb core.Vec3) bool {
	alo, ahi := extent(sa, pa)
	blo, bhi := extent(sb, pb)
	return alo <= bhi && blo <= ahi
}

// footprint is a body's collider projected onto the floor plane: a circle
// for spheres and capsules, a rectangle for boxes.
type footprint struct {
	circle *resolv.Circle
	rect   *resolv.ConvexPolygon
}

func newFootprint(s Shape, p core.Vec3) footprint {
	if s.Kind == Box {
		return footprint{rect: resolv.NewRectangle(p.X-s.Half.X, p.Z-s.Half.Z, 2*s.Half.X, 2*s.Half.Z)}
	}
	return footprint{circle: resolv.NewCircle(p.X, p.Z, s.Radius)}
}

func (f footprint) place(s Shape, p core.Vec3) {
	if f.rect != nil {
		f.rect.SetPosition(p.X-s.Half.X, p.Z-s.Half.Z)
		return
	}
	f.circle.SetPosition(p.X, p.Z)
}

func floorPoint(p core.Vec3) resolv.Vector {
	return resolv.Vector{X: p.X, Y: p.Z}
}

func (f footprint) contains(v resolv.Vector) bool {
	if f.rect != nil {
		return f.rect.PointInside(v)
	}
	return f.circle.PointInside(v)
}

func (f footprint) intersects(o footprint) bool {
	switch {
	case f.circle != nil && o.circle != nil:
		return f.circle.Intersection(0, 0, o.circle) != nil
	case f.circle != nil:
		return f.circle.Intersection(0, 0, o.rect) != nil
	case o.circle != nil:
		return f.rect.Intersection(0, 0, o.circle) != nil
	}
	return f.rect.Intersection(0, 0, o.rect) != nil
}

// overlaps reports whether two colliders touch. The floor-plane test runs on
// resolv shapes; resolv reports edge crossings only, so full containment is
// checked through the other body's center.
func overlaps(sa Shape, pa core.Vec3, sb Shape, pb core.Vec3) bool {
	if !verticalOverlap(sa, pa, sb, pb) {
		return false
	}
	fa := newFootprint(sa, pa)
	fb := newFootprint(sb, pb)
	return floorOverlap(fa, pa, fb, pb)
}

func floorOverlap(fa footprint, pa core.Vec3, fb footprint, pb core.Vec3) bool {
	return fa.intersects(fb) || fa.contains(floorPoint(pb)) || fb.contains(floorPoint(pa))
}
