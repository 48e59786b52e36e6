// Package world is the entity arena of a simulation: donburi entities with
// per-kind components, parent/child links, and the mapping between entities
// and physics bodies.
package world

import (
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/component"

	"github.com/vovakirdan/ortho-arena/internal/core"
	"github.com/vovakirdan/ortho-arena/internal/physics"
)

// World wraps a donburi world together with the physics provider that owns
// the bodies of its entities.
type World struct {
	ecs     donburi.World
	physics physics.Provider
	bodies  map[physics.BodyID]donburi.Entity
	logger  *log.Logger
}

// New creates an empty world backed by p.
func New(p physics.Provider, logger *log.Logger) *World {
	return &World{
		ecs:     donburi.NewWorld(),
		physics: p,
		bodies:  make(map[physics.BodyID]donburi.Entity),
		logger:  logger,
	}
}

// ECS returns the underlying donburi world for queries.
func (w *World) ECS() donburi.World {
	return w.ecs
}

// Physics returns the physics provider.
func (w *World) Physics() physics.Provider {
	return w.physics
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.ecs.Len()
}

// Alive reports whether e still exists.
func (w *World) Alive(e donburi.Entity) bool {
	return e != donburi.Null && w.ecs.Valid(e)
}

// Entry returns the entry for e, or nil when e is gone.
func (w *World) Entry(e donburi.Entity) *donburi.Entry {
	if !w.Alive(e) {
		return nil
	}
	return w.ecs.Entry(e)
}

// Create makes an entity with the given components plus a hierarchy link.
// A non-null parent adopts the new entity.
func (w *World) Create(parent donburi.Entity, comps ...component.IComponentType) *donburi.Entry {
	comps = append(comps, Hierarchy)
	entry := w.ecs.Entry(w.ecs.Create(comps...))

	if p := w.Entry(parent); p != nil {
		Hierarchy.Get(entry).Parent = parent
		h := Hierarchy.Get(p)
		h.Children = append(h.Children, entry.Entity())
	}
	return entry
}

// AttachBody spawns a physics body for entry and records the mapping.
func (w *World) AttachBody(entry *donburi.Entry, spec physics.BodySpec) physics.BodyID {
	id := w.physics.SpawnBody(spec)
	if !entry.HasComponent(Body) {
		entry.AddComponent(Body)
	}
	Body.SetValue(entry, BodyData{ID: id})
	w.bodies[id] = entry.Entity()
	return id
}

// EntityOf resolves a body to its entity.
func (w *World) EntityOf(id physics.BodyID) (donburi.Entity, bool) {
	e, ok := w.bodies[id]
	if !ok || !w.Alive(e) {
		return donburi.Null, false
	}
	return e, true
}

// BodyOf returns the body attached to e.
func (w *World) BodyOf(e donburi.Entity) (physics.BodyID, bool) {
	entry := w.Entry(e)
	if entry == nil || !entry.HasComponent(Body) {
		return 0, false
	}
	return Body.Get(entry).ID, true
}

// Position returns the body position of e.
func (w *World) Position(e donburi.Entity) (core.Vec3, bool) {
	id, ok := w.BodyOf(e)
	if !ok {
		return core.Vec3{}, false
	}
	return w.physics.Position(id)
}

// Parent returns the parent of e, or Null.
func (w *World) Parent(e donburi.Entity) donburi.Entity {
	entry := w.Entry(e)
	if entry == nil {
		return donburi.Null
	}
	return Hierarchy.Get(entry).Parent
}

// Root follows parent links to the top-level entity.
func (w *World) Root(e donburi.Entity) donburi.Entity {
	for {
		p := w.Parent(e)
		if p == donburi.Null || !w.Alive(p) {
			return e
		}
		e = p
	}
}

// Children returns a copy of e's children.
func (w *World) Children(e donburi.Entity) []donburi.Entity {
	entry := w.Entry(e)
	if entry == nil {
		return nil
	}
	h := Hierarchy.Get(entry)
	out := make([]donburi.Entity, len(h.Children))
	copy(out, h.Children)
	return out
}

// Despawn removes e, its children and their bodies. It returns false when
// e was already gone, which makes repeated requests harmless.
func (w *World) Despawn(e donburi.Entity) bool {
	entry := w.Entry(e)
	if entry == nil {
		return false
	}

	h := Hierarchy.Get(entry)
	children := h.Children
	parent := h.Parent
	h.Children = nil
	for _, c := range children {
		w.Despawn(c)
	}
	// Removing children can relocate component storage.
	entry = w.ecs.Entry(e)

	if p := w.Entry(parent); p != nil {
		ph := Hierarchy.Get(p)
		for i, c := range ph.Children {
			if c == e {
				ph.Children = append(ph.Children[:i], ph.Children[i+1:]...)
				break
			}
		}
	}

	if entry.HasComponent(Body) {
		id := Body.Get(entry).ID
		w.physics.DespawnBody(id)
		delete(w.bodies, id)
	}
	w.ecs.Remove(e)

	if w.logger != nil {
		w.logger.Debug("despawned", "entity", e)
	}
	return true
}
