package core

// Box is a static axis-aligned obstacle in world space.
type Box struct {
	Center Vec3
	Half   Vec3 // half extents
}

// Layout describes the authored content of an arena: the floor, static
// obstacles and spawn markers. Layouts are produced by the registry and
// consumed by the simulation when populating the world.
type Layout struct {
	Width        float64 // floor extent along X, centered on the origin
	Depth        float64 // floor extent along Z, centered on the origin
	Boxes        []Box
	PlayerSpawns []Vec3
	LootSpawns   []Vec3
}

// Contains reports whether p lies on the floor (ignoring height).
func (l Layout) Contains(p Vec3) bool {
	return p.X >= -l.Width/2 && p.X <= l.Width/2 && p.Z >= -l.Depth/2 && p.Z <= l.Depth/2
}
