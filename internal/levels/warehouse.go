package levels

import "github.com/vovakirdan/ortho-arena/internal/core"

// Warehouse is a cluttered hall with crate aisles.
type Warehouse struct{}

func (Warehouse) ID() string          { return "warehouse" }
func (Warehouse) Title() string       { return "Warehouse" }
func (Warehouse) Description() string { return "Crate aisles with loot tucked between them" }

func (Warehouse) Layout() core.Layout {
	boxes := perimeter(48, 36)
	for _, x := range []float64{-16, -6, 4, 14} {
		boxes = append(boxes,
			wall(x, -12, x+2, -4),
			wall(x, 4, x+2, 12),
		)
	}
	return core.Layout{
		Width:        48,
		Depth:        36,
		Boxes:        boxes,
		PlayerSpawns: []core.Vec3{core.V3(-20, 1, 0), core.V3(20, 1, 0)},
		LootSpawns: []core.Vec3{
			core.V3(-11, 0.5, -8),
			core.V3(-1, 0.5, 8),
			core.V3(9, 0.5, -8),
			core.V3(19, 0.5, 8),
			core.V3(-11, 0.5, 8),
			core.V3(9, 0.5, 8),
		},
	}
}
