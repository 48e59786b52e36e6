package levels

import "github.com/vovakirdan/ortho-arena/internal/core"

// Range is an open shooting range with a back wall and a row of loot
// tables.
type Range struct{}

func (Range) ID() string          { return "range" }
func (Range) Title() string       { return "Shooting Range" }
func (Range) Description() string { return "Open floor, back wall, loot along the firing line" }

func (Range) Layout() core.Layout {
	boxes := perimeter(40, 60)
	boxes = append(boxes,
		wall(-8, -22, 8, -21), // backstop
		wall(-14, 4, -12, 6),
		wall(12, 4, 14, 6),
	)
	return core.Layout{
		Width:        40,
		Depth:        60,
		Boxes:        boxes,
		PlayerSpawns: []core.Vec3{core.V3(0, 1, 20), core.V3(-6, 1, 20), core.V3(6, 1, 20)},
		LootSpawns: []core.Vec3{
			core.V3(-6, 0.5, 14),
			core.V3(-2, 0.5, 14),
			core.V3(2, 0.5, 14),
			core.V3(6, 0.5, 14),
			core.V3(0, 0.5, 0),
		},
	}
}
