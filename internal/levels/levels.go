// Package levels holds the built-in arena layouts. Importing it registers
// them with the registry.
package levels

import (
	"github.com/vovakirdan/ortho-arena/internal/core"
	"github.com/vovakirdan/ortho-arena/internal/registry"
)

func init() {
	registry.Register("range", func() registry.Level { return Range{} })
	registry.Register("warehouse", func() registry.Level { return Warehouse{} })
}

// wall returns a 2-unit tall box spanning x0..x1, z0..z1.
func wall(x0, z0, x1, z1 float64) core.Box {
	return core.Box{
		Center: core.V3((x0+x1)/2, 1, (z0+z1)/2),
		Half:   core.V3((x1-x0)/2, 1, (z1-z0)/2),
	}
}

// perimeter returns four walls enclosing a width x depth floor.
func perimeter(width, depth float64) []core.Box {
	w, d := width/2, depth/2
	return []core.Box{
		wall(-w-1, -d-1, w+1, -d),
		wall(-w-1, d, w+1, d+1),
		wall(-w-1, -d, -w, d),
		wall(w, -d, w+1, d),
	}
}
