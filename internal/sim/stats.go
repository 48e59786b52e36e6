package sim

// Stats counts what happened during a run.
type Stats struct {
	Ticks    uint64 `json:"ticks"`
	Shots    int    `json:"shots"`
	Hits     int    `json:"hits"`
	Fizzles  int    `json:"fizzles"`
	Pickups  int    `json:"pickups"`
	Rejected int    `json:"rejected_pickups"`
	Reloads  int    `json:"reloads"`
}

// MarkKind enumerates recorded event kinds.
type MarkKind uint8

const (
	MarkFire MarkKind = iota + 1
	MarkCollision
	MarkFizzle
	MarkPickup
	MarkReload
)

func (k MarkKind) String() string {
	switch k {
	case MarkFire:
		return "fire"
	case MarkCollision:
		return "collision"
	case MarkFizzle:
		return "fizzle"
	case MarkPickup:
		return "pickup"
	case MarkReload:
		return "reload"
	}
	return "unknown"
}

// Mark is one entry of the run timeline.
type Mark struct {
	Tick uint64   `msgpack:"t" json:"tick"`
	Kind MarkKind `msgpack:"k" json:"kind"`
	X    float32  `msgpack:"x" json:"x"`
	Z    float32  `msgpack:"z" json:"z"`
	Note string   `msgpack:"n,omitempty" json:"note,omitempty"`
}

func (s *Simulation) record(res StepResult) {
	s.stats.Ticks = s.tick + 1
	for _, f := range res.Fires {
		s.stats.Shots++
		s.history = append(s.history, Mark{Tick: res.Tick, Kind: MarkFire, X: float32(f.Origin.X), Z: float32(f.Origin.Z), Note: string(f.Weapon)})
	}
	for _, c := range res.Collisions {
		s.stats.Hits++
		s.history = append(s.history, Mark{Tick: res.Tick, Kind: MarkCollision, X: float32(c.Position.X), Z: float32(c.Position.Z)})
	}
	for _, f := range res.Fizzles {
		s.stats.Fizzles++
		s.history = append(s.history, Mark{Tick: res.Tick, Kind: MarkFizzle, X: float32(f.Position.X), Z: float32(f.Position.Z)})
	}
	for _, p := range res.Pickups {
		s.stats.Pickups++
		s.history = append(s.history, Mark{Tick: res.Tick, Kind: MarkPickup, Note: p.Item.String()})
	}
	if res.PickupRejected {
		s.stats.Rejected++
	}
	if res.Reloaded {
		s.stats.Reloads++
		s.history = append(s.history, Mark{Tick: res.Tick, Kind: MarkReload})
	}
}
