// Package sim runs the fixed-tick arena simulation. Each Step executes the
// phases in a fixed order: loadout actions, weapon firing, projectile
// spawn, movement and physics, collision resolution and expiry, pickup,
// then the tick's events are reported and every queue is cleared.
package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"

	"github.com/vovakirdan/ortho-arena/internal/collision"
	"github.com/vovakirdan/ortho-arena/internal/config"
	"github.com/vovakirdan/ortho-arena/internal/core"
	"github.com/vovakirdan/ortho-arena/internal/data"
	"github.com/vovakirdan/ortho-arena/internal/event"
	"github.com/vovakirdan/ortho-arena/internal/logging"
	"github.com/vovakirdan/ortho-arena/internal/physics"
	"github.com/vovakirdan/ortho-arena/internal/pickup"
	"github.com/vovakirdan/ortho-arena/internal/projectile"
	"github.com/vovakirdan/ortho-arena/internal/registry"
	"github.com/vovakirdan/ortho-arena/internal/weapon"
	"github.com/vovakirdan/ortho-arena/internal/world"
)

// Context is the state every phase receives explicitly.
type Context struct {
	World  *world.World
	Tables *data.Tables
	Bus    *event.Bus
	Config config.ArenaConfig
	Logger *log.Logger
	Now    time.Duration // time at the start of the current tick
	Dt     time.Duration
}

// Options configures a new simulation.
type Options struct {
	Config  config.ArenaConfig
	Tables  *data.Tables
	Level   registry.Level
	Physics physics.Provider // nil means a new physics.Kinematic
	Logger  *log.Logger      // nil means discard
	Seed    int64
}

// StepResult reports what happened during one tick. Slices are copies and
// stay valid after the next Step.
type StepResult struct {
	Tick           uint64
	Fires          []event.Fire
	Collisions     []event.Collision
	Fizzles        []event.Fizzle
	Pickups        []event.PickedUp
	PickupRejected bool
	Reloaded       bool
}

// Simulation owns one arena: its world, its player and its event bus. It
// is not safe for concurrent use.
type Simulation struct {
	ctx     Context
	level   string
	layout  core.Layout
	seed    int64
	rng     *rand.Rand
	tick    uint64
	player  donburi.Entity
	nearby  []donburi.Entity
	stats   Stats
	history []Mark
}

// New builds a simulation and populates it from the level layout.
func New(opts Options) (*Simulation, error) {
	if opts.Tables == nil {
		return nil, fmt.Errorf("sim: no data tables")
	}
	if opts.Level == nil {
		return nil, fmt.Errorf("sim: no level")
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	provider := opts.Physics
	if provider == nil {
		provider = physics.NewKinematic()
	}

	rate := opts.Config.Simulation.TickRate
	if rate <= 0 {
		rate = 60
	}

	s := &Simulation{
		ctx: Context{
			World:  world.New(provider, logger),
			Tables: opts.Tables,
			Bus:    event.NewBus(),
			Config: opts.Config,
			Logger: logger,
			Dt:     time.Second / time.Duration(rate),
		},
		level:  opts.Level.ID(),
		layout: opts.Level.Layout(),
		seed:   opts.Seed,
		rng:    rand.New(rand.NewSource(opts.Seed)),
	}
	if err := s.populate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Context returns the simulation context.
func (s *Simulation) Context() *Context {
	return &s.ctx
}

// Player returns the player entity.
func (s *Simulation) Player() donburi.Entity {
	return s.player
}

// Tick returns the number of completed ticks.
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// Now returns the simulation time of the next tick.
func (s *Simulation) Now() time.Duration {
	return s.ctx.Now
}

// Level returns the level id.
func (s *Simulation) Level() string {
	return s.level
}

// Seed returns the RNG seed used to populate the level.
func (s *Simulation) Seed() int64 {
	return s.seed
}

// Stats returns the run counters.
func (s *Simulation) Stats() Stats {
	return s.stats
}

// History returns the recorded event marks.
func (s *Simulation) History() []Mark {
	out := make([]Mark, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Simulation) playerData() *world.PlayerData {
	entry := s.ctx.World.Entry(s.player)
	if entry == nil {
		return nil
	}
	return world.Player.Get(entry)
}

// Facing returns the player's current aim direction.
func (s *Simulation) Facing() core.Vec3 {
	if p := s.playerData(); p != nil {
		return p.Facing
	}
	return core.V3(0, 0, -1)
}

// Step advances the simulation by one tick.
func (s *Simulation) Step(in core.Intent) StepResult {
	ctx := &s.ctx
	res := StepResult{Tick: s.tick}

	p := s.playerData()
	if p != nil {
		s.loadoutActions(p, in, &res)
		s.fire(p, in)
	}

	projectile.SpawnAll(ctx.World, ctx.Tables, &ctx.Bus.Fire, ctx.Config.Projectile.Radius, ctx.Logger)

	if p != nil {
		s.move(in)
	}
	pairs := ctx.World.Physics().Step(ctx.Dt)

	pairs = collision.Filter(ctx.World, pairs)
	collision.Resolve(ctx.World, pairs, &ctx.Bus.Collision, ctx.Logger)
	projectile.Expire(ctx.World, &ctx.Bus.Fizzle, ctx.Logger)

	s.nearby = pickup.Candidates(ctx.World, s.player, pairs)
	if p = s.playerData(); p != nil && in.Interact {
		r := pickup.Interact(ctx.World, s.player, pairs, p.Loadout, &ctx.Bus.PickedUp, ctx.Logger)
		res.PickupRejected = !r.PickedUp && r.Loot != donburi.Null
		if r.PickedUp {
			s.nearby = pickup.Candidates(ctx.World, s.player, pairs)
		}
	}

	res.Fires = ctx.Bus.Fire.All()
	res.Collisions = ctx.Bus.Collision.All()
	res.Fizzles = ctx.Bus.Fizzle.All()
	res.Pickups = ctx.Bus.PickedUp.All()
	s.record(res)
	ctx.Bus.Reset()

	s.tick++
	ctx.Now += ctx.Dt
	return res
}

func (s *Simulation) loadoutActions(p *world.PlayerData, in core.Intent, res *StepResult) {
	l := p.Loadout
	if in.SelectSlot != nil {
		l.TrySelect(*in.SelectSlot, s.ctx.Now)
	}
	if in.ToggleWeapon {
		l.TryToggle(s.ctx.Now)
	}
	if in.Reload {
		res.Reloaded = l.Reload()
	}
}

func (s *Simulation) fire(p *world.PlayerData, in core.Intent) {
	if !in.Aim.IsZero() {
		p.Facing = in.Aim.NormalizeOrZero()
	}
	pos, ok := s.ctx.World.Position(s.player)
	if !ok {
		return
	}
	origin := core.V3(pos.X, s.ctx.Config.Player.MuzzleHeight, pos.Z)
	p.Trigger.Pull(p.Loadout, in.Firing, weapon.Shot{
		Owner:     s.player,
		Now:       s.ctx.Now,
		Origin:    origin,
		Direction: p.Facing,
	}, &s.ctx.Bus.Fire)
}

func (s *Simulation) move(in core.Intent) {
	id, ok := s.ctx.World.BodyOf(s.player)
	if !ok {
		return
	}
	speed := s.ctx.Config.Player.MoveSpeed
	s.ctx.World.Physics().SetVelocity(id, core.V3(in.Move.X*speed, 0, in.Move.Y*speed))
}
