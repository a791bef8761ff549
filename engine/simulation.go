package engine

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/maze-chase/component"
	"github.com/lixenwraith/maze-chase/maze"
	"github.com/lixenwraith/maze-chase/navigation"
	"github.com/lixenwraith/maze-chase/parameter"
	"github.com/lixenwraith/maze-chase/physics"
	"github.com/lixenwraith/maze-chase/system"
	"github.com/lixenwraith/maze-chase/vmath"
)

// Options configures a Simulation; zero values take defaults
type Options struct {
	Seed             uint64             // 0 seeds from the clock
	CellSize         float64            // 0 derives from viewport width
	FlowFieldCadence int                // Ticks between flow field recomputes
	WaveInterval     time.Duration      // Time between helper spawns
	Logger           logrus.FieldLogger // nil discards
	Rand             vmath.Source       // Overrides Seed when set
}

func (o Options) withDefaults() Options {
	if o.FlowFieldCadence <= 0 {
		o.FlowFieldCadence = parameter.FlowFieldCadence
	}
	if o.WaveInterval <= 0 {
		o.WaveInterval = parameter.WaveInterval
	}
	if o.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.Logger = l
	}
	if o.Rand == nil {
		seed := o.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		o.Rand = vmath.NewFastRand(seed)
	}
	return o
}

// Input is the held-direction state of the keyboard cursor
type Input struct {
	Up, Down, Left, Right bool
}

// Simulation is the frame-driven game core
// Not safe for concurrent use; drive it from one goroutine
type Simulation struct {
	opts Options
	rng  vmath.Source

	baseLog logrus.FieldLogger
	log     logrus.FieldLogger
	runID   uuid.UUID

	width, height float64
	scale         parameter.Scale

	grid     *maze.Grid
	flow     *navigation.FlowFieldCache
	steering physics.Steering
	walls    physics.WallResolver

	projectileSys *system.ProjectileSystem
	weapons       *system.WeaponSystem
	spawner       *system.SpawnDirector

	builder     component.Pursuer
	helpers     []component.Pursuer
	projectiles []component.Projectile

	player    vmath.Vec2
	input     Input
	spawnSafe bool

	phase     Phase
	reason    Reason
	tick      uint64
	waveTimer time.Duration
	survival  time.Duration

	events eventBuffer
}

// New creates a simulation sized to the viewport and lays out the first maze
func New(width, height float64, opts Options) *Simulation {
	opts = opts.withDefaults()
	scale := scaleFor(width, opts.CellSize)

	projectiles := system.NewProjectileSystem(scale, width, height)
	s := &Simulation{
		opts:          opts,
		rng:           opts.Rand,
		baseLog:       opts.Logger,
		flow:          navigation.NewFlowFieldCache(opts.FlowFieldCadence),
		projectileSys: projectiles,
		weapons:       system.NewWeaponSystem(scale, projectiles),
		spawner:       system.NewSpawnDirector(scale, opts.Rand),
		events:        newEventBuffer(),
	}
	s.Resize(width, height)
	return s
}

func scaleFor(width, cellSize float64) parameter.Scale {
	if cellSize > 0 {
		return parameter.ScaleForCellSize(cellSize)
	}
	return parameter.NewScale(width)
}

// Resize adopts a new viewport and regenerates the maze; any run in progress is discarded
func (s *Simulation) Resize(width, height float64) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.width, s.height = width, height
	s.scale = scaleFor(width, s.opts.CellSize)

	s.projectileSys.SetBounds(s.scale, width, height)
	s.weapons.SetScale(s.scale)
	s.spawner.SetScale(s.scale)

	s.Reset()
}

// Reset clears all entities, generates a fresh maze and returns to idle
func (s *Simulation) Reset() {
	// Drop references before the grid is replaced
	s.helpers = s.helpers[:0]
	s.projectiles = s.projectiles[:0]
	s.events.clear()
	s.spawner.Reset()

	cols := int(s.width / s.scale.CellSize)
	rows := int(s.height / s.scale.CellSize)
	s.grid = maze.Generate(cols, rows, s.rng)

	s.steering = physics.Steering{Grid: s.grid, CellSize: s.scale.CellSize, SafeRadius: s.scale.SafeRadius}
	s.walls = physics.WallResolver{Grid: s.grid, CellSize: s.scale.CellSize, DissolveRadius: s.scale.SafeRadius}

	s.runID = uuid.New()
	s.log = s.baseLog.WithField("run", s.runID.String())

	s.phase = PhaseIdle
	s.reason = ReasonNone
	s.tick = 0
	s.survival = 0
	s.waveTimer = s.opts.WaveInterval
	s.input = Input{}

	s.layout()

	s.flow.Reset()
	s.flow.Compute(s.grid, s.player.X, s.player.Y, s.scale.CellSize)
	s.updateSpawnSafety()

	s.log.WithFields(logrus.Fields{
		"cols":      cols,
		"rows":      rows,
		"cell_size": s.scale.CellSize,
	}).Info("maze generated")
}

// layout places the player at the middle cell, the builder at the first cell and one helper
func (s *Simulation) layout() {
	s.builder = component.Pursuer{
		ID:          component.BuilderID,
		Kind:        component.KindBuilder,
		Speed:       s.scale.BuilderSpeed,
		Radius:      s.scale.BuilderRadius,
		Weapon:      component.WeaponGun,
		WeaponState: component.InitialWeaponState(component.WeaponGun),
	}
	s.player = vmath.Vec2{}

	n := len(s.grid.Cells)
	if n == 0 {
		return
	}

	mid := &s.grid.Cells[n/2]
	s.player.X, s.player.Y = mid.Center(s.scale.CellSize)

	start := &s.grid.Cells[0]
	if start == mid {
		start = &s.grid.Cells[n-1]
	}
	s.builder.X, s.builder.Y = start.Center(s.scale.CellSize)

	s.spawnHelper()
}

func (s *Simulation) spawnHelper() {
	h, ok := s.spawner.TrySpawnHelper(s.grid, s.player)
	if !ok {
		return
	}
	s.helpers = append(s.helpers, h)
	s.events.push(Event{Type: EventHelperSpawned, Tick: s.tick, ID: h.ID, X: h.X, Y: h.Y})
	s.log.WithFields(logrus.Fields{
		"helper": h.ID,
		"weapon": h.Weapon.String(),
		"speed":  h.Speed,
	}).Debug("helper spawned")
}

func (s *Simulation) updateSpawnSafety() {
	s.spawnSafe = !s.grid.Empty() && s.spawner.IsSpawnSafe(s.player, &s.builder, s.helpers)
}

// Start begins a run if the player's position is spawn-safe
func (s *Simulation) Start() bool {
	if s.phase != PhaseIdle {
		return false
	}
	s.updateSpawnSafety()
	if !s.spawnSafe {
		s.log.WithField("player", s.player).Debug("start rejected: unsafe spawn")
		return false
	}

	s.phase = PhaseRunning
	s.events.push(Event{Type: EventRunStarted, Tick: s.tick, X: s.player.X, Y: s.player.Y})
	s.log.Info("run started")
	return true
}

// SetPlayer moves the player point, clamped to the viewport; ignored after game over
func (s *Simulation) SetPlayer(x, y float64) {
	if s.phase == PhaseGameOver {
		return
	}
	s.player.X = vmath.Clamp(x, 0, s.width)
	s.player.Y = vmath.Clamp(y, 0, s.height)
	if s.phase == PhaseIdle {
		s.updateSpawnSafety()
	}
}

// SetInput replaces the held-direction state applied on every tick
func (s *Simulation) SetInput(in Input) {
	s.input = in
}

// Phase returns the current phase
func (s *Simulation) Phase() Phase {
	return s.phase
}

// Scale returns the scale for the current viewport
func (s *Simulation) Scale() parameter.Scale {
	return s.scale
}

// ConsumeEvents returns pending events and clears them
func (s *Simulation) ConsumeEvents() []Event {
	return s.events.consume()
}

// Tick advances the simulation by one frame
func (s *Simulation) Tick(dt time.Duration) {
	switch s.phase {
	case PhaseGameOver:
		return
	case PhaseIdle:
		s.applyInput()
		s.updateSpawnSafety()
		return
	case PhaseRunning:
	}

	s.tick++
	s.applyInput()

	s.flow.Update(s.grid, s.player.X, s.player.Y, s.scale.CellSize)

	s.waveTimer -= dt
	if s.waveTimer <= 0 {
		s.spawnHelper()
		s.waveTimer = s.opts.WaveInterval
	}
	s.survival += dt

	if s.updateBuilder() {
		return
	}
	if s.updateHelpers() {
		return
	}
	s.separateHelpers()
	if s.updateProjectiles() {
		return
	}

	s.projectiles = s.projectileSys.Retire(s.projectiles)
}

func (s *Simulation) applyInput() {
	var dx, dy float64
	if s.input.Up {
		dy -= s.scale.CursorSpeed
	}
	if s.input.Down {
		dy += s.scale.CursorSpeed
	}
	if s.input.Left {
		dx -= s.scale.CursorSpeed
	}
	if s.input.Right {
		dx += s.scale.CursorSpeed
	}
	if dx == 0 && dy == 0 {
		return
	}
	s.player.X = vmath.Clamp(s.player.X+dx, 0, s.width)
	s.player.Y = vmath.Clamp(s.player.Y+dy, 0, s.height)
}

// updateBuilder returns true when the builder ended the run
func (s *Simulation) updateBuilder() bool {
	b := &s.builder
	d := vmath.Distance(b.X, b.Y, s.player.X, s.player.Y)
	if d < s.scale.Cells(parameter.CaptureCells) {
		s.gameOver(ReasonCaptured)
		return true
	}

	// Walls clamp only after a move; a halted body keeps its place
	if d > parameter.BuilderHoldDistance {
		s.steering.Pursue(&b.Body, b.Speed, s.player)
		s.walls.Resolve(&b.Body, b.Radius, s.player, true)
		b.Frame += parameter.BuilderFrameStep
	}

	if s.weapons.UpdateBuilder(b, s.player, &s.projectiles) {
		s.events.push(Event{Type: EventFired, Tick: s.tick, ID: b.ID, Projectile: component.ProjectileBullet, X: b.X, Y: b.Y})
	}
	s.weapons.Recover(b)
	return false
}

// updateHelpers returns true when a helper ended the run
func (s *Simulation) updateHelpers() bool {
	swarm := s.scale.Cells(parameter.SwarmCells)

	for i := range s.helpers {
		h := &s.helpers[i]
		if vmath.Distance(h.X, h.Y, s.player.X, s.player.Y) < swarm {
			s.gameOver(ReasonSwarmed)
			return true
		}

		order := s.weapons.UpdateHelper(h, s.player, &s.projectiles)
		if order.Fired {
			kind := component.ProjectileArrow
			if h.Weapon == component.WeaponStaff {
				kind = component.ProjectileOrb
			}
			s.events.push(Event{Type: EventFired, Tick: s.tick, ID: h.ID, Projectile: kind, X: h.X, Y: h.Y})
		}
		if order.Caught {
			s.events.push(Event{Type: EventOrbCaught, Tick: s.tick, ID: h.ID, X: h.X, Y: h.Y})
		}

		switch {
		case order.Chase:
			s.steering.Approach(&h.Body, order.Speed, order.Target)
			s.walls.Resolve(&h.Body, h.Radius, s.player, true)
		case order.Speed > 0:
			s.steering.Pursue(&h.Body, order.Speed, s.player)
			s.walls.Resolve(&h.Body, h.Radius, s.player, true)
		default:
			physics.TurnToward(&h.Body, s.player.X, s.player.Y, parameter.SteerFrozenTurnSmoothing)
		}
		s.weapons.Recover(h)

		if h.Speed > 0 {
			h.Frame += parameter.HelperFrameStep * (order.Speed / h.Speed)
		}
	}
	return false
}

func (s *Simulation) separateHelpers() {
	minDist := s.scale.Cells(parameter.HelperSeparationCells)
	for i := 0; i < len(s.helpers); i++ {
		for j := i + 1; j < len(s.helpers); j++ {
			physics.Separate(&s.helpers[i].Body, &s.helpers[j].Body, minDist, parameter.HelperSeparationStep)
		}
	}
}

// updateProjectiles returns true when a projectile hit the player
func (s *Simulation) updateProjectiles() bool {
	for i := range s.projectiles {
		p := &s.projectiles[i]
		if !p.Alive {
			continue
		}
		system.Advance(p)
		if physics.CheckHit(s.player, p.X, p.Y, s.projectileSys.HitRadius(p.Kind)) {
			s.gameOver(ReasonForProjectile(p.Kind))
			return true
		}
	}
	return false
}

func (s *Simulation) gameOver(reason Reason) {
	s.phase = PhaseGameOver
	s.reason = reason
	s.events.push(Event{Type: EventGameOver, Tick: s.tick, Reason: reason, X: s.player.X, Y: s.player.Y})
	s.log.WithFields(logrus.Fields{
		"reason":   string(reason),
		"survival": s.survival.String(),
		"helpers":  len(s.helpers),
	}).Info("game over")
}
