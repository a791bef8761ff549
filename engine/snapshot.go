package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/maze-chase/component"
	"github.com/lixenwraith/maze-chase/maze"
	"github.com/lixenwraith/maze-chase/parameter"
	"github.com/lixenwraith/maze-chase/vmath"
)

// Telemetry is the scalar HUD state
type Telemetry struct {
	WaveCountdown time.Duration
	PursuerCount  int // Builder plus helpers
	Survival      time.Duration
	Reason        Reason
}

// Snapshot is a copy of the frame state handed to renderers
// Slices are owned by the snapshot; Grid is shared and must be treated as read-only
type Snapshot struct {
	RunID     uuid.UUID
	Tick      uint64
	Phase     Phase
	Width     float64
	Height    float64
	Scale     parameter.Scale
	Grid      *maze.Grid
	Player    vmath.Vec2
	SpawnSafe bool

	Builder     component.Pursuer
	Helpers     []component.Pursuer
	Projectiles []component.Projectile
	Events      []Event

	Telemetry Telemetry
}

// Snapshot copies the current state; pending events are included but not consumed
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		RunID:     s.runID,
		Tick:      s.tick,
		Phase:     s.phase,
		Width:     s.width,
		Height:    s.height,
		Scale:     s.scale,
		Grid:      s.grid,
		Player:    s.player,
		SpawnSafe: s.spawnSafe,
		Builder:   s.builder,
		Events:    s.events.peek(),
		Telemetry: Telemetry{
			WaveCountdown: s.waveTimer,
			PursuerCount:  1 + len(s.helpers),
			Survival:      s.survival,
			Reason:        s.reason,
		},
	}
	if len(s.helpers) > 0 {
		snap.Helpers = make([]component.Pursuer, len(s.helpers))
		copy(snap.Helpers, s.helpers)
	}
	if len(s.projectiles) > 0 {
		snap.Projectiles = make([]component.Projectile, len(s.projectiles))
		copy(snap.Projectiles, s.projectiles)
	}
	return snap
}

// WallDissolved reports whether the wall dir of cell is passable in this frame
// Walls near the player dissolve while a run is active
func (snap *Snapshot) WallDissolved(cell *maze.Cell, dir maze.Wall) bool {
	if snap.Phase != PhaseRunning {
		return false
	}
	mx, my := cell.WallMidpoint(dir, snap.Scale.CellSize)
	return vmath.Distance(mx, my, snap.Player.X, snap.Player.Y) < snap.Scale.SafeRadius
}
