package system

import (
	"github.com/lixenwraith/maze-chase/component"
	"github.com/lixenwraith/maze-chase/maze"
	"github.com/lixenwraith/maze-chase/parameter"
	"github.com/lixenwraith/maze-chase/vmath"
)

// SpawnDirector places new helpers and gates run start on player safety
type SpawnDirector struct {
	scale  parameter.Scale
	rng    vmath.Source
	nextID int
}

func NewSpawnDirector(scale parameter.Scale, rng vmath.Source) *SpawnDirector {
	return &SpawnDirector{scale: scale, rng: rng}
}

func (d *SpawnDirector) Name() string { return "spawn" }

func (d *SpawnDirector) SetScale(scale parameter.Scale) {
	d.scale = scale
}

// Reset restarts helper id assignment
func (d *SpawnDirector) Reset() {
	d.nextID = 0
}

// TrySpawnHelper samples random cells for a helper position far from the player
// The first cell farther than SpawnFarCells wins; past SpawnForceAfter failed samples any cell is accepted,
// so a non-empty grid always yields a helper within SpawnMaxAttempts samples
// Returns false only when the grid is empty
func (d *SpawnDirector) TrySpawnHelper(grid *maze.Grid, player vmath.Vec2) (component.Pursuer, bool) {
	if grid.Empty() {
		return component.Pursuer{}, false
	}

	far := d.scale.Cells(parameter.SpawnFarCells)
	for attempt := 1; attempt <= parameter.SpawnMaxAttempts; attempt++ {
		cell := &grid.Cells[d.rng.Intn(len(grid.Cells))]
		cx, cy := cell.Center(d.scale.CellSize)
		if vmath.Distance(cx, cy, player.X, player.Y) > far || attempt > parameter.SpawnForceAfter {
			return d.NewHelper(cx, cy), true
		}
	}
	return component.Pursuer{}, false
}

// NewHelper creates a helper at (x, y) with the next id, a random weapon and jittered speed
func (d *SpawnDirector) NewHelper(x, y float64) component.Pursuer {
	d.nextID++
	weapon := component.HelperWeapons[d.rng.Intn(len(component.HelperWeapons))]
	return component.Pursuer{
		ID:          d.nextID,
		Kind:        component.KindHelper,
		Body:        component.Body{X: x, Y: y},
		Speed:       d.scale.HelperSpeed + d.rng.Float64()*parameter.HelperSpeedJitter,
		Radius:      d.scale.HelperRadius,
		Weapon:      weapon,
		WeaponState: component.InitialWeaponState(weapon),
	}
}

// IsSpawnSafe reports whether point is at least SpawnSafeCells from the builder and every helper
func (d *SpawnDirector) IsSpawnSafe(point vmath.Vec2, builder *component.Pursuer, helpers []component.Pursuer) bool {
	return IsSpawnSafe(point, builder, helpers, d.scale.Cells(parameter.SpawnSafeCells))
}

// IsSpawnSafe reports whether no pursuer is closer than minDist to point
func IsSpawnSafe(point vmath.Vec2, builder *component.Pursuer, helpers []component.Pursuer, minDist float64) bool {
	if builder != nil && vmath.Distance(point.X, point.Y, builder.X, builder.Y) < minDist {
		return false
	}
	for i := range helpers {
		if vmath.Distance(point.X, point.Y, helpers[i].X, helpers[i].Y) < minDist {
			return false
		}
	}
	return true
}
