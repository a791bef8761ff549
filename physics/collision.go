package physics

import (
	"math"

	"github.com/lixenwraith/maze-chase/component"
	"github.com/lixenwraith/maze-chase/maze"
	"github.com/lixenwraith/maze-chase/vmath"
)

// WallResolver keeps bodies off intact maze walls
// Walls whose midpoint lies within DissolveRadius of the player are passable while a run is active;
// the wall flags themselves are never changed
type WallResolver struct {
	Grid           *maze.Grid
	CellSize       float64
	DissolveRadius float64
}

// Resolve clamps b to sit at least radius from each solid wall of its current cell
// Bodies outside the grid are left alone. Repeated calls without movement are a no-op
func (w WallResolver) Resolve(b *component.Body, radius float64, player vmath.Vec2, active bool) {
	cell := w.Grid.CellAt(b.X, b.Y, w.CellSize)
	if cell == nil {
		return
	}

	cs := w.CellSize
	left := float64(cell.Col) * cs
	top := float64(cell.Row) * cs
	right := left + cs
	bottom := top + cs

	for dir := maze.WallTop; dir < maze.WallCount; dir++ {
		if !cell.Walls[dir] {
			continue
		}
		if active {
			mx, my := cell.WallMidpoint(dir, cs)
			if vmath.Distance(mx, my, player.X, player.Y) < w.DissolveRadius {
				continue
			}
		}

		switch dir {
		case maze.WallTop:
			clampAxis(&b.Y, top, radius)
		case maze.WallBottom:
			clampAxis(&b.Y, bottom, radius)
		case maze.WallRight:
			clampAxis(&b.X, right, radius)
		case maze.WallLeft:
			clampAxis(&b.X, left, radius)
		}
	}
}

// clampAxis pushes pos to exactly radius from the wall line on the side it occupies
func clampAxis(pos *float64, line, radius float64) {
	if math.Abs(*pos-line) >= radius {
		return
	}
	if *pos < line {
		*pos = line - radius
	} else {
		*pos = line + radius
	}
}

// Separate pushes two overlapping bodies apart by step each along their connecting vector
// Soft repulsion: clumps dissolve over several ticks. Coincident bodies are left as is
func Separate(a, b *component.Body, minDist, step float64) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	d := vmath.Magnitude(dx, dy)
	if d == 0 || d >= minDist {
		return false
	}
	nx, ny := vmath.Normalize2D(dx, dy)
	a.X += nx * step
	a.Y += ny * step
	b.X -= nx * step
	b.Y -= ny * step
	return true
}

// CheckHit reports whether point lies strictly within radius of (x, y)
func CheckHit(point vmath.Vec2, x, y, radius float64) bool {
	return vmath.Distance(point.X, point.Y, x, y) < radius
}
