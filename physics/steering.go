package physics

import (
	"github.com/lixenwraith/maze-chase/component"
	"github.com/lixenwraith/maze-chase/maze"
	"github.com/lixenwraith/maze-chase/vmath"
)

// Steering turns a goal into per-tick movement through the maze
// Reads flow field distances from the grid; never writes the grid
type Steering struct {
	Grid       *maze.Grid
	CellSize   float64
	SafeRadius float64 // Beyond this distance from the player, follow the flow field
}

// Pursue moves b toward the player
// Far from the player the target is the center of the connected neighbor cell with the
// strictly smallest flow distance (first found in top, right, bottom, left order, own cell if none improves);
// within SafeRadius, or outside the maze, it heads straight for the player
func (s Steering) Pursue(b *component.Body, speed float64, player vmath.Vec2) float64 {
	tx, ty := player.X, player.Y

	if vmath.Distance(b.X, b.Y, player.X, player.Y) > s.SafeRadius {
		if cell := s.Grid.CellAt(b.X, b.Y, s.CellSize); cell != nil {
			tx, ty = s.bestNeighbor(cell).Center(s.CellSize)
		}
	}

	return MoveToward(b, tx, ty, speed)
}

// Approach moves b straight at an explicit target, ignoring the maze
func (s Steering) Approach(b *component.Body, speed float64, target vmath.Vec2) float64 {
	return MoveToward(b, target.X, target.Y, speed)
}

func (s Steering) bestNeighbor(cell *maze.Cell) *maze.Cell {
	best := cell
	minDist := cell.Distance
	for dir := maze.WallTop; dir < maze.WallCount; dir++ {
		if cell.Walls[dir] {
			continue
		}
		n := s.Grid.Neighbor(cell, dir)
		if n != nil && n.Distance < minDist {
			minDist = n.Distance
			best = n
		}
	}
	return best
}
