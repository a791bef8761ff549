package maze

import (
	"github.com/lixenwraith/maze-chase/vmath"
)

// Generate builds a perfect maze over cols x rows cells
// Iterative recursive backtracker from (0,0): the carved passages form a uniform spanning tree,
// so every cell is reachable by exactly one path
// Non-positive dimensions produce an empty grid
func Generate(cols, rows int, rng vmath.Source) *Grid {
	grid := NewGrid(cols, rows)
	if grid.Empty() {
		return grid
	}
	recursiveBacktracker(grid, rng)
	return grid
}

// --- Core Algorithm ---

func recursiveBacktracker(grid *Grid, rng vmath.Source) {
	visited := make([]bool, len(grid.Cells))
	stack := make([]int, 0, len(grid.Cells))
	candidates := make([]int, 0, 4)

	current := 0
	visited[current] = true

	for {
		cell := &grid.Cells[current]
		candidates = candidates[:0]

		for dir := WallTop; dir < WallCount; dir++ {
			n := grid.neighborIndex(cell.Col, cell.Row, dir)
			if n >= 0 && !visited[n] {
				candidates = append(candidates, n)
			}
		}

		if len(candidates) > 0 {
			next := candidates[rng.Intn(len(candidates))]
			visited[next] = true
			stack = append(stack, current)
			grid.removeWall(current, next)
			current = next
			continue
		}

		if len(stack) == 0 {
			return
		}
		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
	}
}

// removeWall opens the shared wall between two adjacent cells on both sides
func (g *Grid) removeWall(a, b int) {
	ca, cb := &g.Cells[a], &g.Cells[b]
	dx := ca.Col - cb.Col
	dy := ca.Row - cb.Row

	switch {
	case dx == 1:
		ca.Walls[WallLeft] = false
		cb.Walls[WallRight] = false
	case dx == -1:
		ca.Walls[WallRight] = false
		cb.Walls[WallLeft] = false
	case dy == 1:
		ca.Walls[WallTop] = false
		cb.Walls[WallBottom] = false
	case dy == -1:
		ca.Walls[WallBottom] = false
		cb.Walls[WallTop] = false
	}
}

// Solve returns the open path between two cells, both ends included
// Returns nil if either end is out of bounds or unreachable
func Solve(grid *Grid, start, end Point) []Point {
	from := grid.Index(start.Col, start.Row)
	to := grid.Index(end.Col, end.Row)
	if from < 0 || to < 0 {
		return nil
	}

	cameFrom := make([]int, len(grid.Cells))
	for i := range cameFrom {
		cameFrom[i] = -1
	}
	cameFrom[from] = from

	queue := []int{from}
	var buf [WallCount]int

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == to {
			// Reconstruct Path
			path := []Point{}
			for curr != from {
				c := &grid.Cells[curr]
				path = append(path, Point{c.Col, c.Row})
				curr = cameFrom[curr]
			}
			path = append(path, start)
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, n := range grid.ConnectedIndices(curr, buf[:0]) {
			if cameFrom[n] < 0 {
				cameFrom[n] = curr
				queue = append(queue, n)
			}
		}
	}
	return nil
}
