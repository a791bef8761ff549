package navigation

import (
	"github.com/lixenwraith/maze-chase/maze"
)

// FlowField computes per-cell step distances toward a source cell
// Distances live on the grid cells; the field keeps the BFS queue and cache state
type FlowField struct {
	// Cache state
	SourceCol, SourceRow int  // Source cell of the last successful computation
	Valid                bool // False until the first successful computation

	// Reusable queue buffer to reduce allocations across recomputes
	queue []int
}

// NewFlowField creates an empty flow field
func NewFlowField() *FlowField {
	return &FlowField{
		SourceCol: -1,
		SourceRow: -1,
	}
}

// Invalidate marks field for recomputation
func (f *FlowField) Invalidate() {
	f.Valid = false
}

// Recompute performs breadth-first expansion over open walls from the cell containing (x, y)
// Distances are open-path step counts; cells not reached keep maze.Unreached
// Returns false and leaves distances untouched when the grid is empty or the source is outside it
func (f *FlowField) Recompute(grid *maze.Grid, x, y, cellSize float64) bool {
	if grid.Empty() {
		return false
	}
	source := grid.CellAt(x, y, cellSize)
	if source == nil {
		return false
	}

	grid.ResetDistances()

	srcIdx := grid.Index(source.Col, source.Row)
	grid.Cells[srcIdx].Distance = 0

	if cap(f.queue) < len(grid.Cells) {
		f.queue = make([]int, 0, len(grid.Cells))
	}
	queue := f.queue[:0]
	queue = append(queue, srcIdx)

	var buf [maze.WallCount]int
	// FIFO via head cursor; each cell enters the queue at most once
	for head := 0; head < len(queue); head++ {
		curr := queue[head]
		next := grid.Cells[curr].Distance + 1
		for _, n := range grid.ConnectedIndices(curr, buf[:0]) {
			if grid.Cells[n].Distance == maze.Unreached {
				grid.Cells[n].Distance = next
				queue = append(queue, n)
			}
		}
	}
	f.queue = queue

	f.SourceCol = source.Col
	f.SourceRow = source.Row
	f.Valid = true
	return true
}
