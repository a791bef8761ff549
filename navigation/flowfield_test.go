package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/maze-chase/maze"
	"github.com/lixenwraith/maze-chase/vmath"
)

const testCellSize = 60.0

func center(col, row int) (float64, float64) {
	return float64(col)*testCellSize + testCellSize/2, float64(row)*testCellSize + testCellSize/2
}

func TestRecomputeMatchesShortestPaths(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		g := maze.Generate(5, 5, vmath.NewFastRand(seed))
		f := NewFlowField()

		for _, src := range []maze.Point{{Col: 0, Row: 0}, {Col: 2, Row: 2}, {Col: 4, Row: 1}} {
			x, y := center(src.Col, src.Row)
			require.True(t, f.Recompute(g, x, y, testCellSize))
			assert.Equal(t, src.Col, f.SourceCol)
			assert.Equal(t, src.Row, f.SourceRow)

			for i := range g.Cells {
				c := &g.Cells[i]
				path := maze.Solve(g, src, maze.Point{Col: c.Col, Row: c.Row})
				require.NotNil(t, path)
				assert.Equal(t, len(path)-1, c.Distance, "seed %d src %v cell (%d,%d)", seed, src, c.Col, c.Row)
			}
		}
	}
}

func TestRecomputeOutOfBoundsKeepsStaleField(t *testing.T) {
	g := maze.Generate(4, 4, vmath.NewFastRand(3))
	f := NewFlowField()

	x, y := center(1, 1)
	require.True(t, f.Recompute(g, x, y, testCellSize))
	before := make([]int, len(g.Cells))
	for i := range g.Cells {
		before[i] = g.Cells[i].Distance
	}

	assert.False(t, f.Recompute(g, -5, 10, testCellSize))
	assert.False(t, f.Recompute(g, 10, 4*testCellSize+1, testCellSize))

	for i := range g.Cells {
		assert.Equal(t, before[i], g.Cells[i].Distance)
	}
	assert.True(t, f.Valid)
	assert.Equal(t, 1, f.SourceCol)
}

func TestRecomputeEmptyGrid(t *testing.T) {
	f := NewFlowField()
	assert.False(t, f.Recompute(maze.NewGrid(0, 0), 0, 0, testCellSize))
	assert.False(t, f.Recompute(nil, 0, 0, testCellSize))
	assert.False(t, f.Valid)
}

func TestRecomputeClosedGridLeavesUnreached(t *testing.T) {
	// All walls intact: nothing but the source is reachable
	g := maze.NewGrid(3, 3)
	f := NewFlowField()
	x, y := center(1, 1)
	require.True(t, f.Recompute(g, x, y, testCellSize))

	for i := range g.Cells {
		c := &g.Cells[i]
		if c.Col == 1 && c.Row == 1 {
			assert.Zero(t, c.Distance)
			continue
		}
		assert.Equal(t, maze.Unreached, c.Distance)
	}
}

func TestCacheCadence(t *testing.T) {
	g := maze.Generate(5, 5, vmath.NewFastRand(8))
	c := NewFlowFieldCache(15)

	x, y := center(0, 0)
	require.True(t, c.Compute(g, x, y, testCellSize))
	assert.True(t, c.IsValid())
	assert.Zero(t, c.Ticks, "compute does not advance the cadence")

	recomputes := 0
	for i := 1; i <= 45; i++ {
		if c.Update(g, x, y, testCellSize) {
			recomputes++
			assert.Zero(t, c.Ticks%15, "recompute off cadence at tick %d", c.Ticks)
		}
	}
	assert.Equal(t, 3, recomputes)

	c.Reset()
	assert.False(t, c.IsValid())
	assert.Zero(t, c.Ticks)
}

func TestCacheOffGridSourceWaitsForCadence(t *testing.T) {
	g := maze.Generate(5, 5, vmath.NewFastRand(8))
	c := NewFlowFieldCache(15)
	x, y := center(0, 0)
	require.True(t, c.Compute(g, x, y, testCellSize))

	// A failed compute on the cadence tick is not retried on later ticks
	for i := 1; i <= 15; i++ {
		assert.False(t, c.Update(g, 5*testCellSize+10, y, testCellSize), "tick %d", i)
	}
	assert.Equal(t, 0, c.Field.SourceCol)

	nx, ny := center(3, 2)
	for i := 16; i < 30; i++ {
		assert.False(t, c.Update(g, nx, ny, testCellSize), "tick %d", i)
	}
	assert.Equal(t, 0, c.Field.SourceCol)
	assert.True(t, c.Update(g, nx, ny, testCellSize))
	assert.Equal(t, 3, c.Field.SourceCol)
	assert.Equal(t, 2, c.Field.SourceRow)
}

func TestCacheMinimumCadence(t *testing.T) {
	c := NewFlowFieldCache(0)
	assert.Equal(t, 1, c.Cadence)
}
