package navigation

import (
	"github.com/lixenwraith/maze-chase/maze"
)

// FlowFieldCache manages flow field recomputation at a fixed tick cadence
// Pursuers react to the source moving with up to Cadence ticks of latency
type FlowFieldCache struct {
	Field *FlowField

	// Recomputation throttling
	Ticks   int // Ticks counted since the last reset
	Cadence int // Recompute when Ticks is a multiple of Cadence
}

// NewFlowFieldCache creates a cache recomputing every cadence ticks
func NewFlowFieldCache(cadence int) *FlowFieldCache {
	if cadence < 1 {
		cadence = 1
	}
	return &FlowFieldCache{
		Field:   NewFlowField(),
		Cadence: cadence,
	}
}

// Reset restarts the cadence and invalidates the field
// The caller seeds the new grid with Compute; Update never recomputes off cadence
func (c *FlowFieldCache) Reset() {
	c.Ticks = 0
	c.Field.Invalidate()
}

// Update advances the tick counter and recomputes when due
// Returns true if field was recomputed this tick
func (c *FlowFieldCache) Update(grid *maze.Grid, x, y, cellSize float64) bool {
	c.Ticks++
	if c.Ticks%c.Cadence != 0 {
		return false
	}
	return c.Compute(grid, x, y, cellSize)
}

// Compute recomputes immediately without touching the cadence
func (c *FlowFieldCache) Compute(grid *maze.Grid, x, y, cellSize float64) bool {
	return c.Field.Recompute(grid, x, y, cellSize)
}

// IsValid returns true if field has valid data
func (c *FlowFieldCache) IsValid() bool {
	return c.Field.Valid
}
