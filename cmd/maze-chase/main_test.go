package main

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/maze-chase/config"
	"github.com/lixenwraith/maze-chase/engine"
	"github.com/lixenwraith/maze-chase/vmath"
)

func newTestGame(t *testing.T) *game {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(120, 31)
	t.Cleanup(screen.Fini)

	cfg := config.Default()
	cfg.Seed = 42
	logger, _ := logtest.NewNullLogger()
	return newGame(screen, cfg, logger)
}

// safestPoint returns the cell centre farthest from every pursuer
func safestPoint(snap *engine.Snapshot) vmath.Vec2 {
	var best vmath.Vec2
	bestDist := -1.0
	for i := range snap.Grid.Cells {
		x, y := snap.Grid.Cells[i].Center(snap.Scale.CellSize)
		d := vmath.Distance(x, y, snap.Builder.X, snap.Builder.Y)
		for _, h := range snap.Helpers {
			d = math.Min(d, vmath.Distance(x, y, h.X, h.Y))
		}
		if d > bestDist {
			bestDist = d
			best = vmath.Vec2{X: x, Y: y}
		}
	}
	return best
}

func TestMouseMoveOntoSafeSpotStarts(t *testing.T) {
	g := newTestGame(t)
	snap := g.sim.Snapshot()

	// Onto the builder: unsafe, stays idle
	col, row := g.renderer.Viewport().ToScreen(snap.Builder.X, snap.Builder.Y)
	assert.True(t, g.handleEvent(tcell.NewEventMouse(col, row, tcell.ButtonNone, tcell.ModNone)))
	assert.Equal(t, engine.PhaseIdle, g.sim.Phase())

	p := safestPoint(&snap)
	col, row = g.renderer.Viewport().ToScreen(p.X, p.Y)
	assert.True(t, g.handleEvent(tcell.NewEventMouse(col, row, tcell.ButtonNone, tcell.ModNone)))
	assert.Equal(t, engine.PhaseRunning, g.sim.Phase())
}

func TestArrowKeyStarts(t *testing.T) {
	g := newTestGame(t)
	snap := g.sim.Snapshot()
	p := safestPoint(&snap)
	g.sim.SetPlayer(p.X, p.Y)
	require.Equal(t, engine.PhaseIdle, g.sim.Phase())

	assert.True(t, g.handleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
	assert.Equal(t, engine.PhaseRunning, g.sim.Phase())
	assert.Contains(t, g.held, tcell.KeyLeft)
}

func TestQuitKeys(t *testing.T) {
	g := newTestGame(t)
	assert.False(t, g.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, g.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, g.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
}
