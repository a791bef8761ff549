package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze-chase/component"
	"github.com/lixenwraith/maze-chase/engine"
	"github.com/lixenwraith/maze-chase/maze"
)

// Default world units per terminal cell; glyphs are about twice as tall as wide
const (
	DefaultUnitX = 10.0
	DefaultUnitY = 20.0
)

// Glyphs
const (
	GlyphWallH          = '─'
	GlyphWallV          = '│'
	GlyphWallDissolvedH = '┄'
	GlyphWallDissolvedV = '┆'
	GlyphPlayer         = '@'
	GlyphBuilder        = 'B'
	GlyphSword          = 'S'
	GlyphBow            = 'A'
	GlyphStaff          = 'W'
	GlyphBullet         = '•'
	GlyphOrb            = 'o'
)

// Viewport maps world units to terminal cells
// The last terminal row is reserved for the status bar
type Viewport struct {
	UnitX, UnitY float64
}

// DefaultViewport returns the standard mapping
func DefaultViewport() Viewport {
	return Viewport{UnitX: DefaultUnitX, UnitY: DefaultUnitY}
}

// WorldSize returns the world viewport for a terminal of cols x rows
func (v Viewport) WorldSize(cols, rows int) (width, height float64) {
	if rows > 0 {
		rows-- // status bar
	}
	return float64(cols) * v.UnitX, float64(rows) * v.UnitY
}

// ToScreen maps a world point to a terminal cell
func (v Viewport) ToScreen(x, y float64) (col, row int) {
	return int(math.Floor(x / v.UnitX)), int(math.Floor(y / v.UnitY))
}

// ToWorld maps a terminal cell to the world point at its center
func (v Viewport) ToWorld(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * v.UnitX, (float64(row) + 0.5) * v.UnitY
}

// TerminalRenderer draws simulation snapshots onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	view   Viewport
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen, view Viewport) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, view: view}
}

// Viewport returns the world-to-screen mapping
func (r *TerminalRenderer) Viewport() Viewport {
	return r.view
}

// Draw renders a full frame; the caller shows the screen
func (r *TerminalRenderer) Draw(snap *engine.Snapshot) {
	r.screen.Fill(' ', styleFg(RgbStatusBar))

	r.drawMaze(snap)
	for i := range snap.Projectiles {
		r.drawProjectile(&snap.Projectiles[i])
	}
	for i := range snap.Helpers {
		h := &snap.Helpers[i]
		r.put(h.X, h.Y, helperGlyph(h.Weapon), styleFg(helperColor(h.Weapon)))
	}
	r.put(snap.Builder.X, snap.Builder.Y, GlyphBuilder, styleFg(RgbBuilder).Bold(true))
	r.drawPlayer(snap)
	r.drawStatus(snap)
}

func (r *TerminalRenderer) drawMaze(snap *engine.Snapshot) {
	grid := snap.Grid
	if grid.Empty() {
		return
	}
	cs := snap.Scale.CellSize
	solid := styleFg(RgbWall)
	faded := styleFg(RgbWallDissolved)

	for i := range grid.Cells {
		c := &grid.Cells[i]
		left := float64(c.Col) * cs
		top := float64(c.Row) * cs

		for dir := maze.WallTop; dir < maze.WallCount; dir++ {
			if !c.Walls[dir] {
				continue
			}
			dissolved := snap.WallDissolved(c, dir)
			style := solid
			if dissolved {
				style = faded
			}

			switch dir {
			case maze.WallTop:
				r.hline(left, left+cs, top, pick(dissolved, GlyphWallDissolvedH, GlyphWallH), style)
			case maze.WallBottom:
				r.hline(left, left+cs, top+cs, pick(dissolved, GlyphWallDissolvedH, GlyphWallH), style)
			case maze.WallLeft:
				r.vline(left, top, top+cs, pick(dissolved, GlyphWallDissolvedV, GlyphWallV), style)
			case maze.WallRight:
				r.vline(left+cs, top, top+cs, pick(dissolved, GlyphWallDissolvedV, GlyphWallV), style)
			}
		}
	}
}

// hline draws from x0 through x1 inclusive at y, clamped into the playfield
func (r *TerminalRenderer) hline(x0, x1, y float64, ch rune, style tcell.Style) {
	c0, row := r.view.ToScreen(x0, r.clampY(y))
	c1, _ := r.view.ToScreen(x1, r.clampY(y))
	for col := c0; col <= c1; col++ {
		r.set(col, row, ch, style)
	}
}

func (r *TerminalRenderer) vline(x, y0, y1 float64, ch rune, style tcell.Style) {
	col, r0 := r.view.ToScreen(r.clampX(x), y0)
	_, r1 := r.view.ToScreen(r.clampX(x), y1)
	for row := r0; row <= r1; row++ {
		r.set(col, row, ch, style)
	}
}

// clampX and clampY keep right and bottom border lines on the last drawable cell
func (r *TerminalRenderer) clampX(x float64) float64 {
	w, _ := r.screen.Size()
	return math.Min(x, float64(w)*r.view.UnitX-r.view.UnitX/2)
}

func (r *TerminalRenderer) clampY(y float64) float64 {
	_, h := r.screen.Size()
	return math.Min(y, float64(h-1)*r.view.UnitY-r.view.UnitY/2)
}

func (r *TerminalRenderer) drawProjectile(p *component.Projectile) {
	if p.Kind == component.ProjectileOrb && !p.Alive {
		return
	}
	r.put(p.X, p.Y, projectileGlyph(p), styleFg(projectileColor(p.Kind)))
}

func (r *TerminalRenderer) drawPlayer(snap *engine.Snapshot) {
	color := RgbPlayer
	if snap.Phase == engine.PhaseIdle {
		color = RgbPlayerUnsafe
		if snap.SpawnSafe {
			color = RgbPlayerSafe
		}
	}
	r.put(snap.Player.X, snap.Player.Y, GlyphPlayer, styleFg(color).Bold(true))
}

func (r *TerminalRenderer) drawStatus(snap *engine.Snapshot) {
	w, h := r.screen.Size()
	if h == 0 {
		return
	}
	style := styleFg(RgbStatusBar)
	if snap.Phase == engine.PhaseGameOver {
		style = styleFg(RgbGameOver).Bold(true)
	}
	r.text(0, h-1, w, StatusLine(snap), style)
}

// StatusLine is the HUD text for a snapshot
func StatusLine(snap *engine.Snapshot) string {
	t := snap.Telemetry
	switch snap.Phase {
	case engine.PhaseIdle:
		if snap.SpawnSafe {
			return "READY  move with arrows or mouse, Enter to start, q to quit"
		}
		return "TOO CLOSE  move away from pursuers to start"
	case engine.PhaseRunning:
		return fmt.Sprintf("next wave %.1fs  pursuers %d  survived %s",
			t.WaveCountdown.Seconds(), t.PursuerCount, formatSurvival(t.Survival))
	case engine.PhaseGameOver:
		return fmt.Sprintf("%s  survived %s  r to restart", t.Reason, formatSurvival(t.Survival))
	default:
		return ""
	}
}

func formatSurvival(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}

func (r *TerminalRenderer) text(x, y, maxWidth int, s string, style tcell.Style) {
	for _, ch := range s {
		if x >= maxWidth {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// put draws a glyph at a world position
func (r *TerminalRenderer) put(x, y float64, ch rune, style tcell.Style) {
	col, row := r.view.ToScreen(x, y)
	r.set(col, row, ch, style)
}

// set draws inside the playfield only; the status row is never overwritten
func (r *TerminalRenderer) set(col, row int, ch rune, style tcell.Style) {
	w, h := r.screen.Size()
	if col < 0 || row < 0 || col >= w || row >= h-1 {
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}

func helperGlyph(w component.Weapon) rune {
	switch w {
	case component.WeaponBow:
		return GlyphBow
	case component.WeaponStaff:
		return GlyphStaff
	default:
		return GlyphSword
	}
}

func projectileGlyph(p *component.Projectile) rune {
	switch p.Kind {
	case component.ProjectileArrow:
		return arrowGlyph(p.VX, p.VY)
	case component.ProjectileOrb:
		return GlyphOrb
	default:
		return GlyphBullet
	}
}

// arrowGlyph picks a line glyph along the velocity; screen y grows downward
func arrowGlyph(vx, vy float64) rune {
	a := math.Atan2(vy, vx)
	if a < 0 {
		a += math.Pi
	}
	switch {
	case a < math.Pi/8 || a >= 7*math.Pi/8:
		return '-'
	case a < 3*math.Pi/8:
		return '\\'
	case a < 5*math.Pi/8:
		return '|'
	default:
		return '/'
	}
}

func pick(cond bool, a, b rune) rune {
	if cond {
		return a
	}
	return b
}
