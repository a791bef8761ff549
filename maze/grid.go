package maze

import "math"

// Wall indexes a cell's walls, clockwise from top
type Wall int

const (
	WallTop Wall = iota
	WallRight
	WallBottom
	WallLeft
	WallCount
)

// Unreached is the flow field distance of a cell not reached from the source
const Unreached = math.MaxInt

// Grid offsets matching WallTop..WallLeft
var wallOffsets = [WallCount][2]int{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
}

// Opposite returns the wall facing this one from the neighbor
func (w Wall) Opposite() Wall {
	return (w + 2) % WallCount
}

// Point is a cell coordinate
type Point struct {
	Col, Row int
}

// Cell is one maze unit
// Walls change only during generation, Distance only during flow field recomputation
type Cell struct {
	Col, Row int
	Walls    [WallCount]bool
	Distance int
}

// Grid is a dense row-major cell array
type Grid struct {
	Cols, Rows int
	Cells      []Cell
}

// NewGrid allocates cols x rows cells with all walls present
func NewGrid(cols, rows int) *Grid {
	if cols <= 0 || rows <= 0 {
		return &Grid{}
	}
	g := &Grid{
		Cols:  cols,
		Rows:  rows,
		Cells: make([]Cell, cols*rows),
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			g.Cells[row*cols+col] = Cell{
				Col:      col,
				Row:      row,
				Walls:    [WallCount]bool{true, true, true, true},
				Distance: Unreached,
			}
		}
	}
	return g
}

// Empty reports a grid without cells; consumers treat it as no maze
func (g *Grid) Empty() bool {
	return g == nil || len(g.Cells) == 0
}

// Index returns the flat index of (col, row), -1 if out of bounds
func (g *Grid) Index(col, row int) int {
	if g == nil || col < 0 || row < 0 || col >= g.Cols || row >= g.Rows {
		return -1
	}
	return row*g.Cols + col
}

// Cell returns the cell at (col, row), nil if out of bounds
func (g *Grid) Cell(col, row int) *Cell {
	idx := g.Index(col, row)
	if idx < 0 {
		return nil
	}
	return &g.Cells[idx]
}

// CellAt returns the cell containing world point (x, y), nil if outside the grid
func (g *Grid) CellAt(x, y, cellSize float64) *Cell {
	if cellSize <= 0 {
		return nil
	}
	return g.Cell(int(math.Floor(x/cellSize)), int(math.Floor(y/cellSize)))
}

// Center returns the world position of a cell's center
func (c *Cell) Center(cellSize float64) (x, y float64) {
	return float64(c.Col)*cellSize + cellSize/2, float64(c.Row)*cellSize + cellSize/2
}

// WallMidpoint returns the world position of the middle of wall dir
func (c *Cell) WallMidpoint(dir Wall, cellSize float64) (x, y float64) {
	left := float64(c.Col) * cellSize
	top := float64(c.Row) * cellSize
	switch dir {
	case WallTop:
		return left + cellSize/2, top
	case WallRight:
		return left + cellSize, top + cellSize/2
	case WallBottom:
		return left + cellSize/2, top + cellSize
	default:
		return left, top + cellSize/2
	}
}

func (g *Grid) neighborIndex(col, row int, dir Wall) int {
	off := wallOffsets[dir]
	return g.Index(col+off[0], row+off[1])
}

// Neighbor returns the adjacent cell across wall dir, nil at the border
func (g *Grid) Neighbor(c *Cell, dir Wall) *Cell {
	idx := g.neighborIndex(c.Col, c.Row, dir)
	if idx < 0 {
		return nil
	}
	return &g.Cells[idx]
}

// ConnectedIndices appends indices of neighbors reachable through open walls of cell idx
// Order is top, right, bottom, left
func (g *Grid) ConnectedIndices(idx int, buf []int) []int {
	c := &g.Cells[idx]
	for dir := WallTop; dir < WallCount; dir++ {
		if c.Walls[dir] {
			continue
		}
		if n := g.neighborIndex(c.Col, c.Row, dir); n >= 0 {
			buf = append(buf, n)
		}
	}
	return buf
}

// OpenPassages counts adjacent cell pairs joined by an open wall
func (g *Grid) OpenPassages() int {
	if g.Empty() {
		return 0
	}
	open := 0
	for i := range g.Cells {
		c := &g.Cells[i]
		// Count each pair once from its left/top member
		if !c.Walls[WallRight] && c.Col+1 < g.Cols {
			open++
		}
		if !c.Walls[WallBottom] && c.Row+1 < g.Rows {
			open++
		}
	}
	return open
}

// ResetDistances marks every cell Unreached
func (g *Grid) ResetDistances() {
	for i := range g.Cells {
		g.Cells[i].Distance = Unreached
	}
}
