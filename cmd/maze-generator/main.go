package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/maze-chase/maze"
	"github.com/lixenwraith/maze-chase/vmath"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== PERFECT MAZE GENERATOR ===")

		w := getInt(reader, "Columns (default 20): ", 20)
		h := getInt(reader, "Rows (default 10): ", 10)
		seed := getInt(reader, "Seed [0 = clock] (default 0): ", 0)
		if seed <= 0 {
			seed = int(time.Now().UnixNano() & 0x7fffffff)
		}

		fmt.Println("\nGenerating...")
		startT := time.Now()
		grid := maze.Generate(w, h, vmath.NewFastRand(uint64(seed)))
		dur := time.Since(startT)

		fmt.Printf("Done in %v (seed %d)\n", dur, seed)
		if grid.Empty() {
			fmt.Println("Status: Empty grid")
		} else {
			fmt.Printf("Grid Dimensions: %dx%d, open passages: %d\n", grid.Cols, grid.Rows, grid.OpenPassages())

			start := maze.Point{}
			end := maze.Point{Col: grid.Cols - 1, Row: grid.Rows - 1}
			path := maze.Solve(grid, start, end)
			if path != nil {
				fmt.Printf("Solution Path Length: %d steps\n", len(path)-1)
			} else {
				fmt.Println("Status: Unsolvable")
			}

			draw(os.Stdout, grid, start, end, path)
		}

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

// draw prints the grid as box art, three characters per cell plus shared walls
func draw(out io.Writer, grid *maze.Grid, start, end maze.Point, path []maze.Point) {
	onPath := make(map[maze.Point]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	var b strings.Builder
	for row := 0; row < grid.Rows; row++ {
		// Top walls
		for col := 0; col < grid.Cols; col++ {
			b.WriteString("+")
			if grid.Cell(col, row).Walls[maze.WallTop] {
				b.WriteString("---")
			} else {
				b.WriteString("   ")
			}
		}
		b.WriteString("+\n")

		// Left walls and contents
		for col := 0; col < grid.Cols; col++ {
			c := grid.Cell(col, row)
			if c.Walls[maze.WallLeft] {
				b.WriteString("|")
			} else {
				b.WriteString(" ")
			}

			p := maze.Point{Col: col, Row: row}
			switch {
			case p == start:
				b.WriteString(" S ")
			case p == end:
				b.WriteString(" E ")
			case onPath[p]:
				b.WriteString(" • ")
			default:
				b.WriteString("   ")
			}
		}
		if grid.Cell(grid.Cols-1, row).Walls[maze.WallRight] {
			b.WriteString("|")
		}
		b.WriteString("\n")
	}

	// Bottom border
	for col := 0; col < grid.Cols; col++ {
		b.WriteString("+")
		if grid.Cell(col, grid.Rows-1).Walls[maze.WallBottom] {
			b.WriteString("---")
		} else {
			b.WriteString("   ")
		}
	}
	b.WriteString("+\n")

	fmt.Fprint(out, b.String())
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
