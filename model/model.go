package model

import "fmt"

// Cell is a (row, col) grid coordinate.
type Cell struct {
	Row, Col int
}

func (c Cell) Add(d Cell) Cell {
	return Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Path holds the cells still to be walked, the current cell excluded.
type Path []Cell

// Grid is a rows x cols matrix of free and blocked cells.
// It is never changed once published.
type Grid struct {
	Rows, Cols int
	blocked    [][]bool
}

func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < g.Rows && c.Col < g.Cols
}

func (g *Grid) Blocked(c Cell) bool {
	return g.blocked[c.Row][c.Col]
}

// Free reports whether c is inside the grid and not blocked.
func (g *Grid) Free(c Cell) bool {
	return g.InBounds(c) && !g.blocked[c.Row][c.Col]
}

func (g *Grid) BlockedCells() []Cell {
	cells := make([]Cell, 0)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.blocked[r][c] {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// Occupancy answers whether a cell is held by a live agent other than self.
type Occupancy interface {
	Occupied(c Cell, self int32) bool
}
