package model

import (
	"math/rand"
)

func NewEmptyGrid(rows, cols int) *Grid {
	blocked := make([][]bool, 0, rows)
	for r := 0; r < rows; r++ {
		blocked = append(blocked, make([]bool, cols))
	}
	return &Grid{Rows: rows, Cols: cols, blocked: blocked}
}

// Generate marks obstacles distinct random cells as blocked.
// Callers must make sure obstacles < rows*cols, otherwise it never returns.
func Generate(rows, cols, obstacles int, rng *rand.Rand) *Grid {
	g := NewEmptyGrid(rows, cols)
	placed := 0
	for placed < obstacles {
		c := Cell{Row: rng.Intn(rows), Col: rng.Intn(cols)}
		if g.blocked[c.Row][c.Col] {
			continue
		}
		g.blocked[c.Row][c.Col] = true
		placed++
	}
	return g
}

// GenerateAsync starts the generator on its own goroutine and returns the
// future it publishes to.
func GenerateAsync(rows, cols, obstacles int, rng *rand.Rand) *GridFuture {
	f := NewGridFuture()
	go func() {
		g := Generate(rows, cols, obstacles, rng)
		_ = f.Publish(g)
	}()
	return f
}
