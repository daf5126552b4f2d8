// Package planner turns a move request into a path over a grid.
package planner

import (
	"fmt"
	"math/rand"

	"github.com/zucenko/gridduel/model"
)

type Strategy int

const (
	BFS Strategy = iota
	RANDOM
)

func (s Strategy) Name() string {
	switch s {
	case BFS:
		return "BFS"
	case RANDOM:
		return "RANDOM"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

// ShortestPathOrder is the order ShortestPath expands neighbours in:
// right, down, left, up. It decides which of several equally short
// paths is returned.
var ShortestPathOrder = [4]model.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 0, Col: -1}, {Row: -1, Col: 0}}

// RandomWalkOrder lists the candidates RandomWalk draws from: right, left, down, up.
var RandomWalkOrder = [4]model.Cell{{Row: 0, Col: 1}, {Row: 0, Col: -1}, {Row: 1, Col: 0}, {Row: -1, Col: 0}}

// Plan is the result of one planning run.
type Plan struct {
	Strategy Strategy
	Path     model.Path
	Reached  bool
}

// Failed reports a planner that could not move the agent at all.
func (p Plan) Failed() bool {
	return len(p.Path) == 0
}

// Truncated is true for a walk that moves but stops short of the target.
func (p Plan) Truncated() bool {
	return len(p.Path) > 0 && !p.Reached
}

// DefaultWalkBudget is used when RandomWalk gets a non-positive budget.
func DefaultWalkBudget(g *model.Grid) int {
	return 4 * g.Rows * g.Cols
}

func passable(g *model.Grid, occ model.Occupancy, self int32, c model.Cell) bool {
	return g.Free(c) && (occ == nil || !occ.Occupied(c, self))
}

// Run invokes the planner for the given strategy.
func Run(s Strategy, start, target model.Cell, g *model.Grid, occ model.Occupancy, self int32, rng *rand.Rand, budget int) Plan {
	var path model.Path
	switch s {
	case RANDOM:
		path = RandomWalk(start, target, g, occ, self, rng, budget)
	default:
		path = ShortestPath(start, target, g, occ, self)
	}
	reached := len(path) > 0 && path[len(path)-1] == target
	return Plan{Strategy: s, Path: path, Reached: reached}
}
