package planner

import (
	"math/rand"

	"github.com/zucenko/gridduel/model"
)

// RandomWalk wanders from start, picking a uniformly random passable
// neighbour each step, until it lands on target, runs out of neighbours or
// has taken budget steps. It never backtracks on purpose and may revisit
// cells, so the result can be long and can stop short of the target.
func RandomWalk(start, target model.Cell, g *model.Grid, occ model.Occupancy, self int32, rng *rand.Rand, budget int) model.Path {
	if budget <= 0 {
		budget = DefaultWalkBudget(g)
	}
	var path model.Path
	current := start
	valid := make([]model.Cell, 0, len(RandomWalkOrder))

	for current != target && len(path) < budget {
		valid = valid[:0]
		for _, d := range RandomWalkOrder {
			n := current.Add(d)
			if passable(g, occ, self, n) {
				valid = append(valid, n)
			}
		}
		if len(valid) == 0 {
			break
		}
		current = valid[rng.Intn(len(valid))]
		path = append(path, current)
	}
	return path
}
