package planner

import (
	"github.com/zucenko/gridduel/model"
)

// ShortestPath runs a breadth first search from start to target over free
// cells not held by another agent. It returns nil when the target is out of
// bounds, unreachable or equal to start.
func ShortestPath(start, target model.Cell, g *model.Grid, occ model.Occupancy, self int32) model.Path {
	if !g.InBounds(target) || !g.InBounds(start) {
		return nil
	}

	visited := make([][]bool, g.Rows)
	parent := make([][]model.Cell, g.Rows)
	for r := range visited {
		visited[r] = make([]bool, g.Cols)
		parent[r] = make([]model.Cell, g.Cols)
	}

	queue := []model.Cell{start}
	visited[start.Row][start.Col] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == target {
			return backtrack(parent, start, target)
		}

		for _, d := range ShortestPathOrder {
			n := current.Add(d)
			if !g.InBounds(n) || visited[n.Row][n.Col] || !passable(g, occ, self, n) {
				continue
			}
			visited[n.Row][n.Col] = true
			parent[n.Row][n.Col] = current
			queue = append(queue, n)
		}
	}
	return nil
}

func backtrack(parent [][]model.Cell, start, target model.Cell) model.Path {
	path := make(model.Path, 0)
	for step := target; step != start; step = parent[step.Row][step.Col] {
		path = append(path, step)
	}
	if len(path) == 0 {
		return nil
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
