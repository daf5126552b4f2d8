package server

import (
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/gridduel/model"
	"github.com/zucenko/gridduel/planner"
)

// Pacing holds the per strategy step intervals.
type Pacing struct {
	BFSStep    time.Duration
	WalkStep   time.Duration
	WalkBudget int
}

// Agent walks its own path one cell per step interval. Only the tick loop
// touches it.
type Agent struct {
	Id           int32
	Cell         model.Cell
	Path         model.Path
	Moving       bool
	StepInterval time.Duration
	LastPlan     planner.Plan

	pacing    Pacing
	lastStep  time.Time
	step      *gween.Tween
	occupancy *model.OccupancyMap
	rng       *rand.Rand
	pick      func() planner.Strategy
}

func NewAgent(id int32, at model.Cell, occupancy *model.OccupancyMap, rng *rand.Rand, pacing Pacing) *Agent {
	a := &Agent{
		Id:           id,
		Cell:         at,
		StepInterval: pacing.BFSStep,
		pacing:       pacing,
		occupancy:    occupancy,
		rng:          rng,
	}
	a.pick = a.flipCoin
	occupancy.Place(id, at)
	return a
}

func (a *Agent) flipCoin() planner.Strategy {
	if a.rng.Intn(2) == 0 {
		return planner.BFS
	}
	return planner.RANDOM
}

// MoveTo plans a path to target with a randomly picked strategy and starts
// walking it. Out of bounds and occupied targets are refused before any
// planning happens.
func (a *Agent) MoveTo(target model.Cell, g *model.Grid, now time.Time) MoveResult {
	if !g.InBounds(target) {
		return MOVE_OUT_OF_BOUNDS
	}
	if a.occupancy.Occupied(target, a.Id) {
		return MOVE_OCCUPIED
	}
	a.ClearPath()

	strategy := a.pick()
	switch strategy {
	case planner.RANDOM:
		a.StepInterval = a.pacing.WalkStep
	default:
		a.StepInterval = a.pacing.BFSStep
	}
	plan := planner.Run(strategy, a.Cell, target, g, a.occupancy, a.Id, a.rng, a.pacing.WalkBudget)
	a.LastPlan = plan

	log.WithFields(log.Fields{
		"agent":     a.Id,
		"strategy":  strategy.Name(),
		"target":    target,
		"steps":     len(plan.Path),
		"truncated": plan.Truncated(),
	}).Debug("Agent.MoveTo planned")

	if plan.Failed() {
		return MOVE_UNREACHABLE
	}
	a.Path = plan.Path
	a.Moving = true
	a.lastStep = now
	a.step = gween.New(0, 1, float32(a.StepInterval.Seconds()), ease.Linear)
	return MOVE_OK
}

// Tick takes the next step once a full step interval has passed since the
// previous one. It reports whether the agent moved.
func (a *Agent) Tick(now time.Time) bool {
	if !a.Moving || len(a.Path) == 0 {
		return false
	}
	if now.Sub(a.lastStep) < a.StepInterval {
		return false
	}
	next := a.Path[0]
	a.Path = a.Path[1:]
	a.Cell = next
	a.occupancy.Place(a.Id, next)
	a.lastStep = now
	if len(a.Path) == 0 {
		a.Path = nil
		a.Moving = false
	}
	return true
}

// ClearPath drops whatever is left of the path and stops the agent.
func (a *Agent) ClearPath() {
	a.Path = nil
	a.Moving = false
	a.step = nil
}

// Progress is how far, between 0 and 1, the agent is towards its next cell.
func (a *Agent) Progress(now time.Time) float32 {
	if !a.Moving || a.step == nil {
		return 0
	}
	a.step.Reset()
	current, _ := a.step.Update(float32(now.Sub(a.lastStep).Seconds()))
	return current
}

func (a *Agent) View(now time.Time) model.AgentView {
	next := a.Cell
	if len(a.Path) > 0 {
		next = a.Path[0]
	}
	return model.AgentView{
		Id:       a.Id,
		Cell:     a.Cell,
		Next:     next,
		Moving:   a.Moving,
		Progress: a.Progress(now),
	}
}
