package server

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/gridduel/model"
	"github.com/zucenko/gridduel/planner"
)

var testPacing = Pacing{BFSStep: 100 * time.Millisecond, WalkStep: time.Millisecond, WalkBudget: 50}

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// always makes the agent use one strategy and counts how often it was asked.
func always(a *Agent, s planner.Strategy) *int {
	calls := 0
	a.pick = func() planner.Strategy {
		calls++
		return s
	}
	return &calls
}

func twoAgents(t *testing.T, p1, p2 model.Cell) (*Agent, *Agent, *model.OccupancyMap) {
	t.Helper()
	occ := model.NewOccupancyMap()
	a := NewAgent(1, p1, occ, rand.New(rand.NewSource(1)), testPacing)
	b := NewAgent(2, p2, occ, rand.New(rand.NewSource(2)), testPacing)
	return a, b, occ
}

func TestAgentRejectsBeforePlanning(t *testing.T) {
	g := model.NewEmptyGrid(4, 4)
	a, _, _ := twoAgents(t, model.Cell{}, model.Cell{Row: 0, Col: 1})
	calls := always(a, planner.BFS)

	assert.Equal(t, MOVE_OUT_OF_BOUNDS, a.MoveTo(model.Cell{Row: 4, Col: 0}, g, t0))
	assert.Equal(t, MOVE_OUT_OF_BOUNDS, a.MoveTo(model.Cell{Row: 0, Col: -1}, g, t0))
	assert.Equal(t, MOVE_OCCUPIED, a.MoveTo(model.Cell{Row: 0, Col: 1}, g, t0))
	assert.Equal(t, 0, *calls)
	assert.False(t, a.Moving)
}

func TestAgentAlreadyThere(t *testing.T) {
	g := model.NewEmptyGrid(4, 4)
	a, _, _ := twoAgents(t, model.Cell{}, model.Cell{Row: 3, Col: 3})
	for _, s := range []planner.Strategy{planner.BFS, planner.RANDOM} {
		always(a, s)
		assert.Equal(t, MOVE_UNREACHABLE, a.MoveTo(model.Cell{}, g, t0), s.Name())
		assert.False(t, a.Moving)
		assert.Empty(t, a.Path)
	}
}

func TestAgentUnreachable(t *testing.T) {
	g := model.NewEmptyGrid(1, 3)
	a, _, _ := twoAgents(t, model.Cell{}, model.Cell{Row: 0, Col: 1})
	always(a, planner.BFS)
	assert.Equal(t, MOVE_UNREACHABLE, a.MoveTo(model.Cell{Row: 0, Col: 2}, g, t0))
	assert.False(t, a.Moving)
	assert.True(t, a.LastPlan.Failed())
}

func TestAgentStepsAtInterval(t *testing.T) {
	g := model.NewEmptyGrid(4, 4)
	a, b, occ := twoAgents(t, model.Cell{}, model.Cell{Row: 3, Col: 3})
	always(a, planner.BFS)

	require.Equal(t, MOVE_OK, a.MoveTo(model.Cell{Row: 0, Col: 2}, g, t0))
	assert.True(t, a.Moving)
	assert.Equal(t, testPacing.BFSStep, a.StepInterval)
	assert.Equal(t, model.Path{{Row: 0, Col: 1}, {Row: 0, Col: 2}}, a.Path)

	assert.False(t, a.Tick(t0.Add(99*time.Millisecond)))
	assert.Equal(t, model.Cell{}, a.Cell)

	assert.True(t, a.Tick(t0.Add(100*time.Millisecond)))
	assert.Equal(t, model.Cell{Row: 0, Col: 1}, a.Cell)
	assert.True(t, occ.Occupied(model.Cell{Row: 0, Col: 1}, b.Id))
	assert.False(t, occ.Occupied(model.Cell{}, b.Id))

	// the timer restarts at the step, not at the previous deadline
	assert.False(t, a.Tick(t0.Add(150*time.Millisecond)))
	assert.True(t, a.Tick(t0.Add(200*time.Millisecond)))
	assert.Equal(t, model.Cell{Row: 0, Col: 2}, a.Cell)
	assert.False(t, a.Moving)
	assert.Empty(t, a.Path)

	assert.False(t, a.Tick(t0.Add(time.Second)))
}

func TestAgentRandomWalkPacing(t *testing.T) {
	g := model.NewEmptyGrid(1, 2)
	a, _, _ := twoAgents(t, model.Cell{}, model.Cell{Row: 5, Col: 5})
	always(a, planner.RANDOM)
	require.Equal(t, MOVE_OK, a.MoveTo(model.Cell{Row: 0, Col: 1}, g, t0))
	assert.Equal(t, testPacing.WalkStep, a.StepInterval)
	assert.True(t, a.Tick(t0.Add(time.Millisecond)))
	assert.Equal(t, model.Cell{Row: 0, Col: 1}, a.Cell)
}

func TestAgentProgress(t *testing.T) {
	g := model.NewEmptyGrid(1, 3)
	a, _, _ := twoAgents(t, model.Cell{}, model.Cell{Row: 5, Col: 5})
	always(a, planner.BFS)
	assert.Zero(t, a.Progress(t0))

	require.Equal(t, MOVE_OK, a.MoveTo(model.Cell{Row: 0, Col: 2}, g, t0))
	assert.InDelta(t, 0.5, a.Progress(t0.Add(50*time.Millisecond)), 0.01)
	assert.InDelta(t, 1, a.Progress(t0.Add(time.Second)), 0.01)

	v := a.View(t0.Add(50 * time.Millisecond))
	assert.Equal(t, model.Cell{}, v.Cell)
	assert.Equal(t, model.Cell{Row: 0, Col: 1}, v.Next)
	assert.True(t, v.Moving)
}

func TestAgentReplanClearsPath(t *testing.T) {
	g := model.NewEmptyGrid(3, 3)
	a, _, _ := twoAgents(t, model.Cell{}, model.Cell{Row: 2, Col: 2})
	always(a, planner.BFS)
	require.Equal(t, MOVE_OK, a.MoveTo(model.Cell{Row: 0, Col: 2}, g, t0))
	require.Equal(t, MOVE_OK, a.MoveTo(model.Cell{Row: 1, Col: 0}, g, t0))
	assert.Equal(t, model.Path{{Row: 1, Col: 0}}, a.Path)

	a.ClearPath()
	assert.False(t, a.Moving)
	assert.False(t, a.Tick(t0.Add(time.Second)))
}
