package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/gridduel/model"
	"github.com/zucenko/gridduel/planner"
)

func TestTurnAlternates(t *testing.T) {
	g := model.NewEmptyGrid(4, 4)
	a, b, _ := twoAgents(t, model.Cell{}, model.Cell{Row: 3, Col: 3})
	always(a, planner.BFS)
	always(b, planner.BFS)
	turn := NewTurn(a, b)
	flips := make([]TurnState, 0)
	turn.OnFlip = func(next TurnState) { flips = append(flips, next) }

	require.Equal(t, P1_TURN, turn.State)
	require.Equal(t, MOVE_OK, turn.Request(model.Cell{Row: 2, Col: 0}, g, t0))
	assert.True(t, turn.MoveInFlight)

	// P2 has a perfectly good target but P1 is still walking
	assert.Equal(t, MOVE_IN_FLIGHT, turn.RequestFor(b.Id, model.Cell{Row: 3, Col: 2}, g, t0))
	assert.False(t, b.Moving)

	now := t0
	for i := 0; i < 10; i++ {
		now = now.Add(testPacing.BFSStep)
		turn.Tick(now)
	}
	assert.Equal(t, model.Cell{Row: 2, Col: 0}, a.Cell)
	assert.Equal(t, P2_TURN, turn.State)
	assert.False(t, turn.MoveInFlight)
	assert.Equal(t, []TurnState{P2_TURN}, flips)

	assert.Equal(t, MOVE_NOT_YOUR_TURN, turn.RequestFor(a.Id, model.Cell{Row: 0, Col: 0}, g, now))
	require.Equal(t, MOVE_OK, turn.RequestFor(b.Id, model.Cell{Row: 3, Col: 2}, g, now))
	assert.True(t, turn.Tick(now.Add(testPacing.BFSStep)))
	assert.Equal(t, P1_TURN, turn.State)
	assert.Equal(t, []TurnState{P2_TURN, P1_TURN}, flips)
}

func TestTurnRejectedMoveKeepsTurn(t *testing.T) {
	g := model.NewEmptyGrid(4, 4)
	a, b, _ := twoAgents(t, model.Cell{}, model.Cell{Row: 0, Col: 1})
	always(a, planner.BFS)
	turn := NewTurn(a, b)

	assert.Equal(t, MOVE_OCCUPIED, turn.Request(model.Cell{Row: 0, Col: 1}, g, t0))
	assert.Equal(t, MOVE_OUT_OF_BOUNDS, turn.Request(model.Cell{Row: 9, Col: 9}, g, t0))
	assert.Equal(t, MOVE_UNREACHABLE, turn.Request(model.Cell{}, g, t0))
	assert.False(t, turn.MoveInFlight)
	assert.False(t, turn.Tick(t0.Add(time.Second)))
	assert.Equal(t, P1_TURN, turn.State)
}

func TestTurnStateNames(t *testing.T) {
	assert.Equal(t, "P1_TURN", P1_TURN.Name())
	assert.Equal(t, "P2_TURN", P2_TURN.Name())
	assert.Equal(t, "P3_TURN", TurnState(2).Name())
	assert.Equal(t, "OCCUPIED", MOVE_OCCUPIED.Name())
}
