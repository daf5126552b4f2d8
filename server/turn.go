package server

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/gridduel/model"
)

type TurnState int

const (
	P1_TURN TurnState = iota
	P2_TURN
)

// Turn lets one agent at a time start a move and hands the turn on once
// that agent has walked its whole path.
type Turn struct {
	State        TurnState
	MoveInFlight bool
	Agents       []*Agent

	OnFlip func(next TurnState)
}

func NewTurn(agents ...*Agent) *Turn {
	return &Turn{State: P1_TURN, Agents: agents}
}

func (t *Turn) Active() *Agent {
	return t.Agents[int(t.State)]
}

// Request starts a move for whoever holds the turn.
func (t *Turn) Request(target model.Cell, g *model.Grid, now time.Time) MoveResult {
	return t.RequestFor(t.Active().Id, target, g, now)
}

// RequestFor starts a move for agent id if it holds the turn and nothing is
// in flight.
func (t *Turn) RequestFor(id int32, target model.Cell, g *model.Grid, now time.Time) MoveResult {
	if t.MoveInFlight {
		return MOVE_IN_FLIGHT
	}
	active := t.Active()
	if active.Id != id {
		return MOVE_NOT_YOUR_TURN
	}
	result := active.MoveTo(target, g, now)
	if result.Accepted() {
		t.MoveInFlight = true
	}
	return result
}

// Tick steps every agent and flips the turn when the active agent has
// finished its move. It reports whether the turn flipped.
func (t *Turn) Tick(now time.Time) bool {
	for _, a := range t.Agents {
		a.Tick(now)
	}
	if t.MoveInFlight && !t.Active().Moving {
		t.flip()
		return true
	}
	return false
}

func (t *Turn) flip() {
	t.State = TurnState((int(t.State) + 1) % len(t.Agents))
	t.MoveInFlight = false
	log.WithField("turn", t.State.Name()).Info("Turn flipped")
	if t.OnFlip != nil {
		t.OnFlip(t.State)
	}
}
