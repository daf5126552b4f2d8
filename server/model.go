package server

import (
	"time"

	"github.com/zucenko/gridduel/model"
)

type GameSessionState int

const (
	GS_WAIT GameSessionState = iota
	GS_PLAY
	GS_OVER
)

// GameSession owns the grid future, the agents and the turn. Everything but
// the grid future is used from the tick loop only.
type GameSession struct {
	State     GameSessionState
	Grid      *model.GridFuture
	Occupancy *model.OccupancyMap
	Turn      *Turn
	Clicks    chan Click

	tick time.Duration
	now  func() time.Time
}

// Click is a move request for a cell. Player 0 means whoever holds the turn.
// Result, when set, receives the outcome.
type Click struct {
	Player int32
	Cell   model.Cell
	Result chan MoveResult
}
