package server

import (
	"fmt"
)

// MoveResult tells a caller why a move was or was not started.
type MoveResult int

const (
	MOVE_OK MoveResult = iota
	MOVE_OUT_OF_BOUNDS
	MOVE_OCCUPIED
	MOVE_UNREACHABLE
	MOVE_NOT_YOUR_TURN
	MOVE_IN_FLIGHT
)

func (r MoveResult) Name() string {
	switch r {
	case MOVE_OK:
		return "OK"
	case MOVE_OUT_OF_BOUNDS:
		return "OUT_OF_BOUNDS"
	case MOVE_OCCUPIED:
		return "OCCUPIED"
	case MOVE_UNREACHABLE:
		return "UNREACHABLE"
	case MOVE_NOT_YOUR_TURN:
		return "NOT_YOUR_TURN"
	case MOVE_IN_FLIGHT:
		return "IN_FLIGHT"
	default:
		return fmt.Sprintf("N/A(%d)", r)
	}
}

func (r MoveResult) Accepted() bool {
	return r == MOVE_OK
}

func (s TurnState) Name() string {
	switch s {
	case P1_TURN:
		return "P1_TURN"
	case P2_TURN:
		return "P2_TURN"
	default:
		return fmt.Sprintf("P%d_TURN", int(s)+1)
	}
}

func (gss GameSessionState) Name() string {
	switch gss {
	case GS_WAIT:
		return "GS_WAIT"
	case GS_PLAY:
		return "GS_PLAY"
	case GS_OVER:
		return "GS_OVER"
	default:
		return fmt.Sprintf("n/a:%d", gss)
	}
}
