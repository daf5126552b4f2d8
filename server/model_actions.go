package server

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/gridduel/model"
)

func NewGameSession(grid *model.GridFuture, agents []*Agent, occupancy *model.OccupancyMap, tick time.Duration) *GameSession {
	return &GameSession{
		State:     GS_WAIT,
		Grid:      grid,
		Occupancy: occupancy,
		Turn:      NewTurn(agents...),
		Clicks:    make(chan Click, 8),
		tick:      tick,
		now:       time.Now,
	}
}

// Click dispatches a click for whoever holds the turn.
func (gs *GameSession) Click(cell model.Cell, now time.Time) MoveResult {
	return gs.ClickAs(gs.Turn.Active().Id, cell, now)
}

func (gs *GameSession) ClickAs(player int32, cell model.Cell, now time.Time) MoveResult {
	grid := gs.awaitGrid()
	result := gs.Turn.RequestFor(player, cell, grid, now)
	entry := log.WithFields(log.Fields{
		"agent":  player,
		"target": cell,
		"result": result.Name(),
	})
	if result.Accepted() {
		entry.Info("GameSession move started")
	} else {
		entry.Warn("GameSession move rejected")
	}
	return result
}

// Update runs one tick: it waits for the grid, then steps the agents.
func (gs *GameSession) Update(now time.Time) bool {
	gs.awaitGrid()
	return gs.Turn.Tick(now)
}

func (gs *GameSession) awaitGrid() *model.Grid {
	grid := gs.Grid.Wait()
	if gs.State == GS_WAIT {
		gs.State = GS_PLAY
	}
	return grid
}

// Post queues a click for Loop. It never blocks: a full queue drops the click.
func (gs *GameSession) Post(c Click) bool {
	select {
	case gs.Clicks <- c:
		return true
	default:
		log.Warnf("Dropping click %v, GameSession.Clicks FULL", c.Cell)
		return false
	}
}

// Loop is the tick loop: it serves queued clicks and ticks the agents on
// every timer beat until ctx is done.
func (gs *GameSession) Loop(ctx context.Context) error {
	log.Info("GameSession.Loop start")
	ticker := time.NewTicker(gs.tick)
	defer ticker.Stop()
	defer func() { gs.State = GS_OVER }()

	for {
		if _, err := gs.Grid.WaitContext(ctx); err != nil {
			log.Info("GameSession.Loop stopped before grid was ready")
			return err
		}
		select {
		case <-ctx.Done():
			log.Info("GameSession.Loop end")
			return ctx.Err()
		case c := <-gs.Clicks:
			player := c.Player
			if player == 0 {
				player = gs.Turn.Active().Id
			}
			result := gs.ClickAs(player, c.Cell, gs.now())
			if c.Result != nil {
				select {
				case c.Result <- result:
				default:
				}
			}
		case <-ticker.C:
			gs.Update(gs.now())
		}
	}
}

// Snapshot is what a renderer reads once per frame.
func (gs *GameSession) Snapshot(now time.Time) model.Snapshot {
	views := make([]model.AgentView, 0, len(gs.Turn.Agents))
	for _, a := range gs.Turn.Agents {
		views = append(views, a.View(now))
	}
	return model.Snapshot{
		Turn:         int(gs.Turn.State),
		MoveInFlight: gs.Turn.MoveInFlight,
		Agents:       views,
	}
}
