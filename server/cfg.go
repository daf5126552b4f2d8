package server

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/gridduel/config"
	"github.com/zucenko/gridduel/model"
)

// Load builds a session from cfg. Random grids are generated on their own
// goroutine; a layout file is read and published right away.
func Load(cfg config.Config) (*GameSession, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.WithField("seed", seed).Info("server.Load")

	starts := make([]model.Cell, 0, len(cfg.Players))
	for _, p := range cfg.Players {
		starts = append(starts, model.Cell{Row: p.Row, Col: p.Col})
	}

	var future *model.GridFuture
	if cfg.Layout != "" {
		grid, layoutStarts, err := readLayout(cfg.Layout)
		if err != nil {
			return nil, err
		}
		if len(layoutStarts) > 0 {
			starts = layoutStarts
		}
		if len(starts) < 2 {
			return nil, fmt.Errorf("layout %s: %w", cfg.Layout, config.ErrNotEnoughStarts)
		}
		for _, s := range starts {
			if !grid.InBounds(s) {
				return nil, fmt.Errorf("start %v: %w", s, config.ErrBadStart)
			}
		}
		future = model.NewGridFuture()
		if err := future.Publish(grid); err != nil {
			return nil, err
		}
	} else {
		future = model.GenerateAsync(cfg.Rows, cfg.Cols, cfg.Obstacles, rand.New(rand.NewSource(seed)))
	}

	pacing := Pacing{BFSStep: cfg.BFSStep, WalkStep: cfg.WalkStep, WalkBudget: cfg.WalkBudget}
	occupancy := model.NewOccupancyMap()
	agents := make([]*Agent, 0, len(starts))
	for i, s := range starts {
		rng := rand.New(rand.NewSource(seed + int64(i) + 1))
		agents = append(agents, NewAgent(int32(i+1), s, occupancy, rng, pacing))
	}
	return NewGameSession(future, agents, occupancy, cfg.Tick), nil
}

func readLayout(path string) (*model.Grid, []model.Cell, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()
	grid, byPlayer, err := model.ReadGrid(file)
	if err != nil {
		return nil, nil, fmt.Errorf("layout %s: %w", path, err)
	}
	starts := make([]model.Cell, 0, len(byPlayer))
	for id := int32(1); int(id) <= len(byPlayer); id++ {
		s, found := byPlayer[id]
		if !found {
			return nil, nil, fmt.Errorf("layout %s: player %d missing", path, id)
		}
		starts = append(starts, s)
	}
	return grid, starts, nil
}
