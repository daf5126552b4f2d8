package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/gridduel/config"
	"github.com/zucenko/gridduel/model"
	"github.com/zucenko/gridduel/server"
	"golang.org/x/sync/errgroup"
)

// sim plays both sides of a session headless, clicking random cells.
func main() {
	configPath := flag.String("config", "", "YAML config file (defaults to $GRID_CONFIG)")
	turns := flag.Int("turns", 10, "stop after this many turns, 0 runs until interrupted")
	every := flag.Duration("click", 250*time.Millisecond, "time between random clicks")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalln(err)
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warnf("unknown log level %q, keeping %s", cfg.LogLevel, log.GetLevel())
	}

	session, err := server.Load(cfg)
	if err != nil {
		log.Fatalln(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	flips := 0
	session.Turn.OnFlip = func(next server.TurnState) {
		flips++
		snap := session.Snapshot(time.Now())
		for _, a := range snap.Agents {
			log.WithFields(log.Fields{"agent": a.Id, "cell": a.Cell}).Info("position")
		}
		if *turns > 0 && flips >= *turns {
			cancel()
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return session.Loop(ctx)
	})
	g.Go(func() error {
		return feed(ctx, session, *every, rand.New(rand.NewSource(cfg.Seed)))
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		log.Fatalln(err)
	}
	log.WithField("turns", flips).Info("sim done")
}

func feed(ctx context.Context, session *server.GameSession, every time.Duration, rng *rand.Rand) error {
	grid, err := session.Grid.WaitContext(ctx)
	if err != nil {
		return err
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			session.Post(server.Click{Cell: model.Cell{Row: rng.Intn(grid.Rows), Col: rng.Intn(grid.Cols)}})
		}
	}
}
