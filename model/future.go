package model

import (
	"context"
	"errors"
	"sync"

	log "github.com/sirupsen/logrus"
)

var ErrAlreadyPublished = errors.New("grid already published")

// GridFuture hands a grid built on one goroutine to the tick loop.
// The ready channel is closed exactly once, by the first Publish.
type GridFuture struct {
	mu    sync.Mutex
	grid  *Grid
	ready chan struct{}
}

func NewGridFuture() *GridFuture {
	return &GridFuture{ready: make(chan struct{})}
}

// Ready is a non-blocking check.
func (f *GridFuture) Ready() bool {
	select {
	case <-f.ready:
		return true
	default:
		return false
	}
}

func (f *GridFuture) Publish(g *Grid) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Ready() {
		log.Warn("GridFuture.Publish called twice")
		return ErrAlreadyPublished
	}
	f.grid = g
	close(f.ready)
	log.WithFields(log.Fields{"rows": g.Rows, "cols": g.Cols}).Info("GridFuture grid ready")
	return nil
}

// Wait blocks until the grid is published.
func (f *GridFuture) Wait() *Grid {
	<-f.ready
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.grid
}

func (f *GridFuture) WaitContext(ctx context.Context) (*Grid, error) {
	select {
	case <-f.ready:
		return f.Wait(), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
