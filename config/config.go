// Package config loads the game settings from YAML with a few
// environment overrides on top.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	ErrBadDimensions     = errors.New("rows and cols must be positive")
	ErrTooManyObstacles  = errors.New("obstacles must be fewer than rows*cols")
	ErrBadStart          = errors.New("player start outside grid")
	ErrNotEnoughStarts   = errors.New("at least two players are needed")
	ErrDuplicatePlayerAt = errors.New("two players share a start cell")
	ErrBadTiming         = errors.New("tick and step intervals must be positive")
)

type Start struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

type Config struct {
	Rows      int `yaml:"rows"`
	Cols      int `yaml:"cols"`
	Obstacles int `yaml:"obstacles"`
	CellSize  int `yaml:"cell_size"`
	// Layout names a text layout file used instead of random obstacles.
	Layout     string        `yaml:"layout"`
	BFSStep    time.Duration `yaml:"bfs_step"`
	WalkStep   time.Duration `yaml:"walk_step"`
	WalkBudget int           `yaml:"walk_budget"`
	Tick       time.Duration `yaml:"tick"`
	Seed       int64         `yaml:"seed"`
	LogLevel   string        `yaml:"log_level"`
	Players    []Start       `yaml:"players"`
}

// Default matches an 800x600 window of 30px cells with two tanks top left.
func Default() Config {
	return Config{
		Rows:      20,
		Cols:      26,
		Obstacles: 10,
		CellSize:  30,
		BFSStep:   100 * time.Millisecond,
		WalkStep:  time.Millisecond,
		Tick:      time.Second / 60,
		LogLevel:  "info",
		Players:   []Start{{Row: 1, Col: 1}, {Row: 1, Col: 2}},
	}
}

func loadYAML(path string, out interface{}) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// Load reads path over the defaults. An empty path falls back to
// GRID_CONFIG and then to the defaults alone.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		path = os.Getenv("GRID_CONFIG")
	}
	if path != "" {
		if err := loadYAML(path, &c); err != nil {
			return c, fmt.Errorf("loading %s: %w", path, err)
		}
	}
	if err := c.applyEnv(); err != nil {
		return c, err
	}
	return c, nil
}

func (c *Config) applyEnv() error {
	if s := os.Getenv("GRID_SEED"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("GRID_SEED: %w", err)
		}
		c.Seed = seed
	}
	if l := os.Getenv("GRID_LOG_LEVEL"); l != "" {
		c.LogLevel = l
	}
	return nil
}

// Validate must pass before the grid is generated: the generator keeps
// sampling until it has placed every obstacle. With a layout file the
// dimensions and starts come from the file and are checked when it is read.
func (c Config) Validate() error {
	if c.Tick <= 0 || c.BFSStep <= 0 || c.WalkStep <= 0 {
		return ErrBadTiming
	}
	if c.Layout == "" {
		if c.Rows <= 0 || c.Cols <= 0 {
			return ErrBadDimensions
		}
		if c.Obstacles < 0 || c.Obstacles >= c.Rows*c.Cols {
			return fmt.Errorf("%d obstacles on %dx%d: %w", c.Obstacles, c.Rows, c.Cols, ErrTooManyObstacles)
		}
		for _, p := range c.Players {
			if p.Row < 0 || p.Col < 0 || p.Row >= c.Rows || p.Col >= c.Cols {
				return fmt.Errorf("start (%d,%d): %w", p.Row, p.Col, ErrBadStart)
			}
		}
	}
	if c.Layout == "" && len(c.Players) < 2 {
		return ErrNotEnoughStarts
	}
	seen := make(map[Start]bool)
	for _, p := range c.Players {
		if seen[p] {
			return fmt.Errorf("start (%d,%d): %w", p.Row, p.Col, ErrDuplicatePlayerAt)
		}
		seen[p] = true
	}
	return nil
}
