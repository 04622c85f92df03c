// Package config holds the tunables shared by every mazerunner front end:
// grid size, wall density, cell size, animation speed, algorithm and seed.
package config

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/mazerunner/driver"
	"github.com/katalvlaran/mazerunner/engine"
)

// Sentinel errors returned by Validate.
var (
	ErrBadDimensions  = errors.New("config: rows and cols must be positive and hold at least two cells")
	ErrBadProbability = errors.New("config: wall probability must be within [0,1]")
	ErrBadCellSize    = errors.New("config: cell size must be positive")
	ErrBadSpeed       = errors.New("config: speed must be within [1,100]")
	ErrBadAlgorithm   = errors.New("config: unknown algorithm")
)

// Defaults.
const (
	DefaultRows            = 10
	DefaultCols            = 10
	DefaultWallProbability = 0.25
	DefaultCellSize        = 40
	DefaultSpeed           = 50
	DefaultAlgorithm       = "A*"
)

// Config describes one session.
type Config struct {
	Rows            int
	Cols            int
	WallProbability float64
	CellSize        int    // pixels per cell, used to map clicks
	Speed           int    // 1 (slowest) to 100 (fastest)
	Algorithm       string // "A*", "BFS" or "DFS"
	Seed            int64  // 0 = fresh randomness on every run
}

// Default returns the stock 10×10 setup.
func Default() Config {
	return Config{
		Rows:            DefaultRows,
		Cols:            DefaultCols,
		WallProbability: DefaultWallProbability,
		CellSize:        DefaultCellSize,
		Speed:           DefaultSpeed,
		Algorithm:       DefaultAlgorithm,
	}
}

// Validate checks every field and returns the first violation.
func (c Config) Validate() error {
	if c.Rows < 1 || c.Cols < 1 || c.Rows*c.Cols < 2 {
		return fmt.Errorf("%w: %dx%d", ErrBadDimensions, c.Rows, c.Cols)
	}
	if math.IsNaN(c.WallProbability) || c.WallProbability < 0 || c.WallProbability > 1 {
		return fmt.Errorf("%w: %v", ErrBadProbability, c.WallProbability)
	}
	if c.CellSize < 1 {
		return fmt.Errorf("%w: %d", ErrBadCellSize, c.CellSize)
	}
	if c.Speed < driver.MinSpeed || c.Speed > driver.MaxSpeed {
		return fmt.Errorf("%w: %d", ErrBadSpeed, c.Speed)
	}
	if _, err := engine.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %q", ErrBadAlgorithm, c.Algorithm)
	}
	return nil
}

// Algo returns the parsed algorithm.
func (c Config) Algo() (engine.Algorithm, error) {
	a, err := engine.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadAlgorithm, c.Algorithm)
	}
	return a, nil
}

// Rand returns the random source for maze generation. A zero Seed is
// replaced by the current time so that each session differs.
func (c Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// BindFlags registers the fields on fs, using the current values as defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.Float64Var(&c.WallProbability, "wall-prob", c.WallProbability, "probability that a cell becomes a wall on regeneration")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "cell size in pixels (click mapping and png frames)")
	fs.IntVar(&c.Speed, "speed", c.Speed, "animation speed, 1 (slow) to 100 (fast)")
	fs.StringVar(&c.Algorithm, "algo", c.Algorithm, "search algorithm: A*, BFS or DFS")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 for a fresh maze every time")
}
