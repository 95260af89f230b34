// Package config holds the tunables of a game: board geometry, tick rate and
// the random seed. Defaults come from the environment and can be overridden
// by command line flags.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/gridsnake/engine/grid"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"golang.org/x/time/rate"
)

// Configuration defaults, read from the environment.
var (
	CellSize  = getEnvInt("SNAKE_CELL_SIZE", 20)
	BoardSize = getEnvInt("SNAKE_BOARD_SIZE", 600)
	TickRate  = getEnvFloat("SNAKE_TICK_RATE", 5)
	Seed      = uint64(getEnvInt("SNAKE_SEED", 0))
)

// MaxTickRate caps the tick source; faster than this the game is unplayable.
const MaxTickRate = 60

// Config is the full set of knobs for one game session.
type Config struct {
	// CellSize is the side of one cell, G.
	CellSize int

	// BoardSize is the side of the square board, W. Must be a multiple of
	// CellSize.
	BoardSize int

	// TickRate is the number of snake steps per second.
	TickRate float64

	// Seed seeds food placement. Zero picks a time based seed.
	Seed uint64
}

// Default returns the configuration built from the environment.
func Default() *Config {
	return &Config{
		CellSize:  CellSize,
		BoardSize: BoardSize,
		TickRate:  TickRate,
		Seed:      Seed,
	}
}

// Validate checks the configuration is playable.
func (c *Config) Validate() error {
	if _, err := c.Board(); err != nil {
		return err
	}
	if c.TickRate <= 0 || c.TickRate > MaxTickRate {
		return errors.Errorf("config: tick rate %v must be in (0, %d]", c.TickRate, MaxTickRate)
	}
	return nil
}

// Board returns the board described by the configuration.
func (c *Config) Board() (grid.Board, error) {
	b, err := grid.NewBoard(c.CellSize, c.BoardSize)
	if err != nil {
		return grid.Board{}, errors.Wrap(err, "config")
	}
	return b, nil
}

// TickLimit is the tick rate as a limiter rate.
func (c *Config) TickLimit() rate.Limit {
	return rate.Limit(c.TickRate)
}

// TickInterval is the time between two ticks.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.TickRate)
}

// Rand returns a generator seeded from Seed, or from the clock when Seed is
// zero.
func (c *Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

func getEnvFloat(varName string, defaults float64) float64 {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaults
	}
	return f
}
