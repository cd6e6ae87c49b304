package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"functional-snake/game/types"
)

const (
	// DefaultTickInterval is the fixed sleep between loop iterations.
	DefaultTickInterval = 100 * time.Millisecond
	// DefaultAssetDir holds apple.jpg, block.jpg and background.jpg.
	DefaultAssetDir = "ressources"
	DefaultTitle    = "Functional Snake Game"
	DefaultLogLevel = "info"

	minCells = 3
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Width        int
	Height       int
	CellSize     int
	TickInterval time.Duration
	AssetDir     string
	Title        string
	Seed         uint64 // 0 means seed from the clock
	LogLevel     string
}

func Default() *Config {
	return &Config{
		Width:        types.BoardWidth,
		Height:       types.BoardHeight,
		CellSize:     types.CellSize,
		TickInterval: DefaultTickInterval,
		AssetDir:     DefaultAssetDir,
		Title:        DefaultTitle,
		LogLevel:     DefaultLogLevel,
	}
}

// Parse reads command-line flags over the defaults. Usage output goes to out.
func Parse(args []string, out io.Writer) (*Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("functional-snake", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "Delay between game ticks")
	fs.StringVar(&cfg.AssetDir, "assets", cfg.AssetDir, "Directory holding the sprite images")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for apple placement (0 = random)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.CellSize <= 0 || c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: sizes must be positive", ErrInvalidConfig)
	}
	if c.Width%c.CellSize != 0 || c.Height%c.CellSize != 0 {
		return fmt.Errorf("%w: %dx%d is not a multiple of cell size %d", ErrInvalidConfig, c.Width, c.Height, c.CellSize)
	}
	if c.Width/c.CellSize < minCells || c.Height/c.CellSize < minCells {
		return fmt.Errorf("%w: board must be at least %dx%d cells", ErrInvalidConfig, minCells, minCells)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval must be positive, got %s", ErrInvalidConfig, c.TickInterval)
	}
	return nil
}

// Grid returns the play-field described by the config.
func (c *Config) Grid() types.Grid {
	return types.Grid{Width: c.Width, Height: c.Height, CellSize: c.CellSize}
}
