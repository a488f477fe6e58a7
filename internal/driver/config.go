package driver

import (
	"errors"
	"fmt"
	"time"

	"fade-life/internal/render"
	"fade-life/internal/sims/life"
)

var (
	ErrInvalidInterval = errors.New("driver: step interval must be positive")
	ErrInvalidFade     = errors.New("driver: fade rate must be in (0, 1]")
	ErrInvalidHistory  = errors.New("driver: history limit must be at least 1")
)

// Config collects every tunable the driver is built with. Values are fixed
// for the lifetime of a Driver.
type Config struct {
	Grid life.Config

	// StepInterval is the elapsed time between automatic generations.
	StepInterval time.Duration
	// FadeRate is the background opacity of each faded fill.
	FadeRate float64
	// HistoryLimit is the number of fills before the trail surfaces swap.
	HistoryLimit int

	Seed           int64
	NoiseScale     float64
	NoiseThreshold float64

	Palette render.Palette
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Grid:           life.DefaultConfig(),
		StepInterval:   60 * time.Millisecond,
		FadeRate:       0.5,
		HistoryLimit:   10,
		Seed:           42,
		NoiseScale:     0.12,
		NoiseThreshold: 0.05,
		Palette:        render.DefaultPalette(),
	}
}

// Validate checks the configuration, including the grid dimensions.
func (c Config) Validate() error {
	if err := c.Grid.Validate(); err != nil {
		return err
	}
	if c.StepInterval <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidInterval, c.StepInterval)
	}
	if c.FadeRate <= 0 || c.FadeRate > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidFade, c.FadeRate)
	}
	if c.HistoryLimit < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidHistory, c.HistoryLimit)
	}
	return nil
}
