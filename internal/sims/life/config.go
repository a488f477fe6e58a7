package life

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidSize reports a non-positive visible dimension.
	ErrInvalidSize = errors.New("life: visible dimensions must be positive")
	// ErrInvalidMargin reports a margin smaller than one cell.
	ErrInvalidMargin = errors.New("life: margin must be at least 1")
)

// Config holds the grid dimensions.
type Config struct {
	VisibleWidth  int
	VisibleHeight int
	Margin        int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{VisibleWidth: 160, VisibleHeight: 90, Margin: 6}
}

// FromMap populates a Config from a string map. Unparsable or out-of-range
// entries keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.VisibleWidth = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.VisibleHeight = parsed
		}
	}
	if v, ok := cfg["margin"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Margin = parsed
		}
	}
	return c
}

// Validate reports whether the configuration describes a usable grid.
func (c Config) Validate() error {
	if c.VisibleWidth <= 0 || c.VisibleHeight <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, c.VisibleWidth, c.VisibleHeight)
	}
	if c.Margin < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidMargin, c.Margin)
	}
	return nil
}
