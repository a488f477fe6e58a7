package app

import (
	"flag"
	"time"

	"fade-life/internal/driver"
	"fade-life/internal/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	Margin   int
	Scale    int
	TPS      int
	Seed     int64
	Interval time.Duration
	Fade     float64
	History  int
	HUDWidth int
	Verbose  bool
}

// NewConfig returns a Config populated with the driver defaults.
func NewConfig() *Config {
	d := driver.DefaultConfig()
	return &Config{
		Width:    d.Grid.VisibleWidth,
		Height:   d.Grid.VisibleHeight,
		Margin:   d.Grid.Margin,
		Scale:    6,
		TPS:      60,
		Seed:     d.Seed,
		Interval: d.StepInterval,
		Fade:     d.FadeRate,
		History:  d.HistoryLimit,
		HUDWidth: 220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "visible grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "visible grid height in cells")
	fs.IntVar(&c.Margin, "margin", c.Margin, "hidden cells simulated beyond each edge")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomize and noise commands")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations while running")
	fs.Float64Var(&c.Fade, "fade", c.Fade, "background opacity of each trail fade (0-1]")
	fs.IntVar(&c.History, "history", c.History, "fills before the trail surfaces swap")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "control panel width in pixels (0 hides it)")
	fs.BoolVar(&c.Verbose, "verbose", c.Verbose, "log commands and mode changes")
}

// DriverConfig converts the flags into a driver configuration.
func (c *Config) DriverConfig() driver.Config {
	d := driver.DefaultConfig()
	d.Grid = life.Config{VisibleWidth: c.Width, VisibleHeight: c.Height, Margin: c.Margin}
	d.Seed = c.Seed
	d.StepInterval = c.Interval
	d.FadeRate = c.Fade
	d.HistoryLimit = c.History
	return d
}

// ViewSize returns the simulation view size in pixels.
func (c *Config) ViewSize() (int, int) {
	scale := c.Scale
	if scale <= 0 {
		scale = 1
	}
	return c.Width * scale, c.Height * scale
}
