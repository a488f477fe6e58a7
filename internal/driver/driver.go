// Package driver turns host frames, pointer events and UI commands into
// generations of the life grid and paint on the trail surfaces.
package driver

import (
	"fmt"
	"time"

	"fade-life/internal/core"
	"fade-life/internal/render"
	"fade-life/internal/sims/life"
)

// Stats is a snapshot of the driver's progress.
type Stats struct {
	Generation     int
	Population     int
	Mode           core.Mode
	ActiveSurface  int
	FillsSinceSwap int
	Swaps          int
}

// Driver owns the grid and the history buffer and mediates every call into
// them. It is not safe for concurrent use; the host calls it from its frame
// loop.
type Driver struct {
	cfg     Config
	grid    *life.Grid
	history *render.History
	clock   *core.Accumulator
	rng     *core.RNG

	mode       core.Mode
	generation int
}

// New builds a driver drawing into surfaces a and b, which cover a screen of
// screenW by screenH pixels. The first surface starts active and receives an
// opaque background fill.
func New(cfg Config, a, b render.Surface, screenW, screenH float64) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("driver: %w", err)
	}
	grid, err := life.NewWithConfig(cfg.Grid)
	if err != nil {
		return nil, err
	}
	geom := render.NewGeometry(screenW, screenH, grid.Geometry())
	history := render.NewHistory(a, b, geom, render.HistoryConfig{
		Limit:    cfg.HistoryLimit,
		FadeRate: cfg.FadeRate,
		Palette:  cfg.Palette,
	})
	d := &Driver{
		cfg:     cfg,
		grid:    grid,
		history: history,
		clock:   core.NewAccumulator(cfg.StepInterval),
		rng:     core.NewRNG(cfg.Seed),
		mode:    core.ModeRunning,
	}
	d.history.BeginFrame(false)
	return d, nil
}

// Tick advances the driver by one host frame. In running mode the elapsed
// time may trigger one generation; in stepping mode the active surface is
// repainted opaque. Live cells are drawn on top either way.
func (d *Driver) Tick(delta time.Duration) {
	switch d.mode {
	case core.ModeRunning:
		if d.clock.Advance(delta) {
			d.advance()
		}
	case core.ModeStepping:
		d.history.BeginFrame(false)
	}
	d.history.DrawLiveCells(d.grid)
}

func (d *Driver) advance() {
	d.grid.Step()
	d.generation++
	d.history.BeginFrame(true)
}

// Step switches to stepping mode and advances exactly one generation.
func (d *Driver) Step() {
	d.mode = core.ModeStepping
	d.advance()
}

// Run returns to running mode without stepping.
func (d *Driver) Run() {
	d.mode = core.ModeRunning
}

// Clear kills every cell and wipes the active surface.
func (d *Driver) Clear() {
	d.grid.Clear()
	d.generation = 0
	d.history.BeginFrame(false)
}

// Randomize flips a fair coin for every cell.
func (d *Driver) Randomize() {
	d.grid.Randomize(d.rng)
	d.generation = 0
}

// Noise seeds the grid from a fresh Perlin noise field.
func (d *Driver) Noise() {
	d.grid.SeedNoise(d.rng.Int63(), d.cfg.NoiseScale, d.cfg.NoiseThreshold)
	d.generation = 0
}

// Dispatch runs a UI command. It reports false for unknown commands.
func (d *Driver) Dispatch(cmd core.Command) bool {
	switch cmd {
	case core.CommandStep:
		d.Step()
	case core.CommandRun:
		d.Run()
	case core.CommandClear:
		d.Clear()
	case core.CommandRandom:
		d.Randomize()
	case core.CommandNoise:
		d.Noise()
	default:
		return false
	}
	return true
}

// PointerMove paints the cell under the pointer alive while it is pressed.
// It reports whether a cell was written; positions mapping outside the
// padded grid are ignored.
func (d *Driver) PointerMove(px, py float64, pressed bool) bool {
	if !pressed {
		return false
	}
	x, y := d.history.Geometry().ScreenToGrid(px, py)
	return d.grid.SetAlive(x, y, true)
}

// PointerDown flips the cell under the pointer once.
func (d *Driver) PointerDown(px, py float64) bool {
	x, y := d.history.Geometry().ScreenToGrid(px, py)
	return d.grid.Toggle(x, y)
}

// Mode reports whether the driver is running or stepping.
func (d *Driver) Mode() core.Mode { return d.mode }

// Generation reports how many generations have run since the last reset.
func (d *Driver) Generation() int { return d.generation }

// Grid exposes the simulated grid.
func (d *Driver) Grid() *life.Grid { return d.grid }

// History exposes the trail buffer.
func (d *Driver) History() *render.History { return d.history }

// Config returns the configuration the driver was built with.
func (d *Driver) Config() Config { return d.cfg }

// Stats summarises the current state.
func (d *Driver) Stats() Stats {
	return Stats{
		Generation:     d.generation,
		Population:     d.grid.Population(),
		Mode:           d.mode,
		ActiveSurface:  d.history.Active(),
		FillsSinceSwap: d.history.FillsSinceSwap(),
		Swaps:          d.history.Swaps(),
	}
}

// Parameters describes the configuration for the HUD.
func (d *Driver) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		d.grid.ParameterGroup(),
		{
			Name: "Simulation",
			Params: []core.Parameter{
				core.DurationParam("interval", "Step interval", d.cfg.StepInterval),
				core.FloatParam("fade", "Fade rate", d.cfg.FadeRate),
				core.IntParam("history", "History limit", d.cfg.HistoryLimit),
				core.Int64Param("seed", "Seed", d.cfg.Seed),
			},
		},
	}}
}
