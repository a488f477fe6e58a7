package life

import (
	"fmt"

	"fade-life/internal/core"
)

// Cell is one automaton unit. Neighbours are indices into the owning Grid's
// cell slice and are fixed once the grid is built.
type Cell struct {
	Alive     bool
	neighbors []int
}

// Neighbors returns the indices of the adjacent cells.
func (c *Cell) Neighbors() []int { return c.neighbors }

// Grid implements the extended Life rule on a bounded, padded rectangle.
type Grid struct {
	cfg     Config
	geom    core.PaddedGrid
	cells   []Cell
	staging []bool
}

// NewWithConfig allocates every cell dead and links the neighbour topology.
func NewWithConfig(cfg Config) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("life: new grid: %w", err)
	}
	geom := core.NewPaddedGrid(cfg.VisibleWidth, cfg.VisibleHeight, cfg.Margin)
	total := geom.Len()
	g := &Grid{
		cfg:     cfg,
		geom:    geom,
		cells:   make([]Cell, total),
		staging: make([]bool, total),
	}
	// One backing array for all neighbour lists keeps them contiguous.
	backing := make([]int, 0, total*8)
	for i := range g.cells {
		start := len(backing)
		backing = geom.Neighbors(backing, i)
		g.cells[i].neighbors = backing[start:len(backing):len(backing)]
	}
	return g, nil
}

// Name returns the simulation identifier.
func (g *Grid) Name() string { return "life" }

// Config returns the configuration the grid was built with.
func (g *Grid) Config() Config { return g.cfg }

// Geometry exposes the padded layout.
func (g *Grid) Geometry() core.PaddedGrid { return g.geom }

// Size returns the visible dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.geom.VisibleW, H: g.geom.VisibleH} }

// Cells exposes the padded cell slice.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the slice index for padded coordinates. Callers must keep
// (x, y) inside the padded grid.
func (g *Grid) Index(x, y int) int { return g.geom.Index(x, y) }

// Alive reports the state of the cell at padded coordinates.
func (g *Grid) Alive(x, y int) bool {
	if !g.geom.InBounds(x, y) {
		return false
	}
	return g.cells[g.geom.Index(x, y)].Alive
}

// VisibleAlive reports the state of the cell at visible coordinates.
func (g *Grid) VisibleAlive(x, y int) bool {
	px, py := g.geom.Visible(x, y)
	return g.Alive(px, py)
}

// SetAlive sets the cell at padded coordinates. It reports false and leaves
// the grid untouched when (x, y) lies outside the padded grid.
func (g *Grid) SetAlive(x, y int, alive bool) bool {
	if !g.geom.InBounds(x, y) {
		return false
	}
	g.cells[g.geom.Index(x, y)].Alive = alive
	return true
}

// Toggle flips the cell at padded coordinates, with the same bounds handling
// as SetAlive.
func (g *Grid) Toggle(x, y int) bool {
	if !g.geom.InBounds(x, y) {
		return false
	}
	c := &g.cells[g.geom.Index(x, y)]
	c.Alive = !c.Alive
	return true
}

// Clear kills every cell, margin included.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].Alive = false
	}
}

// Randomize flips a fair coin for every cell, margin included.
func (g *Grid) Randomize(rng *core.RNG) {
	for i := range g.cells {
		g.cells[i].Alive = rng.Bool()
	}
}

// Population counts live cells inside the visible rectangle.
func (g *Grid) Population() int {
	n := 0
	for y := 0; y < g.geom.VisibleH; y++ {
		row := g.geom.Index(g.geom.Margin, y+g.geom.Margin)
		for x := 0; x < g.geom.VisibleW; x++ {
			if g.cells[row+x].Alive {
				n++
			}
		}
	}
	return n
}

// AliveNeighbors counts the live neighbours of the cell at index i.
func (g *Grid) AliveNeighbors(i int) int {
	n := 0
	for _, j := range g.cells[i].neighbors {
		if g.cells[j].Alive {
			n++
		}
	}
	return n
}

// Step advances the grid by one generation. Every next state is staged from
// the current generation before any cell is written back.
func (g *Grid) Step() {
	for i := range g.cells {
		g.staging[i] = NextState(g.cells[i].Alive, g.AliveNeighbors(i))
	}
	for i, alive := range g.staging {
		g.cells[i].Alive = alive
	}
}
