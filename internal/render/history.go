package render

import (
	"image/color"

	"fade-life/internal/core"
)

// Palette holds the colours used by the history buffer.
type Palette struct {
	Background color.NRGBA
	Cell       color.NRGBA
}

// DefaultPalette paints dark grey cells on white.
func DefaultPalette() Palette {
	return Palette{
		Background: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Cell:       color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
	}
}

// HistoryConfig tunes the trail effect.
type HistoryConfig struct {
	// Limit is the number of fills a surface receives before the buffers swap.
	Limit int
	// FadeRate is the background opacity used by faded fills, in (0, 1].
	FadeRate float64
	Palette  Palette
}

// LiveCells is the read-only view of a grid the history buffer draws from.
type LiveCells interface {
	Size() core.Size
	VisibleAlive(x, y int) bool
}

const (
	depthBack  = 0
	depthFront = 1
)

// History produces a fading trail by painting into one of two persistent
// surfaces. The active surface sits in front; each faded fill washes the
// layers below towards the background. Every Limit+1 fills the surfaces swap
// and the newly active one starts from empty.
type History struct {
	cfg      HistoryConfig
	geom     Geometry
	surfaces [2]Surface
	active   int
	fills    int
	swaps    int
}

// NewHistory wires two surfaces into a history buffer. Surface a starts
// active and in front.
func NewHistory(a, b Surface, geom Geometry, cfg HistoryConfig) *History {
	if cfg.Limit < 1 {
		cfg.Limit = 1
	}
	if cfg.FadeRate <= 0 || cfg.FadeRate > 1 {
		cfg.FadeRate = 1
	}
	h := &History{cfg: cfg, geom: geom, surfaces: [2]Surface{a, b}}
	a.SetDepth(depthFront)
	b.SetDepth(depthBack)
	return h
}

// BeginFrame washes the active surface with the background colour: fully
// when faded is false, at FadeRate opacity otherwise. The buffers swap
// first once the active surface has taken Limit fills.
func (h *History) BeginFrame(faded bool) {
	h.fills++
	if h.fills > h.cfg.Limit {
		h.Swap()
	}
	alpha := 1.0
	if faded {
		alpha = h.cfg.FadeRate
	}
	h.surfaces[h.active].Fill(h.geom.Bounds(), h.cfg.Palette.Background, alpha)
}

// Swap sends the active surface to the back, then activates, clears and
// raises the other one.
func (h *History) Swap() {
	h.surfaces[h.active].SetDepth(depthBack)
	h.active ^= 1
	next := h.surfaces[h.active]
	next.Clear()
	next.SetDepth(depthFront)
	h.fills = 0
	h.swaps++
}

// DrawLiveCells paints one opaque rectangle per live visible cell into the
// active surface.
func (h *History) DrawLiveCells(cells LiveCells) {
	size := cells.Size()
	s := h.surfaces[h.active]
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if cells.VisibleAlive(x, y) {
				s.DrawRect(h.geom.CellRect(x, y), h.cfg.Palette.Cell)
			}
		}
	}
}

// Active returns the index of the surface receiving paint.
func (h *History) Active() int { return h.active }

// FillsSinceSwap reports how many fills the active surface has taken.
func (h *History) FillsSinceSwap() int { return h.fills }

// Swaps reports how many times the buffers have swapped.
func (h *History) Swaps() int { return h.swaps }

// Surfaces returns both surfaces in construction order.
func (h *History) Surfaces() [2]Surface { return h.surfaces }

// Layers returns both surfaces ordered back to front.
func (h *History) Layers() []Surface {
	layers := []Surface{h.surfaces[0], h.surfaces[1]}
	SortByDepth(layers)
	return layers
}

// Geometry returns the screen mapping used for drawing.
func (h *History) Geometry() Geometry { return h.geom }

// Config returns the trail configuration.
func (h *History) Config() HistoryConfig { return h.cfg }
