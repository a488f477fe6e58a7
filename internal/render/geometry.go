package render

import (
	"math"

	"fade-life/internal/core"
)

// Rect is an axis-aligned rectangle in screen space.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether r fully covers o.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.X+o.W <= r.X+r.W && o.Y+o.H <= r.Y+r.H
}

// Geometry maps visible grid cells to screen rectangles and back.
type Geometry struct {
	Grid core.PaddedGrid

	ScreenW, ScreenH float64
	CellW, CellH     float64
}

// NewGeometry divides the screen evenly between the visible cells.
func NewGeometry(screenW, screenH float64, grid core.PaddedGrid) Geometry {
	g := Geometry{Grid: grid, ScreenW: screenW, ScreenH: screenH}
	if grid.VisibleW > 0 {
		g.CellW = screenW / float64(grid.VisibleW)
	}
	if grid.VisibleH > 0 {
		g.CellH = screenH / float64(grid.VisibleH)
	}
	return g
}

// Bounds returns the screen rectangle covered by the visible cells.
func (g Geometry) Bounds() Rect {
	return Rect{W: g.CellW * float64(g.Grid.VisibleW), H: g.CellH * float64(g.Grid.VisibleH)}
}

// CellRect returns the screen rectangle for visible cell (x, y).
func (g Geometry) CellRect(x, y int) Rect {
	return Rect{X: float64(x) * g.CellW, Y: float64(y) * g.CellH, W: g.CellW, H: g.CellH}
}

// ScreenToGrid maps a screen position to padded grid coordinates. The result
// may lie outside the padded grid when the position is far off-canvas.
func (g Geometry) ScreenToGrid(px, py float64) (int, int) {
	if g.CellW <= 0 || g.CellH <= 0 {
		return -1, -1
	}
	x := int(math.Floor(px/g.CellW)) + g.Grid.Margin
	y := int(math.Floor(py/g.CellH)) + g.Grid.Margin
	return x, y
}
