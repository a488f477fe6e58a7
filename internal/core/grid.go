package core

// PaddedGrid describes a visible rectangle surrounded on every side by a
// margin of cells that are simulated but never drawn. Cells are stored in
// row-major order across the padded extent.
type PaddedGrid struct {
	VisibleW, VisibleH int
	Margin             int

	// W and H are the padded dimensions.
	W, H int
}

// NewPaddedGrid computes the padded extent for the given visible size.
func NewPaddedGrid(visibleW, visibleH, margin int) PaddedGrid {
	return PaddedGrid{
		VisibleW: visibleW,
		VisibleH: visibleH,
		Margin:   margin,
		W:        visibleW + 2*margin,
		H:        visibleH + 2*margin,
	}
}

// Len returns the number of cells in the padded grid.
func (g PaddedGrid) Len() int { return g.W * g.H }

// Index returns the linear slice index for padded coordinates (x, y). The
// coordinates are not validated.
func (g PaddedGrid) Index(x, y int) int { return x + g.W*y }

// Coords is the inverse of Index.
func (g PaddedGrid) Coords(i int) (int, int) { return i % g.W, i / g.W }

// InBounds reports whether padded coordinates (x, y) address a cell.
func (g PaddedGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Visible maps coordinates inside the visible rectangle to padded ones.
func (g PaddedGrid) Visible(x, y int) (int, int) {
	return x + g.Margin, y + g.Margin
}

// IsVisible reports whether padded coordinates fall inside the visible
// rectangle.
func (g PaddedGrid) IsVisible(x, y int) bool {
	return x >= g.Margin && x < g.Margin+g.VisibleW && y >= g.Margin && y < g.Margin+g.VisibleH
}

// Neighbors appends the indices of the up to eight cells adjacent to index i
// and returns the extended slice. Offsets that would leave the padded
// rectangle are dropped, including ones whose linear index would land on the
// opposite end of a neighbouring row.
func (g PaddedGrid) Neighbors(dst []int, i int) []int {
	x, y := g.Coords(i)
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= g.H {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= g.W {
				continue
			}
			dst = append(dst, g.Index(nx, ny))
		}
	}
	return dst
}
