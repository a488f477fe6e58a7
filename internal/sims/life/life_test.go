package life

import (
	"errors"
	"testing"

	"fade-life/internal/core"
)

func newTestGrid(t *testing.T, w, h, margin int) *Grid {
	t.Helper()
	g, err := NewWithConfig(Config{VisibleWidth: w, VisibleHeight: h, Margin: margin})
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	return g
}

func setVisible(g *Grid, cells ...[2]int) {
	for _, c := range cells {
		x, y := g.Geometry().Visible(c[0], c[1])
		g.SetAlive(x, y, true)
	}
}

func expectVisible(t *testing.T, g *Grid, alive map[[2]int]bool, label string) {
	t.Helper()
	size := g.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			want := alive[[2]int{x, y}]
			if got := g.VisibleAlive(x, y); got != want {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", label, x, y, got, want)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := newTestGrid(t, 5, 5, 1)
	setVisible(g, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})

	g.Step()
	expectVisible(t, g, map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}, "after first step")

	g.Step()
	expectVisible(t, g, map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}, "after second step")
}

func TestBirthOnSixNeighbors(t *testing.T) {
	g := newTestGrid(t, 5, 5, 1)
	setVisible(g,
		[2]int{1, 1}, [2]int{2, 1}, [2]int{3, 1},
		[2]int{1, 3}, [2]int{2, 3}, [2]int{3, 3},
	)
	cx, cy := g.Geometry().Visible(2, 2)
	if n := g.AliveNeighbors(g.Index(cx, cy)); n != 6 {
		t.Fatalf("center has %d live neighbors, want 6", n)
	}
	g.Step()
	if !g.VisibleAlive(2, 2) {
		t.Fatal("dead cell with six live neighbors should be born")
	}
}

func TestGliderTranslates(t *testing.T) {
	g := newTestGrid(t, 10, 10, 2)
	glider := [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	setVisible(g, glider...)
	for i := 0; i < 4; i++ {
		g.Step()
	}
	want := map[[2]int]bool{}
	for _, c := range glider {
		want[[2]int{c[0] + 1, c[1] + 1}] = true
	}
	expectVisible(t, g, want, "after four steps")
}

// referenceStep computes the next generation from a copied snapshot using
// coordinate arithmetic instead of the precomputed topology.
func referenceStep(g *Grid) []bool {
	geom := g.Geometry()
	snap := make([]bool, geom.Len())
	for i, c := range g.Cells() {
		snap[i] = c.Alive
	}
	next := make([]bool, len(snap))
	for y := 0; y < geom.H; y++ {
		for x := 0; x < geom.W; x++ {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if geom.InBounds(x+dx, y+dy) && snap[geom.Index(x+dx, y+dy)] {
						n++
					}
				}
			}
			next[geom.Index(x, y)] = NextState(snap[geom.Index(x, y)], n)
		}
	}
	return next
}

func TestStepUsesPriorGenerationSnapshot(t *testing.T) {
	g := newTestGrid(t, 24, 18, 3)
	g.Randomize(core.NewRNG(5))
	for gen := 0; gen < 8; gen++ {
		want := referenceStep(g)
		g.Step()
		for i, c := range g.Cells() {
			if c.Alive != want[i] {
				x, y := g.Geometry().Coords(i)
				t.Fatalf("generation %d: cell (%d,%d) alive=%v, expected %v", gen+1, x, y, c.Alive, want[i])
			}
		}
	}
}

func TestClearThenStepStaysDead(t *testing.T) {
	g := newTestGrid(t, 12, 8, 2)
	g.Randomize(core.NewRNG(3))
	g.Clear()
	g.Step()
	for i, c := range g.Cells() {
		if c.Alive {
			t.Fatalf("cell %d alive after clear+step", i)
		}
	}
}

func TestRandomizeDistribution(t *testing.T) {
	g := newTestGrid(t, 100, 100, 1)
	rng := core.NewRNG(11)
	for trial := 0; trial < 10; trial++ {
		g.Randomize(rng)
		frac := float64(g.Population()) / 10000
		if frac < 0.45 || frac > 0.55 {
			t.Fatalf("trial %d: fraction alive %.3f outside 0.5±0.05", trial, frac)
		}
	}
}

func TestSetAliveAndToggleRejectOutOfRange(t *testing.T) {
	g := newTestGrid(t, 4, 4, 1)
	if g.SetAlive(-1, 0, true) || g.SetAlive(6, 0, true) || g.Toggle(0, 6) {
		t.Fatal("out-of-range coordinates must be rejected")
	}
	if !g.Toggle(0, 0) || !g.Alive(0, 0) {
		t.Fatal("toggle inside the margin should flip the cell on")
	}
	if !g.Toggle(0, 0) || g.Alive(0, 0) {
		t.Fatal("second toggle should flip the cell off")
	}
}

func TestPopulationCountsVisibleOnly(t *testing.T) {
	g := newTestGrid(t, 4, 3, 2)
	g.SetAlive(0, 0, true)
	setVisible(g, [2]int{0, 0}, [2]int{3, 2})
	if got := g.Population(); got != 2 {
		t.Fatalf("Population() = %d, want 2", got)
	}
}

func TestCornerCellsHaveThreeNeighbors(t *testing.T) {
	g := newTestGrid(t, 3, 3, 1)
	geom := g.Geometry()
	for _, c := range [][2]int{{0, 0}, {geom.W - 1, 0}, {0, geom.H - 1}, {geom.W - 1, geom.H - 1}} {
		cell := g.Cells()[g.Index(c[0], c[1])]
		if n := len(cell.Neighbors()); n != 3 {
			t.Fatalf("corner (%d,%d) has %d neighbors", c[0], c[1], n)
		}
	}
}

func TestSeedNoiseDeterministic(t *testing.T) {
	a := newTestGrid(t, 20, 12, 2)
	b := newTestGrid(t, 20, 12, 2)
	a.SeedNoise(9, 0.15, 0.05)
	b.SeedNoise(9, 0.15, 0.05)
	for i := range a.Cells() {
		if a.Cells()[i].Alive != b.Cells()[i].Alive {
			t.Fatalf("noise seeding differs at cell %d", i)
		}
	}
	a.SeedNoise(9, 0.15, -10)
	if a.Population() != 20*12 {
		t.Fatal("threshold below the noise range should fill the grid")
	}
	a.SeedNoise(9, 0.15, 10)
	if a.Population() != 0 {
		t.Fatal("threshold above the noise range should empty the grid")
	}
}

func TestConfigValidation(t *testing.T) {
	if _, err := NewWithConfig(Config{VisibleWidth: 0, VisibleHeight: 4, Margin: 1}); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
	if _, err := NewWithConfig(Config{VisibleWidth: 4, VisibleHeight: 4, Margin: 0}); !errors.Is(err, ErrInvalidMargin) {
		t.Fatalf("expected ErrInvalidMargin, got %v", err)
	}
	c := FromMap(map[string]string{"w": "32", "h": "bogus", "margin": "0"})
	if c.VisibleWidth != 32 || c.VisibleHeight != 90 || c.Margin != 6 {
		t.Fatalf("FromMap = %+v", c)
	}
}
