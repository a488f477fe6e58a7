package render

import (
	"testing"

	"fade-life/internal/core"
)

type fakeCells struct {
	w, h  int
	alive map[[2]int]bool
}

func (f fakeCells) Size() core.Size { return core.Size{W: f.w, H: f.h} }

func (f fakeCells) VisibleAlive(x, y int) bool { return f.alive[[2]int{x, y}] }

func newTestHistory(limit int, fade float64) (*History, *Recorder, *Recorder) {
	geom := NewGeometry(100, 50, core.NewPaddedGrid(10, 5, 1))
	a := NewRecorder("a", geom.Bounds())
	b := NewRecorder("b", geom.Bounds())
	h := NewHistory(a, b, geom, HistoryConfig{Limit: limit, FadeRate: fade, Palette: DefaultPalette()})
	return h, a, b
}

func TestHistoryInitialLayering(t *testing.T) {
	h, a, b := newTestHistory(10, 0.5)
	if h.Active() != 0 {
		t.Fatalf("active = %d, want 0", h.Active())
	}
	if a.Depth() <= b.Depth() {
		t.Fatal("active surface must start in front")
	}
	layers := h.Layers()
	if layers[0] != Surface(b) || layers[1] != Surface(a) {
		t.Fatal("Layers() must order back to front")
	}
}

func TestBeginFrameFadedUsesFadeRate(t *testing.T) {
	h, a, _ := newTestHistory(10, 0.5)
	h.BeginFrame(true)
	ops := a.Ops()
	if len(ops) != 1 {
		t.Fatalf("expected one fill, got %d ops", len(ops))
	}
	if ops[0].Kind != OpFill || ops[0].Alpha != 0.5 {
		t.Fatalf("faded fill = %+v", ops[0])
	}
	if ops[0].Rect != h.Geometry().Bounds() {
		t.Fatalf("fill rect = %+v, want visible bounds", ops[0].Rect)
	}
	if ops[0].Color != DefaultPalette().Background {
		t.Fatal("fill must use the background colour")
	}
}

func TestBeginFrameOpaqueResetsDrawList(t *testing.T) {
	h, a, _ := newTestHistory(10, 0.5)
	h.BeginFrame(true)
	h.DrawLiveCells(fakeCells{w: 10, h: 5, alive: map[[2]int]bool{{1, 1}: true}})
	h.BeginFrame(false)
	ops := a.Ops()
	if len(ops) != 1 || ops[0].Alpha != 1 {
		t.Fatalf("opaque fill should hide earlier paint, ops = %+v", ops)
	}
}

func TestSwapBoundsAccumulation(t *testing.T) {
	const limit = 10
	h, a, b := newTestHistory(limit, 0.5)
	for i := 0; i < limit; i++ {
		h.BeginFrame(true)
	}
	if h.Swaps() != 0 || h.Active() != 0 {
		t.Fatalf("swapped early: swaps=%d active=%d", h.Swaps(), h.Active())
	}
	h.BeginFrame(true)
	if h.Swaps() != 1 || h.Active() != 1 {
		t.Fatalf("expected a swap on fill %d, swaps=%d active=%d", limit+1, h.Swaps(), h.Active())
	}
	if b.Clears() != 1 {
		t.Fatalf("newly active surface cleared %d times, want 1", b.Clears())
	}
	if len(b.Ops()) != 1 {
		t.Fatalf("new surface should only hold the post-swap fill, got %d ops", len(b.Ops()))
	}
	if b.Depth() <= a.Depth() {
		t.Fatal("newly active surface must be in front")
	}
	if h.FillsSinceSwap() != 0 {
		t.Fatalf("fills since swap = %d, want 0", h.FillsSinceSwap())
	}
	if len(a.Ops()) != limit {
		t.Fatalf("demoted surface should keep its %d fills, got %d", limit, len(a.Ops()))
	}

	for i := 0; i < limit+1; i++ {
		h.BeginFrame(true)
	}
	if h.Active() != 0 || a.Clears() != 1 {
		t.Fatalf("second swap should clear surface a: active=%d clears=%d", h.Active(), a.Clears())
	}
	if len(a.Ops()) != 1 {
		t.Fatalf("stale paint survived the swap: %d ops", len(a.Ops()))
	}
}

func TestDrawLiveCellsPaintsActiveSurface(t *testing.T) {
	h, a, b := newTestHistory(10, 0.5)
	cells := fakeCells{w: 10, h: 5, alive: map[[2]int]bool{{0, 0}: true, {3, 2}: true}}
	h.DrawLiveCells(cells)
	if len(b.Ops()) != 0 {
		t.Fatal("inactive surface must not receive paint")
	}
	ops := a.Ops()
	if len(ops) != 2 {
		t.Fatalf("expected 2 rects, got %d", len(ops))
	}
	want := Rect{X: 30, Y: 20, W: 10, H: 10}
	if ops[1].Rect != want || ops[1].Kind != OpRect || ops[1].Color != DefaultPalette().Cell {
		t.Fatalf("second rect = %+v, want %+v in cell colour", ops[1], want)
	}
}

func TestNewHistoryNormalisesConfig(t *testing.T) {
	h, _, _ := newTestHistory(0, 0)
	cfg := h.Config()
	if cfg.Limit != 1 || cfg.FadeRate != 1 {
		t.Fatalf("config = %+v", cfg)
	}
}
