//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"fade-life/internal/driver"
	"fade-life/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

type statsProvider interface {
	Stats() driver.Stats
	History() *render.History
}

// Overlay draws optional debugging visuals on top of the trail surfaces.
type Overlay struct {
	src        statsProvider
	showGrid   bool
	showStatus bool
	showHelp   bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(src statsProvider) *Overlay {
	return &Overlay{src: src, showStatus: true, showHelp: true}
}

// Update toggles overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showStatus = !o.showStatus
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	geom := o.src.History().Geometry()
	if o.showGrid {
		o.drawGrid(screen, geom)
	}
	if o.showStatus {
		o.drawStatus(screen, geom)
	}
	if o.showHelp {
		ebitenutil.DebugPrintAt(screen, "N step  Enter run  Space pause  C clear  R random  P noise  1 grid  2 status  H help", 4, int(geom.Bounds().H)-18)
	}
}

func (o *Overlay) drawGrid(screen *ebiten.Image, geom render.Geometry) {
	if geom.CellW < 3 || geom.CellH < 3 {
		return
	}
	col := color.NRGBA{R: 120, G: 120, B: 140, A: 60}
	b := geom.Bounds()
	for x := 0; x <= geom.Grid.VisibleW; x++ {
		fx := float32(float64(x) * geom.CellW)
		vector.StrokeLine(screen, fx, 0, fx, float32(b.H), 1, col, false)
	}
	for y := 0; y <= geom.Grid.VisibleH; y++ {
		fy := float32(float64(y) * geom.CellH)
		vector.StrokeLine(screen, 0, fy, float32(b.W), fy, 1, col, false)
	}
}

func (o *Overlay) drawStatus(screen *ebiten.Image, geom render.Geometry) {
	st := o.src.Stats()
	line := fmt.Sprintf("gen %d  pop %d  %s  surface %d  fills %d/%d",
		st.Generation, st.Population, st.Mode, st.ActiveSurface, st.FillsSinceSwap, o.src.History().Config().Limit)
	face := basicfont.Face7x13
	bounds := text.BoundString(face, line)
	bg := color.NRGBA{R: 16, G: 16, B: 20, A: 160}
	vector.DrawFilledRect(screen, 0, 0, float32(bounds.Dx()+12), 20, bg, false)
	text.Draw(screen, line, face, 6, 14, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}
