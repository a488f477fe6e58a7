//go:build ebiten

package app

import (
	"image/color"
	"io"
	"log"
	"time"

	"fade-life/internal/core"
	"fade-life/internal/driver"
	"fade-life/internal/render"
	"fade-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the driver to the ebiten.Game interface.
type Game struct {
	driver   *driver.Driver
	surfaces []*render.ImageSurface
	hud      *ui.HUD
	overlay  *ui.Overlay
	logger   *log.Logger

	background color.NRGBA
	viewW      int
	viewH      int
	hudW       int

	lastX, lastY int
}

var keyCommands = []struct {
	key ebiten.Key
	cmd core.Command
}{
	{ebiten.KeyN, core.CommandStep},
	{ebiten.KeyEnter, core.CommandRun},
	{ebiten.KeyC, core.CommandClear},
	{ebiten.KeyR, core.CommandRandom},
	{ebiten.KeyP, core.CommandNoise},
}

// New constructs a Game from the command-line configuration. A nil logger
// discards output.
func New(cfg *Config, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	viewW, viewH := cfg.ViewSize()
	a := render.NewImageSurface(viewW, viewH)
	b := render.NewImageSurface(viewW, viewH)
	dcfg := cfg.DriverConfig()
	d, err := driver.New(dcfg, a, b, float64(viewW), float64(viewH))
	if err != nil {
		return nil, err
	}
	hudW := cfg.HUDWidth
	if hudW < 0 {
		hudW = 0
	}
	return &Game{
		driver:     d,
		surfaces:   []*render.ImageSurface{a, b},
		hud:        ui.NewHUD(d, hudW),
		overlay:    ui.NewOverlay(d),
		logger:     logger,
		background: dcfg.Palette.Background,
		viewW:      viewW,
		viewH:      viewH,
		hudW:       hudW,
		lastX:      -1,
		lastY:      -1,
	}, nil
}

// Update handles per-frame input and advances the driver.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, kc := range keyCommands {
		if inpututil.IsKeyJustPressed(kc.key) {
			g.dispatch(kc.cmd)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.driver.Mode() == core.ModeRunning {
			g.dispatch(core.CommandStep)
		} else {
			g.dispatch(core.CommandRun)
		}
	}
	if cmd := g.hud.Update(g.viewW); cmd != core.CommandNone {
		g.dispatch(cmd)
	}
	g.overlay.Update()
	g.handlePointer()

	g.driver.Tick(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (g *Game) dispatch(cmd core.Command) {
	before := g.driver.Mode()
	g.driver.Dispatch(cmd)
	g.logger.Printf("command %s (generation %d)", cmd, g.driver.Generation())
	if after := g.driver.Mode(); after != before {
		g.logger.Printf("mode %s -> %s", before, after)
	}
}

func (g *Game) handlePointer() {
	mx, my := ebiten.CursorPosition()
	if mx >= g.viewW {
		g.lastX, g.lastY = -1, -1
		return
	}
	px, py := float64(mx), float64(my)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.driver.PointerDown(px, py)
	case mx != g.lastX || my != g.lastY:
		g.driver.PointerMove(px, py, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	}
	g.lastX, g.lastY = mx, my
}

// Draw composites the trail surfaces back to front.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	render.SortByDepth(g.surfaces)
	for _, s := range g.surfaces {
		screen.DrawImage(s.Image(), nil)
	}
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.viewW, g.viewH)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewW + g.hudW, g.viewH
}
