//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"fade-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the command buttons and configuration panel to the right of
// the simulation view.
type HUD struct {
	params     core.ParameterProvider
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	buttons      []hudButton
	panelOffsetX int
	title        string

	pixel *ebiten.Image
}

type hudButton struct {
	cmd  core.Command
	rect image.Rectangle
}

// NewHUD constructs a HUD for the provided parameter source and panel width.
func NewHUD(params core.ParameterProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{params: params, width: width, title: "Life Controls"}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if params != nil {
		h.snapshot = params.Parameters()
	}
	h.layoutButtons()
	return h
}

// Update handles clicks on the panel and returns the command of the button
// that was pressed, if any.
func (h *HUD) Update(panelOffsetX int) core.Command {
	if h == nil || h.width <= 0 {
		return core.CommandNone
	}
	h.panelOffsetX = panelOffsetX
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return core.CommandNone
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return core.CommandNone
	}
	px := mx - h.panelOffsetX
	for _, b := range h.buttons {
		if pointInRect(px, my, b.rect) {
			return b.cmd
		}
	}
	return core.CommandNone
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawButtons()
	h.drawParameters()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) layoutButtons() {
	if h.width <= 0 {
		return
	}
	h.buttons = h.buttons[:0]
	for i, cmd := range core.Commands {
		top := buttonsTop + i*(buttonHeight+buttonGap)
		h.buttons = append(h.buttons, hudButton{
			cmd:  cmd,
			rect: image.Rect(panelPadding, top, h.width-panelPadding, top+buttonHeight),
		})
	}
}

func (h *HUD) drawButtons() {
	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for _, b := range h.buttons {
		h.drawButton(b.rect, buttonLabel(b.cmd))
	}
}

func (h *HUD) drawParameters() {
	face := basicfont.Face7x13
	y := buttonsTop + len(h.buttons)*(buttonHeight+buttonGap) + sectionGap
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
		y += lineHeight
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			y += lineHeight
		}
		y += sectionGap
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(bg.R)/255.0, float64(bg.G)/255.0, float64(bg.B)/255.0, float64(bg.A)/255.0)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func buttonLabel(cmd core.Command) string {
	switch cmd {
	case core.CommandStep:
		return "Step [N]"
	case core.CommandRun:
		return "Start [Enter]"
	case core.CommandClear:
		return "Clear [C]"
	case core.CommandRandom:
		return "Random [R]"
	case core.CommandNoise:
		return "Noise [P]"
	default:
		return cmd.String()
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 18
	buttonHeight   = 26
	buttonGap      = 8
	sectionGap     = 14
	headerBaseline = 18
	buttonsTop     = panelPadding + headerBaseline + 14
)
