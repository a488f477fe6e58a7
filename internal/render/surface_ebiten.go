//go:build ebiten

package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageSurface is a Surface backed by an offscreen ebiten image.
type ImageSurface struct {
	img   *ebiten.Image
	depth int
}

// NewImageSurface allocates a transparent w*h surface.
func NewImageSurface(w, h int) *ImageSurface {
	return &ImageSurface{img: ebiten.NewImage(w, h)}
}

// Fill paints rect with c at the given opacity.
func (s *ImageSurface) Fill(rect Rect, c color.NRGBA, alpha float64) {
	if alpha <= 0 {
		return
	}
	c.A = uint8(math.Round(float64(c.A) * clamp01(alpha)))
	vector.DrawFilledRect(s.img, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), c, false)
}

// DrawRect paints an opaque rectangle.
func (s *ImageSurface) DrawRect(rect Rect, c color.NRGBA) {
	vector.DrawFilledRect(s.img, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), c, false)
}

// Clear makes the whole surface transparent.
func (s *ImageSurface) Clear() { s.img.Clear() }

// SetDepth sets the presentation order.
func (s *ImageSurface) SetDepth(depth int) { s.depth = depth }

// Depth reports the presentation order.
func (s *ImageSurface) Depth() int { return s.depth }

// Image exposes the backing image for presentation.
func (s *ImageSurface) Image() *ebiten.Image { return s.img }
