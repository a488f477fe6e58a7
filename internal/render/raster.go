package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Rasterize composites recorded draw lists onto dst in the order given, which
// should be back to front. dst is first filled with background.
func Rasterize(dst draw.Image, background color.NRGBA, layers ...*Recorder) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	for _, layer := range layers {
		for _, op := range layer.Ops() {
			paintOp(dst, op)
		}
	}
}

func paintOp(dst draw.Image, op Op) {
	r := pixelRect(op.Rect).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	src := image.NewUniform(op.Color)
	if op.Alpha >= 1 {
		draw.Draw(dst, r, src, image.Point{}, draw.Over)
		return
	}
	mask := image.NewUniform(color.Alpha{A: uint8(math.Round(clamp01(op.Alpha) * 255))})
	draw.DrawMask(dst, r, src, image.Point{}, mask, image.Point{}, draw.Over)
}

// pixelRect snaps a screen rectangle to whole pixels, rounding both edges so
// adjacent cells tile without gaps.
func pixelRect(r Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.X)),
		int(math.Round(r.Y)),
		int(math.Round(r.X+r.W)),
		int(math.Round(r.Y+r.H)),
	)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
