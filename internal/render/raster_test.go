package render

import (
	"image"
	"image/color"
	"testing"
)

func TestRasterizeOpaqueRect(t *testing.T) {
	bounds := Rect{W: 4, H: 4}
	rec := NewRecorder("a", bounds)
	cell := color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	rec.DrawRect(Rect{X: 1, Y: 1, W: 2, H: 2}, cell)

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	Rasterize(img, DefaultPalette().Background, rec)

	if got := img.RGBAAt(1, 1); got != (color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}) {
		t.Fatalf("cell pixel = %v", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Fatalf("background pixel = %v", got)
	}
}

func TestRasterizeFadeDecays(t *testing.T) {
	bounds := Rect{W: 2, H: 2}
	back := NewRecorder("back", bounds)
	front := NewRecorder("front", bounds)
	black := color.NRGBA{A: 0xff}
	white := DefaultPalette().Background
	back.DrawRect(bounds, black)

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	prev := uint8(0)
	for i := 0; i < 4; i++ {
		front.Fill(bounds, white, 0.5)
		Rasterize(img, white, back, front)
		got := img.RGBAAt(0, 0).R
		if got <= prev {
			t.Fatalf("fill %d: pixel %d did not lighten from %d", i+1, got, prev)
		}
		prev = got
	}
	if prev < 0xe0 {
		t.Fatalf("after four half fades pixel = %d, want close to white", prev)
	}
}
