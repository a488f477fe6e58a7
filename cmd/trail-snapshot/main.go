package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"time"

	"fade-life/internal/driver"
	"fade-life/internal/render"
)

type options struct {
	cfg    driver.Config
	scale  int
	frames int
	frame  time.Duration
	noise  bool
}

func main() {
	opts := options{cfg: driver.DefaultConfig()}
	flag.IntVar(&opts.cfg.Grid.VisibleWidth, "w", opts.cfg.Grid.VisibleWidth, "visible grid width")
	flag.IntVar(&opts.cfg.Grid.VisibleHeight, "h", opts.cfg.Grid.VisibleHeight, "visible grid height")
	flag.IntVar(&opts.cfg.Grid.Margin, "margin", opts.cfg.Grid.Margin, "hidden margin cells")
	flag.Int64Var(&opts.cfg.Seed, "seed", opts.cfg.Seed, "seed for the initial pattern")
	flag.Float64Var(&opts.cfg.FadeRate, "fade", opts.cfg.FadeRate, "trail fade opacity")
	flag.IntVar(&opts.cfg.HistoryLimit, "history", opts.cfg.HistoryLimit, "fills before the surfaces swap")
	flag.DurationVar(&opts.cfg.StepInterval, "interval", opts.cfg.StepInterval, "time between generations")
	flag.IntVar(&opts.scale, "scale", 4, "pixels per cell")
	flag.IntVar(&opts.frames, "frames", 600, "frames to simulate")
	flag.DurationVar(&opts.frame, "frame", time.Second/60, "simulated frame duration")
	flag.BoolVar(&opts.noise, "noise", false, "seed from Perlin noise instead of coin flips")
	out := flag.String("o", "trail.png", "output PNG path")
	flag.Parse()

	img, stats, err := snapshot(opts)
	if err != nil {
		log.Fatalf("trail-snapshot: %v", err)
	}
	if err := writePNG(*out, img); err != nil {
		log.Fatalf("trail-snapshot: %v", err)
	}
	log.Printf("wrote %s: generation %d, population %d, %d swaps", *out, stats.Generation, stats.Population, stats.Swaps)
}

// snapshot runs the driver headless for the configured number of frames and
// composites both trail surfaces into one image.
func snapshot(opts options) (*image.RGBA, driver.Stats, error) {
	if err := opts.cfg.Validate(); err != nil {
		return nil, driver.Stats{}, err
	}
	if opts.scale <= 0 {
		opts.scale = 1
	}
	w := opts.cfg.Grid.VisibleWidth * opts.scale
	h := opts.cfg.Grid.VisibleHeight * opts.scale
	bounds := render.Rect{W: float64(w), H: float64(h)}
	a := render.NewRecorder("a", bounds)
	b := render.NewRecorder("b", bounds)

	d, err := driver.New(opts.cfg, a, b, float64(w), float64(h))
	if err != nil {
		return nil, driver.Stats{}, err
	}
	if opts.noise {
		d.Noise()
	} else {
		d.Randomize()
	}
	for i := 0; i < opts.frames; i++ {
		d.Tick(opts.frame)
	}

	layers := []*render.Recorder{a, b}
	render.SortByDepth(layers)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	render.Rasterize(img, opts.cfg.Palette.Background, layers...)
	return img, d.Stats(), nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
