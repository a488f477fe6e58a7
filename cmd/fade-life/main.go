//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"fade-life/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	var logger *log.Logger
	if cfg.Verbose {
		logger = log.New(os.Stderr, "fade-life: ", log.LstdFlags)
	}

	game, err := app.New(cfg, logger)
	if err != nil {
		log.Fatalf("fade-life: %v", err)
	}
	viewW, viewH := cfg.ViewSize()

	ebiten.SetWindowTitle("fade-life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(viewW+max(cfg.HUDWidth, 0), viewH)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
