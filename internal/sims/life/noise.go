package life

import (
	perlin "github.com/aquilax/go-perlin"
)

const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
)

// SeedNoise replaces the grid with a Perlin noise field: a cell is alive
// where the noise sampled at (x*scale, y*scale) exceeds threshold. Noise
// values fall roughly in [-1, 1].
func (g *Grid) SeedNoise(seed int64, scale, threshold float64) {
	if scale <= 0 {
		scale = 0.1
	}
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	for i := range g.cells {
		x, y := g.geom.Coords(i)
		g.cells[i].Alive = p.Noise2D(float64(x)*scale, float64(y)*scale) > threshold
	}
}
