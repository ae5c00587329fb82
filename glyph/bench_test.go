package glyph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/bitglyph/glyph"
	"github.com/katalvlaran/bitglyph/outline"
	"github.com/katalvlaran/bitglyph/pixelgrid"
)

// BenchmarkVectorize runs the whole chain on random 16×16 tiles, the size of
// a double-resolution sheet cell.
func BenchmarkVectorize(b *testing.B) {
	const n, tiles = 16, 64
	rng := rand.New(rand.NewSource(7))
	grids := make([]*pixelgrid.Grid, tiles)
	for i := range grids {
		bits := make([]uint8, n*n)
		for j := range bits {
			if rng.Intn(3) == 0 {
				bits[j] = 1
			}
		}
		g, err := pixelgrid.New(n, n, bits)
		if err != nil {
			b.Fatalf("setup New failed: %v", err)
		}
		grids[i] = g
	}
	cfg := outline.NewConfig(outline.WithGridSize(n))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t := glyph.Tile{Codepoint: 0x4E00 + i%tiles, Grid: grids[i%tiles]}
		if _, err := glyph.Vectorize(t, cfg); err != nil {
			b.Fatal(err)
		}
	}
}
