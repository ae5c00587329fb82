package region_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/bitglyph/pixelgrid"
	"github.com/katalvlaran/bitglyph/region"
)

// BenchmarkCompute labels a random 256×256 grid, roughly half ink.
// Complexity: O(W×H×d)
func BenchmarkCompute(b *testing.B) {
	const n = 256
	rng := rand.New(rand.NewSource(42))
	bits := make([]uint8, n*n)
	for i := range bits {
		bits[i] = uint8(rng.Intn(2))
	}
	g, err := pixelgrid.New(n, n, bits)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = region.Compute(g)
	}
}
