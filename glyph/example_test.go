package glyph_test

import (
	"fmt"

	"github.com/katalvlaran/bitglyph/glyph"
	"github.com/katalvlaran/bitglyph/outline"
	"github.com/katalvlaran/bitglyph/pixelgrid"
)

// ExampleVectorize traces a small "L" and prints its contour in font units.
func ExampleVectorize() {
	g, _ := pixelgrid.FromRows([][]int{
		{1, 0, 0},
		{1, 0, 0},
		{1, 1, 0},
	})
	cfg := outline.NewConfig(outline.WithGridSize(4), outline.WithUnitsPerEm(400))

	rec, err := glyph.Vectorize(glyph.Tile{Codepoint: 'L', Grid: g}, cfg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(rec.Name, rec.Outer, rec.Metrics)
	// Output:
	// uni004C [[{0 300} {100 300} {100 100} {200 100} {200 0} {0 0}]] {0 2 3}
}

// ExampleStore_Finalize shows that ".notdef" always ends up first.
func ExampleStore_Finalize() {
	cfg := outline.NewConfig()
	store := glyph.NewStore(cfg)
	for _, cp := range []int{'b', 'a'} {
		g, _ := pixelgrid.FromRows([][]int{{1}})
		rec, _ := glyph.Vectorize(glyph.Tile{Codepoint: cp, Grid: g}, cfg)
		_ = store.Add(rec)
	}
	for _, rec := range store.Finalize() {
		fmt.Println(rec.Name)
	}
	// Output:
	// .notdef
	// uni0062
	// uni0061
}
