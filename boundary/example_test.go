package boundary_test

import (
	"fmt"

	"github.com/katalvlaran/bitglyph/boundary"
	"github.com/katalvlaran/bitglyph/corner"
	"github.com/katalvlaran/bitglyph/pixelgrid"
	"github.com/katalvlaran/bitglyph/region"
)

// ExampleTrace traces both regions of a 3×3 ring and reduces them to corners.
func ExampleTrace() {
	g, _ := pixelgrid.FromRows([][]int{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	})
	lab := region.Compute(g)

	outer, _ := boundary.Trace(lab, lab.Foreground[0])
	hole, _ := boundary.Trace(lab, lab.Holes[0])
	fmt.Println(len(outer), corner.Reduce(outer))
	fmt.Println(len(hole), corner.Reduce(hole))

	// Output:
	// 12 [(0,0) (3,0) (3,3) (0,3)]
	// 4 [(1,1) (2,1) (2,2) (1,2)]
}
