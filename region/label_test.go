package region_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/bitglyph/pixelgrid"
	"github.com/katalvlaran/bitglyph/region"
)

// LabelSuite exercises Compute over the canonical glyph shapes.
type LabelSuite struct {
	suite.Suite
}

func (s *LabelSuite) grid(rows [][]int) *pixelgrid.Grid {
	g, err := pixelgrid.FromRows(rows)
	s.Require().NoError(err)
	return g
}

// TestAllInk verifies that rectangular all-ink grids give one region and no holes.
func (s *LabelSuite) TestAllInk() {
	for w := 1; w <= 5; w++ {
		for h := 1; h <= 4; h++ {
			rows := make([][]int, h)
			for y := range rows {
				rows[y] = make([]int, w)
				for x := range rows[y] {
					rows[y][x] = 1
				}
			}
			lab := region.Compute(s.grid(rows))
			s.Require().Equal([]region.Label{1}, lab.Foreground, "%dx%d", w, h)
			s.Require().Empty(lab.Holes, "%dx%d", w, h)
			s.Require().False(lab.HasExterior, "%dx%d", w, h)
		}
	}
}

// TestRing verifies that a ring around a background square yields exactly one hole,
// which is 4-connected-disjoint from the exterior.
//
// Grid:
//
//	. . . . . .
//	. # # # # .
//	. # . . # .
//	. # . . # .
//	. # # # # .
//	. . . . . .
func (s *LabelSuite) TestRing() {
	g := s.grid([][]int{
		{0, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 0},
		{0, 1, 0, 0, 1, 0},
		{0, 1, 0, 0, 1, 0},
		{0, 1, 1, 1, 1, 0},
		{0, 0, 0, 0, 0, 0},
	})
	lab := region.Compute(g)
	s.Require().Equal([]region.Label{1}, lab.Foreground)
	s.Require().Len(lab.Holes, 1)
	s.Require().True(lab.HasExterior)

	hole := lab.Holes[0]
	s.Require().True(hole.IsHole())
	cells, err := lab.Cells(hole)
	s.Require().NoError(err)
	s.Require().Len(cells, 4)

	// No hole cell has an exterior 4-neighbor.
	for _, i := range cells {
		x, y := i%lab.Width, i/lab.Width
		for _, d := range pixelgrid.NeighborOffsets(pixelgrid.Conn4) {
			s.Require().False(lab.Member(x+d[0], y+d[1], region.Exterior))
		}
	}

	bounds, err := lab.Bounds(hole)
	s.Require().NoError(err)
	s.Require().Equal(region.Rect{MinX: 2, MinY: 2, MaxX: 4, MaxY: 4}, bounds)
}

// TestDiagonalEnclosure checks that diagonal ink touches connect the stroke
// while the enclosed background cell stays a separate hole.
//
// Grid:
//
//	. # .
//	# . #
//	. # .
func (s *LabelSuite) TestDiagonalEnclosure() {
	lab := region.Compute(s.grid([][]int{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	}))
	s.Require().Equal([]region.Label{1}, lab.Foreground)
	s.Require().Equal([]region.Label{-2}, lab.Holes)

	l, err := lab.At(1, 1)
	s.Require().NoError(err)
	s.Require().Equal(region.Label(-2), l)

	corner, err := lab.At(0, 0)
	s.Require().NoError(err)
	s.Require().Equal(region.Exterior, corner)
}

// TestSeparateStrokesAndHoles labels two strokes, one with two holes.
//
// Grid:
//
//	# # # . #
//	# . # . #
//	# # # . #
//	# . # . .
//	# # # . #
func (s *LabelSuite) TestSeparateStrokesAndHoles() {
	lab := region.Compute(s.grid([][]int{
		{1, 1, 1, 0, 1},
		{1, 0, 1, 0, 1},
		{1, 1, 1, 0, 1},
		{1, 0, 1, 0, 0},
		{1, 1, 1, 0, 1},
	}))
	s.Require().Equal([]region.Label{1, 2, 3}, lab.Foreground)
	s.Require().Equal([]region.Label{-2, -3}, lab.Holes)

	l, err := lab.At(4, 4)
	s.Require().NoError(err)
	s.Require().Equal(region.Label(3), l)
}

// TestEmptyGrid yields no labels and no error.
func (s *LabelSuite) TestEmptyGrid() {
	lab := region.Compute(s.grid(nil))
	s.Require().Empty(lab.Foreground)
	s.Require().Empty(lab.Holes)
	s.Require().False(lab.HasExterior)
}

// TestBlankGrid has only the exterior.
func (s *LabelSuite) TestBlankGrid() {
	lab := region.Compute(s.grid([][]int{{0, 0}, {0, 0}}))
	s.Require().Empty(lab.Foreground)
	s.Require().Empty(lab.Holes)
	s.Require().True(lab.HasExterior)
	s.Require().True(lab.Has(region.Exterior))
}

func TestLabelSuite(t *testing.T) {
	suite.Run(t, new(LabelSuite))
}

// TestLookupErrors covers out-of-range coordinates and unknown labels.
func TestLookupErrors(t *testing.T) {
	g, err := pixelgrid.FromRows([][]int{{1, 0}})
	require.NoError(t, err)
	lab := region.Compute(g)

	_, err = lab.At(2, 0)
	require.ErrorIs(t, err, pixelgrid.ErrOutOfBounds)

	_, err = lab.Cells(7)
	require.ErrorIs(t, err, region.ErrUnknownLabel)
	_, err = lab.Bounds(-2)
	require.ErrorIs(t, err, region.ErrUnknownLabel)
	require.False(t, lab.Has(0))
	require.Equal(t, pixelgrid.Conn8, lab.Connectivity(1))
	require.Equal(t, pixelgrid.Conn4, lab.Connectivity(region.Exterior))
}

// TestFromLabels derives label lists from a precomputed map.
func TestFromLabels(t *testing.T) {
	lab, err := region.FromLabels(3, 1, []region.Label{4, -1, -3})
	require.NoError(t, err)
	require.Equal(t, []region.Label{4}, lab.Foreground)
	require.Equal(t, []region.Label{-3}, lab.Holes)
	require.True(t, lab.HasExterior)
	require.True(t, lab.Has(4))
	require.False(t, lab.Has(1))

	_, err = region.FromLabels(2, 2, []region.Label{1, 1, 1})
	require.ErrorIs(t, err, pixelgrid.ErrMalformedTile)
	_, err = region.FromLabels(1, 1, []region.Label{0})
	require.ErrorIs(t, err, pixelgrid.ErrMalformedTile)
}
