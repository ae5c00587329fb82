package pixelgrid_test

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bitglyph/pixelgrid"
)

// TestNew_Errors verifies that New rejects sizes and bit data that cannot describe a grid.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		bits []uint8
	}{
		{"NegativeWidth", -1, 2, nil},
		{"ShortBits", 2, 2, []uint8{0, 1, 0}},
		{"NonBinary", 2, 1, []uint8{0, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pixelgrid.New(tc.w, tc.h, tc.bits)
			if !errors.Is(err, pixelgrid.ErrMalformedTile) {
				t.Errorf("New(%d,%d) error = %v; want ErrMalformedTile", tc.w, tc.h, err)
			}
		})
	}
}

// TestNew_CopiesInput ensures the grid does not alias the caller's slice.
func TestNew_CopiesInput(t *testing.T) {
	bits := []uint8{1, 0, 0, 1}
	g, err := pixelgrid.New(2, 2, bits)
	require.NoError(t, err)
	bits[0] = 0

	v, err := g.Bit(0, 0)
	require.NoError(t, err)
	require.Equal(t, uint8(1), v)
}

// TestFromRows covers rectangular, ragged and empty inputs.
func TestFromRows(t *testing.T) {
	g, err := pixelgrid.FromRows([][]int{
		{0, 1, 1},
		{1, 0, 5},
	})
	require.NoError(t, err)
	require.Equal(t, 3, g.Width())
	require.Equal(t, 2, g.Height())
	require.Equal(t, 4, g.InkCount())
	require.Equal(t, ".##\n#.#\n", g.String())

	_, err = pixelgrid.FromRows([][]int{{1, 0}, {1}})
	require.ErrorIs(t, err, pixelgrid.ErrNonRectangular)

	empty, err := pixelgrid.FromRows(nil)
	require.NoError(t, err)
	require.True(t, empty.Empty())
}

// TestBit_OutOfBounds checks that reads outside the grid fail instead of defaulting.
func TestBit_OutOfBounds(t *testing.T) {
	g, err := pixelgrid.New(3, 2, make([]uint8, 6))
	require.NoError(t, err)

	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {0, 2}, {2, -1}} {
		_, err := g.Bit(xy[0], xy[1])
		require.ErrorIs(t, err, pixelgrid.ErrOutOfBounds, "Bit(%d,%d)", xy[0], xy[1])
		require.False(t, g.InBounds(xy[0], xy[1]))
	}
	_, err = g.Bit(2, 1)
	require.NoError(t, err)
}

// TestIndexCoordinate verifies the row-major mapping round-trips.
func TestIndexCoordinate(t *testing.T) {
	g, err := pixelgrid.New(4, 3, make([]uint8, 12))
	require.NoError(t, err)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			gx, gy := g.Coordinate(g.Index(x, y))
			require.Equal(t, [2]int{x, y}, [2]int{gx, gy})
		}
	}
}

// TestNeighborOffsets checks the offset counts per connectivity.
func TestNeighborOffsets(t *testing.T) {
	require.Len(t, pixelgrid.NeighborOffsets(pixelgrid.Conn4), 4)
	require.Len(t, pixelgrid.NeighborOffsets(pixelgrid.Conn8), 8)
	require.Equal(t, "conn8", pixelgrid.Conn8.String())
}

// TestFromImage binarizes a small NRGBA image with transparency.
//
// Image (W = opaque white, T = transparent, G = opaque dark grey):
//
//	W T
//	G W
func TestFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 20, 12, 22))
	img.Set(10, 20, color.White)
	img.Set(11, 20, color.Transparent)
	img.Set(10, 21, color.NRGBA{R: 40, G: 40, B: 40, A: 255})
	img.Set(11, 21, color.White)

	g := pixelgrid.FromImage(img)
	require.Equal(t, "#.\n.#\n", g.String())

	inv := pixelgrid.FromImage(img, pixelgrid.WithInvert())
	require.Equal(t, "..\n#.\n", inv.String())

	low := pixelgrid.FromImage(img, pixelgrid.WithThreshold(30))
	require.Equal(t, "#.\n##\n", low.String())
}

// TestFromImage_Empty returns a zero-area grid for an empty image.
func TestFromImage_Empty(t *testing.T) {
	g := pixelgrid.FromImage(image.NewGray(image.Rect(0, 0, 0, 0)))
	require.True(t, g.Empty())
}

// TestWithThreshold_Panics guards the option constructor.
func TestWithThreshold_Panics(t *testing.T) {
	require.Panics(t, func() { pixelgrid.WithThreshold(0) })
}

// TestSub cuts windows and rejects ones that overhang the grid.
func TestSub(t *testing.T) {
	g, err := pixelgrid.FromRows([][]int{
		{1, 0, 0, 1},
		{0, 1, 1, 0},
		{0, 0, 1, 1},
	})
	require.NoError(t, err)

	sub, err := g.Sub(1, 1, 3, 2)
	require.NoError(t, err)
	require.Equal(t, "##.\n.##\n", sub.String())

	whole, err := g.Sub(0, 0, 4, 3)
	require.NoError(t, err)
	require.Equal(t, g.String(), whole.String())

	for _, win := range [][4]int{{3, 0, 2, 1}, {0, 2, 1, 2}, {-1, 0, 1, 1}, {0, 0, -1, 1}} {
		_, err := g.Sub(win[0], win[1], win[2], win[3])
		require.ErrorIs(t, err, pixelgrid.ErrOutOfBounds, "window %v", win)
	}
}
