package pixelgrid

import (
	"fmt"
	"strings"
)

// New constructs a Grid of the given size from row-major bits.
// The slice is copied. Every bit must be 0 or 1.
// Returns ErrMalformedTile for negative sizes, len(bits) != width*height
// or a non-binary value.
// Complexity: O(W×H) time and memory.
func New(width, height int, bits []uint8) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative size %dx%d", ErrMalformedTile, width, height)
	}
	if len(bits) != width*height {
		return nil, fmt.Errorf("%w: %d bits for %dx%d", ErrMalformedTile, len(bits), width, height)
	}
	cells := make([]uint8, len(bits))
	for i, b := range bits {
		if b > 1 {
			return nil, fmt.Errorf("%w: bit %d has value %d", ErrMalformedTile, i, b)
		}
		cells[i] = b
	}

	return &Grid{width: width, height: height, bits: cells}, nil
}

// FromRows constructs a Grid from values[y][x]; any non-zero value is ink.
// An empty slice yields a zero-area grid.
// Returns ErrNonRectangular if any row length differs from the first.
func FromRows(values [][]int) (*Grid, error) {
	h := len(values)
	if h == 0 {
		return &Grid{}, nil
	}
	w := len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([]uint8, w*h)
	for y, row := range values {
		for x, v := range row {
			if v != 0 {
				cells[y*w+x] = 1
			}
		}
	}

	return &Grid{width: w, height: h, bits: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Empty reports whether the grid has zero area.
func (g *Grid) Empty() bool { return g.width == 0 || g.height == 0 }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Bit returns the cell value at (x,y).
// Returns ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) Bit(x, y int) (uint8, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, g.width, g.height)
	}
	return g.bits[g.Index(x, y)], nil
}

// Ink reports whether (x,y) is an in-bounds ink cell.
// It is the unchecked fast path used by traversals that already test bounds.
func (g *Grid) Ink(x, y int) bool {
	return g.InBounds(x, y) && g.bits[g.Index(x, y)] == 1
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// InkCount returns the number of ink cells.
func (g *Grid) InkCount() int {
	n := 0
	for _, b := range g.bits {
		n += int(b)
	}
	return n
}

// String renders the grid one row per line, '#' for ink and '.' for background.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.bits[g.Index(x, y)] == 1 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Sub returns a copy of the w×h window whose top-left cell is (x, y).
// Returns ErrOutOfBounds if the window does not fit inside g.
func (g *Grid) Sub(x, y, w, h int) (*Grid, error) {
	if w < 0 || h < 0 || x < 0 || y < 0 || x+w > g.width || y+h > g.height {
		return nil, fmt.Errorf("%w: window %dx%d at (%d,%d) in %dx%d grid",
			ErrOutOfBounds, w, h, x, y, g.width, g.height)
	}
	cells := make([]uint8, w*h)
	for row := 0; row < h; row++ {
		start := g.Index(x, y+row)
		copy(cells[row*w:(row+1)*w], g.bits[start:start+w])
	}
	return &Grid{width: w, height: h, bits: cells}, nil
}
