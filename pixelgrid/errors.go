package pixelgrid

import "errors"

var (
	// ErrMalformedTile indicates dimensions or bit data that cannot describe a grid.
	ErrMalformedTile = errors.New("pixelgrid: malformed tile")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("pixelgrid: all rows must have the same length")
	// ErrOutOfBounds indicates a cell read outside the grid.
	ErrOutOfBounds = errors.New("pixelgrid: coordinates out of bounds")
)
