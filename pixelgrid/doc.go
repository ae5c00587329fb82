// Package pixelgrid holds a binarized glyph tile as an immutable grid of
// ink (1) and background (0) cells.
//
// What:
//
//   - Grid wraps a row-major bit slice with fixed Width and Height.
//   - New, FromRows and FromImage build grids from raw bits, integer rows
//     or any image.Image (thresholded after compositing over black).
//   - Bit reads a cell; reads outside the grid are errors, never defaults.
//   - NeighborOffsets exposes Conn4/Conn8 offsets for grid traversals.
//
// Zero-area grids (width or height 0) are valid and describe a blank tile.
//
// Complexity:
//
//   - New, FromRows: O(W×H) time and memory (inputs are copied).
//   - FromImage:     O(W×H) time, O(W×H) scratch for compositing.
//   - Bit, InBounds: O(1).
//
// Errors:
//
//   - ErrMalformedTile:  negative dimensions, bit count mismatch or non-binary bits.
//   - ErrNonRectangular: rows of differing lengths passed to FromRows.
//   - ErrOutOfBounds:    Bit called with coordinates outside the grid.
package pixelgrid
