// Package glyph turns bitmap tiles into vectorized glyph records and
// collects them, in order, for a font serializer.
//
// A Tile is one cell cut from a bitmap sheet. Vectorize runs it through the
// whole chain:
//
//	pixelgrid.Grid -> region.Compute -> boundary.Trace -> corner.Reduce -> outline.Assemble
//
// and returns a Record named after its codepoint (see Name).
//
// Store is the per-font collection. It keeps first-insertion order, tracks
// the codepoint range and is frozen by Finalize, which also guarantees that
// ".notdef" exists and comes first. All Store methods are safe for
// concurrent use.
//
// Errors:
//
//	ErrNoCodepoint   - tile has no codepoint to name the glyph after.
//	ErrFrozen        - Add after Finalize.
//	ErrDuplicateName - AddUnique with a name already holding different content.
//	ErrNotFinalized  - Records before Finalize.
package glyph
