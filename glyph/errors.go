package glyph

import "errors"

var (
	// ErrNoCodepoint indicates a tile that carries no usable codepoint.
	ErrNoCodepoint = errors.New("glyph: tile has no codepoint")

	// ErrFrozen indicates a mutation of a finalized Store.
	ErrFrozen = errors.New("glyph: store is finalized")

	// ErrDuplicateName indicates a second, different record under an existing name.
	ErrDuplicateName = errors.New("glyph: duplicate glyph name")

	// ErrNotFinalized indicates a read of the final order before Finalize.
	ErrNotFinalized = errors.New("glyph: store is not finalized")
)
