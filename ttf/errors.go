package ttf

import "errors"

var (
	// ErrNoNotdef indicates a glyph list that does not start with ".notdef".
	ErrNoNotdef = errors.New("ttf: first glyph must be .notdef")

	// ErrTooManyGlyphs indicates more glyphs than a glyph ID can address.
	ErrTooManyGlyphs = errors.New("ttf: too many glyphs")

	// ErrRange indicates a coordinate or width outside the 16-bit font unit range.
	ErrRange = errors.New("ttf: value out of range")
)
