// Package ttf serializes finalized glyph records into a TrueType font.
//
// Every record becomes one simple glyf glyph made of on-curve points only:
// outer contours first, then holes. Glyph zero must be ".notdef". Records
// with a codepoint in the Basic Multilingual Plane are mapped through a
// format 4 cmap subtable, and every codepoint, including those beyond the
// BMP, through a format 12 subtable.
//
// Horizontal metrics come from the records (pixels, scaled to font units);
// vertical metrics come from Info.
package ttf
