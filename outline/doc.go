// SPDX-License-Identifier: MIT
// Package: bitglyph/outline
//
// Package outline turns the reduced polygons of one glyph into renderer-ready
// contours in font units, together with the glyph's horizontal metrics.
//
// Coordinate transform (y flips from grid-down to font-up):
//
//	outX = (x - minX) * scale
//	outY = (maxY - y + baselineOffset) * scale
//	scale = UnitsPerEm / GridSize
//
// where minX and maxY come from the corner bounding box of all polygons.
//
// Metrics are in pixels, from the ink cell bounding box:
//
//	LeftSideBearing = minX
//	InkWidth        = maxCellX - minX + 1
//	Advance         = minX + InkWidth + 1   (one empty column after the ink)
//
// Winding: outer polygons arrive clockwise on screen and leave clockwise in
// font space; hole polygons are reversed so they leave counter-clockwise.
// Renderers using either the non-zero or the even-odd rule then leave holes
// unfilled.
//
// A glyph without any outer polygon of three or more points is blank: no
// contours and Advance = Config.DefaultAdvance. This is a normal result.
package outline
