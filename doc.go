// Package bitglyph turns bitmap font sheets into TrueType outline fonts.
//
// What is bitglyph?
//
//	An exact, lossless pixel-to-polygon vectorizer for blocky fonts:
//		• pixelgrid:  binarized tiles with bounds-checked access
//		• region:     ink / exterior / hole labeling (8- and 4-connectivity)
//		• boundary:   one closed edge path per region, deterministic start
//		• corner:     direction-change reduction to polygon corners
//		• outline:    font-space contours, winding and horizontal metrics
//		• glyph:      per-glyph records and the ordered, freezable store
//
// Around the core:
//
//	sheet/       bitmap provider JSON, PNG/BMP sheets, tile slicing
//	pipeline/    parallel vectorization with per-glyph failure reports
//	ttf/         glyf/cmap/hmtx serialization
//	fontconfig/  YAML build settings
//	cmd/bitglyph the command line tool
//
// Quick ASCII example:
//
//	###       ┌──┐
//	#.#  ->   │┌┐│   one clockwise outer contour,
//	###       │└┘│   one counter-clockwise hole
//	          └──┘
//
// Pixel edges become polygon edges; nothing is smoothed or approximated.
package bitglyph
