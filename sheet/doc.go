// Package sheet reads bitmap font providers and cuts their sheets into
// glyph tiles.
//
// A provider definition is the JSON used by block-game resource packs:
//
//	{"providers": [
//	  {"type": "bitmap", "file": "minecraft:font/ascii.png",
//	   "ascent": 7, "height": 8, "chars": ["\u0000 !\"", "#$%&"]}
//	]}
//
// Each string in "chars" is one row of the sheet and each character one
// cell; U+0000 marks an unused cell. The sheet is split into
// len(longest row) columns and len(chars) rows of equal size.
package sheet
