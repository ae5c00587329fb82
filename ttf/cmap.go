package ttf

import (
	"encoding/binary"
	"slices"

	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
)

// mapping pairs a codepoint with its glyph ID.
type mapping struct {
	code rune
	gid  glyph.ID
}

// cmapTable builds the character map: format 4 for the Basic Multilingual
// Plane under the BMP-only keys, and format 12 for the full repertoire.
func cmapTable(m []mapping) cmap.Table {
	slices.SortStableFunc(m, func(a, b mapping) int { return int(a.code) - int(b.code) })
	m = slices.CompactFunc(m, func(a, b mapping) bool { return a.code == b.code })

	bmp := make(cmap.Format4)
	for _, e := range m {
		if e.code <= 0xFFFF {
			bmp[uint16(e.code)] = e.gid
		}
	}
	full := encodeFormat12(m, 0)

	t := make(cmap.Table)
	t[cmap.Key{PlatformID: 0, EncodingID: 3}] = bmp.Encode(0)
	t[cmap.Key{PlatformID: 3, EncodingID: 1}] = bmp.Encode(0)
	t[cmap.Key{PlatformID: 0, EncodingID: 4}] = full
	t[cmap.Key{PlatformID: 3, EncodingID: 10}] = full
	return t
}

// format12Group is a run of consecutive codepoints mapped to consecutive
// glyph IDs.
type format12Group struct {
	start, end rune
	startGID   glyph.ID
}

// encodeFormat12 serializes sorted, duplicate-free mappings as a segmented
// coverage subtable.
func encodeFormat12(m []mapping, language uint32) []byte {
	var groups []format12Group
	for _, e := range m {
		if n := len(groups); n > 0 {
			g := &groups[n-1]
			if e.code == g.end+1 && e.gid == g.startGID+glyph.ID(e.code-g.start) {
				g.end = e.code
				continue
			}
		}
		groups = append(groups, format12Group{start: e.code, end: e.code, startGID: e.gid})
	}

	out := make([]byte, 0, 16+12*len(groups))
	out = binary.BigEndian.AppendUint16(out, 12)
	out = binary.BigEndian.AppendUint16(out, 0)
	out = binary.BigEndian.AppendUint32(out, uint32(16+12*len(groups)))
	out = binary.BigEndian.AppendUint32(out, language)
	out = binary.BigEndian.AppendUint32(out, uint32(len(groups)))
	for _, g := range groups {
		out = binary.BigEndian.AppendUint32(out, uint32(g.start))
		out = binary.BigEndian.AppendUint32(out, uint32(g.end))
		out = binary.BigEndian.AppendUint32(out, uint32(g.startGID))
	}
	return out
}
