package ttf

import (
	"fmt"
	"io"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/maxp"
	"seehuhn.de/go/sfnt/os2"

	rec "github.com/katalvlaran/bitglyph/glyph"
)

// Build assembles records, in glyph ID order, into a TrueType font.
// records[0] must be ".notdef", as returned by glyph.Store.Finalize.
func Build(records []*rec.Record, info Info) (*sfnt.Font, error) {
	if len(records) == 0 || records[0].Name != rec.NotdefName {
		return nil, ErrNoNotdef
	}
	if len(records) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d", ErrTooManyGlyphs, len(records))
	}

	cfg := info.Outline
	scale := cfg.Scale()
	outlines := &glyf.Outlines{
		Glyphs: make(glyf.Glyphs, len(records)),
		Widths: make([]funit.Int16, len(records)),
		Names:  make([]string, len(records)),
	}
	mappings := make([]mapping, 0, len(records))

	var maxPoints, maxContours int
	for gid, r := range records {
		w, err := int16Of(math.Round(float64(r.Advance) * scale))
		if err != nil {
			return nil, fmt.Errorf("ttf: %s advance: %w", r.Name, err)
		}
		outlines.Widths[gid] = w
		outlines.Names[gid] = r.Name

		g, err := simpleGlyph(r, int(math.Round(float64(r.LeftSideBearing)*scale)))
		if err != nil {
			return nil, fmt.Errorf("ttf: %s: %w", r.Name, err)
		}
		outlines.Glyphs[gid] = g
		if g != nil {
			maxPoints = max(maxPoints, r.NumPoints())
			maxContours = max(maxContours, len(r.Outer)+len(r.Holes))
		}

		if r.Codepoint > 0 {
			mappings = append(mappings, mapping{code: rune(r.Codepoint), gid: glyph.ID(gid)})
		}
	}
	outlines.Maxp = &maxp.TTFInfo{
		MaxPoints:   uint16(min(maxPoints, math.MaxUint16)),
		MaxContours: uint16(min(maxContours, math.MaxUint16)),
		MaxZones:    2,
	}

	vert := make([]funit.Int16, 0, 4)
	for _, v := range []int{info.Ascent, info.Descent, info.LineGap, info.CapHeight} {
		iv, err := int16Of(float64(v))
		if err != nil {
			return nil, fmt.Errorf("ttf: vertical metrics: %w", err)
		}
		vert = append(vert, iv)
	}

	return &sfnt.Font{
		FamilyName: info.FamilyName,
		Weight:     os2.WeightNormal,
		Width:      os2.WidthNormal,
		IsRegular:  true,

		Version:          0x00010000,
		CreationTime:     info.Time,
		ModificationTime: info.Time,

		Copyright: info.Copyright,
		PermUse:   os2.PermInstall,

		UnitsPerEm: uint16(cfg.UnitsPerEm),

		Ascent:    vert[0],
		Descent:   vert[1],
		LineGap:   vert[2],
		CapHeight: vert[3],

		Outlines:  outlines,
		CMapTable: cmapTable(mappings),
	}, nil
}

// simpleGlyph converts r into a glyf glyph shifted right by dx font units.
// A record without contours yields nil, the blank glyph.
func simpleGlyph(r *rec.Record, dx int) (*glyf.Glyph, error) {
	if r.Blank {
		return nil, nil
	}

	var (
		contours []glyf.Contour
		cur      glyf.Contour
		bbox     funit.Rect16
	)
	for cmd, pts := range r.Path() {
		if cmd == path.CmdClose {
			contours = append(contours, cur)
			cur = nil
			continue
		}
		x, err := int16Of(pts[0].X + float64(dx))
		if err != nil {
			return nil, err
		}
		y, err := int16Of(pts[0].Y)
		if err != nil {
			return nil, err
		}
		if len(contours) == 0 && len(cur) == 0 {
			bbox = funit.Rect16{LLx: x, LLy: y, URx: x, URy: y}
		} else {
			bbox.LLx, bbox.LLy = min(bbox.LLx, x), min(bbox.LLy, y)
			bbox.URx, bbox.URy = max(bbox.URx, x), max(bbox.URy, y)
		}
		cur = append(cur, glyf.Point{X: x, Y: y, OnCurve: true})
	}
	if len(contours) == 0 {
		return nil, nil
	}

	unpacked := &glyf.SimpleUnpacked{Contours: contours}
	return &glyf.Glyph{Rect16: bbox, Data: unpacked.Pack()}, nil
}

func int16Of(v float64) (funit.Int16, error) {
	if v < math.MinInt16 || v > math.MaxInt16 {
		return 0, fmt.Errorf("%w: %g", ErrRange, v)
	}
	return funit.Int16(v), nil
}

// Write encodes f as a TrueType file.
func Write(w io.Writer, f *sfnt.Font) error {
	if _, err := f.Write(w); err != nil {
		return fmt.Errorf("ttf: write: %w", err)
	}
	return nil
}
