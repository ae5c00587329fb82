package glyph

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/bitglyph/boundary"
	"github.com/katalvlaran/bitglyph/corner"
	"github.com/katalvlaran/bitglyph/outline"
	"github.com/katalvlaran/bitglyph/pixelgrid"
	"github.com/katalvlaran/bitglyph/region"
)

const (
	// NoCodepoint marks a tile or record without a codepoint.
	NoCodepoint = -1

	// NotdefName is the name of glyph zero.
	NotdefName = ".notdef"
)

// Tile is one bitmap cell handed to Vectorize.
type Tile struct {
	// Codepoint is the character drawn by the tile, NoCodepoint if unknown.
	Codepoint int
	// Grid holds the binarized pixels.
	Grid *pixelgrid.Grid
	// Ascent is the baseline row counted from the top of the tile. It is
	// only used when HasAscent is set; otherwise the bottom of the ink sits
	// on the baseline.
	Ascent    int
	HasAscent bool
}

// Record is the vectorized form of one glyph. Contours are in font units.
type Record struct {
	Codepoint int
	Name      string
	outline.Outline
}

// Name returns the glyph name for cp: ".notdef" for 0, "uniXXXX" inside the
// Basic Multilingual Plane and "uXXXXXX" beyond it.
func Name(cp int) string {
	switch {
	case cp == 0:
		return NotdefName
	case cp <= 0xFFFF:
		return fmt.Sprintf("uni%04X", cp)
	default:
		return fmt.Sprintf("u%06X", cp)
	}
}

// Vectorize labels, traces, reduces and assembles one tile. An input or
// topology error rejects the whole tile; no partial record is returned.
// A tile without ink yields a blank record.
func Vectorize(t Tile, cfg outline.Config) (*Record, error) {
	if t.Codepoint < 0 || t.Codepoint > 0x10FFFF {
		return nil, fmt.Errorf("%w: %d", ErrNoCodepoint, t.Codepoint)
	}
	name := Name(t.Codepoint)
	if t.Grid == nil {
		return nil, fmt.Errorf("glyph %s: %w: nil grid", name, pixelgrid.ErrMalformedTile)
	}

	lab := region.Compute(t.Grid)
	outer, err := tracePolygons(lab, lab.Foreground)
	if err != nil {
		return nil, fmt.Errorf("glyph %s: %w", name, err)
	}
	holes, err := tracePolygons(lab, lab.Holes)
	if err != nil {
		return nil, fmt.Errorf("glyph %s: %w", name, err)
	}

	if t.HasAscent {
		if _, hi, ok := outline.InkBounds(outer, holes); ok {
			cfg = cfg.With(outline.WithBaselineOffset(cfg.BaselineOffset + t.Ascent - hi.Y))
		}
	}

	return &Record{
		Codepoint: t.Codepoint,
		Name:      name,
		Outline:   *outline.Assemble(outer, holes, cfg),
	}, nil
}

func tracePolygons(lab *region.Labeling, labels []region.Label) ([]corner.Polygon, error) {
	polys := make([]corner.Polygon, 0, len(labels))
	for _, l := range labels {
		p, err := boundary.Trace(lab, l)
		if err != nil {
			return nil, err
		}
		if poly := corner.Reduce(p); poly.Valid() {
			polys = append(polys, poly)
		}
	}
	return polys, nil
}

// notdefBox is the placeholder rectangle at 1024 units per em.
var notdefBox = [4]int{20, 0, 437, 675}

// Notdef returns the default ".notdef" record: a solid box scaled to
// cfg.UnitsPerEm with the configured default advance. The box's side
// bearing is a fraction of a pixel, so its contours are already placed at
// their final x and LeftSideBearing stays 0.
func Notdef(cfg outline.Config) *Record {
	k := float64(cfg.UnitsPerEm) / outline.DefaultUnitsPerEm
	s := func(v int) int { return int(math.Round(float64(v) * k)) }
	x0, y0, x1, y1 := s(notdefBox[0]), s(notdefBox[1]), s(notdefBox[2]), s(notdefBox[3])

	return &Record{
		Codepoint: 0,
		Name:      NotdefName,
		Outline: outline.Outline{
			Outer: []outline.Contour{{{X: x0, Y: y0}, {X: x0, Y: y1}, {X: x1, Y: y1}, {X: x1, Y: y0}}},
			Metrics: outline.Metrics{
				LeftSideBearing: 0,
				InkWidth:        int(math.Ceil(float64(x1-x0) / cfg.Scale())),
				Advance:         cfg.DefaultAdvance,
			},
		},
	}
}

// Equal reports whether r and o describe the same glyph.
func (r *Record) Equal(o *Record) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.Codepoint == o.Codepoint &&
		r.Name == o.Name &&
		r.Metrics == o.Metrics &&
		r.Blank == o.Blank &&
		slices.EqualFunc(r.Outer, o.Outer, contourEqual) &&
		slices.EqualFunc(r.Holes, o.Holes, contourEqual)
}

func contourEqual(a, b outline.Contour) bool { return slices.Equal(a, b) }
