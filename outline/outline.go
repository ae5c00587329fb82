// SPDX-License-Identifier: MIT
package outline

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/katalvlaran/bitglyph/boundary"
	"github.com/katalvlaran/bitglyph/corner"
)

// Point is a position in font units, y up.
type Point struct {
	X, Y int
}

// Contour is a closed polygon in font units; the last point connects back
// to the first.
type Contour []Point

// SignedArea2 returns twice the signed area of c in font space; positive
// means counter-clockwise.
func (c Contour) SignedArea2() int {
	return toPath(c).SignedArea2()
}

// Clockwise reports whether c winds clockwise in font space.
func (c Contour) Clockwise() bool { return c.SignedArea2() < 0 }

func toPath(c Contour) boundary.Path {
	p := make(boundary.Path, len(c))
	for i, q := range c {
		p[i] = boundary.Point{X: q.X, Y: q.Y}
	}
	return p
}

// Metrics are the horizontal metrics of a glyph in pixels. Assembled
// contours start at x=0; a serializer moves them right by LeftSideBearing.
type Metrics struct {
	LeftSideBearing int
	InkWidth        int
	Advance         int
}

// Outline is the assembled, renderer-ready form of one glyph.
type Outline struct {
	// Outer holds ink contours, clockwise in font space.
	Outer []Contour
	// Holes holds hole contours, counter-clockwise in font space.
	Holes []Contour
	Metrics
	// Blank is set when the glyph has no ink.
	Blank bool
}

// Contours returns the outer contours followed by the holes.
func (o *Outline) Contours() []Contour {
	out := make([]Contour, 0, len(o.Outer)+len(o.Holes))
	out = append(out, o.Outer...)
	return append(out, o.Holes...)
}

// NumPoints returns the total number of contour points.
func (o *Outline) NumPoints() int {
	n := 0
	for _, c := range o.Contours() {
		n += len(c)
	}
	return n
}

// Path returns the contours as a path: one MoveTo per contour, a LineTo per
// further point and a Close.
func (o *Outline) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		for _, c := range o.Contours() {
			for i, p := range c {
				cmd := path.CmdLineTo
				if i == 0 {
					cmd = path.CmdMoveTo
				}
				buf[0] = vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
				if !yield(cmd, buf[:]) {
					return
				}
			}
			if !yield(path.CmdClose, nil) {
				return
			}
		}
	}
}

// InkBounds returns the corner bounding box of all valid polygons in sets.
// ok is false if none has three or more points.
func InkBounds(sets ...[]corner.Polygon) (lo, hi boundary.Point, ok bool) {
	for _, set := range sets {
		for _, poly := range set {
			if !poly.Valid() {
				continue
			}
			plo, phi, _ := poly.Bounds()
			if !ok {
				lo, hi, ok = plo, phi, true
				continue
			}
			lo.X, lo.Y = min(lo.X, plo.X), min(lo.Y, plo.Y)
			hi.X, hi.Y = max(hi.X, phi.X), max(hi.Y, phi.Y)
		}
	}
	return lo, hi, ok
}

// Assemble transforms one glyph's outer and hole polygons (grid coordinates)
// into font-space contours and computes its metrics. Polygons with fewer
// than three points are skipped. Without a valid outer polygon the result is
// blank.
// Complexity: O(P) for P polygon points.
func Assemble(outer, holes []corner.Polygon, cfg Config) *Outline {
	outer = validOnly(outer)
	if len(outer) == 0 {
		return &Outline{Blank: true, Metrics: Metrics{Advance: cfg.DefaultAdvance}}
	}
	holes = validOnly(holes)

	lo, hi, _ := InkBounds(outer, holes)
	scale := cfg.Scale()
	transform := func(poly corner.Polygon) Contour {
		c := make(Contour, len(poly))
		for i, p := range poly {
			c[i] = Point{
				X: int(math.Round(float64(p.X-lo.X) * scale)),
				Y: int(math.Round(float64(hi.Y-p.Y+cfg.BaselineOffset) * scale)),
			}
		}
		return c
	}

	o := &Outline{
		Outer: make([]Contour, 0, len(outer)),
		Holes: make([]Contour, 0, len(holes)),
	}
	for _, poly := range outer {
		o.Outer = append(o.Outer, transform(poly))
	}
	for _, poly := range holes {
		o.Holes = append(o.Holes, transform(poly.Reverse()))
	}

	// corner max X is one past the last ink column
	ink := hi.X - lo.X
	o.Metrics = Metrics{
		LeftSideBearing: lo.X,
		InkWidth:        ink,
		Advance:         lo.X + ink + 1,
	}
	return o
}

func validOnly(polys []corner.Polygon) []corner.Polygon {
	out := make([]corner.Polygon, 0, len(polys))
	for _, p := range polys {
		if p.Valid() {
			out = append(out, p)
		}
	}
	return out
}
