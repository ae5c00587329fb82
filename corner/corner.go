// Package corner reduces a boundary.Path to the corners of its polygon.
//
// The reduction is exact: a point is kept only where the direction of travel
// changes, so the enclosed shape and its winding are unchanged.
package corner

import "github.com/katalvlaran/bitglyph/boundary"

// Polygon is a closed sequence of corner points with no three consecutive
// points collinear. Fewer than three points describe nothing drawable.
type Polygon []boundary.Point

// Reduce drops every point of p whose incoming and outgoing directions agree.
// Paths shorter than three points are returned unchanged; callers must treat
// them as degenerate. Reduce never adds points and is idempotent.
// Complexity: O(n) time and memory.
func Reduce(p boundary.Path) Polygon {
	n := len(p)
	if n < 3 {
		return Polygon(p)
	}
	out := make(Polygon, 0, n)
	for i, cur := range p {
		prev, next := p[(i+n-1)%n], p[(i+1)%n]
		if heading(prev, cur) != heading(cur, next) {
			out = append(out, cur)
		}
	}
	return out
}

// heading returns the sign vector of the step a->b, so steps of any length
// along the same ray compare equal.
func heading(a, b boundary.Point) boundary.Point {
	return boundary.Point{X: sign(b.X - a.X), Y: sign(b.Y - a.Y)}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Valid reports whether p has enough points to enclose an area.
func (p Polygon) Valid() bool { return len(p) >= 3 }

// SignedArea2 returns twice the signed area of p in grid coordinates
// (positive for clockwise-on-screen polygons).
func (p Polygon) SignedArea2() int { return boundary.Path(p).SignedArea2() }

// Reverse returns p traversed in the opposite direction, starting at the
// same point.
func (p Polygon) Reverse() Polygon {
	n := len(p)
	out := make(Polygon, n)
	for i := range p {
		out[i] = p[(n-i)%n]
	}
	return out
}

// Bounds returns the corner bounding box of p as min and max points.
// ok is false for an empty polygon.
func (p Polygon) Bounds() (lo, hi boundary.Point, ok bool) {
	if len(p) == 0 {
		return lo, hi, false
	}
	lo, hi = p[0], p[0]
	for _, q := range p[1:] {
		lo.X, lo.Y = min(lo.X, q.X), min(lo.Y, q.Y)
		hi.X, hi.Y = max(hi.X, q.X), max(hi.Y, q.Y)
	}
	return lo, hi, true
}
