package boundary

import (
	"fmt"

	"github.com/katalvlaran/bitglyph/pixelgrid"
	"github.com/katalvlaran/bitglyph/region"
)

// Trace returns the outer boundary of region l as a closed Path.
//
// Behavior:
//  1. Emit the four clockwise edges of every member cell; an edge whose
//     reverse is already present cancels it (shared interior edge).
//  2. Start at the smallest remaining edge (y, then x of its first corner).
//  3. Walk with the region on the right until the start corner is reached.
//  4. Split the remaining edges into loops; each must be an inner loop
//     (negative SignedArea2), else the region is disconnected.
//
// A region without boundary edges yields an empty Path. Labels that do not
// occur in lab wrap region.ErrUnknownLabel.
func Trace(lab *region.Labeling, l region.Label) (Path, error) {
	cells, err := lab.Cells(l)
	if err != nil {
		return nil, fmt.Errorf("boundary: trace: %w", err)
	}

	t := &tracer{
		label: l,
		lab:   lab,
		edges: make(map[edge]bool, 4*len(cells)),
	}
	for _, i := range cells {
		for _, e := range cellEdges(i%lab.Width, i/lab.Width) {
			if r := e.reverse(); t.edges[r] {
				delete(t.edges, r)
				continue
			}
			t.edges[e] = true
		}
	}
	if len(t.edges) == 0 {
		return Path{}, nil
	}

	// 8-connected regions take the outer turn at diagonal pinches.
	t.turns = [3]func(dir) dir{dir.right, straight, dir.left}
	if lab.Connectivity(l) == pixelgrid.Conn8 {
		t.turns = [3]func(dir) dir{dir.left, straight, dir.right}
	}

	outer, err := t.walk(t.minEdge())
	if err != nil {
		return nil, err
	}

	for len(t.edges) > 0 {
		start := t.minEdge()
		loop, err := t.walk(start)
		if err != nil {
			return nil, err
		}
		if loop.SignedArea2() > 0 {
			return nil, t.fail(start.from(), "second outer boundary")
		}
	}

	return outer, nil
}

func straight(d dir) dir { return d }

type tracer struct {
	label region.Label
	lab   *region.Labeling
	edges map[edge]bool // boundary edges not yet walked
	turns [3]func(dir) dir
}

// minEdge returns the smallest unwalked edge.
// Complexity: O(k) for k remaining edges.
func (t *tracer) minEdge() edge {
	var best edge
	first := true
	for e := range t.edges {
		if first || e.less(best) {
			best, first = e, false
		}
	}
	return best
}

// walk follows unwalked edges from start until it returns to start's first
// corner, consuming every edge it crosses.
func (t *tracer) walk(start edge) (Path, error) {
	origin := start.from()
	path := Path{origin}
	limit := len(t.edges)
	cur := start
	for {
		delete(t.edges, cur)
		v := cur.to()
		if v == origin {
			return path, nil
		}
		if len(path) >= limit {
			return nil, t.fail(v, "boundary does not close")
		}
		path = append(path, v)

		next, ok := t.next(v, cur.d)
		if !ok {
			return nil, t.fail(v, "walk stalled before closing")
		}
		cur = next
	}
}

// next picks the outgoing edge at v by turn preference.
func (t *tracer) next(v Point, heading dir) (edge, bool) {
	for _, turn := range t.turns {
		e := edge{v.X, v.Y, turn(heading)}
		if t.edges[e] {
			return e, true
		}
	}
	return edge{}, false
}

func (t *tracer) fail(at Point, reason string) error {
	bounds, _ := t.lab.Bounds(t.label)
	return &TopologyError{Label: t.label, Bounds: bounds, At: at, Reason: reason}
}
