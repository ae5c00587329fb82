package boundary

import "fmt"

// Point is a grid corner.
type Point struct {
	X, Y int
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Path is a closed sequence of grid corners; the last point connects back to
// the first. Consecutive points of a traced Path are exactly one unit apart.
type Path []Point

// SignedArea2 returns twice the signed shoelace area of p in grid
// coordinates. Clockwise-on-screen paths (y down) are positive.
func (p Path) SignedArea2() int {
	n := len(p)
	a := 0
	for i := 0; i < n; i++ {
		q, r := p[i], p[(i+1)%n]
		a += q.X*r.Y - r.X*q.Y
	}
	return a
}

// dir is a unit step along one axis, in clockwise order starting east.
type dir uint8

const (
	east dir = iota
	south
	west
	north
)

var steps = [4]Point{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

func (d dir) right() dir   { return (d + 1) % 4 }
func (d dir) left() dir    { return (d + 3) % 4 }
func (d dir) reverse() dir { return (d + 2) % 4 }

// edge is the unit edge leaving corner (x,y) in direction d.
type edge struct {
	x, y int
	d    dir
}

func (e edge) from() Point { return Point{e.x, e.y} }

func (e edge) to() Point {
	s := steps[e.d]
	return Point{e.x + s.X, e.y + s.Y}
}

func (e edge) reverse() edge {
	t := e.to()
	return edge{t.X, t.Y, e.d.reverse()}
}

// less orders edges by first endpoint (y, then x), then direction.
func (e edge) less(o edge) bool {
	if e.y != o.y {
		return e.y < o.y
	}
	if e.x != o.x {
		return e.x < o.x
	}
	return e.d < o.d
}

// cellEdges returns the four edges of cell (x,y) in clockwise order:
// top, right, bottom, left.
func cellEdges(x, y int) [4]edge {
	return [4]edge{
		{x, y, east},
		{x + 1, y, south},
		{x + 1, y + 1, west},
		{x, y + 1, north},
	}
}
