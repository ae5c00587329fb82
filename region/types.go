package region

import "fmt"

// Label tags one connected region of a grid.
type Label int

const (
	// none marks a cell that has not been visited yet.
	none Label = 0
	// Exterior is the label of the background region touching the border.
	Exterior Label = -1
)

// IsInk reports whether l labels an ink region.
func (l Label) IsInk() bool { return l > 0 }

// IsHole reports whether l labels an enclosed background region.
func (l Label) IsHole() bool { return l < Exterior }

// Rect is a cell-aligned bounding box; Max is exclusive.
type Rect struct {
	MinX, MinY, MaxX, MaxY int
}

// Dx returns the width of r.
func (r Rect) Dx() int { return r.MaxX - r.MinX }

// Dy returns the height of r.
func (r Rect) Dy() int { return r.MaxY - r.MinY }

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.MinX, r.MinY, r.MaxX, r.MaxY)
}

// Labeling assigns a Label to every cell of a grid. It is immutable.
type Labeling struct {
	Width, Height int

	// Foreground lists ink labels in ascending order.
	Foreground []Label
	// Holes lists hole labels in discovery order (-2, -3, ...).
	Holes []Label
	// HasExterior is false when no background cell touches the border.
	HasExterior bool

	labels []Label
}
