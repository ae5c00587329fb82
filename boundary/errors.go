package boundary

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bitglyph/region"
)

// ErrTopology is matched by every *TopologyError via errors.Is.
var ErrTopology = errors.New("boundary: topology error")

// TopologyError reports a region whose boundary cannot be walked into a
// single outer contour.
type TopologyError struct {
	Label  region.Label
	Bounds region.Rect
	At     Point
	Reason string
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("boundary: region %d %v: %s at %v", e.Label, e.Bounds, e.Reason, e.At)
}

// Unwrap lets errors.Is(err, ErrTopology) match.
func (e *TopologyError) Unwrap() error { return ErrTopology }
