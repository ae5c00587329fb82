package pipeline

import (
	"errors"
	"fmt"
)

// GlyphError is the failure of a single tile.
type GlyphError struct {
	// Index is the position of the tile in the batch.
	Index     int
	Codepoint int
	// Name is empty when the tile had no usable codepoint.
	Name string
	Err  error
}

func (e *GlyphError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("pipeline: tile %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("pipeline: tile %d (%s): %v", e.Index, e.Name, e.Err)
}

func (e *GlyphError) Unwrap() error { return e.Err }

// Report summarizes one Run.
type Report struct {
	// Added counts records committed to the store, fallbacks included.
	Added int
	// Blank counts committed records without ink.
	Blank int
	// Fallbacks counts blank records substituted for failed tiles.
	Fallbacks int
	// Failed lists tile failures in tile order.
	Failed []*GlyphError
}

// OK reports whether every tile vectorized.
func (r *Report) OK() bool { return len(r.Failed) == 0 }

// Err joins all tile failures, or returns nil.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	errs := make([]error, len(r.Failed))
	for i, f := range r.Failed {
		errs[i] = f
	}
	return errors.Join(errs...)
}

// Codepoints returns the codepoints of the failed tiles that had one.
func (r *Report) Codepoints() []int {
	var out []int
	for _, f := range r.Failed {
		if f.Name != "" {
			out = append(out, f.Codepoint)
		}
	}
	return out
}
