package ttf

import (
	"math"
	"time"

	"github.com/katalvlaran/bitglyph/outline"
)

// Info holds the font-wide data that does not come from the glyphs.
type Info struct {
	FamilyName string
	Copyright  string
	// Time is stored as both creation and modification time.
	Time time.Time

	// Ascent, Descent (negative below the baseline), LineGap and
	// CapHeight are in font units.
	Ascent    int
	Descent   int
	LineGap   int
	CapHeight int

	// Outline carries the units per em and the pixel scale.
	Outline outline.Config
}

// Vertical metrics at 1024 units per em.
const (
	defaultAscent  = 896
	defaultDescent = -128
)

// DefaultInfo returns the metrics of an 8-pixel bitmap font scaled to
// cfg.UnitsPerEm: seven pixels above the baseline and one below.
func DefaultInfo(family string, cfg outline.Config) Info {
	k := float64(cfg.UnitsPerEm) / outline.DefaultUnitsPerEm
	s := func(v int) int { return int(math.Round(float64(v) * k)) }
	return Info{
		FamilyName: family,
		Time:       time.Now(),
		Ascent:     s(defaultAscent),
		Descent:    s(defaultDescent),
		CapHeight:  s(defaultAscent),
		Outline:    cfg,
	}
}
