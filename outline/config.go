// SPDX-License-Identifier: MIT
// Package: bitglyph/outline
//
// config.go: explicit assembler configuration and functional options.
//
// Contract:
//   • Config is a plain value passed to Assemble; there are no package globals.
//   • Option constructors VALIDATE and PANIC on meaningless inputs; Assemble
//     itself never panics.
//   • Defaults match the bitmap font this tool was built for: 1024 units per
//     em over an 8-pixel cell, baseline offset 0, blank advance = one cell.

package outline

const (
	// DefaultUnitsPerEm is the output em size in font units.
	DefaultUnitsPerEm = 1024
	// DefaultGridSize is the source cell size in pixels.
	DefaultGridSize = 8
)

// Config carries everything Assemble needs besides the polygons.
type Config struct {
	// UnitsPerEm is the output em size in font units.
	UnitsPerEm int
	// GridSize is the source cell size in pixels; one em spans GridSize pixels.
	GridSize int
	// BaselineOffset shifts the glyph up by this many pixels.
	BaselineOffset int
	// DefaultAdvance is the advance, in pixels, of a blank glyph.
	DefaultAdvance int
}

// Option customizes a Config.
type Option func(*Config)

// NewConfig resolves opts over the defaults, in order. When no option sets
// DefaultAdvance it follows GridSize.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		UnitsPerEm:     DefaultUnitsPerEm,
		GridSize:       DefaultGridSize,
		DefaultAdvance: -1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.DefaultAdvance < 0 {
		cfg.DefaultAdvance = cfg.GridSize
	}
	return cfg
}

// With returns a copy of c with opts applied on top.
func (c Config) With(opts ...Option) Config {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Scale returns font units per pixel.
func (c Config) Scale() float64 {
	return float64(c.UnitsPerEm) / float64(c.GridSize)
}

// WithUnitsPerEm sets the output em size. Panics if n <= 0.
func WithUnitsPerEm(n int) Option {
	if n <= 0 {
		panic("outline: WithUnitsPerEm(n <= 0)")
	}
	return func(c *Config) { c.UnitsPerEm = n }
}

// WithGridSize sets the source cell size in pixels. Panics if n <= 0.
func WithGridSize(n int) Option {
	if n <= 0 {
		panic("outline: WithGridSize(n <= 0)")
	}
	return func(c *Config) { c.GridSize = n }
}

// WithBaselineOffset shifts every glyph up by n pixels (down if negative).
func WithBaselineOffset(n int) Option {
	return func(c *Config) { c.BaselineOffset = n }
}

// WithDefaultAdvance sets the advance of blank glyphs. Panics if n < 0.
func WithDefaultAdvance(n int) Option {
	if n < 0 {
		panic("outline: WithDefaultAdvance(n < 0)")
	}
	return func(c *Config) { c.DefaultAdvance = n }
}
