// Package fontconfig loads the settings of a font build from YAML.
//
// Every key is optional; missing keys keep the values of Default:
//
//	family: Blocky
//	copyright: ""
//	definition: assets/font/default.json  # provider JSON
//	textures: assets/textures/font        # directory holding the sheets
//	output: build/Blocky.ttf
//	units_per_em: 1024
//	grid_size: 8
//	ascent: 896
//	descent: -128
//	threshold: 128
//	invert: false
//	workers: 0            # 0 = one per CPU
//	blank_on_error: true
package fontconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bitglyph/outline"
	"github.com/katalvlaran/bitglyph/pipeline"
	"github.com/katalvlaran/bitglyph/pixelgrid"
	"github.com/katalvlaran/bitglyph/ttf"
)

// ErrInvalid indicates settings that cannot produce a font.
var ErrInvalid = errors.New("fontconfig: invalid settings")

// File is the YAML layout of a build configuration.
type File struct {
	Family    string `yaml:"family"`
	Copyright string `yaml:"copyright"`

	Definition string `yaml:"definition"`
	Textures   string `yaml:"textures"`
	Output     string `yaml:"output"`

	UnitsPerEm int `yaml:"units_per_em"`
	GridSize   int `yaml:"grid_size"`
	Ascent     int `yaml:"ascent"`
	Descent    int `yaml:"descent"`

	Threshold int  `yaml:"threshold"`
	Invert    bool `yaml:"invert"`

	Workers      int  `yaml:"workers"`
	BlankOnError bool `yaml:"blank_on_error"`
}

// Default returns the settings of the stock 8-pixel font.
func Default() File {
	return File{
		Family:       "Bitglyph",
		Definition:   "assets/font/default.json",
		Textures:     "assets/textures/font",
		Output:       "Bitglyph.ttf",
		UnitsPerEm:   outline.DefaultUnitsPerEm,
		GridSize:     outline.DefaultGridSize,
		Ascent:       896,
		Descent:      -128,
		Threshold:    int(pixelgrid.DefaultThreshold),
		BlankOnError: true,
	}
}

// Load decodes YAML from r over Default and validates the result.
// Unknown keys are rejected.
func Load(r io.Reader) (File, error) {
	f := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("fontconfig: %w", err)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// LoadFile is Load on the named file.
func LoadFile(name string) (File, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return File{}, fmt.Errorf("fontconfig: %w", err)
	}
	return Load(bytes.NewReader(data))
}

// Validate reports the first setting that makes no sense.
func (f File) Validate() error {
	switch {
	case f.Family == "":
		return fmt.Errorf("%w: empty family", ErrInvalid)
	case f.UnitsPerEm < 16 || f.UnitsPerEm > 16384:
		return fmt.Errorf("%w: units_per_em %d not in [16, 16384]", ErrInvalid, f.UnitsPerEm)
	case f.GridSize <= 0:
		return fmt.Errorf("%w: grid_size %d", ErrInvalid, f.GridSize)
	case f.Descent > 0:
		return fmt.Errorf("%w: descent %d must not be positive", ErrInvalid, f.Descent)
	case f.Threshold < 1 || f.Threshold > 255:
		return fmt.Errorf("%w: threshold %d not in [1, 255]", ErrInvalid, f.Threshold)
	case f.Workers < 0:
		return fmt.Errorf("%w: workers %d", ErrInvalid, f.Workers)
	}
	return nil
}

// Outline returns the assembler configuration.
func (f File) Outline() outline.Config {
	return outline.NewConfig(
		outline.WithUnitsPerEm(f.UnitsPerEm),
		outline.WithGridSize(f.GridSize),
	)
}

// Info returns the font-wide metadata.
func (f File) Info() ttf.Info {
	info := ttf.DefaultInfo(f.Family, f.Outline())
	info.Copyright = f.Copyright
	info.Ascent = f.Ascent
	info.Descent = f.Descent
	info.CapHeight = f.Ascent
	return info
}

// ImageOptions returns the binarization options for the sheets.
func (f File) ImageOptions() []pixelgrid.ImageOption {
	opts := []pixelgrid.ImageOption{pixelgrid.WithThreshold(uint8(f.Threshold))}
	if f.Invert {
		opts = append(opts, pixelgrid.WithInvert())
	}
	return opts
}

// Pipeline returns the batch options.
func (f File) Pipeline() pipeline.Options {
	return pipeline.Options{Workers: f.Workers, BlankOnError: f.BlankOnError}
}
