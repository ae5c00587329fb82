package sheet

import (
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"
)

// DefaultHeight is the glyph height assumed when a provider omits it.
const DefaultHeight = 8

// Provider is one bitmap provider of a font definition.
type Provider struct {
	// File is the sheet path below the font texture directory,
	// e.g. "ascii.png" for "minecraft:font/ascii.png".
	File string
	// Ascent is the baseline distance from the top of a glyph in display
	// pixels, or -1 when the definition does not say.
	Ascent int
	// Height is the display height of a glyph.
	Height int
	// Chars holds one slice per sheet row.
	Chars [][]rune
}

type definition struct {
	Providers []struct {
		Type   string   `json:"type"`
		File   string   `json:"file"`
		Ascent *int     `json:"ascent"`
		Height *int     `json:"height"`
		Chars  []string `json:"chars"`
	} `json:"providers"`
}

// ParseProviders decodes a font definition and returns its bitmap
// providers in order. Providers of other types, or without chars, are
// skipped.
func ParseProviders(r io.Reader) ([]Provider, error) {
	var def definition
	if err := json.NewDecoder(r).Decode(&def); err != nil {
		return nil, fmt.Errorf("sheet: parse providers: %w", err)
	}

	var out []Provider
	for i, raw := range def.Providers {
		if raw.Type != "bitmap" || len(raw.Chars) == 0 {
			continue
		}
		p := Provider{
			File:   textureFile(raw.File),
			Ascent: -1,
			Height: DefaultHeight,
			Chars:  make([][]rune, len(raw.Chars)),
		}
		if raw.Ascent != nil {
			p.Ascent = *raw.Ascent
		}
		if raw.Height != nil {
			if *raw.Height <= 0 {
				return nil, fmt.Errorf("sheet: provider %d (%s): height %d", i, raw.File, *raw.Height)
			}
			p.Height = *raw.Height
		}
		for row, s := range raw.Chars {
			p.Chars[row] = []rune(s)
		}
		out = append(out, p)
	}
	return out, nil
}

// textureFile strips the resource namespace and the "font/" directory.
func textureFile(id string) string {
	if i := strings.IndexByte(id, ':'); i >= 0 {
		id = id[i+1:]
	}
	return strings.TrimPrefix(id, "font/")
}

// Name returns the sheet file name without extension.
func (p Provider) Name() string {
	base := path.Base(p.File)
	return strings.TrimSuffix(base, path.Ext(base))
}

// Columns returns the length of the longest char row.
func (p Provider) Columns() int {
	n := 0
	for _, row := range p.Chars {
		n = max(n, len(row))
	}
	return n
}

// Len returns the number of cells that map to a character.
func (p Provider) Len() int {
	n := 0
	for _, row := range p.Chars {
		for _, r := range row {
			if r != 0 {
				n++
			}
		}
	}
	return n
}
