package sheet

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/katalvlaran/bitglyph/glyph"
	"github.com/katalvlaran/bitglyph/pixelgrid"
)

// Decode reads a PNG or BMP sheet; the format is chosen by name's extension.
func Decode(r io.Reader, name string) (image.Image, error) {
	var (
		img image.Image
		err error
	)
	switch strings.ToLower(path.Ext(name)) {
	case ".png":
		img, err = png.Decode(r)
	case ".bmp":
		img, err = bmp.Decode(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrFormat, name)
	}
	if err != nil {
		return nil, fmt.Errorf("sheet: decode %s: %w", name, err)
	}
	return img, nil
}

// Load opens and decodes the sheet of p from fsys.
func Load(fsys fs.FS, p Provider) (image.Image, error) {
	f, err := fsys.Open(p.File)
	if err != nil {
		return nil, fmt.Errorf("sheet: %w", err)
	}
	defer f.Close()
	return Decode(f, p.File)
}

// Slice binarizes img and cuts it into one tile per character of p, in
// row-major order. Cells mapped to U+0000 are skipped. The provider ascent
// is scaled from display pixels to sheet pixels.
// Returns ErrSheetSize if img does not split into equal cells.
func Slice(img image.Image, p Provider, opts ...pixelgrid.ImageOption) ([]glyph.Tile, error) {
	cols, rows := p.Columns(), len(p.Chars)
	if cols == 0 {
		return nil, nil
	}
	b := img.Bounds()
	if b.Dx()%cols != 0 || b.Dy()%rows != 0 || b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("%w: %s is %dx%d for %d columns and %d rows",
			ErrSheetSize, p.File, b.Dx(), b.Dy(), cols, rows)
	}
	cw, ch := b.Dx()/cols, b.Dy()/rows

	var ascent int
	hasAscent := p.Ascent >= 0 && p.Height > 0
	if hasAscent {
		ascent = p.Ascent * ch / p.Height
	}

	g := pixelgrid.FromImage(img, opts...)
	tiles := make([]glyph.Tile, 0, p.Len())
	for r, row := range p.Chars {
		for c, char := range row {
			if char == 0 {
				continue
			}
			cell, err := g.Sub(c*cw, r*ch, cw, ch)
			if err != nil {
				return nil, fmt.Errorf("sheet: %s cell %d,%d: %w", p.File, r, c, err)
			}
			tiles = append(tiles, glyph.Tile{Codepoint: int(char), Grid: cell, Ascent: ascent, HasAscent: hasAscent})
		}
	}
	return tiles, nil
}
