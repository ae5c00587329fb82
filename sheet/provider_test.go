package sheet_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bitglyph/sheet"
)

const definition = `{
  "providers": [
    {"type": "space", "advances": {" ": 4}},
    {"type": "bitmap", "file": "minecraft:font/ascii.png", "ascent": 7,
     "chars": ["\u0000AB", "C😀"]},
    {"type": "bitmap", "file": "minecraft:font/accented.png", "height": 12, "chars": ["À"]},
    {"type": "bitmap", "file": "minecraft:font/empty.png", "chars": []}
  ]
}`

func TestParseProviders(t *testing.T) {
	ps, err := sheet.ParseProviders(strings.NewReader(definition))
	require.NoError(t, err)
	require.Len(t, ps, 2)

	ascii := ps[0]
	require.Equal(t, "ascii.png", ascii.File)
	require.Equal(t, "ascii", ascii.Name())
	require.Equal(t, 7, ascii.Ascent)
	require.Equal(t, sheet.DefaultHeight, ascii.Height)
	require.Equal(t, [][]rune{{0, 'A', 'B'}, {'C', 0x1F600}}, ascii.Chars)
	require.Equal(t, 3, ascii.Columns())
	require.Equal(t, 4, ascii.Len())

	accented := ps[1]
	require.Equal(t, -1, accented.Ascent)
	require.Equal(t, 12, accented.Height)
	require.Equal(t, [][]rune{{'À'}}, accented.Chars)
}

func TestParseProviders_Errors(t *testing.T) {
	_, err := sheet.ParseProviders(strings.NewReader(`{"providers": [`))
	require.Error(t, err)

	_, err = sheet.ParseProviders(strings.NewReader(
		`{"providers": [{"type": "bitmap", "file": "a.png", "height": 0, "chars": ["a"]}]}`))
	require.ErrorContains(t, err, "height 0")

	ps, err := sheet.ParseProviders(strings.NewReader(`{}`))
	require.NoError(t, err)
	require.Empty(t, ps)
}
