package worldmap

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blockworld/pkg/world"
)

// canonicalMap is already in saved form: tile IDs follow breadth-first
// order from tile 0 and exits are sorted by name, so a load/save round
// trip must reproduce it byte for byte.
const canonicalMap = `1
2
Bob
wood,wood,wood,soil

total:4
0 soil,soil,grass,wood
1 grass,grass,soil
2 soil,soil,soil,wood
3 grass,grass,grass,stone

exits
0 east:2,north:1,west:3
1 south:0
2 west:0
3 east:0
`

func TestReadCanonicalMap(t *testing.T) {
	m, err := Read(strings.NewReader(canonicalMap))
	require.NoError(t, err)

	assert.Equal(t, world.Position{X: 1, Y: 2}, m.StartPosition())

	b := m.Builder()
	assert.Equal(t, "Bob", b.Name())
	assert.Equal(t, []world.Block{world.Wood, world.Wood, world.Wood, world.Soil}, b.Inventory())

	tiles := m.Tiles()
	require.Len(t, tiles, 4)

	// tile 0 is the builder's starting tile
	assert.Same(t, tiles[0], b.CurrentTile())
	assert.Equal(t, []world.Block{world.Soil, world.Soil, world.Grass, world.Wood}, tiles[0].Blocks())
	assert.Equal(t, []world.Block{world.Grass, world.Grass, world.Soil}, tiles[1].Blocks())

	// layout derived from the exits, seeded at the start position
	assert.Same(t, tiles[0], m.Tile(world.Position{X: 1, Y: 2}))
	assert.Same(t, tiles[1], m.Tile(world.Position{X: 1, Y: 1}))
	assert.Same(t, tiles[2], m.Tile(world.Position{X: 2, Y: 2}))
	assert.Same(t, tiles[3], m.Tile(world.Position{X: 0, Y: 2}))

	assert.Same(t, tiles[2], tiles[0].Exit("east"))
	assert.Same(t, tiles[0], tiles[3].Exit("east"))
}

func TestRoundTrip(t *testing.T) {
	m, err := Read(strings.NewReader(canonicalMap))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, m.Write(&out))
	assert.Equal(t, canonicalMap, out.String())
}

func TestReadWithoutTrailingNewline(t *testing.T) {
	trimmed := strings.TrimSuffix(canonicalMap, "\n")
	m, err := Read(strings.NewReader(trimmed))
	require.NoError(t, err)

	// the save still ends with a newline
	var out bytes.Buffer
	require.NoError(t, m.Write(&out))
	assert.Equal(t, canonicalMap, out.String())
}

func TestReadTrailingBlankLine(t *testing.T) {
	_, err := Read(strings.NewReader(canonicalMap + "\n"))
	require.ErrorIs(t, err, ErrFormat)
}

func TestRoundTripEmptySections(t *testing.T) {
	// empty inventory, a tile with no blocks, a tile with no exits
	const m1 = "0\n0\nAl\n\n\ntotal:2\n0 \n1 wood\n\nexits\n0 north:1\n1 \n"

	m, err := Read(strings.NewReader(m1))
	require.NoError(t, err)
	assert.Empty(t, m.Builder().Inventory())
	assert.Equal(t, 0, m.Tiles()[0].Height())

	var out bytes.Buffer
	require.NoError(t, m.Write(&out))
	assert.Equal(t, m1, out.String())
}

func TestReadFormatErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int // 0 to skip the line assertion
	}{
		{"bad starting x", "abc\n2\nBob\n\n\ntotal:1\n0 \n\nexits\n0 \n", 1},
		{"bad starting y", "1\nx\nBob\n\n\ntotal:1\n0 \n\nexits\n0 \n", 2},
		{"unknown inventory block", "1\n2\nBob\nmud\n\ntotal:1\n0 \n\nexits\n0 \n", 4},
		{"uncarryable inventory block", "1\n2\nBob\ngrass\n\ntotal:1\n0 \n\nexits\n0 \n", 0},
		{"missing blank after inventory", "1\n2\nBob\nwood\ntotal:1\n0 \n\nexits\n0 \n", 5},
		{"no colon in total", "1\n2\nBob\n\n\ntotal1\n0 \n\nexits\n0 \n", 6},
		{"bad total count", "1\n2\nBob\n\n\ntotal:x\n0 \n\nexits\n0 \n", 6},
		{"negative total", "1\n2\nBob\n\n\ntotal:-1\n0 \n\nexits\n0 \n", 6},
		{"zero tiles", "1\n2\nBob\n\n\ntotal:0\n\nexits\n", 6},
		{"no space in tile entry", "1\n2\nBob\n\n\ntotal:1\n0\n\nexits\n0 \n", 7},
		{"too many spaces in tile entry", "1\n2\nBob\n\n\ntotal:1\n0 soil x\n\nexits\n0 \n", 7},
		{"tile id out of range", "1\n2\nBob\n\n\ntotal:1\n7 \n\nexits\n0 \n", 7},
		{"unknown tile block", "1\n2\nBob\n\n\ntotal:1\n0 mud\n\nexits\n0 \n", 7},
		{"ground block too high", "1\n2\nBob\n\n\ntotal:1\n0 wood,wood,wood,soil\n\nexits\n0 \n", 7},
		{"duplicate tile id", "1\n2\nBob\n\n\ntotal:2\n0 \n0 wood\n\nexits\n0 \n1 \n", 0},
		{"missing exits header", "1\n2\nBob\n\n\ntotal:1\n0 \n\nexit\n0 \n", 9},
		{"unknown exit name", "1\n2\nBob\n\n\ntotal:1\n0 \n\nexits\n0 up:0\n", 10},
		{"exit missing colon", "1\n2\nBob\n\n\ntotal:1\n0 \n\nexits\n0 north\n", 10},
		{"exit target out of range", "1\n2\nBob\n\n\ntotal:1\n0 \n\nexits\n0 north:9\n", 10},
		{"missing exit entries", "1\n2\nBob\n\n\ntotal:2\n0 \n1 \n\nexits\n0 \n", 0},
		{"truncated file", "1\n2\nBob\n", 0},
		{"empty file", "", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tc.input))
			require.ErrorIs(t, err, ErrFormat)

			if tc.line > 0 {
				var fe *FormatError
				require.ErrorAs(t, err, &fe)
				assert.Equal(t, tc.line, fe.Line, "reported line number")
			}
		})
	}
}

func TestReadInconsistentLayout(t *testing.T) {
	// both tiles claim the other is to its north, placing tile 0 at two
	// coordinates; this is a geometric failure, not a format failure
	const input = "0\n0\nBob\n\n\ntotal:2\n0 \n1 \n\nexits\n0 north:1\n1 north:0\n"

	_, err := Read(strings.NewReader(input))
	require.ErrorIs(t, err, world.ErrInconsistent)
	assert.False(t, errors.Is(err, ErrFormat))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.map"))
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.False(t, errors.Is(err, ErrFormat))
}

func TestLoadAndSaveFiles(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.map")
	out := filepath.Join(dir, "out.map")
	require.NoError(t, os.WriteFile(in, []byte(canonicalMap), 0o644))

	m, err := Load(in)
	require.NoError(t, err)
	require.NoError(t, m.Save(out))

	saved, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, canonicalMap, string(saved))
}

func TestNewInconsistent(t *testing.T) {
	t0 := world.NewTile()
	t1 := world.NewTile()
	require.NoError(t, t0.AddExit("north", t1))
	require.NoError(t, t1.AddExit("north", t0))

	_, err := New(t0, world.Position{}, world.NewBuilder("Bob", t0))
	require.ErrorIs(t, err, world.ErrInconsistent)
}

func TestNewAndWrite(t *testing.T) {
	start := world.NewTile()
	east, err := world.NewTileWithBlocks([]world.Block{world.Soil, world.Grass})
	require.NoError(t, err)
	require.NoError(t, start.AddExit("east", east))
	require.NoError(t, east.AddExit("west", start))

	builder, err := world.NewBuilderWithInventory("Ada", start, []world.Block{world.Wood})
	require.NoError(t, err)

	m, err := New(start, world.Position{X: -1, Y: 0}, builder)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, m.Write(&out))

	const want = "-1\n0\nAda\nwood\n\ntotal:2\n0 soil,soil,grass\n1 soil,grass\n\nexits\n0 east:1\n1 west:0\n"
	assert.Equal(t, want, out.String())
}
