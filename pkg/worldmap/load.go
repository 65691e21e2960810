package worldmap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"blockworld/pkg/world"
)

// lineReader wraps a scanner and tracks the 1-based number of the last
// line read, so format errors can point at the offending line.
type lineReader struct {
	scanner *bufio.Scanner
	line    int
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{scanner: bufio.NewScanner(r)}
}

// errorf builds a FormatError pointing at the current line
func (r *lineReader) errorf(format string, args ...any) *FormatError {
	return &FormatError{Line: r.line, Msg: fmt.Sprintf(format, args...)}
}

// next reads one line, or fails with missingMsg if the input has ended
func (r *lineReader) next(missingMsg string) (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", r.errorf("read failed: %v", err)
		}
		return "", r.errorf("%s", missingMsg)
	}
	r.line++
	return r.scanner.Text(), nil
}

// blank consumes one line and requires it to be empty
func (r *lineReader) blank(missingMsg, notBlankMsg string) error {
	line, err := r.next(missingMsg)
	if err != nil {
		return err
	}
	if line != "" {
		return r.errorf("%s", notBlankMsg)
	}
	return nil
}

// eof requires that the input has ended
func (r *lineReader) eof(msg string) error {
	if r.scanner.Scan() {
		r.line++
		return r.errorf("%s", msg)
	}
	if err := r.scanner.Err(); err != nil {
		return r.errorf("read failed: %v", err)
	}
	return nil
}

// parseInt parses a decimal integer, naming the field on failure
func (r *lineReader) parseInt(s, what string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, r.errorf("%s is not a valid integer", what)
	}
	return v, nil
}

// parseTileID parses a tile ID and requires it to be in [0, total)
func (r *lineReader) parseTileID(s string, total int) (int, error) {
	id, err := r.parseInt(s, "tile ID")
	if err != nil {
		return 0, err
	}
	if id < 0 || id >= total {
		return 0, r.errorf("tile ID %d is out of range", id)
	}
	return id, nil
}

// splitEntry splits an "<id> <rest>" line on its single separating space.
// The rest may be empty, but the space must be present.
func (r *lineReader) splitEntry(line string) (id, rest string, err error) {
	parts := strings.SplitN(line, " ", 3)
	switch len(parts) {
	case 2:
		return parts[0], parts[1], nil
	case 1:
		return "", "", r.errorf("no space in entry")
	default:
		return "", "", r.errorf("too many spaces in entry")
	}
}

// parseBlocks parses a comma-separated list of block names. An empty
// string is an empty list.
func (r *lineReader) parseBlocks(s string) ([]world.Block, error) {
	if s == "" {
		return nil, nil
	}

	names := strings.Split(s, ",")
	blocks := make([]world.Block, 0, len(names))
	for _, name := range names {
		b, ok := world.ParseBlock(name)
		if !ok {
			return nil, r.errorf("unknown block name %q", name)
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

// parseTotal parses the "total:<N>" header and returns N
func (r *lineReader) parseTotal(line string) (int, error) {
	parts := strings.SplitN(line, ":", 3)
	switch {
	case len(parts) == 1:
		return 0, r.errorf("no colon in total line")
	case len(parts) == 3:
		return 0, r.errorf("too many colons in total line")
	case parts[0] != "total":
		return 0, r.errorf("expected %q in total line, got %q", "total", parts[0])
	}

	total, err := r.parseInt(parts[1], "tile count")
	if err != nil {
		return 0, err
	}
	if total < 0 {
		return 0, r.errorf("tile count is negative")
	}
	return total, nil
}

// addExits parses one tile's "name:id" exit list and links the exits
func (r *lineReader) addExits(tiles []*world.Tile, id int, s string) error {
	if s == "" {
		return nil
	}

	for _, entry := range strings.Split(s, ",") {
		parts := strings.SplitN(entry, ":", 3)
		if len(parts) == 1 {
			return r.errorf("exit entry %q is missing a colon", entry)
		}
		if len(parts) == 3 {
			return r.errorf("exit entry %q has too many colons", entry)
		}

		name := parts[0]
		if _, ok := world.ParseDirection(name); !ok {
			return r.errorf("unknown exit name %q", name)
		}

		target, err := r.parseTileID(parts[1], len(tiles))
		if err != nil {
			return err
		}

		if err := tiles[id].AddExit(name, tiles[target]); err != nil {
			return r.errorf("cannot add exit %q: %v", name, err)
		}
	}
	return nil
}

// Load reads a world map from the named file. The error from opening the
// file is returned unchanged, so a missing file can be told apart from a
// malformed one with errors.Is(err, fs.ErrNotExist).
func Load(path string) (*WorldMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// Read parses a world map from r. The format is line oriented:
//
//	<startX>
//	<startY>
//	<builder name>
//	<block>,<block>,...     (blank line for an empty inventory)
//	<blank line>
//	total:<N>
//	<id> <block>,<block>,...    one line per tile, ID in [0, N)
//	<blank line>
//	exits
//	<id> <name>:<id>,<name>:<id>,...    one line per tile
//
// Tile 0 becomes the builder's starting tile. A final trailing newline is
// optional, but any further content, including blank lines, is an error.
// Malformed input yields a *FormatError (matching ErrFormat); input that
// parses but links tiles into a geometrically impossible layout yields an
// error matching world.ErrInconsistent.
func Read(r io.Reader) (*WorldMap, error) {
	lr := newLineReader(r)

	xLine, err := lr.next("file ended before starting position")
	if err != nil {
		return nil, err
	}
	x, err := lr.parseInt(xLine, "starting position x")
	if err != nil {
		return nil, err
	}

	yLine, err := lr.next("file ended before starting position y")
	if err != nil {
		return nil, err
	}
	y, err := lr.parseInt(yLine, "starting position y")
	if err != nil {
		return nil, err
	}

	name, err := lr.next("file ended before builder name")
	if err != nil {
		return nil, err
	}

	inventoryLine, err := lr.next("file ended before inventory")
	if err != nil {
		return nil, err
	}
	inventory, err := lr.parseBlocks(inventoryLine)
	if err != nil {
		return nil, err
	}

	if err := lr.blank("file ended after inventory",
		"expected blank line after inventory"); err != nil {
		return nil, err
	}

	totalLine, err := lr.next("file ended before total line")
	if err != nil {
		return nil, err
	}
	total, err := lr.parseTotal(totalLine)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, lr.errorf("map contains no tiles")
	}

	tiles := make([]*world.Tile, total)
	for i := 0; i < total; i++ {
		line, err := lr.next("missing tile entry under total line")
		if err != nil {
			return nil, err
		}

		idToken, blockList, err := lr.splitEntry(line)
		if err != nil {
			return nil, err
		}
		id, err := lr.parseTileID(idToken, total)
		if err != nil {
			return nil, err
		}
		blocks, err := lr.parseBlocks(blockList)
		if err != nil {
			return nil, err
		}

		tile, err := world.NewTileWithBlocks(blocks)
		if err != nil {
			return nil, lr.errorf("invalid tile stack: %v", err)
		}
		tiles[id] = tile
	}

	for i, tile := range tiles {
		if tile == nil {
			return nil, lr.errorf("missing entry for tile %d", i)
		}
	}

	if err := lr.blank("file ended after tile entries",
		"expected blank line after tile entries"); err != nil {
		return nil, err
	}

	exitsLine, err := lr.next("file ended before exits header")
	if err != nil {
		return nil, err
	}
	if exitsLine != "exits" {
		return nil, lr.errorf("expected %q header, got %q", "exits", exitsLine)
	}

	linked := mapset.New[int]()
	for i := 0; i < total; i++ {
		line, err := lr.next("missing tile entry under exits header")
		if err != nil {
			return nil, err
		}

		idToken, exitList, err := lr.splitEntry(line)
		if err != nil {
			return nil, err
		}
		id, err := lr.parseTileID(idToken, total)
		if err != nil {
			return nil, err
		}
		if err := lr.addExits(tiles, id, exitList); err != nil {
			return nil, err
		}
		linked.Put(id)
	}

	for i := 0; i < total; i++ {
		if !linked.Has(i) {
			return nil, lr.errorf("missing exit entry for tile %d", i)
		}
	}

	if err := lr.eof("extra content after exit entries"); err != nil {
		return nil, err
	}

	builder, err := world.NewBuilderWithInventory(name, tiles[0], inventory)
	if err != nil {
		return nil, &FormatError{Msg: fmt.Sprintf("invalid inventory: %v", err)}
	}

	// geometric inconsistency is not a format error; it propagates as
	// world.ErrInconsistent
	return New(tiles[0], world.Position{X: x, Y: y}, builder)
}
