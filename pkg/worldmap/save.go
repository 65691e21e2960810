package worldmap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"blockworld/pkg/world"
)

// Save writes the map to the named file in the format accepted by Read
func (m *WorldMap) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := m.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write writes the map to w. Tiles are numbered in breadth-first order
// and each tile's exits are written sorted by exit name, so writing an
// unmodified loaded map reproduces the input byte for byte.
func (m *WorldMap) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d\n", m.start.X)
	fmt.Fprintf(bw, "%d\n", m.start.Y)
	fmt.Fprintf(bw, "%s\n", m.builder.Name())
	fmt.Fprintf(bw, "%s\n", encodeBlocks(m.builder.Inventory()))
	fmt.Fprintln(bw)

	tiles := m.Tiles()
	fmt.Fprintf(bw, "total:%d\n", len(tiles))

	// tile identity to ID, for resolving exit targets
	ids := make(map[*world.Tile]int, len(tiles))
	for id, tile := range tiles {
		ids[tile] = id
	}

	for id, tile := range tiles {
		fmt.Fprintf(bw, "%d %s\n", id, encodeBlocks(tile.Blocks()))
	}
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "exits")
	for id, tile := range tiles {
		fmt.Fprintf(bw, "%d %s\n", id, encodeExits(tile, ids))
	}

	return bw.Flush()
}

// encodeBlocks renders a block list as comma-separated block names
func encodeBlocks(blocks []world.Block) string {
	names := make([]string, len(blocks))
	for i, b := range blocks {
		names[i] = b.BlockType()
	}
	return strings.Join(names, ",")
}

// encodeExits renders a tile's exits as "name:id" pairs sorted by name
func encodeExits(tile *world.Tile, ids map[*world.Tile]int) string {
	exits := tile.Exits()

	names := make([]string, 0, len(exits))
	for name := range exits {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]string, len(names))
	for i, name := range names {
		entries[i] = fmt.Sprintf("%s:%d", name, ids[exits[name]])
	}
	return strings.Join(entries, ",")
}
