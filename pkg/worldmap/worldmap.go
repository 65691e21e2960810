// Package worldmap provides the WorldMap aggregate and its text codec: a
// strict line-oriented format that persists the tile graph, the builder
// and the starting position.
package worldmap

import (
	"errors"
	"fmt"

	"blockworld/pkg/world"
)

// ErrFormat matches every world map format error, regardless of which
// line it was detected on.
var ErrFormat = errors.New("worldmap: invalid map format")

// FormatError describes a malformed world map file. Line is the 1-based
// line number the error was detected on, or 0 when no line applies.
// FormatError matches ErrFormat under errors.Is.
type FormatError struct {
	Line int
	Msg  string
}

// Error returns the diagnostic message for the format error
func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("worldmap: error on line %d: %s", e.Line, e.Msg)
	}
	return "worldmap: " + e.Msg
}

// Unwrap makes FormatError match ErrFormat
func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// WorldMap represents one block world: a laid-out tile graph, the builder
// traversing it, and the starting position used to seed the layout.
type WorldMap struct {
	tileArray *world.SparseTileArray
	start     world.Position
	builder   *world.Builder
}

// New creates a world map from a starting tile, its position, and a
// builder standing on that tile. All tiles linked to startingTile are
// laid out; an error wrapping world.ErrInconsistent is returned if their
// exits are not geometrically consistent.
func New(startingTile *world.Tile, start world.Position, builder *world.Builder) (*WorldMap, error) {
	tileArray := world.NewSparseTileArray()
	if err := tileArray.AddLinkedTiles(startingTile, start.X, start.Y); err != nil {
		return nil, err
	}

	return &WorldMap{
		tileArray: tileArray,
		start:     start,
		builder:   builder,
	}, nil
}

// Builder returns the builder traversing this world
func (m *WorldMap) Builder() *world.Builder {
	return m.builder
}

// StartPosition returns the position of the first tile
func (m *WorldMap) StartPosition() world.Position {
	return m.start
}

// Tile returns the tile at the given position, or nil if there is none
func (m *WorldMap) Tile(p world.Position) *world.Tile {
	return m.tileArray.Tile(p)
}

// Tiles returns the tiles in breadth-first order. The index of a tile in
// this slice is its ID in the saved map format.
func (m *WorldMap) Tiles() []*world.Tile {
	return m.tileArray.Tiles()
}
