package world

import "fmt"

// SparseTileArray assigns coordinates to a graph of linked tiles. It is
// populated by a breadth-first walk from a starting tile and afterwards
// answers position lookups and yields the tiles in visit order, which is
// the authoritative tile numbering for saved maps.
type SparseTileArray struct {
	tileAt  map[Position]*Tile
	ordered []*Tile
}

// NewSparseTileArray creates an empty sparse tile array
func NewSparseTileArray() *SparseTileArray {
	a := &SparseTileArray{}
	a.reset()
	return a
}

// Tile returns the tile at the given position, or nil if no tile has been
// placed there.
func (a *SparseTileArray) Tile(p Position) *Tile {
	return a.tileAt[p]
}

// Tiles returns the tiles in breadth-first visit order. The returned
// slice is a copy; modifying it does not affect later calls.
func (a *SparseTileArray) Tiles() []*Tile {
	tiles := make([]*Tile, len(a.ordered))
	copy(tiles, a.ordered)
	return tiles
}

// AddLinkedTiles discards the current contents and assigns a coordinate
// to every tile reachable from startingTile, with startingTile placed at
// (startingX, startingY). A tile behind a "north", "east", "south" or
// "west" exit must sit one step in that direction from its neighbour;
// exits with other names carry no geometric meaning. One-way exits are
// allowed, but if any tile would need two coordinates, or two tiles the
// same coordinate, an error wrapping ErrInconsistent is returned and the
// array is left empty.
func (a *SparseTileArray) AddLinkedTiles(startingTile *Tile, startingX, startingY int) error {
	a.reset()

	// positions keyed by tile identity: two structurally identical tiles
	// at different coordinates must remain distinct
	positionOf := make(map[*Tile]Position)

	start := Position{X: startingX, Y: startingY}
	a.tileAt[start] = startingTile
	positionOf[startingTile] = start

	queue := []*Tile{startingTile}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		a.ordered = append(a.ordered, current)

		position := positionOf[current]
		for _, dir := range AllDirections() {
			next := current.exits[dir.String()]
			if next == nil {
				continue
			}

			expected := position.Neighbour(dir)
			place, err := checkPlacement(a.tileAt, positionOf, expected, next)
			if err != nil {
				a.reset()
				return err
			}
			if !place {
				// already placed consistently, do not revisit
				continue
			}

			a.tileAt[expected] = next
			positionOf[next] = expected
			queue = append(queue, next)
		}
	}

	return nil
}

// checkPlacement reports whether tile still needs to be recorded at
// position, or returns an error wrapping ErrInconsistent if the placement
// conflicts with what has been recorded so far.
func checkPlacement(tileAt map[Position]*Tile, positionOf map[*Tile]Position,
	position Position, tile *Tile) (bool, error) {

	if placedAt, placed := positionOf[tile]; placed && placedAt != position {
		return false, fmt.Errorf("%w: tile expected at %v is already placed at %v",
			ErrInconsistent, position, placedAt)
	}
	if occupant := tileAt[position]; occupant != nil && occupant != tile {
		return false, fmt.Errorf("%w: position %v is occupied by a different tile",
			ErrInconsistent, position)
	}

	_, placed := positionOf[tile]
	return !placed, nil
}

func (a *SparseTileArray) reset() {
	a.tileAt = make(map[Position]*Tile)
	a.ordered = nil
}
