package world

import "fmt"

// Position represents the coordinate of a Tile in a SparseTileArray.
// Positions are comparable values and can be used as map keys.
type Position struct {
	X int
	Y int
}

// Neighbour returns the position one step away in the given direction
func (p Position) Neighbour(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Compare orders positions by x, then by y. It returns -1 if p sorts
// before other, 1 if after, and 0 if they are equal.
func (p Position) Compare(other Position) int {
	switch {
	case p.X < other.X:
		return -1
	case p.X > other.X:
		return 1
	case p.Y < other.Y:
		return -1
	case p.Y > other.Y:
		return 1
	default:
		return 0
	}
}

// String returns the position as "(x, y)"
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
