package world

import "errors"

// Domain failures raised by Tile and Builder operations. Callers match
// them with errors.Is; during action processing they are recoverable.
var (
	// ErrNoExit is returned when a named exit does not exist or a tile
	// cannot be entered.
	ErrNoExit = errors.New("world: no exit this way")

	// ErrTooHigh is returned when placing a block would break a tile's
	// height limits.
	ErrTooHigh = errors.New("world: too high")

	// ErrTooLow is returned when removing a block from an empty tile.
	ErrTooLow = errors.New("world: too low")

	// ErrInvalidBlock is returned when a block cannot be used for the
	// requested operation.
	ErrInvalidBlock = errors.New("world: cannot use that block")
)

// ErrInconsistent is returned by SparseTileArray.AddLinkedTiles when the
// linked tiles cannot be assigned geometrically consistent coordinates.
var ErrInconsistent = errors.New("world: inconsistent tile layout")
