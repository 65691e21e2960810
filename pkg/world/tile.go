// Package world provides the block world primitives: blocks, tiles, the
// builder, and the sparse coordinate layout of linked tiles.
package world

import "fmt"

const (
	// maxBlocks is the maximum number of blocks allowed on a tile.
	maxBlocks = 8

	// maxGroundHeight is the highest stack index a ground block may sit at.
	maxGroundHeight = 3
)

// Tile represents a single tile in the world: a stack of blocks plus a
// mapping of exit names to neighbouring tiles. Exits may be one-directional.
type Tile struct {
	blocks []Block
	exits  map[string]*Tile
}

// NewTile creates a tile with no exits and the default starting stack of
// two soil blocks with a grass block on top.
func NewTile() *Tile {
	return &Tile{
		blocks: []Block{Soil, Soil, Grass},
		exits:  make(map[string]*Tile),
	}
}

// NewTileWithBlocks creates a tile with no exits and a copy of the given
// blocks, index 0 being the bottom of the stack. It returns ErrTooHigh if
// there are more than 8 blocks, or if a ground block sits at index 3 or
// higher.
func NewTileWithBlocks(blocks []Block) (*Tile, error) {
	if len(blocks) > maxBlocks {
		return nil, fmt.Errorf("%w: tile cannot hold %d blocks", ErrTooHigh, len(blocks))
	}
	for i := maxGroundHeight; i < len(blocks); i++ {
		if blocks[i].IsGround() {
			return nil, fmt.Errorf("%w: ground block at height %d", ErrTooHigh, i)
		}
	}

	t := &Tile{
		blocks: make([]Block, len(blocks)),
		exits:  make(map[string]*Tile),
	}
	copy(t.blocks, blocks)
	return t, nil
}

// Blocks returns a copy of the blocks on this tile, bottom to top
func (t *Tile) Blocks() []Block {
	blocks := make([]Block, len(t.blocks))
	copy(blocks, t.blocks)
	return blocks
}

// Height returns the number of blocks on this tile
func (t *Tile) Height() int {
	return len(t.blocks)
}

// Exits returns a copy of the exit mapping of this tile
func (t *Tile) Exits() map[string]*Tile {
	exits := make(map[string]*Tile, len(t.exits))
	for name, target := range t.exits {
		exits[name] = target
	}
	return exits
}

// Exit returns the tile at the named exit, or nil if there is no such exit
func (t *Tile) Exit(name string) *Tile {
	return t.exits[name]
}

// AddExit adds an exit to this tile, overwriting any existing exit with
// the same name. It returns ErrNoExit if the name is empty or the target
// is nil.
func (t *Tile) AddExit(name string, target *Tile) error {
	if name == "" || target == nil {
		return ErrNoExit
	}
	t.exits[name] = target
	return nil
}

// RemoveExit removes the named exit from this tile. It returns ErrNoExit
// if no such exit exists.
func (t *Tile) RemoveExit(name string) error {
	if _, ok := t.exits[name]; !ok {
		return ErrNoExit
	}
	delete(t.exits, name)
	return nil
}

// TopBlock returns the top block on the tile, or ErrTooLow if the tile
// has no blocks.
func (t *Tile) TopBlock() (Block, error) {
	if len(t.blocks) == 0 {
		return 0, ErrTooLow
	}
	return t.blocks[len(t.blocks)-1], nil
}

// RemoveTopBlock removes the top block on the tile, or returns ErrTooLow
// if the tile has no blocks.
func (t *Tile) RemoveTopBlock() error {
	if len(t.blocks) == 0 {
		return ErrTooLow
	}
	t.blocks = t.blocks[:len(t.blocks)-1]
	return nil
}

// Dig removes and returns the top block if it is diggable. It returns
// ErrTooLow if the tile has no blocks, and ErrInvalidBlock (leaving the
// block in place) if the top block is not diggable.
func (t *Tile) Dig() (Block, error) {
	top, err := t.TopBlock()
	if err != nil {
		return 0, err
	}
	if !top.Diggable() {
		return 0, ErrInvalidBlock
	}

	t.blocks = t.blocks[:len(t.blocks)-1]
	return top, nil
}

// PlaceBlock adds a block to the top of this tile. It returns
// ErrInvalidBlock if the block is not a valid variant, and ErrTooHigh if
// the tile already has 8 blocks, or already has 3 or more blocks and the
// block is a ground block.
func (t *Tile) PlaceBlock(b Block) error {
	if !b.IsValid() {
		return ErrInvalidBlock
	}
	if len(t.blocks) >= maxBlocks || (b.IsGround() && len(t.blocks) >= maxGroundHeight) {
		return ErrTooHigh
	}

	t.blocks = append(t.blocks, b)
	return nil
}

// MoveBlock moves the top block of this tile to the tile at the named
// exit. It returns ErrNoExit if there is no such exit, ErrTooHigh if the
// target tile is at least as high as this one, and ErrInvalidBlock if the
// top block is not moveable.
func (t *Tile) MoveBlock(exitName string) error {
	target, ok := t.exits[exitName]
	if !ok {
		return ErrNoExit
	}
	if target.Height() >= t.Height() {
		return ErrTooHigh
	}

	top, err := t.TopBlock()
	if err != nil {
		// target height < this height, so this tile is never empty here
		return err
	}
	if !top.Moveable() {
		return ErrInvalidBlock
	}

	// cannot fail: target has at most 6 blocks and moveable blocks are
	// never ground blocks
	if err := target.PlaceBlock(top); err != nil {
		return err
	}
	return t.RemoveTopBlock()
}
