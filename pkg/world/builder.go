package world

import "fmt"

// Builder represents the mobile agent that modifies the world. A builder
// has a name, an ordered inventory of carryable blocks, and occupies
// exactly one tile at a time.
type Builder struct {
	name        string
	inventory   []Block
	currentTile *Tile
}

// NewBuilder creates a builder with an empty inventory standing on the
// given starting tile.
func NewBuilder(name string, startingTile *Tile) *Builder {
	return &Builder{
		name:        name,
		currentTile: startingTile,
	}
}

// NewBuilderWithInventory creates a builder standing on the given starting
// tile with a copy of the given inventory. It returns ErrInvalidBlock if
// any block in the inventory is not carryable.
func NewBuilderWithInventory(name string, startingTile *Tile, inventory []Block) (*Builder, error) {
	b := NewBuilder(name, startingTile)
	for _, block := range inventory {
		if !block.Carryable() {
			return nil, fmt.Errorf("%w: %s cannot be carried", ErrInvalidBlock, block)
		}
		b.inventory = append(b.inventory, block)
	}
	return b, nil
}

// Name returns the builder's name
func (b *Builder) Name() string {
	return b.name
}

// CurrentTile returns the tile the builder is standing on
func (b *Builder) CurrentTile() *Tile {
	return b.currentTile
}

// Inventory returns a copy of the builder's inventory in insertion order
func (b *Builder) Inventory() []Block {
	inventory := make([]Block, len(b.inventory))
	copy(inventory, b.inventory)
	return inventory
}

// DropFromInventory places the block at the given inventory index on top
// of the current tile and removes it from the inventory. It returns
// ErrInvalidBlock if the index is out of range, and ErrTooHigh if the
// block cannot be placed; the inventory is unchanged on failure.
func (b *Builder) DropFromInventory(index int) error {
	if index < 0 || index >= len(b.inventory) {
		return ErrInvalidBlock
	}

	if err := b.currentTile.PlaceBlock(b.inventory[index]); err != nil {
		return err
	}

	b.inventory = append(b.inventory[:index], b.inventory[index+1:]...)
	return nil
}

// DigOnCurrentTile digs the top block of the current tile and, if the dug
// block is carryable, appends it to the inventory. Blocks that cannot be
// carried are discarded. It returns ErrTooLow if the tile has no blocks
// and ErrInvalidBlock if the top block is not diggable.
func (b *Builder) DigOnCurrentTile() error {
	block, err := b.currentTile.Dig()
	if err != nil {
		return err
	}

	if block.Carryable() {
		b.inventory = append(b.inventory, block)
	}
	return nil
}

// CanEnter reports whether the builder can move onto the given tile: the
// tile must be reachable through an exit of the current tile, and its
// height must differ from the current tile's by at most one block.
func (b *Builder) CanEnter(tile *Tile) bool {
	if tile == nil {
		return false
	}

	connected := false
	for _, target := range b.currentTile.exits {
		if target == tile {
			connected = true
			break
		}
	}

	diff := tile.Height() - b.currentTile.Height()
	if diff < 0 {
		diff = -diff
	}

	return connected && diff <= 1
}

// MoveTo moves the builder onto the given tile, or returns ErrNoExit if
// the tile cannot be entered.
func (b *Builder) MoveTo(tile *Tile) error {
	if !b.CanEnter(tile) {
		return ErrNoExit
	}

	b.currentTile = tile
	return nil
}
