package world

// Block represents one block in a tile's stack or a builder's inventory.
// The variant set is closed; each variant carries a fixed attribute table.
type Block int

// Block variants
const (
	Grass Block = iota
	Soil
	Stone
	Wood
)

// blockTraits is the fixed attribute table for a block variant.
type blockTraits struct {
	blockType string
	colour    string
	diggable  bool
	moveable  bool
	carryable bool
	ground    bool
}

// Ground blocks (grass, soil) are never moveable and always diggable.
var blockTable = [...]blockTraits{
	Grass: {blockType: "grass", colour: "green", diggable: true, ground: true},
	Soil:  {blockType: "soil", colour: "black", diggable: true, carryable: true, ground: true},
	Stone: {blockType: "stone", colour: "gray"},
	Wood:  {blockType: "wood", colour: "brown", diggable: true, moveable: true, carryable: true},
}

// ParseBlock returns the block named by the given serialization tag
// ("grass", "soil", "stone" or "wood"), and whether the tag was known.
func ParseBlock(blockType string) (Block, bool) {
	for b, traits := range blockTable {
		if traits.blockType == blockType {
			return Block(b), true
		}
	}
	return 0, false
}

// IsValid returns true if the block is one of the known variants
func (b Block) IsValid() bool {
	return b >= Grass && b <= Wood
}

// BlockType returns the serialization tag of the block
func (b Block) BlockType() string {
	if !b.IsValid() {
		return "unknown"
	}
	return blockTable[b].blockType
}

// Colour returns the colour name of the block
func (b Block) Colour() string {
	if !b.IsValid() {
		return "unknown"
	}
	return blockTable[b].colour
}

// Diggable returns true if the block can be removed from a tile by digging
func (b Block) Diggable() bool {
	return b.IsValid() && blockTable[b].diggable
}

// Moveable returns true if the block can be shifted to adjacent tiles
func (b Block) Moveable() bool {
	return b.IsValid() && blockTable[b].moveable
}

// Carryable returns true if the block can be added to a builder's inventory
func (b Block) Carryable() bool {
	return b.IsValid() && blockTable[b].carryable
}

// IsGround returns true for ground blocks, which must stay near the
// bottom of a tile's stack
func (b Block) IsGround() bool {
	return b.IsValid() && blockTable[b].ground
}

// String returns the serialization tag of the block
func (b Block) String() string {
	return b.BlockType()
}
