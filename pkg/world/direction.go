package world

// Direction represents a cardinal direction
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions in the fixed traversal order
// (north, east, south, west). This order determines breadth-first layout
// order and therefore tile IDs in saved maps.
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// ParseDirection returns the direction named by the given exit name, and
// whether the name was one of "north", "east", "south" or "west".
func ParseDirection(name string) (Direction, bool) {
	switch name {
	case "north":
		return North, true
	case "east":
		return East, true
	case "south":
		return South, true
	case "west":
		return West, true
	default:
		return 0, false
	}
}

// String returns the exit name of the direction, as used in map files
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Delta returns the x and y offsets for this direction. North decreases y,
// south increases it; east increases x, west decreases it.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}
