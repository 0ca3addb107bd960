package maze

// Direction is one of the four compass moves between adjacent cells, or None.
type Direction uint8

const (
	None Direction = iota
	North
	East
	South
	West
)

// Axis groups directions that run along the same line.
type Axis uint8

const (
	NoAxis Axis = iota
	NorthSouth
	EastWest
)

// Directions lists the four moves in the order candidates are collected.
// Seeded builds depend on this order staying fixed.
var Directions = [...]Direction{North, East, South, West}

var (
	inverses = [...]Direction{
		None:  None,
		North: South,
		East:  West,
		South: North,
		West:  East,
	}

	axes = [...]Axis{
		None:  NoAxis,
		North: NorthSouth,
		East:  EastWest,
		South: NorthSouth,
		West:  EastWest,
	}

	deltas = [...]struct{ dx, dy int }{
		None:  {0, 0},
		North: {0, -1},
		East:  {1, 0},
		South: {0, 1},
		West:  {-1, 0},
	}

	directionNames = [...]string{
		None:  "None",
		North: "North",
		East:  "East",
		South: "South",
		West:  "West",
	}
)

// Inverse returns the opposite direction. None stays None.
func (d Direction) Inverse() Direction {
	return inverses[d]
}

// Axis reports whether d runs north-south or east-west.
func (d Direction) Axis() Axis {
	return axes[d]
}

// Delta returns the column and row offsets of a single step in d.
func (d Direction) Delta() (dx, dy int) {
	return deltas[d].dx, deltas[d].dy
}

// Valid reports whether d is None or one of the four moves.
func (d Direction) Valid() bool {
	return int(d) < len(inverses)
}

func (d Direction) String() string {
	if !d.Valid() {
		return "Unknown"
	}
	return directionNames[d]
}
