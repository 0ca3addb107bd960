package maze

// Content describes what lies one step away from a cell.
type Content uint8

const (
	Empty Content = iota // Empty is an in-bounds cell no path has reached yet.
	Wall                 // Wall is the outer boundary of the grid.
	Path                 // Path is a cell already joined to the maze.
)

// Cell represents a single cell in a maze grid.
// Only the east and south walls are stored; the north and west walls of a
// cell are the south and east walls of its neighbors.
type Cell struct {
	X int // X is the column index of the cell.
	Y int // Y is the row index of the cell.

	// PathFrom is the direction the path entered from. None means the cell
	// is not part of the maze yet.
	PathFrom Direction
	// PathTo is the direction the path left by, or None for a dead end.
	PathTo Direction

	EastWall  bool // EastWall indicates whether the east side is closed.
	SouthWall bool // SouthWall indicates whether the south side is closed.
}

// Connected reports whether a path has reached the cell.
func (c *Cell) Connected() bool {
	return c.PathFrom != None
}
