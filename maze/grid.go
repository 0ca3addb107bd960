package maze

import (
	"errors"
	"fmt"
)

var ErrInvalidDimensions = errors.New("invalid maze dimensions")

// Grid is a fixed-size rectangle of cells. Cells are mutated in place while a
// maze is carved; the shape never changes after NewGrid.
type Grid struct {
	width  int
	height int
	cells  [][]Cell // cells[y][x]
}

// NewGrid allocates a width×height grid with every wall closed. The origin
// cell starts with PathFrom set to North, marking it as the maze entrance.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = Cell{
				X:         x,
				Y:         y,
				EastWall:  true,
				SouthWall: true,
			}
		}
	}
	cells[0][0].PathFrom = North

	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Cell returns the cell at column x, row y. Coordinates are not checked.
func (g *Grid) Cell(x, y int) *Cell {
	return &g.cells[y][x]
}

// Neighbor returns the cell one step from c in direction d.
// It does not check bounds; guard with ContentInDirection first.
func (g *Grid) Neighbor(c *Cell, d Direction) *Cell {
	dx, dy := d.Delta()
	return &g.cells[c.Y+dy][c.X+dx]
}

// ContentInDirection reports what a step from c in direction d would hit.
func (g *Grid) ContentInDirection(c *Cell, d Direction) Content {
	switch d {
	case North:
		if c.Y == 0 {
			return Wall
		}
	case South:
		if c.Y == g.height-1 {
			return Wall
		}
	case East:
		if c.X == g.width-1 {
			return Wall
		}
	case West:
		if c.X == 0 {
			return Wall
		}
	}

	if g.Neighbor(c, d).Connected() {
		return Path
	}
	return Empty
}

// IsEndCell reports whether c is the exit in the bottom-right corner.
func (g *Grid) IsEndCell(c *Cell) bool {
	return c.X == g.width-1 && c.Y == g.height-1
}

// OpenWall turns path movement through c into open walls. Only the walls
// owned by c are touched, so a move north or west is opened later by the
// cell on the other side.
func (g *Grid) OpenWall(c *Cell) {
	if c.PathTo == East || c.PathFrom == East {
		c.EastWall = false
	}
	if c.PathTo == South || c.PathFrom == South {
		c.SouthWall = false
	}
}

// OpenWallToward opens c's own walls and also the wall shared with the
// neighbor in direction back when that neighbor owns it.
// back must be in bounds.
func (g *Grid) OpenWallToward(c *Cell, back Direction) {
	g.OpenWall(c)
	switch back {
	case North:
		g.Neighbor(c, back).SouthWall = false
	case West:
		g.Neighbor(c, back).EastWall = false
	}
}

// IsOpen reports whether a walker can step from c in direction d.
func (g *Grid) IsOpen(c *Cell, d Direction) bool {
	if g.ContentInDirection(c, d) == Wall {
		return false
	}

	switch d {
	case East:
		return !c.EastWall
	case South:
		return !c.SouthWall
	case West:
		return !g.Neighbor(c, d).EastWall
	case North:
		return !g.Neighbor(c, d).SouthWall
	default:
		return false
	}
}
