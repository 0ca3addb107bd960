package dmn

import (
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// MazeRequest describes the maze a caller wants.
type MazeRequest struct {
	Width     int    // Requested columns, clamped to [maze.MinWidth, maze.MaxWidth].
	Height    int    // Requested rows, clamped to [maze.MinHeight, maze.MaxHeight].
	Seed      *int64 // Seed for the random source; nil picks one.
	Algorithm string // Generator name; empty selects the carver.
}

// Maze is a generated maze and the parameters that produced it.
type Maze struct {
	ID        uuid.UUID
	Width     int
	Height    int
	Seed      int64
	Algorithm string
	Grid      *maze.Grid
	Notices   []string // Adjustments made to the request, e.g. clamped dimensions.
	Cached    bool     // Cached is true when the grid came from the render cache.
}
