package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
)

// MazeGenerator builds mazes on request.
type MazeGenerator interface {
	// Generate clamps the request, builds the maze and reports any
	// adjustments in the returned Maze's Notices.
	Generate(context.Context, dmn.MazeRequest) (*dmn.Maze, error)
}
