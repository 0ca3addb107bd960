// Package mazeapi provides structures and handlers for serving generated mazes.
package mazeapi

import (
	"github.com/google/uuid"
)

// MazeQuery holds the query parameters of a maze request.
// Width and height are parsed leniently: a non-numeric value falls back to
// the default and is reported as a notice.
type MazeQuery struct {
	Width     string `form:"width"`
	Height    string `form:"height"`
	Seed      *int64 `form:"seed"`
	Algorithm string `form:"algorithm" binding:"omitempty,oneof=carver wilson"`
}

// MazeResponse represents a generated maze.
type MazeResponse struct {
	ID        uuid.UUID `json:"id"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Seed      int64     `json:"seed"`
	Algorithm string    `json:"algorithm"`
	Notices   []string  `json:"notices"`
	Rows      []string  `json:"rows"`
}
