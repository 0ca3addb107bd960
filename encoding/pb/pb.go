// Package pb encodes mazes in protobuf wire format.
//
// The message layout is:
//
//	message Maze {
//	  string id = 1;
//	  uint32 width = 2;
//	  uint32 height = 3;
//	  int64 seed = 4;
//	  string algorithm = 5;
//	  bytes cells = 6;
//	}
//
// cells holds one byte per cell in row-major order: bit 0 is the east wall,
// bit 1 the south wall, bits 2-4 PathFrom and bits 5-7 PathTo.
package pb

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/maze"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	fieldID        protowire.Number = 1
	fieldWidth     protowire.Number = 2
	fieldHeight    protowire.Number = 3
	fieldSeed      protowire.Number = 4
	fieldAlgorithm protowire.Number = 5
	fieldCells     protowire.Number = 6
)

const (
	eastWallBit   = 1 << 0
	southWallBit  = 1 << 1
	pathFromPos   = 2
	pathToPos     = 5
	directionMask = 0x7
)

var ErrMalformedMaze = errors.New("malformed maze payload")

// Snapshot is a generated maze with the parameters that produced it.
type Snapshot struct {
	ID        string
	Seed      int64
	Algorithm string
	Grid      *maze.Grid
}

// Protobuf marshals and unmarshals maze snapshots.
type Protobuf struct{}

// MarshalMaze encodes s. Empty strings and a zero seed are omitted, as proto3 does.
func (p *Protobuf) MarshalMaze(s *Snapshot) ([]byte, error) {
	if s == nil || s.Grid == nil {
		return nil, fmt.Errorf("%w: no grid", ErrMalformedMaze)
	}

	g := s.Grid
	var b []byte
	if s.ID != "" {
		b = protowire.AppendTag(b, fieldID, protowire.BytesType)
		b = protowire.AppendString(b, s.ID)
	}
	b = protowire.AppendTag(b, fieldWidth, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(g.Width()))
	b = protowire.AppendTag(b, fieldHeight, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(g.Height()))
	if s.Seed != 0 {
		b = protowire.AppendTag(b, fieldSeed, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(s.Seed))
	}
	if s.Algorithm != "" {
		b = protowire.AppendTag(b, fieldAlgorithm, protowire.BytesType)
		b = protowire.AppendString(b, s.Algorithm)
	}
	b = protowire.AppendTag(b, fieldCells, protowire.BytesType)
	b = protowire.AppendBytes(b, packCells(g))

	return b, nil
}

// UnmarshalMaze decodes a snapshot. Unknown fields are skipped.
func (p *Protobuf) UnmarshalMaze(b []byte) (*Snapshot, error) {
	var (
		s             Snapshot
		width, height uint64
		cells         []byte
	)

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, parseError(n)
		}
		b = b[n:]

		switch {
		case num == fieldID && typ == protowire.BytesType:
			s.ID, n = protowire.ConsumeString(b)
		case num == fieldWidth && typ == protowire.VarintType:
			width, n = protowire.ConsumeVarint(b)
		case num == fieldHeight && typ == protowire.VarintType:
			height, n = protowire.ConsumeVarint(b)
		case num == fieldSeed && typ == protowire.VarintType:
			var v uint64
			v, n = protowire.ConsumeVarint(b)
			s.Seed = int64(v)
		case num == fieldAlgorithm && typ == protowire.BytesType:
			s.Algorithm, n = protowire.ConsumeString(b)
		case num == fieldCells && typ == protowire.BytesType:
			var v []byte
			v, n = protowire.ConsumeBytes(b)
			cells = append([]byte(nil), v...)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return nil, parseError(n)
		}
		b = b[n:]
	}

	if width == 0 || height == 0 || width > maze.MaxWidth || height > maze.MaxHeight {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrMalformedMaze, width, height)
	}
	if uint64(len(cells)) != width*height {
		return nil, fmt.Errorf("%w: %d cells for %dx%d", ErrMalformedMaze, len(cells), width, height)
	}

	g, err := maze.NewGrid(int(width), int(height))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMaze, err)
	}
	if err := unpackCells(g, cells); err != nil {
		return nil, err
	}
	s.Grid = g

	return &s, nil
}

func packCells(g *maze.Grid) []byte {
	cells := make([]byte, 0, g.Width()*g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := g.Cell(x, y)
			var v byte
			if c.EastWall {
				v |= eastWallBit
			}
			if c.SouthWall {
				v |= southWallBit
			}
			v |= byte(c.PathFrom) << pathFromPos
			v |= byte(c.PathTo) << pathToPos
			cells = append(cells, v)
		}
	}
	return cells
}

func unpackCells(g *maze.Grid, cells []byte) error {
	for i, v := range cells {
		c := g.Cell(i%g.Width(), i/g.Width())
		from := maze.Direction((v >> pathFromPos) & directionMask)
		to := maze.Direction((v >> pathToPos) & directionMask)
		if !from.Valid() || !to.Valid() {
			return fmt.Errorf("%w: bad direction in cell (%d,%d)", ErrMalformedMaze, c.X, c.Y)
		}

		c.EastWall = v&eastWallBit != 0
		c.SouthWall = v&southWallBit != 0
		c.PathFrom = from
		c.PathTo = to
	}
	return nil
}

func parseError(n int) error {
	return fmt.Errorf("%w: %v", ErrMalformedMaze, protowire.ParseError(n))
}
