/*
Package maze provides tools for creating and drawing rectangular perfect mazes.

A maze is a `Grid` of `Cell`s. Every cell records the direction its path came
from and went to, plus its east and south walls. A finished grid is a spanning
tree: exactly one route joins any two cells, in particular the entrance at
(0,0) and the exit at (width-1, height-1).

Two generators are available. `Builder` first carves a long, twisting solution
path under rules that keep it from boxing itself in, then fills the rest of the
grid with random filler paths. `Wilson` carves a uniform spanning tree with
loop-erased random walks.

`Render` draws a grid as ASCII art.
*/
package maze

import (
	"errors"
	"fmt"
)

// Algorithm names accepted by NewGenerator.
const (
	AlgorithmCarver = "carver"
	AlgorithmWilson = "wilson"
)

var ErrUnknownAlgorithm = errors.New("unknown maze algorithm")

// Rand is the source of randomness for a generator. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Generator carves a maze into the grid it was created with.
type Generator interface {
	Build()
}

// NewGenerator returns the generator registered under algorithm.
// An empty name selects the carver.
func NewGenerator(algorithm string, g *Grid, rng Rand) (Generator, error) {
	switch algorithm {
	case "", AlgorithmCarver:
		return NewBuilder(g, rng), nil
	case AlgorithmWilson:
		return NewWilson(g, rng), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

// New allocates a width×height grid and carves a maze into it.
func New(width, height int, algorithm string, rng Rand) (*Grid, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	gen, err := NewGenerator(algorithm, g, rng)
	if err != nil {
		return nil, err
	}
	gen.Build()

	return g, nil
}
