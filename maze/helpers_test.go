package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// openInternalWalls counts open walls between two in-bounds cells and fails
// if a boundary wall was opened.
func openInternalWalls(t *testing.T, g *Grid) int {
	t.Helper()
	open := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := g.Cell(x, y)
			if x == g.Width()-1 {
				require.True(t, c.EastWall, "east boundary open at (%d,%d)", x, y)
			} else if !c.EastWall {
				open++
			}
			if y == g.Height()-1 {
				require.True(t, c.SouthWall, "south boundary open at (%d,%d)", x, y)
			} else if !c.SouthWall {
				open++
			}
		}
	}
	return open
}

// reachable runs a breadth-first search over open walls from the origin and
// returns the parent direction of every reached cell.
func reachable(g *Grid) map[*Cell]Direction {
	start := g.Cell(0, 0)
	parents := map[*Cell]Direction{start: None}
	queue := []*Cell{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			if !g.IsOpen(c, d) {
				continue
			}
			n := g.Neighbor(c, d)
			if _, seen := parents[n]; seen {
				continue
			}
			parents[n] = d.Inverse()
			queue = append(queue, n)
		}
	}
	return parents
}

// countRoutes counts simple routes from c to the end cell over open walls.
func countRoutes(g *Grid, c *Cell, visited map[*Cell]bool) int {
	if g.IsEndCell(c) {
		return 1
	}
	visited[c] = true
	routes := 0
	for _, d := range Directions {
		if !g.IsOpen(c, d) {
			continue
		}
		n := g.Neighbor(c, d)
		if visited[n] {
			continue
		}
		routes += countRoutes(g, n, visited)
	}
	visited[c] = false
	return routes
}

// requirePerfect asserts the spanning tree properties of a finished maze.
func requirePerfect(t *testing.T, g *Grid) {
	t.Helper()
	cells := g.Width() * g.Height()

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			require.True(t, g.Cell(x, y).Connected(), "cell (%d,%d) not joined", x, y)
		}
	}

	require.Equal(t, cells-1, openInternalWalls(t, g), "open walls")
	require.Len(t, reachable(g), cells, "cells reachable from the entrance")
	require.Equal(t, 1, countRoutes(g, g.Cell(0, 0), map[*Cell]bool{}), "routes to the exit")
}
