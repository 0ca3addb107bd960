package maze

// Wilson carves a uniform spanning tree with Wilson's algorithm: loop-erased
// random walks from unjoined cells until they hit the maze. The origin is the
// root of the tree, so the maze still runs from (0,0) to the end cell.
type Wilson struct {
	grid *Grid
	rng  Rand
}

// NewWilson returns a Wilson generator for g.
func NewWilson(g *Grid, rng Rand) *Wilson {
	return &Wilson{
		grid: g,
		rng:  rng,
	}
}

// Build joins every cell of the grid to the tree rooted at the origin.
func (w *Wilson) Build() {
	g := w.grid
	remaining := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.Cell(x, y).Connected() {
				remaining++
			}
		}
	}

	for remaining > 0 {
		order, exits := w.randomWalk()
		for _, c := range order {
			d := exits[c]
			c.PathFrom = d
			g.OpenWallToward(c, d)
			remaining--
		}
	}
}

// randomUnjoinedCell selects a random cell that is not part of the maze.
func (w *Wilson) randomUnjoinedCell() *Cell {
	g := w.grid
	for {
		c := g.Cell(w.rng.Intn(g.width), w.rng.Intn(g.height))
		if !c.Connected() {
			return c
		}
	}
}

// randomWalk wanders from a random unjoined cell until it steps onto the
// maze. Only the last exit taken from each cell is kept, which erases loops:
// following last exits from any walked cell always ends on the maze.
// Cells are returned in first-visit order.
func (w *Wilson) randomWalk() ([]*Cell, map[*Cell]Direction) {
	g := w.grid
	exits := make(map[*Cell]Direction)
	var order []*Cell
	moves := make([]Direction, 0, len(Directions))

	c := w.randomUnjoinedCell()
	for {
		moves = moves[:0]
		for _, d := range Directions {
			if g.ContentInDirection(c, d) != Wall {
				moves = append(moves, d)
			}
		}

		d := moves[w.rng.Intn(len(moves))]
		if _, seen := exits[c]; !seen {
			order = append(order, c)
		}
		exits[c] = d

		next := g.Neighbor(c, d)
		if next.Connected() {
			return order, exits
		}
		c = next
	}
}
