package maze

import "fmt"

// Builder carves a perfect maze with a single solution path. It first lays a
// twisting solution path from the origin to the end cell, then joins every
// untouched cell to the maze with random filler paths.
type Builder struct {
	grid *Grid
	rng  Rand
}

// NewBuilder returns a Builder that carves g using rng for every choice.
func NewBuilder(g *Grid, rng Rand) *Builder {
	return &Builder{
		grid: g,
		rng:  rng,
	}
}

// Build carves the solution path followed by the filler paths.
func (b *Builder) Build() {
	b.CarveSolution()
	b.FillRest()
}

// CarveSolution lays the solution path from (0,0) to the end cell.
// The path never crosses itself. When it walks into a one-cell blind alley it
// backs out a single step and tries again from the previous cell.
func (b *Builder) CarveSolution() {
	g := b.grid
	cur := g.Cell(0, 0)
	cur.PathFrom = North

	backout := false
	candidates := make([]Direction, 0, len(Directions))

	for !g.IsEndCell(cur) {
		candidates = candidates[:0]
		for _, d := range Directions {
			if b.canSolutionGo(cur, d) {
				candidates = append(candidates, d)
			}
		}

		var d Direction
		if len(candidates) == 0 {
			// Step back the way we came. The previous cell keeps its
			// PathFrom, and this cell stays marked as path so it is not
			// offered again.
			d = cur.PathFrom
			g.OpenWallToward(cur, d)
			backout = true
		} else {
			d = candidates[b.rng.Intn(len(candidates))]
		}

		cur.PathTo = d
		g.OpenWall(cur)
		cur = g.Neighbor(cur, d)

		if backout {
			backout = false
			continue
		}
		cur.PathFrom = d.Inverse()
	}
}

// canSolutionGo applies the solution path's movement rules.
func (b *Builder) canSolutionGo(c *Cell, d Direction) bool {
	g := b.grid
	if g.ContentInDirection(c, d) != Empty {
		return false
	}

	// Along the outer edge the path may only run east or south.
	switch d.Axis() {
	case EastWest:
		if c.Y == 0 || c.Y == g.height-1 {
			return d == East
		}
	case NorthSouth:
		if c.X == 0 || c.X == g.width-1 {
			return d == South
		}
	}

	// Turning: a path just ahead already heading the same way (or arriving
	// from there) would be cut off by this turn.
	if d != c.PathFrom && d.Inverse() != c.PathFrom {
		ahead := g.Neighbor(c, c.PathFrom.Inverse())
		if ahead.PathTo == d || ahead.PathFrom == d.Inverse() {
			return false
		}
	}

	return true
}

// FillRest joins every cell the solution path missed. Cells are visited
// column by column; each unjoined cell is attached to a random joined
// neighbor and a filler path is grown from it.
func (b *Builder) FillRest() {
	g := b.grid
	candidates := make([]Direction, 0, len(Directions))

	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			c := g.Cell(x, y)
			if c.Connected() {
				continue
			}

			candidates = candidates[:0]
			for _, d := range Directions {
				if g.ContentInDirection(c, d) == Path {
					candidates = append(candidates, d)
				}
			}
			if len(candidates) == 0 {
				panic(fmt.Sprintf("maze: cell (%d,%d) has no joined neighbor", x, y))
			}

			d := candidates[b.rng.Intn(len(candidates))]
			c.PathFrom = d
			g.OpenWallToward(c, d)
			b.growFiller(c)
		}
	}
}

// growFiller extends a random path from c until it is boxed in.
func (b *Builder) growFiller(c *Cell) {
	g := b.grid
	candidates := make([]Direction, 0, len(Directions))

	for {
		candidates = candidates[:0]
		for _, d := range Directions {
			if g.ContentInDirection(c, d) == Empty {
				candidates = append(candidates, d)
			}
		}
		if len(candidates) == 0 {
			g.OpenWall(c)
			return
		}

		d := candidates[b.rng.Intn(len(candidates))]
		c.PathTo = d
		g.OpenWall(c)
		c = g.Neighbor(c, d)
		c.PathFrom = d.Inverse()
	}
}
