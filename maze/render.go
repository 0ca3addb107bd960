package maze

import "strings"

// Render draws the maze as ASCII art, one line per row plus the north wall.
// The north wall is one segment short of the grid width and the last row
// ends with an open gap before its closing bar; both mark the entrance and
// exit of the drawing.
func Render(g *Grid) string {
	var sb strings.Builder
	sb.Grow((g.width*2 + 2) * (g.height + 1))

	// North boundary
	sb.WriteString("  ")
	sb.WriteString(strings.Repeat("__", g.width-1))
	sb.WriteByte('\n')

	y := 0
	for ; y < g.height-1; y++ {
		sb.WriteByte('|')
		for x := 0; x < g.width; x++ {
			writeCell(&sb, g.Cell(x, y))
		}
		sb.WriteByte('\n')
	}

	sb.WriteByte('|')
	for x := 0; x < g.width-1; x++ {
		writeCell(&sb, g.Cell(x, y))
	}
	sb.WriteString(" |\n")

	return sb.String()
}

// Lines returns the rendered maze split into its lines.
func Lines(g *Grid) []string {
	return strings.Split(strings.TrimSuffix(Render(g), "\n"), "\n")
}

func writeCell(sb *strings.Builder, c *Cell) {
	if c.SouthWall {
		sb.WriteByte('_')
	} else {
		sb.WriteByte(' ')
	}
	if c.EastWall {
		sb.WriteByte('|')
	} else {
		sb.WriteByte(' ')
	}
}

// String provides a textual representation of the maze.
func (g *Grid) String() string {
	return Render(g)
}
