package grid

import "strings"

// Render draws the map with the guard at start and every visited
// position marked with an X. Each row ends with a newline.
func Render(m Map, start State, visited map[Position]struct{}) string {
	var b strings.Builder
	b.Grow(m.Rows() * (m.Cols() + 1))
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			p := Position{Row: r, Col: c}
			cell, _ := m.Cell(p)
			switch {
			case p == start.Pos:
				b.WriteByte(start.Heading.Glyph())
			case cell == Obstacle:
				b.WriteByte('#')
			default:
				if _, ok := visited[p]; ok {
					b.WriteByte('X')
				} else {
					b.WriteByte('.')
				}
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
