package grid

// Obstructed is a view of Base with one extra obstacle placed At.
// Base is only read, so several overlays may share it.
type Obstructed struct {
	Base *Grid
	At   Position
}

// Rows returns the number of rows of the base grid
func (o Obstructed) Rows() int {
	return o.Base.Rows()
}

// Cols returns the number of columns of the base grid
func (o Obstructed) Cols() int {
	return o.Base.Cols()
}

// Cell returns Obstacle for the overlaid position, the base cell otherwise
func (o Obstructed) Cell(p Position) (Cell, bool) {
	if p == o.At && o.Base.Contains(p) {
		return Obstacle, true
	}
	return o.Base.Cell(p)
}
