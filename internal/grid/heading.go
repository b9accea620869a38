package grid

import "fmt"

// Heading is the direction the guard is facing
type Heading int

const (
	// Up heading
	Up Heading = iota
	// Right heading
	Right
	// Down heading
	Down
	// Left heading
	Left
)

const numHeadings = 4

// Turn returns the heading rotated 90 degrees clockwise
func (h Heading) Turn() Heading {
	return (h + 1) % numHeadings
}

// Offset gives the row and column deltas of one step forward
func (h Heading) Offset() (dr, dc int) {
	switch h {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	}
	panic(fmt.Sprintf("invalid heading %d", int(h)))
}

// Glyph returns the marker character used for the heading in grid text
func (h Heading) Glyph() byte {
	switch h {
	case Up:
		return '^'
	case Right:
		return '>'
	case Down:
		return 'v'
	case Left:
		return '<'
	}
	return '?'
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "UP"
	case Right:
		return "RIGHT"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	}
	return fmt.Sprintf("Heading(%d)", int(h))
}

// headingFromGlyph maps a start marker to its heading
func headingFromGlyph(c byte) (Heading, bool) {
	switch c {
	case '^':
		return Up, true
	case '>':
		return Right, true
	case 'v':
		return Down, true
	case '<':
		return Left, true
	}
	return 0, false
}
