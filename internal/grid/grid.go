// Package grid models the patrol area: a rectangular map of open and
// obstacle cells with a single guard marker on it.
package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Cell is the kind of a single grid cell
type Cell byte

const (
	// Open cell can be walked through
	Open Cell = iota
	// Obstacle cell makes the guard turn
	Obstacle
)

// Position is a pair of coordinates, (0,0) is the top-left corner
type Position struct {
	Row, Col int
}

// Step returns the position one cell ahead in the given heading
func (p Position) Step(h Heading) Position {
	dr, dc := h.Offset()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// State is where the guard stands and where it faces.
// Two states are equal only if both fields are equal.
type State struct {
	Pos     Position
	Heading Heading
}

func (s State) String() string {
	return fmt.Sprintf("%v %v", s.Pos, s.Heading)
}

// Map is a read-only view of the patrol area
type Map interface {
	Rows() int
	Cols() int
	// Cell returns false if the position lies outside the map
	Cell(p Position) (Cell, bool)
}

// Grid is the parsed patrol area. It is never modified after Parse.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// Rows returns the number of rows
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns
func (g *Grid) Cols() int {
	return g.cols
}

// Contains reports whether the position is within the grid bounds
func (g *Grid) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Cell returns the kind of the cell at p
func (g *Grid) Cell(p Position) (Cell, bool) {
	if !g.Contains(p) {
		return Open, false
	}
	return g.cells[p.Row*g.cols+p.Col], true
}

// MalformedGridError is returned when the grid text cannot be parsed
type MalformedGridError struct {
	Row, Col int
	Reason   string
}

func (e *MalformedGridError) Error() string {
	if e.Row < 0 {
		return "malformed grid: " + e.Reason
	}
	return fmt.Sprintf("malformed grid at row %d col %d: %s", e.Row, e.Col, e.Reason)
}

func malformed(reason string) *MalformedGridError {
	return &MalformedGridError{Row: -1, Col: -1, Reason: reason}
}

// Parse builds a grid from the given rows and extracts the guard start.
// The start cell itself is open.
func Parse(rows []string) (*Grid, State, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, State{}, malformed("empty grid")
	}

	g := &Grid{
		rows:  len(rows),
		cols:  len(rows[0]),
		cells: make([]Cell, 0, len(rows)*len(rows[0])),
	}
	var start State
	found := false

	for i, s := range rows {
		if len(s) != g.cols {
			return nil, State{}, &MalformedGridError{
				Row:    i,
				Col:    len(s),
				Reason: fmt.Sprintf("row length %d, expected %d", len(s), g.cols),
			}
		}
		for j := 0; j < len(s); j++ {
			c := s[j]
			switch c {
			case '.':
				g.cells = append(g.cells, Open)
			case '#':
				g.cells = append(g.cells, Obstacle)
			default:
				h, ok := headingFromGlyph(c)
				if !ok {
					return nil, State{}, &MalformedGridError{
						Row:    i,
						Col:    j,
						Reason: fmt.Sprintf("unexpected character %q", c),
					}
				}
				if found {
					return nil, State{}, &MalformedGridError{
						Row:    i,
						Col:    j,
						Reason: fmt.Sprintf("second start marker, first at %v", start.Pos),
					}
				}
				found = true
				start = State{Pos: Position{Row: i, Col: j}, Heading: h}
				g.cells = append(g.cells, Open)
			}
		}
	}

	if !found {
		return nil, State{}, malformed("no start marker")
	}
	return g, start, nil
}

// ParseString parses newline separated grid text
func ParseString(text string) (*Grid, State, error) {
	return ReadFrom(strings.NewReader(text))
}

// ReadFrom reads grid text from r. Lines are trimmed and trailing
// blank lines are ignored.
func ReadFrom(r io.Reader) (*Grid, State, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, State{}, fmt.Errorf("read grid: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return Parse(rows)
}
