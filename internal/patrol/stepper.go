// Package patrol simulates the guard walking the grid: it moves forward
// until the cell ahead is an obstacle, then turns right, and stops once it
// walks off the map.
package patrol

import (
	"fmt"

	"patrol/internal/grid"
)

// Kind tells what a single transition did
type Kind int

const (
	// Advanced means the guard moved one cell forward
	Advanced Kind = iota
	// Turned means the guard rotated clockwise in place
	Turned
	// Exited means the cell ahead is off the map, the patrol is over
	Exited
)

func (k Kind) String() string {
	switch k {
	case Advanced:
		return "ADVANCED"
	case Turned:
		return "TURNED"
	case Exited:
		return "EXITED"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Outcome is the result of one transition.
// State is the guard state after the transition; for Exited it is
// the unchanged state the guard left the map from.
type Outcome struct {
	Kind  Kind
	State grid.State
}

// Step advances the guard once from s.
// A turn doesn't move the guard, the caller must step again from the
// turned state before the next real move.
func Step(m grid.Map, s grid.State) Outcome {
	ahead := s.Pos.Step(s.Heading)
	cell, ok := m.Cell(ahead)
	switch {
	case !ok:
		return Outcome{Kind: Exited, State: s}
	case cell == grid.Obstacle:
		return Outcome{Kind: Turned, State: grid.State{Pos: s.Pos, Heading: s.Heading.Turn()}}
	default:
		return Outcome{Kind: Advanced, State: grid.State{Pos: ahead, Heading: s.Heading}}
	}
}

// Budget returns the number of distinct guard states on the map plus one.
// No terminating or cycle-checked walk can take more transitions.
func Budget(m grid.Map) int {
	return m.Rows()*m.Cols()*4 + 1
}
