package patrol

import (
	"fmt"

	"patrol/internal/grid"
)

// InvariantViolation is returned when a walk runs past its step budget.
// For the tracker it means the guard never leaves the map; for the cycle
// detector it means a defect, since a repeated state must show up first.
type InvariantViolation struct {
	Op     string
	Budget int
	Last   grid.State
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("%s: step budget %d exceeded at %v", e.Op, e.Budget, e.Last)
}
