package patrol

import "patrol/internal/grid"

// HasCycle reports whether the guard starting at start comes back to a
// state it has already been in before leaving the map.
func HasCycle(m grid.Map, start grid.State) (bool, error) {
	seen := map[grid.State]struct{}{}
	budget := Budget(m)

	s := start
	for i := 0; i < budget; i++ {
		// checked before stepping, otherwise a loop is walked forever
		if _, ok := seen[s]; ok {
			return true, nil
		}
		seen[s] = struct{}{}

		out := Step(m, s)
		if out.Kind == Exited {
			return false, nil
		}
		s = out.State
	}
	return false, &InvariantViolation{Op: "has cycle", Budget: budget, Last: s}
}
