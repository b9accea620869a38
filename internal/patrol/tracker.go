package patrol

import "patrol/internal/grid"

// Path is everything the guard visited on a walk that left the map
type Path struct {
	Positions map[grid.Position]struct{}
	States    map[grid.State]struct{}
	// Steps counts all transitions, turns included
	Steps int
}

func newPath() *Path {
	return &Path{
		Positions: map[grid.Position]struct{}{},
		States:    map[grid.State]struct{}{},
	}
}

// remember records the state the guard is in
func (p *Path) remember(s grid.State) {
	p.Positions[s.Pos] = struct{}{}
	p.States[s] = struct{}{}
}

// Visited returns the number of distinct positions on the path
func (p *Path) Visited() int {
	return len(p.Positions)
}

// TrackPath walks the guard from start until it exits the map.
// It doesn't look for cycles; a walk longer than Budget(m) transitions
// returns an InvariantViolation instead of running forever.
func TrackPath(m grid.Map, start grid.State) (*Path, error) {
	path := newPath()
	path.remember(start)

	budget := Budget(m)
	s := start
	for {
		out := Step(m, s)
		if out.Kind == Exited {
			return path, nil
		}
		path.Steps++
		if path.Steps > budget {
			return nil, &InvariantViolation{Op: "track path", Budget: budget, Last: s}
		}
		s = out.State
		path.remember(s)
	}
}
