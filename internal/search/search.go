// Package search finds the single obstacle placements that trap the guard
// in a loop.
package search

import (
	"cmp"
	"context"
	"fmt"
	"runtime"
	"slices"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"patrol/internal/grid"
	"patrol/internal/patrol"
)

// Result of a full obstruction search
type Result struct {
	// Visited is the number of distinct positions on the baseline path
	Visited int
	// Count is the number of placements that make the guard loop
	Count int
	// Positions holds the looping placements in row-major order
	Positions []grid.Position
}

// Option configures a Searcher
type Option func(*Searcher)

// WithWorkers sets how many candidates are evaluated at once.
// n <= 0 uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(s *Searcher) {
		s.workers = n
	}
}

// Searcher evaluates obstruction candidates
type Searcher struct {
	logger  *zap.Logger
	workers int
}

// New returns a searcher logging to logger, nil logs nothing
func New(logger *zap.Logger, opts ...Option) *Searcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Searcher{logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	if s.workers <= 0 {
		s.workers = runtime.GOMAXPROCS(0)
	}
	return s
}

// Candidates returns the positions worth obstructing: every open cell on
// the baseline path except the start. Cells the guard never reaches can't
// change its walk.
func Candidates(g *grid.Grid, start grid.State, path *patrol.Path) []grid.Position {
	out := make([]grid.Position, 0, len(path.Positions))
	for p := range path.Positions {
		if p == start.Pos {
			continue
		}
		// a visited cell is open, skip anything else anyway
		if cell, ok := g.Cell(p); !ok || cell != grid.Open {
			continue
		}
		out = append(out, p)
	}
	slices.SortFunc(out, comparePositions)
	return out
}

// Run walks the baseline path and counts the looping obstructions on it.
// Every candidate gets its own overlay of g, g itself is never modified.
func (s *Searcher) Run(ctx context.Context, g *grid.Grid, start grid.State) (*Result, error) {
	path, err := patrol.TrackPath(g, start)
	if err != nil {
		return nil, fmt.Errorf("baseline patrol: %w", err)
	}
	candidates := Candidates(g, start, path)
	s.logger.Debug("Baseline patrol done",
		zap.Int("visited", path.Visited()),
		zap.Int("steps", path.Steps),
		zap.Int("candidates", len(candidates)))

	var (
		mu      sync.Mutex
		looping []grid.Position
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.workers)
	for _, p := range candidates {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			loop, err := patrol.HasCycle(grid.Obstructed{Base: g, At: p}, start)
			if err != nil {
				return fmt.Errorf("obstruction at %v: %w", p, err)
			}
			if loop {
				s.logger.Debug("Obstruction makes the guard loop", zap.Stringer("position", p))
				mu.Lock()
				looping = append(looping, p)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slices.SortFunc(looping, comparePositions)
	res := &Result{
		Visited:   path.Visited(),
		Count:     len(looping),
		Positions: looping,
	}
	s.logger.Info("Obstruction search done",
		zap.Int("visited", res.Visited),
		zap.Int("candidates", len(candidates)),
		zap.Int("looping", res.Count),
		zap.Int("workers", s.workers))
	return res, nil
}

// CountLoopingObstructions evaluates every candidate in turn and returns
// the number that make the guard loop
func CountLoopingObstructions(g *grid.Grid, start grid.State) (int, error) {
	res, err := New(nil, WithWorkers(1)).Run(context.Background(), g, start)
	if err != nil {
		return 0, err
	}
	return res.Count, nil
}

func comparePositions(a, b grid.Position) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.Col, b.Col)
}
