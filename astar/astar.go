// Package astar finds shortest paths on a four-connected, unit-cost grid.
package astar

import (
	"container/heap"

	mapset "github.com/deckarep/golang-set"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"gridpath/grid"
)

// ErrExpansionLimit is returned when a search closes more nodes than the
// Finder allows.
var ErrExpansionLimit = errors.New("astar: expansion limit reached")

// Result of one search. Path is nil and Found false when the goal cannot be
// reached; that is not an error.
type Result struct {
	Path     Path
	Found    bool
	Cost     float64
	Expanded int
}

type Option func(*Finder)

func WithLogger(logger *zap.Logger) Option {
	return func(f *Finder) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithExpansionLimit stops a search once it has closed n nodes. Zero means
// no limit.
func WithExpansionLimit(n int) Option {
	return func(f *Finder) { f.expansionLimit = n }
}

// Finder holds search options only. A single Finder may be shared between
// goroutines.
type Finder struct {
	logger         *zap.Logger
	expansionLimit int
	heuristic      Heuristic
}

func New(options ...Option) *Finder {
	f := &Finder{
		logger:    zap.NewNop(),
		heuristic: Manhattan,
	}
	for _, option := range options {
		option(f)
	}
	return f
}

var defaultFinder = New()

// FindPath runs a search with default options.
func FindPath(g *grid.Grid, start grid.Point, goal grid.Point) (Result, error) {
	return defaultFinder.FindPath(g, start, goal)
}

// FindPath searches g from start to goal. Walkability of start and goal is the
// caller's responsibility; a blocked goal is simply never reached. Points
// outside g fail with grid.ErrOutOfBounds.
func (f *Finder) FindPath(g *grid.Grid, start grid.Point, goal grid.Point) (Result, error) {
	if _, err := g.Cell(start); err != nil {
		return Result{}, errors.Wrap(err, "start")
	}
	if _, err := g.Cell(goal); err != nil {
		return Result{}, errors.Wrap(err, "goal")
	}

	f.logger.Debug("astar: start",
		zap.Stringer("start", start),
		zap.Stringer("goal", goal),
		zap.Int("width", g.Width()),
		zap.Int("height", g.Height()))

	nodes := make(arena)
	openSet := make(frontier, 0)
	closeSet := mapset.NewThreadUnsafeSet()

	seq := 0
	heap.Push(&openSet, nodes.add(start, 0, f.heuristic(start, goal), nil, seq))

	expanded := 0
	for openSet.Len() > 0 && !closeSet.Contains(goal) {
		if f.expansionLimit > 0 && expanded >= f.expansionLimit {
			f.logger.Warn("astar: giving up",
				zap.Stringer("start", start),
				zap.Stringer("goal", goal),
				zap.Int("expanded", expanded))
			return Result{Expanded: expanded}, errors.Wrapf(ErrExpansionLimit, "after %d nodes", expanded)
		}

		current := heap.Pop(&openSet).(*node)
		current.status = Closed
		closeSet.Add(current.position)
		expanded++

		for _, nabor := range g.Neighbors(current.position) {
			if !g.Walkable(nabor) || closeSet.Contains(nabor) {
				continue
			}
			// Already open: keep the first discovery. With unit edge costs the
			// first discovery from the lowest-f expansion is already optimal.
			if nodes.status(nabor) != Untested {
				continue
			}
			seq++
			heap.Push(&openSet, nodes.add(nabor, current.g+1, f.heuristic(nabor, goal), current, seq))
		}
	}

	if !closeSet.Contains(goal) {
		f.logger.Debug("astar: no path", zap.Int("expanded", expanded))
		return Result{Expanded: expanded}, nil
	}

	path := reconstructPath(nodes, goal)
	f.logger.Debug("astar: reached goal",
		zap.Int("expanded", expanded),
		zap.Int("steps", path.Steps()))
	return Result{
		Path:     path,
		Found:    true,
		Cost:     nodes[goal].g,
		Expanded: expanded,
	}, nil
}
