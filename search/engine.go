package search

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/warehouse/grid"
)

// Engine runs one fixed strategy over a fixed, ordered move set.
// An Engine may be reused for many searches; each Search call owns its
// frontier and explored map. Engines are not safe for concurrent use
// while a RecursionLimit override is being taken or restored.
type Engine struct {
	kind  Kind
	moves []grid.Move
	opts  Options
}

// New builds an Engine for kind over moves, applying opts.
// The order of moves is preserved and drives tie-breaking.
// Returns ErrUnknownStrategy, ErrNoMoves or ErrOptionViolation.
func New(kind Kind, moves []grid.Move, opts ...Option) (*Engine, error) {
	switch kind {
	case BreadthFirst, DepthFirst, UniformCost, AStar:
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, kind)
	}
	if len(moves) == 0 {
		return nil, ErrNoMoves
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Engine{kind: kind, moves: slices.Clone(moves), opts: o}, nil
}

// Kind returns the strategy e was built with.
func (e *Engine) Kind() Kind { return e.kind }

// Moves returns a copy of the engine's move set.
func (e *Engine) Moves() []grid.Move { return slices.Clone(e.moves) }

// FindMoves searches g from its start marker to its first target marker.
func (e *Engine) FindMoves(g *grid.Grid) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	return e.Search(g, g.Start(), g.Target())
}

// Search returns the moves leading from start to target on g.
// A missing path is reported as Found == false with no moves and a nil error.
// When start == target the result is Found with no moves.
func (e *Engine) Search(g *grid.Grid, start, target grid.Coord) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}

	r := &run{g: g, start: start, target: target, moves: e.moves, opts: e.opts}
	res := &Result{Strategy: e.kind, Moves: []grid.Move{}}
	if start == target {
		res.Found = true
		return res, nil
	}

	var (
		moves []grid.Move
		found bool
		err   error
	)
	switch e.kind {
	case BreadthFirst:
		moves, found = breadthFirst(r)
	case DepthFirst:
		if e.opts.Recursive {
			moves, found, err = depthFirstRecursive(r)
		} else {
			moves, found = depthFirstStack(r)
		}
	case UniformCost:
		moves, found, err = costFirst(r, Zero)
	case AStar:
		moves, found, err = costFirst(r, e.opts.Heuristic)
	}
	res.Explored = r.explored
	if err != nil {
		return res, err
	}
	if found {
		res.Found = true
		res.Moves = moves
		res.Cost = g.PathCost(start, moves)
	}

	return res, nil
}

// run is the per-call state shared by every strategy.
type run struct {
	g             *grid.Grid
	start, target grid.Coord
	moves         []grid.Move
	opts          Options
	explored      int
}

// expand counts at as expanded and fires the OnExpand hook.
func (r *run) expand(at grid.Coord) {
	r.explored++
	r.opts.OnExpand(at)
}

// order returns the move order for one expansion: the configured order,
// or a fresh permutation of it when shuffling is enabled.
func (r *run) order() []grid.Move {
	if r.opts.Rand == nil {
		return r.moves
	}
	out := slices.Clone(r.moves)
	r.opts.Rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	return out
}

// entry is one Explored Map record: how a coordinate was reached and at
// what accumulated cost. The path is recovered by following parents.
type entry struct {
	parent grid.Coord
	move   grid.Move
	cost   grid.Cost
	root   bool
}

// pathTo rebuilds the move list ending at c from parent links.
func pathTo(explored map[grid.Coord]entry, c grid.Coord) []grid.Move {
	var path []grid.Move
	for e := explored[c]; !e.root; e = explored[e.parent] {
		path = append(path, e.move)
	}
	slices.Reverse(path)

	return path
}
