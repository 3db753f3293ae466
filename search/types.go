package search

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/warehouse/grid"
)

// Sentinel errors for search construction and execution.
var (
	// ErrUnknownStrategy is returned for a Kind outside the defined set.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrNoMoves is returned when the move set is empty.
	ErrNoMoves = errors.New("search: move set is empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrStartOutOfBounds is returned when the start coordinate is off the grid.
	ErrStartOutOfBounds = errors.New("search: start is out of bounds")

	// ErrRecursionLimit is returned when recursive depth-first search ends
	// without a path after at least one branch was cut by the recursion limit.
	ErrRecursionLimit = errors.New("search: recursion limit exhausted")
)

// DefaultRecursionLimit is the depth budget of a recursive DepthFirst
// engine unless WithRecursionLimit or RaiseRecursionLimit says otherwise.
const DefaultRecursionLimit = 1000

// Kind selects a search strategy.
type Kind int

const (
	// BreadthFirst expands cells in order of discovery.
	BreadthFirst Kind = iota
	// DepthFirst backtracks along the most recently discovered branch.
	DepthFirst
	// UniformCost expands cells in order of accumulated cost.
	UniformCost
	// AStar expands cells in order of accumulated cost plus heuristic.
	AStar
)

// Kinds returns every strategy in declaration order.
func Kinds() []Kind {
	return []Kind{BreadthFirst, DepthFirst, UniformCost, AStar}
}

// String returns the short name of k.
func (k Kind) String() string {
	switch k {
	case BreadthFirst:
		return "bfs"
	case DepthFirst:
		return "dfs"
	case UniformCost:
		return "ucs"
	case AStar:
		return "astar"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a name such as "bfs", "breadth-first", "ucs" or "a*" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs", "breadth-first", "breadthfirst":
		return BreadthFirst, nil
	case "dfs", "depth-first", "depthfirst":
		return DepthFirst, nil
	case "ucs", "uniform-cost", "uniformcost", "dijkstra":
		return UniformCost, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Option configures an Engine via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks for an Engine.
type Options struct {
	// Heuristic estimates the remaining cost for AStar. Ignored by other kinds.
	Heuristic Heuristic

	// Recursive selects the bounded-recursion form of DepthFirst.
	Recursive bool

	// Rand, if non-nil, shuffles the move order at every DepthFirst expansion.
	Rand *rand.Rand

	// RecursionLimit caps the recursion depth of recursive DepthFirst.
	RecursionLimit int

	// OnExpand is called each time a coordinate is expanded.
	OnExpand func(at grid.Coord)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Manhattan heuristic
//   - iterative DepthFirst, deterministic move order
//   - RecursionLimit = DefaultRecursionLimit
//   - no-op OnExpand hook
func DefaultOptions() Options {
	return Options{
		Heuristic:      Manhattan,
		Recursive:      false,
		Rand:           nil,
		RecursionLimit: DefaultRecursionLimit,
		OnExpand:       func(grid.Coord) {},
	}
}

// WithHeuristic sets the AStar heuristic. A nil h is a violation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic is nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithMinkowski sets the AStar heuristic to the L-p distance.
// p must be ≥ 1 (math.Inf(1) selects Chebyshev distance).
func WithMinkowski(p float64) Option {
	return func(o *Options) {
		h, err := Minkowski(p)
		if err != nil {
			o.err = err
			return
		}
		o.Heuristic = h
	}
}

// WithRecursive selects the recursive (true) or explicit-stack (false) DepthFirst.
func WithRecursive(recursive bool) Option {
	return func(o *Options) {
		o.Recursive = recursive
	}
}

// WithShuffle randomizes DepthFirst move order using rnd. A nil rnd restores
// the deterministic caller-supplied order.
func WithShuffle(rnd *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = rnd
	}
}

// WithSeed randomizes DepthFirst move order from a fixed seed.
func WithSeed(seed int64) Option {
	return WithShuffle(rand.New(rand.NewSource(seed)))
}

// WithRecursionLimit sets the recursion budget of recursive DepthFirst.
//
//	n > 0:  allow at most n nested expansions below the start
//	n <= 0: invalid option → ErrOptionViolation
func WithRecursionLimit(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: RecursionLimit must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.RecursionLimit = n
	}
}

// WithOnExpand registers a callback run for every expanded coordinate.
func WithOnExpand(fn func(at grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result is the outcome of one Search call.
type Result struct {
	// Strategy that produced the result.
	Strategy Kind
	// Moves from start to target; empty when no path exists or start == target.
	Moves []grid.Move
	// Cost is the summed step cost of Moves.
	Cost grid.Cost
	// Explored counts expanded coordinates.
	Explored int
	// Found reports whether target was reached.
	Found bool
}
