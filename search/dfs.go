package search

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/warehouse/grid"
)

// frame is one level of the explicit depth-first stack: the cell being
// expanded, the move order drawn for it, and the next move to try.
type frame struct {
	at    grid.Coord
	moves []grid.Move
	next  int
}

// depthFirstStack is the iterative backtracking walk. The path always has
// one move per frame above the root; popping a frame drops its move.
func depthFirstStack(r *run) ([]grid.Move, bool) {
	seen := map[grid.Coord]bool{r.start: true}
	r.expand(r.start)
	stack := []frame{{at: r.start, moves: r.order()}}
	path := make([]grid.Move, 0)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.moves) {
			stack = stack[:len(stack)-1]
			if len(path) > 0 {
				path = path[:len(path)-1]
			}
			continue
		}
		m := top.moves[top.next]
		top.next++

		next := grid.Apply(top.at, m)
		if next == r.target {
			return append(path, m), true
		}
		if seen[next] || !r.g.Traversable(next) {
			continue
		}
		seen[next] = true
		r.expand(next)
		path = append(path, m)
		stack = append(stack, frame{at: next, moves: r.order()})
	}

	return nil, false
}

// dfsWalker holds the state threaded through the recursive walk.
type dfsWalker struct {
	*run
	seen  map[grid.Coord]bool
	limit int
	cut   bool
}

// depthFirstRecursive walks by recursion, never deeper than the engine's
// recursion limit. A branch refused by the limit is treated as a dead end;
// the cell is left unmarked so a shallower branch may still reach it.
func depthFirstRecursive(r *run) ([]grid.Move, bool, error) {
	w := &dfsWalker{run: r, seen: make(map[grid.Coord]bool), limit: r.opts.RecursionLimit}
	rev, ok := w.descend(r.start, 0)
	if ok {
		slices.Reverse(rev)
		return rev, true, nil
	}
	if w.cut {
		return nil, false, fmt.Errorf("%w: no path within depth %d", ErrRecursionLimit, w.limit)
	}

	return nil, false, nil
}

// descend returns the path from at to the target in reverse order.
func (w *dfsWalker) descend(at grid.Coord, depth int) ([]grid.Move, bool) {
	w.seen[at] = true
	w.expand(at)

	for _, m := range w.order() {
		next := grid.Apply(at, m)
		if next == w.target {
			return []grid.Move{m}, true
		}
		if w.seen[next] || !w.g.Traversable(next) {
			continue
		}
		if depth >= w.limit {
			w.cut = true
			continue
		}
		if rev, ok := w.descend(next, depth+1); ok {
			return append(rev, m), true
		}
	}

	return nil, false
}
