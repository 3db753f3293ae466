// Package search finds a move sequence across a grid.Grid from a start cell
// to a target cell, using one of four interchangeable strategies:
//
//   - BreadthFirst: FIFO frontier, first discovery wins. Minimal hop count.
//   - DepthFirst:   backtracking, either on an explicit frame stack or by
//     bounded recursion. Reachability only, no optimality guarantee.
//   - UniformCost:  Dijkstra over the grid. The frontier is a heap.Heap of
//     (accumulated cost, coordinate); an improved route to a queued cell
//     removes its stale entry before the cheaper one is pushed.
//   - AStar:        UniformCost with priority cost + heuristic. Optimal
//     when the heuristic is admissible (the Minkowski family with p ≥ 1
//     is, since every floor rune costs at least 1).
//
// The strategy is chosen once, in New, and every call goes through
// Engine.Search. An empty Result.Moves with Found == false means no path;
// it is a normal outcome, not an error.
//
// Options:
//
//   - WithHeuristic(h), WithMinkowski(p)  AStar estimate (default Manhattan).
//   - WithRecursive(b)                   DepthFirst by recursion instead of a stack.
//   - WithShuffle(rnd), WithSeed(s)      randomize DepthFirst move order per expansion.
//   - WithRecursionLimit(n)              depth budget for recursive DepthFirst.
//   - WithOnExpand(fn)                   hook called for every expanded cell.
//
// Recursion budget:
//
//	Recursive DepthFirst refuses to descend beyond the engine's recursion
//	limit; a cut branch fails like a dead end and the walk backtracks. If
//	the walk then ends without a path, Search returns ErrRecursionLimit.
//	RaiseRecursionLimit overrides the limit until Restore is called:
//
//	    defer e.RaiseRecursionLimit(1200).Restore()
//
// Complexity (V = reachable cells, M = len(moves)):
//
//   - BreadthFirst, DepthFirst: O(V·M) time, O(V) memory.
//   - UniformCost, AStar:       O(V·M·V) worst case, dominated by the
//     linear-scan Remove; O(V·M·log V) when no decrease-key happens.
//
// Errors:
//
//   - ErrUnknownStrategy, ErrNoMoves, ErrOptionViolation from New.
//   - ErrNilGrid, ErrStartOutOfBounds, ErrRecursionLimit from Search.
package search
