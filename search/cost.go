package search

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/warehouse/grid"
	"github.com/katalvlaran/warehouse/heap"
)

// frontierItem is a heap entry: the priority a coordinate was queued with.
type frontierItem struct {
	priority float64
	at       grid.Coord
}

// compareFrontier orders by priority, then by coordinate so that equal
// priorities pop in a reproducible order.
func compareFrontier(a, b frontierItem) int {
	if c := cmp.Compare(a.priority, b.priority); c != 0 {
		return c
	}
	if c := cmp.Compare(a.at.Row, b.at.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.at.Col, b.at.Col)
}

// costFirst is the shared skeleton of UniformCost and AStar. Entries are
// queued with priority cost+estimate(next, target); the Explored Map keeps
// the true accumulated cost. When a cheaper route to a recorded coordinate
// appears, its stale heap entry is removed before the new one is pushed,
// so the frontier never holds a dominated duplicate.
func costFirst(r *run, estimate Heuristic) ([]grid.Move, bool, error) {
	explored := map[grid.Coord]entry{r.start: {root: true}}
	frontier := heap.New(compareFrontier, heap.MinFirst)
	frontier.Push(frontierItem{priority: estimate(r.start, r.target), at: r.start})

	for frontier.Len() > 0 {
		item, err := frontier.Pop()
		if err != nil {
			return nil, false, fmt.Errorf("search: frontier: %w", err)
		}
		at := item.at
		if at == r.target {
			return pathTo(explored, at), true, nil
		}
		r.expand(at)

		cost := explored[at].cost
		for _, m := range r.moves {
			next := grid.Apply(at, m)
			candidate := cost + r.g.StepCost(next)
			if prev, seen := explored[next]; seen {
				if prev.cost <= candidate {
					continue
				}
				frontier.Remove(func(it frontierItem) bool { return it.at == next })
			}
			explored[next] = entry{parent: at, move: m, cost: candidate}
			if r.g.Traversable(next) {
				frontier.Push(frontierItem{priority: candidate + estimate(next, r.target), at: next})
			}
		}
	}

	return nil, false, nil
}
