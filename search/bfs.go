package search

import "github.com/katalvlaran/warehouse/grid"

// breadthFirst expands coordinates in FIFO order. Every coordinate gets
// a single Explored Map record, from whichever expansion discovered it
// first; blocked and off-grid coordinates are recorded but never queued.
func breadthFirst(r *run) ([]grid.Move, bool) {
	explored := map[grid.Coord]entry{r.start: {root: true}}
	queue := []grid.Coord{r.start}

	for len(queue) > 0 {
		at := queue[0]
		queue = queue[1:]
		if at == r.target {
			return pathTo(explored, at), true
		}
		r.expand(at)

		for _, m := range r.moves {
			next := grid.Apply(at, m)
			if _, seen := explored[next]; seen {
				continue
			}
			explored[next] = entry{parent: at, move: m, cost: explored[at].cost + 1}
			if r.g.Traversable(next) {
				queue = append(queue, next)
			}
		}
	}

	return nil, false
}
