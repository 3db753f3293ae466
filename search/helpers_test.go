package search_test

import (
	"math/rand"
	"strings"

	"github.com/katalvlaran/warehouse/grid"
)

// floorRunes mixes cheap and expensive terrain; 'Ω' costs far more than a detour.
var floorRunes = []rune(".,:;ab9Ω")

// randomWarehouse builds an h×w grid with the given wall density, one start
// and one target, from a fixed seed.
func randomWarehouse(seed int64, h, w int, walls float64) []string {
	rnd := rand.New(rand.NewSource(seed))
	cells := make([][]rune, h)
	for r := range cells {
		cells[r] = make([]rune, w)
		for c := range cells[r] {
			if rnd.Float64() < walls {
				cells[r][c] = '#'
			} else {
				cells[r][c] = floorRunes[rnd.Intn(len(floorRunes))]
			}
		}
	}
	sr, sc := rnd.Intn(h), rnd.Intn(w)
	tr, tc := rnd.Intn(h), rnd.Intn(w)
	for tr == sr && tc == sc {
		tr, tc = rnd.Intn(h), rnd.Intn(w)
	}
	cells[sr][sc] = '@'
	cells[tr][tc] = '+'

	rows := make([]string, h)
	for r := range cells {
		rows[r] = string(cells[r])
	}

	return rows
}

// openFloor returns an h×w grid of '.' with start and target placed.
func openFloor(h, w int, start, target grid.Coord) []string {
	rows := make([][]rune, h)
	for r := range rows {
		rows[r] = []rune(strings.Repeat(".", w))
	}
	rows[start.Row][start.Col] = '@'
	rows[target.Row][target.Col] = '+'
	out := make([]string, h)
	for r := range rows {
		out[r] = string(rows[r])
	}

	return out
}

// cheapestCost is an independent oracle: Bellman-Ford relaxation over all
// traversable cells. It returns the optimal cost from start to target and
// whether target is reachable at all.
func cheapestCost(g *grid.Grid, start, target grid.Coord, moves []grid.Move) (grid.Cost, bool) {
	dist := map[grid.Coord]grid.Cost{start: 0}
	for changed := true; changed; {
		changed = false
		for at, d := range dist {
			if at == target {
				continue
			}
			for _, m := range moves {
				next := grid.Apply(at, m)
				if !g.Traversable(next) {
					continue
				}
				nd := d + g.StepCost(next)
				if old, ok := dist[next]; !ok || nd < old {
					dist[next] = nd
					changed = true
				}
			}
		}
	}
	d, ok := dist[target]

	return d, ok
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
