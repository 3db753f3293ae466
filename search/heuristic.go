package search

import (
	"fmt"
	"math"

	"github.com/katalvlaran/warehouse/grid"
)

// Heuristic estimates the remaining cost from one coordinate to another.
// For AStar to stay optimal it must never overestimate the true cost.
type Heuristic func(from, to grid.Coord) float64

// Minkowski returns the L-p distance over grid coordinates. p must be at
// least 1; smaller values are not a metric and can overestimate, which
// breaks admissibility. math.Inf(1) yields the Chebyshev distance.
func Minkowski(p float64) (Heuristic, error) {
	switch {
	case math.IsNaN(p) || p < 1:
		return nil, fmt.Errorf("%w: Minkowski p must be >= 1 (%v)", ErrOptionViolation, p)
	case p == 1:
		return Manhattan, nil
	case p == 2:
		return Euclidean, nil
	case math.IsInf(p, 1):
		return Chebyshev, nil
	}
	return func(from, to grid.Coord) float64 {
		dr := math.Abs(float64(from.Row - to.Row))
		dc := math.Abs(float64(from.Col - to.Col))
		return math.Pow(math.Pow(dr, p)+math.Pow(dc, p), 1/p)
	}, nil
}

// Manhattan is the L1 distance.
func Manhattan(from, to grid.Coord) float64 {
	return math.Abs(float64(from.Row-to.Row)) + math.Abs(float64(from.Col-to.Col))
}

// Euclidean is the L2 distance.
func Euclidean(from, to grid.Coord) float64 {
	return math.Hypot(float64(from.Row-to.Row), float64(from.Col-to.Col))
}

// Chebyshev is the L∞ distance.
func Chebyshev(from, to grid.Coord) float64 {
	return math.Max(math.Abs(float64(from.Row-to.Row)), math.Abs(float64(from.Col-to.Col)))
}

// Zero always estimates 0, turning AStar into UniformCost.
func Zero(_, _ grid.Coord) float64 { return 0 }
