// Package warehouse routes a robot through a rectangular warehouse grid.
//
// A grid is a block of text where '@' marks the robot, '+' a target and
// '#' a wall; every other rune is floor whose code point is the cost of
// stepping onto it.
//
//	@..
//	.#.
//	..+
//
// The module is organized in small packages:
//
//	grid/       parsing, bounds and wall queries, step and path cost
//	heap/       generic binary heap with min/max order, remove and sort
//	search/     BFS, DFS (stack or depth-bounded recursion), UCS and A*
//	validate/   replays a move list and reports cost or the first fault
//	config/     YAML + environment configuration of a run
//	cmd/warehouse  the solve and compare command line
//
// Quick start:
//
//	g, _ := grid.ParseString("@..\n.#.\n..+")
//	eng, _ := search.New(search.AStar, grid.Moves4())
//	res, _ := eng.FindMoves(g)
//	rep, err := validate.Check(g, res.Moves)
//
//	go install github.com/katalvlaran/warehouse/cmd/warehouse@latest
package warehouse
