// Package config holds the run configuration of the warehouse solver.
//
// A Config starts from Default, is overlaid by a YAML file (Load) and then
// by WAREHOUSE_* environment variables, optionally read from a .env file
// (ApplyEnv). Validate rejects inconsistent settings with ErrInvalidConfig.
//
// The translation helpers turn a Config into options for the other
// packages:
//
//	eng, err := cfg.NewEngine()                   // search.Engine
//	rep, err := validate.Check(g, res.Moves, cfg.ValidatorOptions(logger)...)
//
// Example file:
//
//	strategy: astar
//	moves: [[-1,0],[0,1],[1,0],[0,-1]]
//	heuristic: { p: 1 }
//	dfs: { recursive: false, shuffle: false, seed: 0, recursion_limit: 1200 }
//	turn_budget: 0
//	log_level: info
package config
