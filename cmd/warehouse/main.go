// Command warehouse finds and checks a robot route through a warehouse grid.
//
//	warehouse solve  [grid-file]   run one strategy and validate its route
//	warehouse compare [grid-file]  run every strategy on the same grid
//
// The grid is read from stdin when no file is given.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
