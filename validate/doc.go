// Package validate replays a move list against a grid and decides whether
// it is an acceptable solution: it must stay within a turn budget, stay on
// the grid, avoid walls and end on a target cell.
//
// A successful Check returns a Report with the total step cost and a copy
// of the grid with the path drawn in arrows. A failed Check returns the
// partial Report together with one of ErrTimeout, ErrOutOfBounds, ErrWall
// or ErrNotArrived, wrapped with the position and turn where it happened.
// Outcomes are logged through a logrus.FieldLogger.
package validate
