package grid

import "fmt"

// Recognized cell symbols.
const (
	StartSymbol  = '@'
	TargetSymbol = '+'
	WallSymbol   = '#'
)

// InfCost is the step cost reported for coordinates outside the grid.
// It is large enough that no real path ever prefers it.
const InfCost Cost = 1e9

// Cost is a non-negative traversal cost.
type Cost = float64

// Coord identifies a cell by row and column.
type Coord struct {
	Row, Col int
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Move is a direction vector applied to a Coord.
type Move struct {
	DRow, DCol int
}

// The four axis-aligned moves.
var (
	Up    = Move{-1, 0}
	Right = Move{0, 1}
	Down  = Move{1, 0}
	Left  = Move{0, -1}
)

// Moves4 returns the axis-aligned moves in the order up, right, down, left.
// Strategies break ties by move order, so the order is part of the contract.
func Moves4() []Move {
	return []Move{Up, Right, Down, Left}
}

// Moves8 returns Moves4 followed by the four diagonals, clockwise from up-right.
func Moves8() []Move {
	return []Move{Up, Right, Down, Left, {-1, 1}, {1, 1}, {1, -1}, {-1, -1}}
}

// Negate returns the move that undoes m.
func (m Move) Negate() Move {
	return Move{-m.DRow, -m.DCol}
}

// Symbol returns the arrow used when annotating a path: ^ > v <.
// Moves outside the axis-aligned set are drawn as '*'.
func (m Move) Symbol() rune {
	switch m {
	case Up:
		return '^'
	case Right:
		return '>'
	case Down:
		return 'v'
	case Left:
		return '<'
	}
	return '*'
}

// String formats the move as "(drow,dcol)".
func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.DRow, m.DCol)
}

// Apply returns c shifted by m. No validity check is made.
func Apply(c Coord, m Move) Coord {
	return Coord{c.Row + m.DRow, c.Col + m.DCol}
}

// Grid is a rectangular warehouse map. It is read-only once parsed;
// use Clone to obtain a copy that may be annotated with Set.
type Grid struct {
	Width, Height int
	cells         [][]rune
	start         Coord
	targets       []Coord
}
