package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse builds a Grid from equal-length rows. The rows are deep-copied.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrMalformedGrid when
// the start marker is missing or duplicated or no target marker exists.
// Complexity: O(W×H) time and memory.
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	h := len(rows)
	cells := make([][]rune, h)
	for r, row := range rows {
		cells[r] = []rune(row)
	}
	w := len(cells[0])
	if w == 0 {
		return nil, ErrEmptyGrid
	}
	for r := range cells {
		if len(cells[r]) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(cells[r]), w)
		}
	}

	g := &Grid{Width: w, Height: h, cells: cells}
	starts := 0
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			switch cells[r][c] {
			case StartSymbol:
				if starts == 0 {
					g.start = Coord{r, c}
				}
				starts++
			case TargetSymbol:
				g.targets = append(g.targets, Coord{r, c})
			}
		}
	}
	switch {
	case starts == 0:
		return nil, fmt.Errorf("%w: no start marker %q", ErrMalformedGrid, StartSymbol)
	case starts > 1:
		return nil, fmt.Errorf("%w: %d start markers %q, want exactly one", ErrMalformedGrid, starts, StartSymbol)
	case len(g.targets) == 0:
		return nil, fmt.Errorf("%w: no target marker %q", ErrMalformedGrid, TargetSymbol)
	}

	return g, nil
}

// ParseString splits s into lines and parses them.
// Carriage returns and trailing blank lines are ignored.
func ParseString(s string) (*Grid, error) {
	return Parse(splitRows(strings.Split(s, "\n")))
}

// Read parses a grid from r, one row per line.
func Read(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read: %w", err)
	}

	return Parse(splitRows(lines))
}

func splitRows(lines []string) []string {
	rows := make([]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, strings.TrimRight(l, "\r"))
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	return rows
}

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Height && c.Col >= 0 && c.Col < g.Width
}

// Traversable reports whether c is not a wall. Callers are expected to
// check InBounds first; out-of-bounds coordinates report false.
func (g *Grid) Traversable(c Coord) bool {
	return g.InBounds(c) && g.cells[c.Row][c.Col] != WallSymbol
}

// IsTarget reports whether c holds a target marker.
func (g *Grid) IsTarget(c Coord) bool {
	return g.InBounds(c) && g.cells[c.Row][c.Col] == TargetSymbol
}

// At returns the rune stored at c. c must be in bounds.
func (g *Grid) At(c Coord) rune {
	return g.cells[c.Row][c.Col]
}

// StepCost returns the cost of entering c: the code point of its rune,
// or InfCost when c is outside the grid. It never fails.
func (g *Grid) StepCost(c Coord) Cost {
	if !g.InBounds(c) {
		return InfCost
	}

	return Cost(g.cells[c.Row][c.Col])
}

// PathCost sums StepCost over every cell entered when replaying moves
// from start. No wall or bounds check is made.
func (g *Grid) PathCost(start Coord, moves []Move) Cost {
	var total Cost
	at := start
	for _, m := range moves {
		at = Apply(at, m)
		total += g.StepCost(at)
	}

	return total
}

// Locate returns the first cell, in row-major order, holding symbol.
// Returns ErrSymbolNotFound if none does.
// Complexity: O(W×H).
func (g *Grid) Locate(symbol rune) (Coord, error) {
	for r, row := range g.cells {
		for c, v := range row {
			if v == symbol {
				return Coord{r, c}, nil
			}
		}
	}

	return Coord{}, fmt.Errorf("%w: %q", ErrSymbolNotFound, symbol)
}

// Start returns the coordinate of the start marker.
func (g *Grid) Start() Coord { return g.start }

// Target returns the first target marker in row-major order.
func (g *Grid) Target() Coord { return g.targets[0] }

// Targets returns every target marker in row-major order.
func (g *Grid) Targets() []Coord {
	out := make([]Coord, len(g.targets))
	copy(out, g.targets)

	return out
}

// Clone returns an independent deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([][]rune, g.Height)
	for r := range g.cells {
		cells[r] = make([]rune, g.Width)
		copy(cells[r], g.cells[r])
	}

	return &Grid{
		Width:   g.Width,
		Height:  g.Height,
		cells:   cells,
		start:   g.start,
		targets: g.Targets(),
	}
}

// Set overwrites the rune at c. It is meant for annotating a Clone;
// start and target bookkeeping is not updated. Out-of-bounds writes are ignored.
func (g *Grid) Set(c Coord, v rune) {
	if g.InBounds(c) {
		g.cells[c.Row][c.Col] = v
	}
}

// Rows returns the grid as strings, one per row.
func (g *Grid) Rows() []string {
	out := make([]string, g.Height)
	for r, row := range g.cells {
		out[r] = string(row)
	}

	return out
}

// String joins Rows with newlines.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
