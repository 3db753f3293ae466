package grid_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/warehouse/grid"
)

//----------------------------------------------------------------------------//
// Parse Tests
//----------------------------------------------------------------------------//

// TestParse_Errors verifies that Parse rejects empty, ragged and marker-less inputs.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"NoRows", nil, grid.ErrEmptyGrid},
		{"EmptyRow", []string{""}, grid.ErrEmptyGrid},
		{"NonRectangular", []string{"@..", ".+"}, grid.ErrNonRectangular},
		{"NoStart", []string{"...", "..+"}, grid.ErrMalformedGrid},
		{"TwoStarts", []string{"@.@", "..+"}, grid.ErrMalformedGrid},
		{"NoTarget", []string{"@..", "..."}, grid.ErrMalformedGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestParse_ShapeErrorsAreMalformed checks the sentinel hierarchy.
func TestParse_ShapeErrorsAreMalformed(t *testing.T) {
	assert.ErrorIs(t, grid.ErrEmptyGrid, grid.ErrMalformedGrid)
	assert.ErrorIs(t, grid.ErrNonRectangular, grid.ErrMalformedGrid)
	assert.NotErrorIs(t, grid.ErrSymbolNotFound, grid.ErrMalformedGrid)
}

func TestParse_Markers(t *testing.T) {
	g, err := grid.Parse([]string{
		"#@.+",
		"..#.",
		"+...",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, g.Width)
	assert.Equal(t, 3, g.Height)
	assert.Equal(t, grid.Coord{Row: 0, Col: 1}, g.Start())
	assert.Equal(t, grid.Coord{Row: 0, Col: 3}, g.Target())
	assert.Equal(t, []grid.Coord{{Row: 0, Col: 3}, {Row: 2, Col: 0}}, g.Targets())
}

func TestParseString_TrimsLineEndings(t *testing.T) {
	g, err := grid.ParseString("@.\r\n.+\r\n\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"@.", ".+"}, g.Rows())
}

func TestRead(t *testing.T) {
	g, err := grid.Read(strings.NewReader("@..\n.#.\n..+\n"))
	require.NoError(t, err)
	assert.Equal(t, "@..\n.#.\n..+", g.String())
}

//----------------------------------------------------------------------------//
// Query Tests
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.Parse([]string{"@.+", "..."})
	require.NoError(t, err)

	valid := []grid.Coord{{0, 0}, {1, 2}, {1, 1}}
	for _, c := range valid {
		if !g.InBounds(c) {
			t.Errorf("InBounds(%v)=false; want true", c)
		}
	}
	invalid := []grid.Coord{{-1, 0}, {0, 3}, {2, 1}, {1, -1}}
	for _, c := range invalid {
		if g.InBounds(c) {
			t.Errorf("InBounds(%v)=true; want false", c)
		}
	}
}

func TestTraversableAndTarget(t *testing.T) {
	g, err := grid.Parse([]string{"@#+"})
	require.NoError(t, err)

	assert.True(t, g.Traversable(grid.Coord{0, 0}))
	assert.False(t, g.Traversable(grid.Coord{0, 1}))
	assert.True(t, g.Traversable(grid.Coord{0, 2}))
	assert.False(t, g.Traversable(grid.Coord{0, 3}), "out of bounds is never traversable")

	assert.True(t, g.IsTarget(grid.Coord{0, 2}))
	assert.False(t, g.IsTarget(grid.Coord{0, 0}))
	assert.False(t, g.IsTarget(grid.Coord{5, 5}))
}

// TestStepCost verifies the code-point cost model and the out-of-bounds sentinel.
func TestStepCost(t *testing.T) {
	g, err := grid.Parse([]string{"@9+", ".a."})
	require.NoError(t, err)

	assert.Equal(t, grid.Cost('9'), g.StepCost(grid.Coord{0, 1}))
	assert.Equal(t, grid.Cost('+'), g.StepCost(grid.Coord{0, 2}))
	assert.Equal(t, grid.Cost('a'), g.StepCost(grid.Coord{1, 1}))
	assert.Equal(t, grid.InfCost, g.StepCost(grid.Coord{-1, 0}))
	assert.Equal(t, grid.InfCost, g.StepCost(grid.Coord{0, 3}))
}

func TestPathCost(t *testing.T) {
	g, err := grid.Parse([]string{"@9+", "..."})
	require.NoError(t, err)

	direct := g.PathCost(g.Start(), []grid.Move{grid.Right, grid.Right})
	assert.Equal(t, grid.Cost('9'+'+'), direct)

	detour := g.PathCost(g.Start(), []grid.Move{grid.Down, grid.Right, grid.Right, grid.Up})
	assert.Equal(t, grid.Cost(3*'.'+'+'), detour)
	assert.Less(t, direct, detour, "'9' is cheaper than two extra floor cells")

	heavy, err := grid.Parse([]string{"@Ω+", "..."})
	require.NoError(t, err)
	assert.Less(t,
		heavy.PathCost(heavy.Start(), []grid.Move{grid.Down, grid.Right, grid.Right, grid.Up}),
		heavy.PathCost(heavy.Start(), []grid.Move{grid.Right, grid.Right}),
	)
}

func TestLocate(t *testing.T) {
	g, err := grid.Parse([]string{"@.x", "x.+"})
	require.NoError(t, err)

	c, err := g.Locate('x')
	require.NoError(t, err)
	assert.Equal(t, grid.Coord{0, 2}, c, "first match in row-major order")

	_, err = g.Locate('z')
	assert.ErrorIs(t, err, grid.ErrSymbolNotFound)
}

func TestCloneIsIndependent(t *testing.T) {
	g, err := grid.Parse([]string{"@.+"})
	require.NoError(t, err)

	cp := g.Clone()
	cp.Set(grid.Coord{0, 1}, '>')
	cp.Set(grid.Coord{9, 9}, '>')

	assert.Equal(t, "@>+", cp.String())
	assert.Equal(t, "@.+", g.String())
	assert.Equal(t, g.Targets(), cp.Targets())
}

//----------------------------------------------------------------------------//
// Move Tests
//----------------------------------------------------------------------------//

func TestMoves(t *testing.T) {
	assert.Equal(t, []grid.Move{grid.Up, grid.Right, grid.Down, grid.Left}, grid.Moves4())
	assert.Len(t, grid.Moves8(), 8)

	for _, m := range grid.Moves8() {
		assert.Equal(t, grid.Coord{3, 3}, grid.Apply(grid.Apply(grid.Coord{3, 3}, m), m.Negate()))
	}

	assert.Equal(t, "^>v<", string([]rune{grid.Up.Symbol(), grid.Right.Symbol(), grid.Down.Symbol(), grid.Left.Symbol()}))
	assert.Equal(t, '*', grid.Move{1, 1}.Symbol())
	assert.Equal(t, "(-1,0)", grid.Up.String())
	assert.Equal(t, "(2,5)", grid.Coord{2, 5}.String())
}
