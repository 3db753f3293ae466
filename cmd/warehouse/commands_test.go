package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/warehouse/search"
)

const wallGrid = "@..\n.#.\n..+\n"

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

// execute runs the root command and returns stdout, stderr and the error.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "none.env")))
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestSolve_PrintPath(t *testing.T) {
	path := writeTemp(t, "grid.txt", wallGrid)
	out, _, err := execute(t, "", "solve", path, "--strategy", "bfs", "--print-path")
	require.NoError(t, err)

	assert.Contains(t, out, "strategy: bfs")
	assert.Contains(t, out, "moves:    4 >>vv")
	assert.Contains(t, out, "cost:     181")
	assert.Contains(t, out, "@>v\n.#v\n..+")
}

func TestSolve_Stdin(t *testing.T) {
	out, _, err := execute(t, wallGrid, "solve")
	require.NoError(t, err)
	assert.Contains(t, out, "strategy: astar")
	assert.Contains(t, out, "cost:     181")
}

func TestSolve_Logging(t *testing.T) {
	_, logs, err := execute(t, wallGrid, "solve", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, logs, "searching")
	assert.Contains(t, logs, "strategy=astar")
	assert.Contains(t, logs, "success")

	_, logs, err = execute(t, wallGrid, "solve", "--log-level", "error")
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := execute(t, "@#+\n", "solve")
	assert.ErrorIs(t, err, errNoPath)

	_, _, err = execute(t, wallGrid, "solve", "--turns", "3")
	assert.ErrorContains(t, err, "turn budget")

	_, _, err = execute(t, wallGrid, "solve", "--strategy", "teleport")
	assert.Error(t, err)

	_, _, err = execute(t, "@..\n", "solve")
	assert.ErrorContains(t, err, "target")

	_, _, err = execute(t, "", "solve", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSolve_RecursiveDFS(t *testing.T) {
	out, _, err := execute(t, "@...+\n", "solve", "-s", "dfs", "--recursive", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "moves:    4 >>>>")

	_, _, err = execute(t, "@...+\n", "solve", "-s", "dfs", "--recursive", "--recursion-limit", "1")
	assert.ErrorIs(t, err, search.ErrRecursionLimit)
}

func TestSolve_ConfigFile(t *testing.T) {
	cfg := writeTemp(t, "run.yaml", "strategy: ucs\nmoves: [[0,1],[1,0]]\n")
	out, _, err := execute(t, wallGrid, "solve", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "strategy: ucs")
	assert.Contains(t, out, "moves:    4")

	bad := writeTemp(t, "bad.yaml", "dfs: { recursion_limit: -1 }\n")
	_, _, err = execute(t, wallGrid, "solve", "--config", bad)
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	out, _, err := execute(t, wallGrid, "compare")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1+len(search.Kinds()))
	assert.True(t, strings.HasPrefix(lines[0], "STRATEGY"))
	for i, k := range search.Kinds() {
		fields := strings.Fields(lines[i+1])
		assert.Equal(t, k.String(), fields[0])
		assert.Equal(t, "true", fields[1])
		assert.Equal(t, "yes", fields[5])
	}
}

// TestCompare_ContinuesAfterFailure keeps the other rows when one strategy fails.
func TestCompare_ContinuesAfterFailure(t *testing.T) {
	cfg := writeTemp(t, "run.yaml", "dfs: { recursive: true, recursion_limit: 1 }\n")
	out, _, err := execute(t, "@...+\n", "compare", "--config", cfg)
	assert.ErrorIs(t, err, search.ErrRecursionLimit)
	assert.Contains(t, out, "astar")
	assert.Contains(t, out, "ucs")
}
