package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/discrete/catalog"
	"github.com/katalvlaran/discrete/space"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	require.NoError(t, err, strings.Join(args, " "))
	return out
}

func TestCount(t *testing.T) {
	assert.Equal(t, "6\n", mustRun(t, "count", "pair", "4"))
	assert.Equal(t, "64\n", mustRun(t, "count", "power-set(pair)", "4"))
	assert.Equal(t, "672\n", mustRun(t, "count",
		"product(sum(directed-context, dimension-n), dimension-n)", "[[[3, 2], [3, 2, 4]], [4, 4]]"))
	assert.Equal(t, "231\n", mustRun(t, "--format", "yaml", "count", "homotopy", "{level: 3, dim: 3}"))
	assert.Equal(t, "\"1,267,650,600,228,229,401,496,703,205,376\"\n",
		mustRun(t, "count", "--human", "power-set", "100"))
}

func TestPosAndIndex(t *testing.T) {
	assert.Equal(t, "[1,3]\n", mustRun(t, "pos", "pair", "4", "4"))
	assert.Equal(t, "4\n", mustRun(t, "index", "pair", "4", "[1, 3]"))
	assert.Equal(t, "[1, 3]\n", mustRun(t, "--format", "yaml", "pos", "pair", "4", "4"))

	edge := mustRun(t, "pos", "context(pair)", "[3, 3]", "16")
	assert.Equal(t, `{"coords":[[0,2],[0,2]],"axis":1,"value":[1,2]}`+"\n", edge)
	assert.Equal(t, "16\n", mustRun(t, "index", "context(pair)", "[3, 3]", edge))

	assert.Equal(t, "3\n", mustRun(t, "index", "homotopy", "{level: 1, dim: 3}",
		"{path: [{point: 2}, {point: 0}]}"))
}

func TestZero(t *testing.T) {
	assert.Equal(t, `{"coords":[0,0,0],"axis":0,"value":1}`+"\n", mustRun(t, "zero", "context", "[2, 2, 2]"))
	assert.Equal(t, "{first: [0, 1]}\n", mustRun(t, "--format", "yaml", "zero", "sum(pair, permutation)", "[3, 2]"))

	_, err := run(t, "zero", "pair", "1")
	assert.ErrorIs(t, err, space.ErrIndexOutOfRange)
}

func TestList(t *testing.T) {
	out := mustRun(t, "list", "pair", "4", "--from", "2", "--limit", "2")
	assert.Equal(t, "{\"index\":2,\"pos\":[1,2]}\n{\"index\":3,\"pos\":[0,3]}\n", out)

	out = mustRun(t, "--format", "yaml", "list", "pair", "3")
	assert.Equal(t, "- {index: 0, pos: [0, 1]}\n- {index: 1, pos: [0, 2]}\n- {index: 2, pos: [1, 2]}\n", out)

	out = mustRun(t, "list", "--limit", "0", "permutation", "4")
	assert.Equal(t, 24, strings.Count(out, "\n"))

	out = mustRun(t, "list", "--from", "100", "pair", "4")
	assert.Empty(t, out)
}

func TestSample(t *testing.T) {
	a := mustRun(t, "sample", "-n", "5", "--seed", "42", "permutation(pair)", "4")
	b := mustRun(t, "sample", "-n", "5", "--seed", "42", "permutation(pair)", "4")
	assert.Equal(t, a, b)
	assert.Equal(t, 5, strings.Count(a, "\n"))

	for _, line := range strings.Split(strings.TrimSpace(a), "\n") {
		assert.True(t, strings.HasPrefix(line, `{"index":`), line)
	}
}

func TestSpacesAndVersion(t *testing.T) {
	out := mustRun(t, "spaces")
	assert.Equal(t, len(catalog.Entries()), strings.Count(out, "\n"))
	assert.Contains(t, out, `"name":"directed-context"`)

	out = mustRun(t, "--format", "yaml", "spaces")
	assert.Contains(t, out, "- name: dimension\n")

	assert.Equal(t, "discrete "+version+"\n", mustRun(t, "version"))
}

func TestErrors(t *testing.T) {
	_, err := run(t, "count", "triple", "3")
	assert.ErrorIs(t, err, catalog.ErrUnknownSpace)

	_, err = run(t, "count", "pair(", "3")
	assert.ErrorIs(t, err, catalog.ErrSyntax)

	_, err = run(t, "count", "pair", "[3]")
	assert.ErrorIs(t, err, catalog.ErrBadValue)

	_, err = run(t, "count", "permutation", "30")
	assert.NoError(t, err, "big domain does not overflow")

	_, err = run(t, "count", "power-set", "18446744073709551617")
	assert.ErrorIs(t, err, space.ErrBadDimension)

	_, err = run(t, "count", "power-set", "1000000000000")
	assert.ErrorIs(t, err, space.ErrBadDimension)

	_, err = run(t, "count", "homotopy", "{level: 45, dim: 3}")
	assert.ErrorIs(t, err, space.ErrBadDimension)

	_, err = run(t, "pos", "pair", "4", "6")
	assert.ErrorIs(t, err, space.ErrIndexOutOfRange)

	_, err = run(t, "pos", "pair", "4", "x")
	assert.Error(t, err)

	_, err = run(t, "index", "pair", "4", "[3, 1]")
	assert.ErrorIs(t, err, space.ErrBadPosition)

	_, err = run(t, "index", "context", "[]", "{coords: [], axis: 0, value: 0}")
	assert.ErrorIs(t, err, space.ErrBadDimension)

	_, err = run(t, "--format", "xml", "count", "pair", "3")
	assert.ErrorIs(t, err, catalog.ErrBadValue)

	_, err = run(t, "count", "pair")
	assert.Error(t, err)
}

func TestConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "discrete.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: yaml\nlimit: 2\n"), 0o644))

	out := mustRun(t, "--config", path, "list", "pair", "4")
	assert.Equal(t, "- {index: 0, pos: [0, 1]}\n- {index: 1, pos: [0, 2]}\n", out)

	out = mustRun(t, "--config", path, "--format", "json", "list", "pair", "4", "--limit", "1")
	assert.Equal(t, "{\"index\":0,\"pos\":[0,1]}\n", out)

	_, err := run(t, "--config", filepath.Join(dir, "missing.yaml"), "count", "pair", "3")
	assert.Error(t, err)

	t.Setenv("DISCRETE_FORMAT", "yaml")
	assert.Equal(t, "[0, 1]\n", mustRun(t, "zero", "pair", "4"))
}
