package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const medium = `dc-end
HN-start
start-kj
dc-start
dc-HN
LN-dc
HN-end
kj-sj
kj-HN
kj-dc
`

// execute runs the command tree with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.yaml")))
	err := root.Execute()
	return out.String(), err
}

func writeInput(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestSolve(t *testing.T) {
	out, err := execute(t, "solve", writeInput(t, medium))
	require.NoError(t, err)
	assert.Equal(t, "Solution 1: 19\nSolution 2: 103\n", out)
}

func TestSolve_Parallel(t *testing.T) {
	out, err := execute(t, "solve", writeInput(t, medium), "--workers", "3", "--order", "lifo")
	require.NoError(t, err)
	assert.Equal(t, "Solution 1: 19\nSolution 2: 103\n", out)
}

func TestCount(t *testing.T) {
	path := writeInput(t, medium)

	out, err := execute(t, "count", path)
	require.NoError(t, err)
	assert.Equal(t, "19\n", out)

	out, err = execute(t, "count", path, "--policy", "duplicate")
	require.NoError(t, err)
	assert.Equal(t, "103\n", out)

	_, err = execute(t, "count", path, "--policy", "many")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	out, err := execute(t, "list", writeInput(t, "start-A\nA-b\nA-end\nb-end\n"), "-p", "single")
	require.NoError(t, err)
	assert.Equal(t, []string{"start,A,end", "start,A,b,end", "start,A,b,A,end"},
		strings.Split(strings.TrimSpace(out), "\n"))
}

func TestErrors(t *testing.T) {
	_, err := execute(t, "count")
	assert.ErrorIs(t, err, errNoInput)

	_, err = execute(t, "count", writeInput(t, "start-\n"))
	assert.Error(t, err)

	_, err = execute(t, "count", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, medium)
	cfg := filepath.Join(dir, "caves.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("input: "+in+"\npolicy: duplicate\nlog:\n  level: error\n"), 0o644))

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"count", "--config", cfg})
	require.NoError(t, root.Execute())
	assert.Equal(t, "103\n", out.String())
}
