package input_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/caves/cave"
	"github.com/katalvlaran/caves/core"
	"github.com/katalvlaran/caves/input"
)

func TestParseEdges(t *testing.T) {
	src := "start-A\n  A-b \n\nb-end\r\n"
	edges, err := input.ParseEdges(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: "start", To: "A"},
		{From: "A", To: "b"},
		{From: "b", To: "end"},
	}, edges)
}

func TestParseEdges_Malformed(t *testing.T) {
	for _, src := range []string{"start-A\nAb\n", "a-b-c", "x"} {
		_, err := input.ParseEdges(strings.NewReader(src))
		require.Errorf(t, err, "%q", src)
		assert.Truef(t, errors.Is(err, input.ErrMalformedLine), "%q: %v", src, err)
	}

	_, err := input.ParseEdges(strings.NewReader("start-A\nAb\n"))
	assert.Contains(t, err.Error(), "line 2")
}

// TestParseEdges_EmptyLabel verifies empty labels reach core.Build.
func TestParseEdges_EmptyLabel(t *testing.T) {
	edges, err := input.ParseEdges(strings.NewReader("start-\n"))
	require.NoError(t, err)
	require.Equal(t, []core.Edge{{From: "start", To: ""}}, edges)

	_, err = core.Build(edges)
	assert.ErrorIs(t, err, core.ErrMalformedEdge)
	assert.ErrorIs(t, err, cave.ErrEmptyLabel)
}

func TestLoadGraph(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "caves.txt")
	require.NoError(t, os.WriteFile(path, []byte("start-A\nA-end\n"), 0o644))

	g, err := input.LoadGraph(path)
	require.NoError(t, err)
	assert.True(t, g.HasEdge("start", "A"))
	assert.True(t, g.HasEdge("A", "end"))

	_, err = input.LoadGraph(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("start-\n"), 0o644))
	_, err = input.LoadGraph(bad)
	assert.ErrorIs(t, err, core.ErrMalformedEdge)
	assert.Contains(t, err.Error(), bad)
}
