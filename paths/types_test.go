package paths_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/caves/cave"
	"github.com/katalvlaran/caves/paths"
)

func TestParsePolicy(t *testing.T) {
	for in, want := range map[string]paths.Policy{
		"single":        paths.SingleVisit,
		"single-visit":  paths.SingleVisit,
		"1":             paths.SingleVisit,
		" Duplicate ":   paths.OneDuplicateAllowed,
		"one-duplicate": paths.OneDuplicateAllowed,
		"2":             paths.OneDuplicateAllowed,
	} {
		got, err := paths.ParsePolicy(in)
		require.NoErrorf(t, err, "%q", in)
		assert.Equalf(t, want, got, "%q", in)
	}

	_, err := paths.ParsePolicy("three")
	assert.ErrorIs(t, err, paths.ErrUnknownPolicy)

	assert.Equal(t, "single-visit", paths.SingleVisit.String())
	assert.Equal(t, "one-duplicate", paths.OneDuplicateAllowed.String())
	assert.Equal(t, "policy(9)", paths.Policy(9).String())
}

func TestParseOrder(t *testing.T) {
	for in, want := range map[string]paths.Order{
		"":     paths.FIFO,
		"fifo": paths.FIFO,
		"BFS":  paths.FIFO,
		"lifo": paths.LIFO,
		"dfs":  paths.LIFO,
	} {
		got, err := paths.ParseOrder(in)
		require.NoErrorf(t, err, "%q", in)
		assert.Equalf(t, want, got, "%q", in)
	}
	_, err := paths.ParseOrder("random")
	assert.ErrorIs(t, err, paths.ErrOptionViolation)
	assert.Equal(t, "lifo", paths.LIFO.String())
}

func TestPath_String(t *testing.T) {
	p := paths.Path{cave.MustClassify("start"), cave.MustClassify("HN"), cave.MustClassify("end")}
	assert.Equal(t, "start,HN,end", p.String())
	assert.Equal(t, []string{"start", "HN", "end"}, p.Labels())
	assert.Equal(t, "", paths.Path(nil).String())
}
