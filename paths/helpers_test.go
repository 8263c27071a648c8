package paths_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/caves/core"
	"github.com/katalvlaran/caves/paths"
)

// Sample cave systems with their known path counts (single-visit / one-duplicate).
var (
	sampleSmall = []string{
		"start-A", "start-b", "A-c", "A-b", "b-d", "A-end", "b-end",
	}
	sampleMedium = []string{
		"dc-end", "HN-start", "start-kj", "dc-start", "dc-HN",
		"LN-dc", "HN-end", "kj-sj", "kj-HN", "kj-dc",
	}
	sampleLarge = []string{
		"fs-end", "he-DX", "fs-he", "start-DX", "pj-DX", "end-zg",
		"zg-sl", "zg-pj", "pj-he", "RW-he", "fs-DX", "pj-RW",
		"zg-RW", "start-pj", "he-WI", "zg-he", "pj-fs", "start-RW",
	}
)

type sample struct {
	name      string
	lines     []string
	single    int
	duplicate int
}

var samples = []sample{
	{"small", sampleSmall, 10, 36},
	{"medium", sampleMedium, 19, 103},
	{"large", sampleLarge, 226, 3509},
}

// mustGraph builds a graph from "a-b" lines.
func mustGraph(tb testing.TB, lines ...string) *core.Graph {
	tb.Helper()
	edges := make([]core.Edge, 0, len(lines))
	for _, l := range lines {
		a, b, ok := strings.Cut(l, "-")
		require.Truef(tb, ok, "bad fixture line %q", l)
		edges = append(edges, core.Edge{From: a, To: b})
	}
	g, err := core.Build(edges)
	require.NoError(tb, err)
	return g
}

// sortedStrings renders a Result as a sorted slice, for set comparisons.
func sortedStrings(res *paths.Result) []string {
	out := res.Strings()
	sort.Strings(out)
	return out
}
