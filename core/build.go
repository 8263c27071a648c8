// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: Graph construction from an edge list.
// Policy:
//   - Any malformed record aborts the build; no partial Graph is returned.
//   - Direction filtering happens here, once, so traversal never has to check it.

package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/caves/cave"
)

// Build constructs a Graph from undirected edge records.
//
// Implementation:
//   - Stage 1: Classify both labels of every record; intern them in first-seen order.
//   - Stage 2: Add a→b unless a is End or b is Start; add b→a unless b is End or a is Start.
//   - Stage 3: Sort every successor set by label.
//
// Errors:
//   - ErrMalformedEdge wrapping cave.ErrEmptyLabel if a record has an empty label.
//     Both sentinels match under errors.Is.
//
// Complexity:
//   - Time O(E + V·d log d), Space O(V + E).
func Build(edges []Edge) (*Graph, error) {
	b := newBuilder(len(edges))
	for i, e := range edges {
		from, err := cave.Classify(e.From)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d (%q-%q): %w", ErrMalformedEdge, i, e.From, e.To, err)
		}
		to, err := cave.Classify(e.To)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d (%q-%q): %w", ErrMalformedEdge, i, e.From, e.To, err)
		}
		b.link(from, to)
	}

	return b.finish(), nil
}

// builder accumulates successor sets before they are frozen into a Graph.
type builder struct {
	g    *Graph
	sets []map[int]struct{}
}

func newBuilder(hint int) *builder {
	return &builder{
		g: &Graph{
			nodes: make([]cave.Node, 0, hint),
			index: make(map[string]int, hint),
			start: noNode,
			end:   noNode,
		},
		sets: make([]map[int]struct{}, 0, hint),
	}
}

// intern returns the index of n, registering it on first sight.
func (b *builder) intern(n cave.Node) int {
	if i, ok := b.g.index[n.Label()]; ok {
		return i
	}
	i := len(b.g.nodes)
	b.g.nodes = append(b.g.nodes, n)
	b.g.index[n.Label()] = i
	b.sets = append(b.sets, make(map[int]struct{}))
	switch n.Kind() {
	case cave.Start:
		b.g.start = i
	case cave.End:
		b.g.end = i
	case cave.Small, cave.Big:
	}

	return i
}

// link registers both directions of a-b that survive the start/end filter.
func (b *builder) link(a, c cave.Node) {
	ai, ci := b.intern(a), b.intern(c)
	if !a.IsEnd() && !c.IsStart() {
		b.sets[ai][ci] = struct{}{}
	}
	if !c.IsEnd() && !a.IsStart() {
		b.sets[ci][ai] = struct{}{}
	}
}

// finish freezes successor sets into label-sorted slices.
func (b *builder) finish() *Graph {
	g := b.g
	g.succ = make([][]int, len(g.nodes))
	for i, set := range b.sets {
		out := make([]int, 0, len(set))
		for j := range set {
			out = append(out, j)
		}
		sort.Slice(out, func(x, y int) bool {
			return g.nodes[out[x]].Label() < g.nodes[out[y]].Label()
		})
		g.succ[i] = out
	}

	return g
}
