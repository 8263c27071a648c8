// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Read-only queries over a built Graph.
// Determinism:
//   - Nodes(), Neighbors() and Edges() are sorted by label.
//   - Successors(i) is sorted by label of the successor.

package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/caves/cave"
)

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Nodes returns every node sorted by label.
// The returned slice is a fresh copy.
func (g *Graph) Nodes() []cave.Node {
	out := make([]cave.Node, len(g.nodes))
	copy(out, g.nodes)
	sort.Slice(out, func(i, j int) bool { return out[i].Label() < out[j].Label() })

	return out
}

// HasNode reports whether label occurs in the graph.
func (g *Graph) HasNode(label string) bool {
	_, ok := g.index[label]
	return ok
}

// Node returns the classified node for label.
func (g *Graph) Node(label string) (cave.Node, bool) {
	i, ok := g.index[label]
	if !ok {
		return cave.Node{}, false
	}

	return g.nodes[i], true
}

// Start returns the start node, if the input mentioned one.
func (g *Graph) Start() (cave.Node, bool) {
	if g.start == noNode {
		return cave.Node{}, false
	}

	return g.nodes[g.start], true
}

// End returns the end node, if the input mentioned one.
func (g *Graph) End() (cave.Node, bool) {
	if g.end == noNode {
		return cave.Node{}, false
	}

	return g.nodes[g.end], true
}

// Neighbors returns the nodes directly reachable from label, sorted by label.
//
// Errors:
//   - ErrNodeNotFound if label is unknown.
func (g *Graph) Neighbors(label string) ([]cave.Node, error) {
	i, ok := g.index[label]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, label)
	}
	out := make([]cave.Node, len(g.succ[i]))
	for k, j := range g.succ[i] {
		out[k] = g.nodes[j]
	}

	return out, nil
}

// HasEdge reports whether the directed entry from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	fi, ok := g.index[from]
	if !ok {
		return false
	}
	ti, ok := g.index[to]
	if !ok {
		return false
	}
	succ := g.succ[fi]
	k := sort.Search(len(succ), func(k int) bool {
		return g.nodes[succ[k]].Label() >= to
	})

	return k < len(succ) && succ[k] == ti
}

// Edges returns every directed adjacency entry, sorted by (From, To).
func (g *Graph) Edges() []Edge {
	var out []Edge
	for i, succ := range g.succ {
		for _, j := range succ {
			out = append(out, Edge{From: g.nodes[i].Label(), To: g.nodes[j].Label()})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// Index returns the dense index of label.
func (g *Graph) Index(label string) (int, bool) {
	i, ok := g.index[label]
	return i, ok
}

// At returns the node stored at index i. It panics if i is out of range.
func (g *Graph) At(i int) cave.Node { return g.nodes[i] }

// Successors returns the successor indices of node i, sorted by label.
// The slice is shared with the Graph and must not be modified.
func (g *Graph) Successors(i int) []int { return g.succ[i] }
