// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge record, Graph representation and sentinel errors.
// Invariants:
//   - No successor list targets the start node.
//   - The end node has an empty successor list.
//   - succ[i] is sorted by label and contains no duplicates.

package core

import (
	"errors"

	"github.com/katalvlaran/caves/cave"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrMalformedEdge indicates an edge record is missing one of its labels.
	ErrMalformedEdge = errors.New("core: malformed edge")

	// ErrNodeNotFound indicates a query referenced an unknown label.
	ErrNodeNotFound = errors.New("core: node not found")
)

// noNode marks an absent start or end node.
const noNode = -1

// Edge is one undirected input record connecting two labels.
// After Build, Edges() reports directed entries using the same type.
type Edge struct {
	From string
	To   string
}

// Graph is an immutable adjacency structure over classified caves.
type Graph struct {
	nodes []cave.Node    // index → node
	index map[string]int // label → index
	succ  [][]int        // index → successor indices, sorted by label
	start int            // index of start, or noNode
	end   int            // index of end, or noNode
}
