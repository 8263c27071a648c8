// Package core builds the immutable cave graph consumed by the path enumerator.
//
// A Graph is constructed once from an edge list and never mutated afterwards:
//
//   - Every undirected input edge a-b is realized as two directed adjacency
//     entries a→b and b→a.
//   - An entry is dropped when it would leave End or enter Start, so traversal
//     can never step back into start and never continue past end.
//   - Duplicate edges are idempotent (successors form a set).
//   - Every label seen in the input is a node, even if all of its entries were
//     filtered out (e.g. "end-end").
//
// Representation:
//
//	labels are interned to dense indices 0..n-1 in first-seen order;
//	succ[i] holds the successor indices of node i, sorted by label and de-duplicated.
//
//	Index lookups are O(1); algorithms iterate Successors(i) without
//	re-deriving cave kinds on every comparison.
//
// Determinism:
//
//	Nodes(), Edges() and Neighbors() are sorted by label, and so are
//	Successors(i). Two graphs built from the same edges in any order answer
//	every query identically (indices aside).
//
// Concurrency:
//
//	A built Graph is read-only, so it is safe for concurrent use without locks.
//
// Usage:
//
//	g, err := core.Build([]core.Edge{
//		{From: "start", To: "A"},
//		{From: "A", To: "end"},
//	})
//	if err != nil {
//		// errors.Is(err, core.ErrMalformedEdge) and errors.Is(err, cave.ErrEmptyLabel)
//	}
//	fmt.Println(g.HasEdge("A", "start")) // false
//
// Errors:
//
//	ErrMalformedEdge - an edge record has an empty label; the build is aborted.
//	ErrNodeNotFound  - a query referenced a label that is not in the graph.
package core
