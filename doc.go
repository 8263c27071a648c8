// Package caves enumerates every path through a cave system: a small
// undirected graph of named caves, where "start" and "end" are the entry and
// exit, big caves (upper-case names) may be revisited freely and small caves
// are limited by a revisit policy.
//
// Under the hood, everything is organized in three layers:
//
//	cave/  — classifies labels into Start, End, Small and Big nodes
//	core/  — builds the immutable, direction-filtered cave graph
//	paths/ — exhaustive frontier search under SingleVisit or OneDuplicateAllowed
//
// Around them:
//
//	input/           — parses "LABEL-LABEL" edge lists
//	internal/config/ — YAML run configuration for the CLI
//	cmd/caves/       — the command line tool (solve, count, list)
//	examples/        — a runnable walkthrough
//
// Quick ASCII example:
//
//	    start
//	    /   \
//	c──A─────b──d
//	    \   /
//	     end
//
// has 10 paths when no small cave may be visited twice, and 36 when one small
// cave per path may be visited twice.
//
//	go get github.com/katalvlaran/caves
package caves
