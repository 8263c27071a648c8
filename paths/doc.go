// Package paths enumerates every start→end path of a cave graph under a
// small-cave revisit policy.
//
// What
//
//   - Enumerate(g, policy, opts...) returns a Result holding every distinct
//     complete path, plus search diagnostics (Expanded, MaxFrontier).
//   - Count(g, policy, opts...) returns only the number of paths and does not
//     retain them.
//   - Two policies:
//   - SingleVisit: a small cave already on the path is never entered again.
//   - OneDuplicateAllowed: one small cave per path may be entered twice;
//     after that, every small cave already on the path is closed.
//   - Big caves and end are always eligible. Start is never re-entered,
//     because core.Build drops every entry into it.
//
// Algorithm
//
//	frontier ← [ [start] ]
//	while frontier not empty:
//	    s ← pop(frontier)                  // FIFO by default
//	    if last(s) is end: record s; continue
//	    for n in successors(last(s)):
//	        if eligible(s, n, policy): push(frontier, s + n)
//
// Search states are parent-linked: a child stores one cave and a pointer to
// its immutable parent, and the full path is materialized only on completion.
// The set of visited small caves is a bitset copied only when a new small
// cave joins the path.
//
// Determinism
//
//	core.Graph yields successors sorted by label, so for a fixed Order the
//	result order is reproducible. The *set* of paths does not depend on Order
//	or on Workers.
//
// Concurrency
//
//	By default the search runs on the calling goroutine. WithWorkers(n>1)
//	seeds the frontier breadth-first and searches each seed subtree on an
//	errgroup limited to n goroutines; partial results are merged in seed
//	order. No goroutine outlives the call.
//
// Precondition
//
//	The graph must not contain a cycle of big caves only, reachable from
//	start. Big caves have no revisit cap, so such a cycle never terminates.
//	This is not checked. WithMaxLength(n) bounds the search if the input is
//	untrusted.
//
// Options
//
//   - DefaultOptions(): background context, FIFO, no length limit, 1 worker.
//   - WithContext(ctx):     cancellation, checked once per dequeued state.
//   - WithOrder(o):         FIFO (breadth-first) or LIFO (depth-first).
//   - WithMaxLength(n):     drop states longer than n caves (0 = no limit).
//   - WithWorkers(n):       parallel fan-out over n goroutines.
//   - WithOnComplete(fn):   hook per completed path; an error aborts.
//   - WithLogger(l):        zap logger for the run summary (debug level).
//
// Errors
//
//   - ErrGraphNil         if g is nil.
//   - ErrUnknownPolicy    for a Policy outside the defined set.
//   - ErrOptionViolation  for invalid options (negative length or workers).
//   - context.Canceled / context.DeadlineExceeded on cancellation.
//   - Wrapped errors returned by OnComplete.
//
// An unreachable end, or a graph lacking start or end, is not an error: the
// Result is simply empty.
//
// Usage
//
//	g, _ := core.Build(edges)
//	res, err := paths.Enumerate(g, paths.OneDuplicateAllowed)
//	if err != nil {
//		// handle
//	}
//	fmt.Println(res.Len())
package paths
