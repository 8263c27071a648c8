// Package paths enumerates every path through a cave graph from start to end
// under a small-cave revisit policy.
//
// The search is a frontier loop over independent search states. Each state
// extends its parent by one cave; a state ending at end is complete and is
// never expanded.
package paths

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/caves/cave"
	"github.com/katalvlaran/caves/core"
)

// walker encapsulates mutable enumeration state for one goroutine.
type walker struct {
	graph    *core.Graph
	policy   Policy
	opts     Options
	ctx      context.Context
	frontier []*state
	res      *Result
	retain   bool // keep completed paths in res.Paths
	found    int
	complete func(Path) error
}

// Enumerate returns every complete path of g obeying policy.
//
// A graph without a start or end node, or where end is unreachable, yields
// an empty Result and no error.
//
// Returns ErrGraphNil, ErrUnknownPolicy, ErrOptionViolation, the context's
// error on cancellation, or a wrapped OnComplete error.
//
// The graph must not contain a cycle made only of big caves reachable from
// start: such a cycle never terminates unless WithMaxLength is set.
func Enumerate(g *core.Graph, policy Policy, opts ...Option) (*Result, error) {
	res, _, err := run(g, policy, true, opts)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Count returns the number of complete paths without retaining them.
// It accepts the same options as Enumerate.
func Count(g *core.Graph, policy Policy, opts ...Option) (int, error) {
	_, n, err := run(g, policy, false, opts)
	return n, err
}

// run validates input, then dispatches to the sequential or parallel search.
func run(g *core.Graph, policy Policy, retain bool, opts []Option) (*Result, int, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	if !policy.valid() {
		return nil, 0, fmt.Errorf("%w: %d", ErrUnknownPolicy, uint8(policy))
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, 0, o.err
	}

	began := time.Now()
	res := &Result{Policy: policy}
	var (
		found int
		err   error
	)
	if root, ok := rootState(g); ok {
		if o.Workers > 1 {
			found, err = parallel(g, policy, o, retain, root, res)
		} else {
			w := newWalker(o.Ctx, g, policy, o, retain, serialize(o.OnComplete), res)
			w.push(root)
			err = w.loop()
			found = w.found
		}
	}
	if err != nil {
		return nil, 0, err
	}

	o.Logger.Debug("enumeration finished",
		zap.Stringer("policy", policy),
		zap.Stringer("order", o.Order),
		zap.Int("workers", o.Workers),
		zap.Int("paths", found),
		zap.Int("expanded", res.Expanded),
		zap.Int("max_frontier", res.MaxFrontier),
		zap.Duration("elapsed", time.Since(began)),
	)
	return res, found, nil
}

// rootState returns the single initial state [start], or false if g has
// no start or no end node.
func rootState(g *core.Graph) (*state, bool) {
	start, ok := g.Start()
	if !ok {
		return nil, false
	}
	if _, ok := g.End(); !ok {
		return nil, false
	}
	i, _ := g.Index(start.Label())
	return &state{node: i, length: 1, seen: newVisitSet(g.Len())}, true
}

func newWalker(ctx context.Context, g *core.Graph, policy Policy, o Options, retain bool, complete func(Path) error, res *Result) *walker {
	return &walker{
		graph:    g,
		policy:   policy,
		opts:     o,
		ctx:      ctx,
		res:      res,
		retain:   retain,
		complete: complete,
	}
}

// loop processes the frontier until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.frontier) > 0 {
		if err := w.step(); err != nil {
			return err
		}
	}
	return nil
}

// step dequeues one state and either records it or expands it.
func (w *walker) step() error {
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
	}

	s := w.pop()
	w.res.Expanded++
	if w.graph.At(s.node).IsEnd() {
		return w.record(s)
	}
	for _, next := range w.graph.Successors(s.node) {
		if child, ok := w.extend(s, next); ok {
			w.push(child)
		}
	}
	return nil
}

// push adds s to the frontier and tracks its high-water mark.
func (w *walker) push(s *state) {
	w.frontier = append(w.frontier, s)
	if len(w.frontier) > w.res.MaxFrontier {
		w.res.MaxFrontier = len(w.frontier)
	}
}

// pop removes the next state according to the configured Order.
func (w *walker) pop() *state {
	var s *state
	if w.opts.Order == LIFO {
		last := len(w.frontier) - 1
		s = w.frontier[last]
		w.frontier[last] = nil
		w.frontier = w.frontier[:last]
	} else {
		s = w.frontier[0]
		w.frontier[0] = nil
		w.frontier = w.frontier[1:]
	}
	return s
}

// record hands a completed path to the hook and, if retaining, to the result.
func (w *walker) record(s *state) error {
	w.found++
	if !w.retain && w.complete == nil {
		return nil
	}
	p := s.path(w.graph)
	if w.complete != nil {
		if err := w.complete(p); err != nil {
			return fmt.Errorf("paths: OnComplete error at %q: %w", p.String(), err)
		}
	}
	if w.retain {
		w.res.Paths = append(w.res.Paths, p)
	}
	return nil
}

// extend applies the eligibility test for stepping from s to next and
// returns the child state if the step is allowed.
func (w *walker) extend(s *state, next int) (*state, bool) {
	if w.opts.MaxLength > 0 && s.length+1 > w.opts.MaxLength {
		return nil, false
	}
	child := &state{
		parent: s,
		node:   next,
		length: s.length + 1,
		seen:   s.seen,
		dup:    s.dup,
	}

	n := w.graph.At(next)
	switch n.Kind() {
	case cave.Start:
		// unreachable: Build never adds an entry into start
		return nil, false
	case cave.End, cave.Big:
		return child, true
	case cave.Small:
		if !s.seen.has(next) {
			child.seen = s.seen.with(next)
			return child, true
		}
		switch w.policy {
		case SingleVisit:
			return nil, false
		case OneDuplicateAllowed:
			if s.dup {
				return nil, false
			}
			child.dup = true
			return child, true
		}
	}
	return nil, false
}
