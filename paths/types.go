// Package paths provides the policy type, functional options and result
// types for exhaustive cave path enumeration over a core.Graph.
package paths

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/caves/cave"
)

// Sentinel errors for enumeration.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("paths: graph is nil")

	// ErrUnknownPolicy is returned for a Policy outside the defined set.
	ErrUnknownPolicy = errors.New("paths: unknown policy")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("paths: invalid option supplied")
)

// Policy is the revisit rule applied to small caves.
type Policy uint8

const (
	// SingleVisit forbids visiting any small cave more than once.
	SingleVisit Policy = iota + 1
	// OneDuplicateAllowed lets a single small cave be visited twice per path.
	OneDuplicateAllowed
)

// String returns the canonical policy name.
func (p Policy) String() string {
	switch p {
	case SingleVisit:
		return "single-visit"
	case OneDuplicateAllowed:
		return "one-duplicate"
	default:
		return fmt.Sprintf("policy(%d)", uint8(p))
	}
}

func (p Policy) valid() bool {
	return p == SingleVisit || p == OneDuplicateAllowed
}

// ParsePolicy converts a user-facing name into a Policy.
// Accepted: "single", "single-visit", "1", "duplicate", "one-duplicate", "2".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "single-visit", "1":
		return SingleVisit, nil
	case "duplicate", "one-duplicate", "2":
		return OneDuplicateAllowed, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Order is the frontier discipline. It changes memory profile and result
// order, never the set of paths found.
type Order uint8

const (
	// FIFO expands states breadth-first.
	FIFO Order = iota
	// LIFO expands states depth-first, keeping the frontier small.
	LIFO
)

// String returns "fifo" or "lifo".
func (o Order) String() string {
	if o == LIFO {
		return "lifo"
	}
	return "fifo"
}

// ParseOrder converts "fifo"/"bfs" or "lifo"/"dfs" into an Order.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fifo", "bfs":
		return FIFO, nil
	case "lifo", "dfs":
		return LIFO, nil
	default:
		return FIFO, fmt.Errorf("%w: unknown order %q", ErrOptionViolation, s)
	}
}

// Option configures enumeration via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when
// Enumerate is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for an enumeration run.
type Options struct {
	// Ctx allows cancellation; checked once per dequeued state.
	Ctx context.Context

	// Order selects the frontier discipline.
	Order Order

	// MaxLength, if > 0, drops states whose path would exceed this many nodes.
	// Zero means no limit.
	MaxLength int

	// Workers, if > 1, fans the search out over that many goroutines.
	Workers int

	// OnComplete, if non-nil, is called for every completed path.
	// Returning an error aborts the run. Calls are serialized even when
	// Workers > 1.
	OnComplete func(p Path) error

	// Logger receives a debug summary of each run.
	Logger *zap.Logger

	err error
}

// DefaultOptions returns Options with a background context, FIFO order,
// no length limit, a single worker, no hook and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Order:      FIFO,
		MaxLength:  0,
		Workers:    1,
		OnComplete: nil,
		Logger:     zap.NewNop(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOrder selects the frontier discipline.
func WithOrder(order Order) Option {
	return func(o *Options) {
		switch order {
		case FIFO, LIFO:
			o.Order = order
		default:
			o.err = fmt.Errorf("%w: unknown order %d", ErrOptionViolation, order)
		}
	}
}

// WithMaxLength caps the number of nodes per path.
//
//	n > 0:  paths longer than n nodes are never produced
//	n == 0: explicit no limit
//	n < 0:  ErrOptionViolation
func WithMaxLength(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxLength cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxLength = n
	}
}

// WithWorkers sets the number of goroutines used for the search.
// 0 and 1 both mean sequential; negative values are a violation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		if n == 0 {
			n = 1
		}
		o.Workers = n
	}
}

// WithOnComplete registers a callback for every completed path.
func WithOnComplete(fn func(p Path) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnComplete = fn
		}
	}
}

// WithLogger sets the logger used for run summaries.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Path is an ordered sequence of caves beginning with start.
// Paths in a Result always end with end.
type Path []cave.Node

// String renders labels joined by commas, e.g. "start,A,b,end".
func (p Path) String() string {
	return strings.Join(p.Labels(), ",")
}

// Labels returns the labels of p in order.
func (p Path) Labels() []string {
	out := make([]string, len(p))
	for i, n := range p {
		out[i] = n.Label()
	}
	return out
}

// Result holds the outcome of an enumeration run:
//   - Paths: every distinct complete path, in discovery order.
//   - Expanded: number of search states dequeued.
//   - MaxFrontier: the largest frontier held by any single walker.
type Result struct {
	Policy      Policy
	Paths       []Path
	Expanded    int
	MaxFrontier int
}

// Len returns the number of complete paths.
func (r *Result) Len() int { return len(r.Paths) }

// Strings renders every path with Path.String.
func (r *Result) Strings() []string {
	out := make([]string, len(r.Paths))
	for i, p := range r.Paths {
		out[i] = p.String()
	}
	return out
}
