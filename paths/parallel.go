package paths

import (
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/caves/core"
)

// seedFactor is how many seed states are prepared per worker before fan-out.
const seedFactor = 4

// parallel seeds the frontier breadth-first until it holds seedFactor×Workers
// states, then searches each seed subtree on its own goroutine. Partial
// results are merged in seed order, so the output is reproducible.
func parallel(g *core.Graph, policy Policy, o Options, retain bool, root *state, res *Result) (int, error) {
	hook := serialize(o.OnComplete)

	seedOpts := o
	seedOpts.Order = FIFO
	sw := newWalker(o.Ctx, g, policy, seedOpts, retain, hook, res)
	sw.push(root)
	target := seedFactor * o.Workers
	for len(sw.frontier) > 0 && len(sw.frontier) < target {
		if err := sw.step(); err != nil {
			return 0, err
		}
	}
	seeds := sw.frontier
	found := sw.found
	if len(seeds) == 0 {
		return found, nil
	}

	parts := make([]*Result, len(seeds))
	counts := make([]int, len(seeds))
	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Workers)
	for i, seed := range seeds {
		i, seed := i, seed
		eg.Go(func() error {
			part := &Result{Policy: policy}
			w := newWalker(ctx, g, policy, o, retain, hook, part)
			w.push(seed)
			if err := w.loop(); err != nil {
				return err
			}
			parts[i] = part
			counts[i] = w.found
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	for i, part := range parts {
		res.Paths = append(res.Paths, part.Paths...)
		res.Expanded += part.Expanded
		if part.MaxFrontier > res.MaxFrontier {
			res.MaxFrontier = part.MaxFrontier
		}
		found += counts[i]
	}
	o.Logger.Debug("parallel fan-out merged",
		zap.Int("seeds", len(seeds)),
		zap.Int("workers", o.Workers),
	)
	return found, nil
}

// serialize wraps fn so concurrent walkers never call it at the same time.
func serialize(fn func(Path) error) func(Path) error {
	if fn == nil {
		return nil
	}
	var mu sync.Mutex
	return func(p Path) error {
		mu.Lock()
		defer mu.Unlock()
		return fn(p)
	}
}
