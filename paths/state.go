package paths

import "github.com/katalvlaran/caves/core"

// visitSet records which small caves lie on a partial path, one bit per
// graph index. It is never mutated once shared; with returns a copy.
type visitSet []uint64

func newVisitSet(n int) visitSet {
	return make(visitSet, (n+63)/64)
}

func (v visitSet) has(i int) bool {
	return v[i/64]&(1<<(uint(i)%64)) != 0
}

func (v visitSet) with(i int) visitSet {
	out := make(visitSet, len(v))
	copy(out, v)
	out[i/64] |= 1 << (uint(i) % 64)
	return out
}

// state is one search state: a partial path held as a parent chain.
// A child only points at its parent, so siblings never alias mutable data.
type state struct {
	parent *state
	node   int      // graph index of the last cave on the path
	length int      // caves on the path, start included
	seen   visitSet // small caves on the path
	dup    bool     // the one-duplicate allowance has been spent
}

// path walks the parent chain and materializes the full Path.
func (s *state) path(g *core.Graph) Path {
	out := make(Path, s.length)
	for cur, i := s, s.length-1; cur != nil; cur, i = cur.parent, i-1 {
		out[i] = g.At(cur.node)
	}
	return out
}
