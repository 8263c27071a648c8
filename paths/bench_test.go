package paths_test

import (
	"testing"

	"github.com/katalvlaran/caves/paths"
)

// BenchmarkEnumerate_Large measures full enumeration of the large sample.
func BenchmarkEnumerate_Large(b *testing.B) {
	g := mustGraph(b, sampleLarge...)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = paths.Enumerate(g, paths.OneDuplicateAllowed)
	}
}

// BenchmarkCount_LIFO measures counting with a depth-first frontier.
func BenchmarkCount_LIFO(b *testing.B) {
	g := mustGraph(b, sampleLarge...)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = paths.Count(g, paths.OneDuplicateAllowed, paths.WithOrder(paths.LIFO))
	}
}

// BenchmarkCount_Parallel measures the errgroup fan-out with four workers.
func BenchmarkCount_Parallel(b *testing.B) {
	g := mustGraph(b, sampleLarge...)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = paths.Count(g, paths.OneDuplicateAllowed, paths.WithWorkers(4))
	}
}
