package frontier_test

import (
	"testing"

	"github.com/katalvlaran/valvenet/frontier"
	"github.com/katalvlaran/valvenet/internal/fixture"
)

// BenchmarkBestPerSet_Example30 runs the canonical instance with 30 minutes.
func BenchmarkBestPerSet_Example30(b *testing.B) {
	nw := fixture.ExampleNetwork()
	start, _ := nw.ID("AA")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = frontier.BestPerSet(nw, start, 30)
	}
}

// BenchmarkBestPerSet_Random40 runs a 40-node random network for 24 minutes.
func BenchmarkBestPerSet_Random40(b *testing.B) {
	nw := fixture.Random(7, 40, 0.05)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = frontier.BestPerSet(nw, 0, 24)
	}
}
