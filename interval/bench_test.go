package interval_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/unconstrain/interval"
)

// benchmarkRoundTrip runs Link followed by Invlink on a fixed grid of
// interior points, keeping the result alive in a package-level sink.
func benchmarkRoundTrip(b *testing.B, tr interval.Transformer, grid []float64) {
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		for _, x := range grid {
			sink = tr.Invlink(tr.Link(x))
		}
	}
}

var sink float64

// BenchmarkInterval_BothFinite benchmarks the logit/sigmoid pair.
func BenchmarkInterval_BothFinite(b *testing.B) {
	benchmarkRoundTrip(b, interval.Interval{Lower: -3, Upper: 7},
		[]float64{-2.9, -1, 0, 2, 5, 6.9})
}

// BenchmarkInterval_HalfOpen benchmarks the log/exp pair on (0, +∞).
func BenchmarkInterval_HalfOpen(b *testing.B) {
	benchmarkRoundTrip(b, interval.Interval{Lower: 0, Upper: math.Inf(1)},
		[]float64{0.001, 0.5, 1, 10, 1000})
}

// BenchmarkPositive benchmarks the dedicated Positive specialization.
func BenchmarkPositive(b *testing.B) {
	benchmarkRoundTrip(b, interval.Positive{},
		[]float64{0.001, 0.5, 1, 10, 1000})
}

// BenchmarkUnit benchmarks the dedicated Unit specialization.
func BenchmarkUnit(b *testing.B) {
	benchmarkRoundTrip(b, interval.Unit{},
		[]float64{0.01, 0.25, 0.5, 0.75, 0.99})
}
