package simplex_test

import (
	"testing"

	"github.com/katalvlaran/unconstrain/simplex"
	"gonum.org/v1/gonum/mat"
)

// uniformVector builds the uniform point on the (k−1)-simplex.
func uniformVector(k int) []float64 {
	x := make([]float64, k)
	for i := range x {
		x[i] = 1 / float64(k)
	}

	return x
}

// benchmarkLink runs Link on the uniform K-vector.
func benchmarkLink(b *testing.B, k int) {
	x := uniformVector(k)
	opts := simplex.DefaultOptions()

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := simplex.Link(x, opts); err != nil {
			b.Fatalf("Link failed: %v", err)
		}
	}
}

// BenchmarkLink_K4 benchmarks a small categorical-sized simplex.
func BenchmarkLink_K4(b *testing.B) { benchmarkLink(b, 4) }

// BenchmarkLink_K100 benchmarks a moderately large simplex.
func BenchmarkLink_K100(b *testing.B) { benchmarkLink(b, 100) }

// BenchmarkLink_K10000 benchmarks a large simplex to expose the O(K) walk.
func BenchmarkLink_K10000(b *testing.B) { benchmarkLink(b, 10000) }

// BenchmarkInvlink_K100 benchmarks the inverse recursion.
func BenchmarkInvlink_K100(b *testing.B) {
	opts := simplex.DefaultOptions()
	y, err := simplex.Link(uniformVector(100), opts)
	if err != nil {
		b.Fatalf("setup Link failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = simplex.Invlink(y, opts); err != nil {
			b.Fatalf("Invlink failed: %v", err)
		}
	}
}

// BenchmarkLogJacobian_K100 benchmarks the incremental correction.
func BenchmarkLogJacobian_K100(b *testing.B) {
	x := uniformVector(100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := simplex.LogJacobian(x); err != nil {
			b.Fatalf("LogJacobian failed: %v", err)
		}
	}
}

// BenchmarkLinkBatch_K10xN100 benchmarks the column-wise batched form.
func BenchmarkLinkBatch_K10xN100(b *testing.B) {
	const k, n = 10, 100
	m := mat.NewDense(k, n, nil)
	col := uniformVector(k)
	for j := 0; j < n; j++ {
		m.SetCol(j, col)
	}
	opts := simplex.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := simplex.LinkBatch(m, opts); err != nil {
			b.Fatalf("LinkBatch failed: %v", err)
		}
	}
}
