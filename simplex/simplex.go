package simplex

import (
	"math"

	"github.com/katalvlaran/unconstrain/interval"
)

// Link maps a probability vector x of length K from the open simplex to an
// unconstrained vector y of length K via the stick-breaking recursion
// described in the package documentation.
//
// The input is never mutated; a fresh output slice is allocated. The last
// output entry is 0 under opts.Projected, otherwise the residual mass
// 1−Σx_k (≈0 for a valid simplex point).
//
// Returns ErrEmptyVector when len(x) == 0. K=1 (the degenerate simplex
// {[1]}) is handled without entering the recursion.
func Link(x []float64, opts Options) ([]float64, error) {
	k := len(x)
	if k == 0 {
		return nil, ErrEmptyVector
	}

	y := make([]float64, k)
	if k == 1 {
		// Degenerate simplex: no free stick to break.
		if !opts.Projected {
			y[0] = 1 - x[0] // residual channel, ≈0 for x=[1]
		}

		return y, nil
	}

	const eps = Epsilon
	var s float64 // running sum of consumed mass, x_1..x_{k-1}

	// First break: guard x₁ into (0,1) multiplicatively, recenter by log(K−1).
	z := x[0]*(1-2*eps) + eps
	y[0] = interval.Logit(z) + math.Log(float64(k-1))

	// Middle breaks: fraction of the remaining stick, guarded top and bottom.
	for i := 1; i < k-1; i++ {
		s += x[i-1]
		z = (x[i] + eps) * (1 - 2*eps) / (1 - s + eps)
		y[i] = interval.Logit(z) + math.Log(float64(k-1-i))
	}

	s += x[k-2]
	if !opts.Projected {
		y[k-1] = 1 - s - x[k-1]
	}

	return y, nil
}

// Invlink maps an unconstrained vector y of length K back onto the simplex,
// reversing the Link recursion exactly: each break fraction is recovered
// through the sigmoid, the guard is inverted, and the running sum replays
// identically. The final entry is 1−s under opts.Projected, otherwise
// 1−s−y_K (the non-projected residual variant; see the package docs).
//
// The output sums to 1 within a tolerance proportional to Epsilon and every
// entry is strictly greater than −Epsilon; boundary entries come back as
// O(Epsilon) values rather than exact zeros.
//
// Returns ErrEmptyVector when len(y) == 0.
func Invlink(y []float64, opts Options) ([]float64, error) {
	k := len(y)
	if k == 0 {
		return nil, ErrEmptyVector
	}

	x := make([]float64, k)
	if k == 1 {
		// Degenerate simplex: 1−s with s=0, minus the residual when carried.
		x[0] = 1
		if !opts.Projected {
			x[0] = 1 - y[0]
		}

		return x, nil
	}

	const eps = Epsilon
	var s float64

	// First break: undo the recentering, then undo the multiplicative guard.
	z := interval.Sigmoid(y[0] - math.Log(float64(k-1)))
	x[0] = (z - eps) / (1 - 2*eps)

	// Middle breaks: rescale each fraction by the mass still on the stick.
	for i := 1; i < k-1; i++ {
		s += x[i-1]
		z = interval.Sigmoid(y[i] - math.Log(float64(k-1-i)))
		x[i] = (1-s+eps)/(1-2*eps)*z - eps
	}

	s += x[k-2]
	if opts.Projected {
		x[k-1] = 1 - s
	} else {
		x[k-1] = 1 - s - y[k-1]
	}

	return x, nil
}
