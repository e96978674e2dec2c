package simplex

import "math"

// LogJacobian returns the log-determinant of the stick-breaking
// reparameterization at the simplex point x, accumulated incrementally with
// the same running sum as Link:
//
//	k=1:      log(z₁+ε) + log(1−z₁+ε)                 with z₁ = x₁
//	k=2…K−1:  log(z_k+ε) + log(1−z_k+ε) + log(1−s+ε)  with z_k = x_k/(1−s+ε)
//
// where s is the partial sum of x before step k. The epsilon terms keep the
// correction finite at boundary points, matching the guarded forward map:
// the remaining-mass denominator carries the same guard as Link, so a point
// that exhausts its mass early (s = 1 before the last stick) yields a large
// negative but finite correction instead of a 0/0.
//
// The result is the additive term of the change-of-variables formula: a
// caller evaluating a simplex density in unconstrained coordinates adds it
// to the base log-density. K=1 contributes no free coordinate and returns 0.
//
// Returns ErrEmptyVector when len(x) == 0.
func LogJacobian(x []float64) (float64, error) {
	k := len(x)
	if k == 0 {
		return 0, ErrEmptyVector
	}
	if k == 1 {
		return 0, nil
	}

	const eps = Epsilon
	var s, sum float64

	z := x[0]
	sum = math.Log(z+eps) + math.Log(1-z+eps)

	for i := 1; i < k-1; i++ {
		s += x[i-1]
		z = x[i] / (1 - s + eps)
		sum += math.Log(z+eps) + math.Log(1-z+eps) + math.Log(1-s+eps)
	}

	return sum, nil
}
