package spd

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// LogJacobian returns the log-determinant of the map from a symmetric
// positive-definite matrix x to its log-Cholesky coordinates:
//
//	Σ_{i=1..n} (n−i+2)·log U[i,i] + n·log 2
//
// with U the upper Cholesky factor of x. The term weights fall from n+1 on
// the first pivot to 2 on the last, reflecting how many entries of the
// factor each pivot scales.
//
// Returns ErrNotPositiveDefinite when x cannot be factored and ErrNilMatrix
// for a nil input.
func LogJacobian(x *mat.SymDense) (float64, error) {
	if x == nil {
		return 0, ErrNilMatrix
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(x); !ok {
		return 0, ErrNotPositiveDefinite
	}

	var u mat.TriDense
	chol.UTo(&u)

	n, _ := x.Dims()
	sum := float64(n) * math.Ln2
	for i := 0; i < n; i++ {
		// 1-based weight n−i+2 becomes n−i+1 at 0-based index i.
		sum += float64(n-i+1) * math.Log(u.At(i, i))
	}

	return sum, nil
}
