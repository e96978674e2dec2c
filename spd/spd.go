package spd

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by the log-Cholesky transform.
var (
	// ErrNotPositiveDefinite indicates that the Cholesky factorization
	// failed: the input is outside the support of a positive-definite
	// matrix distribution. Fatal for the call, never masked.
	ErrNotPositiveDefinite = errors.New("spd: matrix is not positive-definite")

	// ErrNilMatrix indicates a nil matrix argument.
	ErrNilMatrix = errors.New("spd: matrix is nil")
)

// Link maps a symmetric positive-definite matrix x to its unconstrained
// log-Cholesky coordinates: the lower Cholesky factor of x with every
// diagonal entry replaced by its logarithm. Strictly-upper entries of the
// result are structurally zero.
//
// Returns ErrNotPositiveDefinite when x has no Cholesky factorization and
// ErrNilMatrix for a nil input.
func Link(x *mat.SymDense) (*mat.TriDense, error) {
	if x == nil {
		return nil, ErrNilMatrix
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(x); !ok {
		return nil, ErrNotPositiveDefinite
	}

	var l mat.TriDense
	chol.LTo(&l)

	n, _ := x.Dims()
	y := mat.NewTriDense(n, mat.Lower, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			y.SetTri(i, j, l.At(i, j))
		}
		y.SetTri(i, i, math.Log(l.At(i, i)))
	}

	return y, nil
}

// Invlink maps unconstrained log-Cholesky coordinates y (a lower-triangular
// matrix whose diagonal is held in log-space) back to the positive-definite
// matrix L·Lᵗ, where L is y with its diagonal exponentiated.
//
// Any finite y yields a valid positive-definite result: the exponential
// keeps the factor's diagonal strictly positive. Returns ErrNilMatrix for a
// nil input.
func Invlink(y *mat.TriDense) (*mat.SymDense, error) {
	if y == nil {
		return nil, ErrNilMatrix
	}

	n, _ := y.Dims()
	l := mat.NewTriDense(n, mat.Lower, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			l.SetTri(i, j, y.At(i, j))
		}
		l.SetTri(i, i, math.Exp(y.At(i, i)))
	}

	var prod mat.Dense
	prod.Mul(l, l.T())

	x := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			x.SetSym(i, j, prod.At(i, j))
		}
	}

	return x, nil
}
