// Package spd implements the log-Cholesky bijection between symmetric
// positive-definite matrices and unconstrained lower-triangular matrices.
//
// Forward (Link): factor X = L·Lᵗ with gonum's mat.Cholesky, then replace
// each diagonal entry of L with its logarithm. The strictly-lower entries
// are already unconstrained; taking the log of the (strictly positive)
// diagonal removes the last constraint, so the result ranges over all
// lower-triangular matrices.
//
// Inverse (Invlink): exponentiate the diagonal to recover L, return L·Lᵗ —
// positive-definite by construction for any finite input.
//
// Jacobian (LogJacobian): the log-determinant of the map from X to its
// log-Cholesky coordinates, derived from the differential of the Cholesky
// factorization:
//
//	Σ_{i=1..n} (n−i+2)·log U[i,i] + n·log 2
//
// with U the upper Cholesky factor (U[i,i] = L[i,i]).
//
// Failure semantics: a non-positive-definite input makes the factorization
// fail and surfaces as ErrNotPositiveDefinite — the input violates the
// support invariant and the call is abandoned; nothing is coerced or
// masked. Shape is enforced by the gonum types themselves: SymDense cannot
// be non-square and TriDense carries its triangle by construction, which is
// this package's eager answer to the dimension-mismatch question.
//
// Complexity: O(n³) per call (dominated by the factorization / matrix
// product); inputs are never mutated.
package spd
