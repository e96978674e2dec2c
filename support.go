package unconstrain

import (
	"math"

	"github.com/katalvlaran/unconstrain/interval"
)

// Kind identifies a support family. It is a small closed tagged variant:
// the many named distributions of a probability library collapse onto these
// few behavior groups, and the Kind alone selects the transform.
type Kind int

const (
	// KindUnbounded — support is all of ℝ; the transform is the identity.
	KindUnbounded Kind = iota

	// KindBounded — an interval with at least one finite endpoint.
	KindBounded

	// KindPositive — the strictly positive reals (0, +∞).
	KindPositive

	// KindUnit — the open unit interval (0, 1).
	KindUnit

	// KindSimplex — probability vectors of length Dim summing to 1.
	KindSimplex

	// KindPositiveDefinite — Dim×Dim symmetric positive-definite matrices.
	KindPositiveDefinite
)

// String returns the canonical name of the support family.
func (k Kind) String() string {
	switch k {
	case KindUnbounded:
		return "Unbounded"
	case KindBounded:
		return "Bounded"
	case KindPositive:
		return "Positive"
	case KindUnit:
		return "Unit"
	case KindSimplex:
		return "Simplex"
	case KindPositiveDefinite:
		return "PositiveDefinite"
	default:
		return "Unknown"
	}
}

// Support is an immutable descriptor of a constrained domain: the Kind plus
// the parameters that Kind needs (interval bounds, or a dimension). It owns
// no data beyond its parameters and fully determines which transform
// applies. Construct through Unbounded, Bounded, Positive, Unit, Simplex or
// PositiveDefinite rather than filling fields by hand.
type Support struct {
	Kind  Kind
	Lower float64 // interval kinds only; −Inf when unbounded below
	Upper float64 // interval kinds only; +Inf when unbounded above
	Dim   int     // simplex length K or matrix order n; 0 for scalar kinds
}

// Unbounded returns the descriptor of a fully unconstrained scalar support.
func Unbounded() Support {
	return Support{Kind: KindUnbounded, Lower: math.Inf(-1), Upper: math.Inf(1)}
}

// Positive returns the descriptor of the (0, +∞) support.
func Positive() Support {
	return Support{Kind: KindPositive, Lower: 0, Upper: math.Inf(1)}
}

// Unit returns the descriptor of the open unit interval (0, 1).
func Unit() Support {
	return Support{Kind: KindUnit, Lower: 0, Upper: 1}
}

// Bounded returns the descriptor of the scalar support (lo, hi), where
// either bound may be infinite. The canonical special cases are normalized
// to their dedicated kinds so that dispatch hits the simpler closed forms:
// (−∞,+∞) → KindUnbounded, (0,+∞) → KindPositive, (0,1) → KindUnit.
//
// Returns ErrBadBounds when a bound is NaN or lo ≥ hi.
func Bounded(lo, hi float64) (Support, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo >= hi {
		return Support{}, ErrBadBounds
	}

	switch {
	case math.IsInf(lo, -1) && math.IsInf(hi, 1):
		return Unbounded(), nil
	case lo == 0 && math.IsInf(hi, 1):
		return Positive(), nil
	case lo == 0 && hi == 1:
		return Unit(), nil
	default:
		return Support{Kind: KindBounded, Lower: lo, Upper: hi}, nil
	}
}

// Simplex returns the descriptor of the (k−1)-simplex: length-k probability
// vectors. Returns ErrBadDimension when k < 1.
func Simplex(k int) (Support, error) {
	if k < 1 {
		return Support{}, ErrBadDimension
	}

	return Support{Kind: KindSimplex, Dim: k}, nil
}

// PositiveDefinite returns the descriptor of n×n symmetric
// positive-definite matrices. Returns ErrBadDimension when n < 1.
func PositiveDefinite(n int) (Support, error) {
	if n < 1 {
		return Support{}, ErrBadDimension
	}

	return Support{Kind: KindPositiveDefinite, Dim: n}, nil
}

// scalar returns the interval transformer for a scalar-kind descriptor, or
// ErrKindMismatch for the vector/matrix kinds.
func (s Support) scalar() (interval.Transformer, error) {
	switch s.Kind {
	case KindUnbounded:
		return interval.Identity{}, nil
	case KindPositive:
		return interval.Positive{}, nil
	case KindUnit:
		return interval.Unit{}, nil
	case KindBounded:
		return interval.Interval{Lower: s.Lower, Upper: s.Upper}, nil
	default:
		return nil, ErrKindMismatch
	}
}
