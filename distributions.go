package unconstrain

import (
	"math"

	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

// SupportOf maps a known gonum distribution value to its Support
// descriptor. It is a lookup table, not an inspection: dozens of named
// distributions collapse onto the few support families, and anything not
// registered here returns ErrUnknownSupport — callers with their own
// distribution types construct the descriptor directly.
//
// Registered families:
//
//	unbounded: distuv.Normal, distuv.StudentsT, distuv.Laplace
//	positive:  distuv.Gamma, distuv.InverseGamma, distuv.Exponential,
//	           distuv.LogNormal, distuv.ChiSquared, distuv.Chi, distuv.F,
//	           distuv.Weibull
//	unit:      distuv.Beta
//	bounded:   distuv.Uniform (Min, Max), distuv.Pareto (Xm, +∞)
//	simplex:   *distmv.Dirichlet (its Dim)
//
// Positive-definite supports are constructed explicitly with
// PositiveDefinite(n): gonum's Wishart does not expose its dimension
// through a public accessor, so there is nothing to look up.
func SupportOf(d any) (Support, error) {
	switch t := d.(type) {
	case distuv.Normal, distuv.StudentsT, distuv.Laplace:
		return Unbounded(), nil
	case distuv.Gamma, distuv.InverseGamma, distuv.Exponential,
		distuv.LogNormal, distuv.ChiSquared, distuv.Chi, distuv.F,
		distuv.Weibull:
		return Positive(), nil
	case distuv.Beta:
		return Unit(), nil
	case distuv.Uniform:
		return Bounded(t.Min, t.Max)
	case distuv.Pareto:
		return Bounded(t.Xm, math.Inf(1))
	case *distmv.Dirichlet:
		return Simplex(t.Dim())
	default:
		return Support{}, ErrUnknownSupport
	}
}

// LinkFor resolves the support of a known distribution via SupportOf and
// applies the scalar forward transform: LinkFor(d, x) is
// Link(SupportOf(d), x).
func LinkFor(d any, x float64) (float64, error) {
	s, err := SupportOf(d)
	if err != nil {
		return 0, err
	}

	return Link(s, x)
}

// InvlinkFor resolves the support of a known distribution via SupportOf and
// applies the scalar inverse transform.
func InvlinkFor(d any, y float64) (float64, error) {
	s, err := SupportOf(d)
	if err != nil {
		return 0, err
	}

	return Invlink(s, y)
}
