package interval

import "math"

// Transformer is the common contract of all scalar support transforms.
//
// Link maps a constrained point into unconstrained space, Invlink maps it
// back, and LogJacobian reports the additive log-density correction
// log|dx/dy| of the pair, expressed in the constrained coordinate x.
// Implementations are immutable values; all methods are pure.
type Transformer interface {
	// Link maps x from the constrained support into ℝ.
	Link(x float64) float64

	// Invlink maps y from ℝ back into the constrained support.
	Invlink(y float64) float64

	// LogJacobian returns log|dx/dy| evaluated at the constrained point x.
	LogJacobian(x float64) float64
}

// Logit returns log(p/(1−p)) for p in (0,1).
// The log1p form keeps precision for p near 1; p outside (0,1) yields
// NaN or ±Inf, consistent with the package error policy.
func Logit(p float64) float64 {
	return math.Log(p) - math.Log1p(-p)
}

// Sigmoid returns 1/(1+exp(−y)), the inverse of Logit.
// Branching on the sign of y avoids overflow in exp for large |y|.
func Sigmoid(y float64) float64 {
	if y >= 0 {
		return 1 / (1 + math.Exp(-y))
	}
	e := math.Exp(y)

	return e / (1 + e)
}

// Interval is the transform for a scalar support (Lower, Upper), where
// either bound may be ±Inf. The zero value is the degenerate interval
// (0,0); construct with explicit bounds.
//
// Interval selects among four closed forms depending on which bounds are
// finite; see the package documentation for the case table.
type Interval struct {
	Lower float64 // a = inf(support); may be math.Inf(-1)
	Upper float64 // b = sup(support); may be math.Inf(+1)
}

// Link maps x ∈ (Lower, Upper) to an unconstrained real.
func (iv Interval) Link(x float64) float64 {
	lowerFinite, upperFinite := iv.finite()
	switch {
	case lowerFinite && upperFinite:
		return Logit((x - iv.Lower) / (iv.Upper - iv.Lower))
	case lowerFinite:
		return math.Log(x - iv.Lower)
	case upperFinite:
		return math.Log(iv.Upper - x)
	default:
		return x
	}
}

// Invlink maps an unconstrained y back into (Lower, Upper).
// The result is strictly inside the open interval for finite y.
func (iv Interval) Invlink(y float64) float64 {
	lowerFinite, upperFinite := iv.finite()
	switch {
	case lowerFinite && upperFinite:
		return iv.Lower + (iv.Upper-iv.Lower)*Sigmoid(y)
	case lowerFinite:
		return iv.Lower + math.Exp(y)
	case upperFinite:
		return iv.Upper - math.Exp(y)
	default:
		return y
	}
}

// LogJacobian returns log|dx/dy| at the constrained point x.
func (iv Interval) LogJacobian(x float64) float64 {
	lowerFinite, upperFinite := iv.finite()
	switch {
	case lowerFinite && upperFinite:
		return math.Log((x - iv.Lower) * (iv.Upper - x) / (iv.Upper - iv.Lower))
	case lowerFinite:
		return math.Log(x - iv.Lower)
	case upperFinite:
		return math.Log(iv.Upper - x)
	default:
		return 0
	}
}

// finite reports which of the two bounds are finite.
func (iv Interval) finite() (lower, upper bool) {
	return !math.IsInf(iv.Lower, -1), !math.IsInf(iv.Upper, 1)
}
