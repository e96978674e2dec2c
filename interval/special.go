package interval

import "math"

// Identity is the transform for an already-unconstrained support
// (both bounds infinite). All three maps are trivial.
type Identity struct{}

// Link returns x unchanged.
func (Identity) Link(x float64) float64 { return x }

// Invlink returns y unchanged.
func (Identity) Invlink(y float64) float64 { return y }

// LogJacobian returns 0 for every x.
func (Identity) LogJacobian(_ float64) float64 { return 0 }

// Positive is the transform for the strictly positive reals (0, +∞),
// the a=0, b=+∞ specialization of Interval:
//
//	Link(x) = log(x), Invlink(y) = exp(y), LogJacobian(x) = log(x)
type Positive struct{}

// Link returns log(x).
func (Positive) Link(x float64) float64 { return math.Log(x) }

// Invlink returns exp(y), always strictly positive for finite y.
func (Positive) Invlink(y float64) float64 { return math.Exp(y) }

// LogJacobian returns log(x).
func (Positive) LogJacobian(x float64) float64 { return math.Log(x) }

// Unit is the transform for the open unit interval (0,1),
// the a=0, b=1 specialization of Interval:
//
//	Link(x) = logit(x), Invlink(y) = sigmoid(y), LogJacobian(x) = log(x(1−x))
type Unit struct{}

// Link returns logit(x).
func (Unit) Link(x float64) float64 { return Logit(x) }

// Invlink returns sigmoid(y), strictly inside (0,1) for finite y.
func (Unit) Invlink(y float64) float64 { return Sigmoid(y) }

// LogJacobian returns log(x·(1−x)).
func (Unit) LogJacobian(x float64) float64 { return math.Log(x * (1 - x)) }
