package unconstrain

import (
	"math"

	"github.com/katalvlaran/unconstrain/simplex"
	"github.com/katalvlaran/unconstrain/spd"
	"gonum.org/v1/gonum/mat"
)

// LogProber is the scalar slice of the external probability-distribution
// library: a base (constrained-space) log-density. gonum's distuv types
// satisfy it directly.
type LogProber interface {
	LogProb(x float64) float64
}

// VectorLogProber is the vector counterpart, satisfied by simplex-supported
// densities such as gonum's distmv.Dirichlet.
type VectorLogProber interface {
	LogProb(x []float64) float64
}

// SymLogProber is the symmetric-matrix counterpart, satisfied by
// positive-definite-supported densities such as gonum's distmv.Wishart.
type SymLogProber interface {
	LogProbSym(x mat.Symmetric) float64
}

// Link maps the constrained scalar x into unconstrained space using the
// transform selected by the descriptor s. Returns ErrKindMismatch when s is
// a simplex or matrix descriptor.
func Link(s Support, x float64) (float64, error) {
	tr, err := s.scalar()
	if err != nil {
		return 0, err
	}

	return tr.Link(x), nil
}

// Invlink maps the unconstrained scalar y back into the support described
// by s. The result lies strictly inside the open interval for finite y.
func Invlink(s Support, y float64) (float64, error) {
	tr, err := s.scalar()
	if err != nil {
		return 0, err
	}

	return tr.Invlink(y), nil
}

// LogJacobian returns the additive log-density correction of the scalar
// transform selected by s, evaluated at the constrained point x.
func LogJacobian(s Support, x float64) (float64, error) {
	tr, err := s.scalar()
	if err != nil {
		return 0, err
	}

	return tr.LogJacobian(x), nil
}

// LogProbWithTransform evaluates the base log-density of d at the
// constrained point x and, when transform is true, adds the Jacobian
// correction for the transform selected by s. The point is in constrained
// space regardless of transform.
func LogProbWithTransform(d LogProber, s Support, x float64, transform bool) (float64, error) {
	if d == nil {
		return 0, ErrNilDistribution
	}

	lp := d.LogProb(x)
	if !transform {
		return lp, nil
	}

	lj, err := LogJacobian(s, x)
	if err != nil {
		return 0, err
	}

	return lp + lj, nil
}

// LinkVector maps a simplex point x (length s.Dim) into unconstrained space
// via stick-breaking. Returns ErrKindMismatch for non-simplex descriptors
// and ErrDimensionMismatch when len(x) ≠ s.Dim.
func LinkVector(s Support, x []float64, opts simplex.Options) ([]float64, error) {
	if s.Kind != KindSimplex {
		return nil, ErrKindMismatch
	}
	if len(x) != s.Dim {
		return nil, ErrDimensionMismatch
	}

	return simplex.Link(x, opts)
}

// InvlinkVector maps an unconstrained vector y (length s.Dim) back onto the
// simplex. Returns ErrKindMismatch for non-simplex descriptors and
// ErrDimensionMismatch when len(y) ≠ s.Dim.
func InvlinkVector(s Support, y []float64, opts simplex.Options) ([]float64, error) {
	if s.Kind != KindSimplex {
		return nil, ErrKindMismatch
	}
	if len(y) != s.Dim {
		return nil, ErrDimensionMismatch
	}

	return simplex.Invlink(y, opts)
}

// LogProbVectorWithTransform evaluates the base log-density of the
// simplex-supported d at x and, when transform is true, evaluates it at the
// epsilon-shifted point x+ε instead (avoiding zero density exactly on the
// boundary) and adds the stick-breaking log-Jacobian.
func LogProbVectorWithTransform(d VectorLogProber, s Support, x []float64, transform bool) (float64, error) {
	if d == nil {
		return 0, ErrNilDistribution
	}
	if s.Kind != KindSimplex {
		return 0, ErrKindMismatch
	}
	if len(x) != s.Dim {
		return 0, ErrDimensionMismatch
	}

	if !transform {
		return d.LogProb(x), nil
	}

	shifted := make([]float64, len(x))
	for i, v := range x {
		shifted[i] = v + simplex.Epsilon
	}
	lj, err := simplex.LogJacobian(x)
	if err != nil {
		return 0, err
	}

	return d.LogProb(shifted) + lj, nil
}

// LinkSym maps a symmetric positive-definite matrix (order s.Dim) to its
// log-Cholesky coordinates. Returns ErrKindMismatch for non-matrix
// descriptors and ErrDimensionMismatch on a size disagreement; a
// non-positive-definite x surfaces spd.ErrNotPositiveDefinite.
func LinkSym(s Support, x *mat.SymDense) (*mat.TriDense, error) {
	if err := checkSym(s, x); err != nil {
		return nil, err
	}

	return spd.Link(x)
}

// InvlinkSym maps log-Cholesky coordinates y (order s.Dim) back to a
// positive-definite matrix.
func InvlinkSym(s Support, y *mat.TriDense) (*mat.SymDense, error) {
	if s.Kind != KindPositiveDefinite {
		return nil, ErrKindMismatch
	}
	if y != nil {
		if n, _ := y.Dims(); n != s.Dim {
			return nil, ErrDimensionMismatch
		}
	}

	return spd.Invlink(y)
}

// LogProbSymWithTransform evaluates the base log-density of the
// positive-definite-supported d at x and, when transform is true, adds the
// log-Cholesky Jacobian. The correction is only applied when the base
// log-density is finite: a degenerate density stays degenerate rather than
// being nudged by a correction term.
func LogProbSymWithTransform(d SymLogProber, s Support, x *mat.SymDense, transform bool) (float64, error) {
	if d == nil {
		return 0, ErrNilDistribution
	}
	if err := checkSym(s, x); err != nil {
		return 0, err
	}
	if x == nil {
		return 0, spd.ErrNilMatrix
	}

	lp := d.LogProbSym(x)
	if !transform || math.IsInf(lp, 0) || math.IsNaN(lp) {
		return lp, nil
	}

	lj, err := spd.LogJacobian(x)
	if err != nil {
		return 0, err
	}

	return lp + lj, nil
}

// checkSym validates descriptor kind and matrix order for the SPD path.
// A nil x is passed through: the spd package owns the nil sentinel.
func checkSym(s Support, x *mat.SymDense) error {
	if s.Kind != KindPositiveDefinite {
		return ErrKindMismatch
	}
	if x != nil {
		if n, _ := x.Dims(); n != s.Dim {
			return ErrDimensionMismatch
		}
	}

	return nil
}
