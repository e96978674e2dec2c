// Package simplex: configuration, shared constants and sentinel errors for
// the stick-breaking transform.
package simplex

import "errors"

// Epsilon is the boundary guard: the machine epsilon of float64 (2⁻⁵²).
// It keeps every break fraction strictly inside (0,1) so that logit and
// log stay finite at simplex boundary points. The guard biases results by
// O(Epsilon); tolerances in round-trip comparisons should be proportional
// to it.
const Epsilon = 0x1p-52

// Sentinel errors returned by the stick-breaking implementation.
var (
	// ErrEmptyVector indicates a zero-length input vector or an empty batch.
	ErrEmptyVector = errors.New("simplex: input must be non-empty")

	// ErrNilMatrix indicates a nil batch matrix was passed to LinkBatch or
	// InvlinkBatch.
	ErrNilMatrix = errors.New("simplex: batch matrix is nil")
)

// Options configures the stick-breaking transform.
//
// Projected — when true (the default), the last unconstrained coordinate is
// pinned to 0 and Invlink rebuilds the final simplex entry from the
// running sum alone; the effective unconstrained dimension is K−1.
// When false, Link stores the residual 1−s−x_K in the last coordinate and
// Invlink consumes it; see the package documentation for why that variant
// is suspect as a bijection coordinate.
type Options struct {
	Projected bool // pin y_K to zero (true) or carry the residual (false)
}

// DefaultOptions returns the recommended configuration: Projected = true.
func DefaultOptions() Options {
	return Options{Projected: true}
}
