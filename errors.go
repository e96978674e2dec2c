// Package unconstrain: sentinel error set for the dispatch surface.
// All dispatch operations return these sentinels and callers match them via
// errors.Is; the per-family packages own their own sentinels (simplex, spd).
package unconstrain

import "errors"

var (
	// ErrBadBounds indicates interval bounds with lo ≥ hi or a NaN bound.
	ErrBadBounds = errors.New("unconstrain: invalid interval bounds")

	// ErrBadDimension indicates a non-positive simplex or matrix dimension
	// in a Support constructor.
	ErrBadDimension = errors.New("unconstrain: dimension must be positive")

	// ErrKindMismatch indicates that a Support descriptor of one shape was
	// passed to an operation of another (e.g. a Simplex support to the
	// scalar Link).
	ErrKindMismatch = errors.New("unconstrain: support kind does not match operation")

	// ErrDimensionMismatch indicates that a point's length or size differs
	// from the dimension recorded in its Support descriptor.
	ErrDimensionMismatch = errors.New("unconstrain: point dimension does not match support")

	// ErrNilDistribution indicates a nil distribution argument.
	ErrNilDistribution = errors.New("unconstrain: distribution is nil")

	// ErrUnknownSupport indicates that SupportOf has no registered support
	// family for the given distribution type.
	ErrUnknownSupport = errors.New("unconstrain: no known support for distribution type")
)
