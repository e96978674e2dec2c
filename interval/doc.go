// Package interval implements the scalar constraint-removing transforms
// for distributions supported on an interval of the real line.
//
// Given support bounds a = inf(support) and b = sup(support), each of which
// may be infinite, the forward map (Link) sends a point x ∈ (a,b) to an
// unconstrained real y:
//
//	both finite:    y = logit((x−a)/(b−a))
//	only a finite:  y = log(x−a)
//	only b finite:  y = log(b−x)
//	neither finite: y = x            (identity)
//
// Invlink reverses each case exactly, and LogJacobian returns the
// log-absolute-derivative |dx/dy| of the inverse map, expressed in terms
// of x for numerical convenience:
//
//	both finite:    log((x−a)(b−x)/(b−a))
//	only a finite:  log(x−a)
//	only b finite:  log(b−x)
//	neither finite: 0
//
// The two overwhelmingly common cases get dedicated types with simpler
// closed forms: Positive for (0,+∞) (log/exp) and Unit for (0,1)
// (logit/sigmoid). Both agree exactly with Interval at those bound values.
//
// Error policy: none of these maps return errors. A point outside [a,b]
// yields NaN or −Inf, which propagates through the caller's base density
// the same way an out-of-support logpdf would.
//
// Complexity: every operation is O(1) time, O(1) space.
package interval
