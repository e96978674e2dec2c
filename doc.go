// Package unconstrain maps constrained probability-distribution supports
// onto unconstrained real coordinates — and back — with the exact
// change-of-variables correction needed by gradient-based samplers and
// optimizers.
//
// 🚀 What is unconstrain?
//
//	A pure computation library that, for every common support family,
//	provides three operations:
//		• Link    — forward map from the constrained domain to ℝⁿ
//		• Invlink — inverse map back into the constrained domain
//		• LogJacobian — additive log-density term from the change of variables
//
// Support families and where they live:
//
//	interval/ — scalar supports: arbitrary intervals (a,b) with 0, 1 or 2
//	            finite endpoints, plus the Positive and Unit specializations
//	simplex/  — the probability simplex via the stick-breaking bijection,
//	            in single-vector and batched (column-wise) matrix forms
//	spd/      — symmetric positive-definite matrices via the log-Cholesky
//	            parameterization (gonum mat.Cholesky under the hood)
//
// The root package ties the families together: a small closed Support
// descriptor (Bounded / Simplex / PositiveDefinite …), dispatch helpers
// that pick the matching transform, a lookup from gonum distuv/distmv
// distribution values to their Support, and LogProbWithTransform variants
// that add the Jacobian correction to a base log-density.
//
// ✨ Why choose unconstrain?
//
//   - Exact inverse pairs – every Link has a matching Invlink and the
//     log-Jacobian of the pair, so densities stay correct after the change
//     of coordinates
//   - Boundary-safe – epsilon-guarded arithmetic keeps logit/log arguments
//     strictly inside their open domains; no ±Inf surprises at the simplex
//     or interval boundary
//   - Pure functions – no state, no locks, no I/O; batched forms are
//     column-independent and safe to parallelize
//   - gonum-native – consumes gonum.org/v1/gonum matrices and distributions
//     directly
//
// Quick taste:
//
//	s, _ := unconstrain.Bounded(0, 1)
//	y, _ := unconstrain.Link(s, 0.25)     // logit(0.25) → ℝ
//	x, _ := unconstrain.Invlink(s, y)     // back to (0,1)
//
// This library only reparameterizes coordinates and corrects densities.
// Sampling, fitting and density evaluation belong to the distribution
// library (gonum distuv/distmv or your own types).
package unconstrain
