// Package simplex implements the stick-breaking bijection between the open
// probability simplex and unconstrained real coordinates.
//
// 🚀 What is stick-breaking?
//
//	A point x on the (K−1)-simplex (K nonnegative entries summing to 1) is
//	rebuilt as a sequence of K−1 "breaks": at step k a fraction z_k of the
//	remaining probability mass is broken off. Each fraction lives in (0,1),
//	so its logit is a free real coordinate. Link emits those logits
//	(recentered so the uniform simplex point maps to the origin) and
//	Invlink replays the breaks to reassemble x.
//
// Algorithm outline (Link, input x of length K, output y of length K):
//  1. ε = Epsilon, running partial sum s = 0.
//  2. k=1:    z₁ = x₁·(1−2ε)+ε;                 y₁ = logit(z₁) + log(K−1).
//  3. k=2…K−1: s += x_{k−1};
//     z_k = (x_k+ε)·(1−2ε)/(1−s+ε);             y_k = logit(z_k) + log(K−k).
//  4. s += x_{K−1}. Projected variant: y_K = 0. Otherwise y_K = 1−s−x_K,
//     the residual mass (≈0 for a valid simplex point).
//
// Invlink reverses the recursion exactly: z_k = sigmoid(y_k − log(K−k)),
// then x_k is recovered by inverting the guarded ratio, with the same
// running sum s. The last entry is 1−s (projected) or 1−s−y_K.
//
// The +log(K−k) offsets are fixed per-coordinate calibration constants:
// they cancel the logit of the uniform break fraction 1/(K−k+1), so the
// uniform point maps to the origin of unconstrained space.
//
// Epsilon guard:
//
//	Every ratio is pushed strictly inside (0,1) before the logit via the
//	multiplicative form z = v·(1−2ε)+ε (numerator and denominator of the
//	conditional fraction are guarded too). Boundary points — entries
//	exactly 0 or 1 — therefore produce finite output at an O(ε) bias,
//	which is accepted and NOT corrected. Round-trip equality holds only up
//	to a tolerance proportional to ε.
//
// Projected vs non-projected:
//
//	The projected variant (the default) pins y_K to 0, so the effective
//	unconstrained dimension is K−1; this is the standard bijection. The
//	non-projected variant carries the residual 1−s−x_K in y_K. Its inverse
//	x_K = 1−s−y_K mixes the constrained running sum with an unconstrained
//	coordinate; the pair is preserved for compatibility with existing
//	samplers but is NOT a clean bijection coordinate — prefer Projected
//	unless you specifically need the residual channel.
//
// Batched form:
//
//	LinkBatch/InvlinkBatch apply the identical recursion independently to
//	every column of a K×N gonum mat.Dense. Columns share no state, so
//	callers may shard them across goroutines freely; within a column the
//	recursion is inherently sequential.
//
// Errors (sentinel):
//
//	ErrEmptyVector — input of length 0 (or a batch with no rows/columns).
//	ErrNilMatrix   — nil batch matrix.
//
// A vector whose entries do not sum to 1 is a caller contract violation:
// it is not checked here and the output is unspecified.
//
// Complexity: O(K) per vector, O(K·N) for a K×N batch; one fresh output
// allocation per call, inputs never mutated.
package simplex
