// Package contract builds the symbolic one-step (or fixed-few-step) models
// of financial contract operations: transfer chains, lock/mint bridges,
// fee-taking pools, timelocks, multi-signature tallies and HTLC swaps.
//
// These are hand-built encodings of the *intended* semantics, not models
// extracted from deployed contract code. Verifying one of them proves the
// written specification self-consistent; it does not prove any real
// implementation correct.
//
// Builders declare step-indexed variables (x_0, x_1, ...) through the
// session so name uniqueness is enforced, install the step constraints, and
// hand back the variables of interest plus the invariant to discharge.
package contract
