// SPDX-License-Identifier: MIT

// Package correspond turns an overlap candidate into a beacon-by-beacon
// pairing and the exact Mapping from the second scanner's frame into the
// first's.
//
// What
//
//   - Solve(a, b, fa, fb, c) / (*Solver).Solve return a *Match with
//     A[k] ↔ B[k] paired and Mapping such that
//     Mapping.Apply(b[B[k]]) == a[A[k]] for every k.
//   - NewSolver(WithProperOnly(), WithSearchLimit(n)) tunes the solver.
//
// How
//
//	Unique distances: walk the candidate in a cycle. The edge between
//	consecutive a beacons has exactly one partner edge in b; two consecutive
//	partner edges share one endpoint, and that endpoint is the b beacon
//	paired with the a beacon between them.
//
//	Coincident distances: depth-first assignment, pruned by agreement with
//	both distance matrices and bounded by SearchLimit.
//
//	Orientation: for each destination axis, keep the signed source axes
//	under which every delta from the first pair agrees; the surviving
//	choices select one of the 48 signed permutations. The offset follows
//	from the first pair and is checked against every pair.
//
// Mirroring orientations are accepted unless WithProperOnly is given.
//
// Errors
//
//   - ErrCandidateMismatch:       candidate does not fit the inputs.
//   - ErrInconsistentGeometry:    no signed axis permutation fits.
//   - ErrAmbiguousCorrespondence: the coincident-distance search hit its
//     limit.
//   - ErrOptionViolation:         invalid option.
//
// Complexity (k = overlap size)
//
//   - Unique distances: O(k log k) for the walk, O(k) to infer.
//   - Coincident distances: bounded by SearchLimit partial assignments.
package correspond
