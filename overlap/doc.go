// SPDX-License-Identifier: MIT

// Package overlap decides whether two scanners observe a common set of
// beacons, using only their distance fingerprints.
//
// What
//
//   - Detect(a, b) / (*Detector).Detect(a, b) return a *Candidate holding
//     the index sets of the shared beacons on each side, plus the distance
//     edges among them, or (nil, false) when the scanners do not overlap.
//   - NewDetector(WithMinOverlap(n)) changes the threshold (default 12).
//
// How
//
//  1. Merge-intersect the two sorted pair lists. Fewer than k·(k−1)/2 common
//     distances rules the pair out immediately.
//  2. On each side, view the surviving edges as a graph over beacons stored
//     as uint64 adjacency rows, and prune to a fixed point: a beacon with
//     fewer than k−1 neighbours, or one not adjacent to every other
//     survivor, is dropped.
//  3. Both sides must keep the same number of beacons, at least k.
//
// The candidate sets are NOT paired element by element; that is the job of
// package correspond.
//
// Errors
//
//   - ErrOptionViolation: WithMinOverlap outside [2, 64].
//
// Non-overlap is a normal outcome and is reported by the boolean, never by
// an error.
//
// Complexity (n = beacons per scanner, P = n(n−1)/2)
//
//   - Intersection: O(P_a + P_b).
//   - Pruning:      O(n²) per round, at most n rounds.
//   - Memory:       O(P) for the intersected edges.
package overlap
