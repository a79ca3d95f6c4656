// SPDX-License-Identifier: MIT

// Package fingerprint builds the rotation-, reflection- and
// translation-invariant signature of a scanner: the sorted multiset of
// squared pairwise beacon distances.
//
// What
//
//   - Build(points) returns a *Fingerprint holding:
//   - Pairs:  all n(n−1)/2 PairDistance triples sorted by D (then I, J)
//   - Matrix: the full symmetric n×n squared-distance matrix
//   - Unique: whether every distance value occurs once
//   - BuildAll(ctx, scanners, workers) builds fingerprints for many scanners
//     concurrently on a bounded errgroup.
//
// Why
//
//	Two scanners that observe the same beacons share the distances between
//	them no matter how their frames are rotated or shifted. Sorting lets the
//	overlap detector intersect two fingerprints with a linear merge.
//
// Determinism
//
//	Ties on D are broken by (I, J) so Pairs is fully reproducible.
//
// Complexity (n = beacons)
//
//   - Build:    O(n² log n) time, O(n²) memory.
//   - BuildAll: O(Σ n² log n) work spread over the worker pool.
package fingerprint
