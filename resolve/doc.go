// SPDX-License-Identifier: MIT

// Package resolve places every scanner in one global frame: the frame of a
// chosen root scanner (scanner 0 by default).
//
// What
//
//   - Resolve(scanners, opts...) returns a *Result with one geom.Mapping per
//     input scanner, the expansion order, parent and depth maps, the frame
//     graph of overlaps used, and the number of pair checks.
//   - Mappings(scanners) is the one-call form with default options.
//
// How
//
//	The walk is the familiar graph traversal with lazily discovered edges.
//	Scanners move Unvisited → Queued → Resolved. Expanding a scanner runs
//	overlap detection and, on success, correspondence against every
//	Unvisited scanner. Each match j found from i gives
//
//	    global[j] = global[i] ∘ match(i←j)
//
//	and queues j. Expansion order is a queue (BreadthFirst, default) or a
//	stack (DepthFirst); both produce the same mappings for consistent input.
//
// Concurrency
//
//	Pair checks for one expansion run on a bounded errgroup (WithWorkers).
//	Their results are committed by the walking goroutine in ascending index
//	order, so output is deterministic and no scanner is queued twice.
//
// Options
//
//	WithContext, WithRoot, WithStrategy, WithWorkers, WithMinOverlap,
//	WithProperOnly, WithOnEnqueue, WithOnResolve.
//
// Errors
//
//   - ErrNoScanners, ErrRootOutOfRange, ErrOptionViolation
//   - *PairError: two scanners overlap by distances but cannot be registered
//   - *DisconnectedError (errors.Is ErrDisconnectedFrameGraph): some
//     scanners are unreachable from the root
//
// Complexity (S scanners, n beacons each)
//
//	At most S(S−1)/2 pair checks, each O(n²) to intersect fingerprints.
package resolve
