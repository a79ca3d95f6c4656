// SPDX-License-Identifier: MIT

// Package synth generates reproducible synthetic scanner datasets with a
// known ground truth, for tests, benchmarks and the CLI "generate" command.
//
// What
//
//   - Generate(opts...) lays out a chain of scanners in one world frame:
//     scanner i shares exactly Overlap beacons with scanner i−1 and observes
//     Beacons beacons in total. Each scanner receives a random orientation and
//     offset; its beacons are reported in its own frame, in shuffled order.
//   - Fixture.Truth[i] maps scanner i's frame into scanner 0's frame, so
//     Truth[0] is the identity.
//
// Determinism
//
//	Without WithSeed/WithRand the generator uses seed 1. The same options
//	always yield the same fixture.
//
// Options (validated eagerly; meaningless values panic, as they are
// programmer errors):
//
//   - WithSeed(seed), WithRand(r)
//   - WithScanners(n)     n >= 1, default 5
//   - WithBeacons(n)      2 <= n <= scanner.MaxBeacons, default 26
//   - WithOverlap(k)      k >= 0, default 12
//   - WithSpread(s)       s >= 1, world coordinates in [-s, s], default 1000
//   - WithMirrors()       draw orientations from all 48, not only the 24 rotations
//
// Errors
//
//   - ErrInfeasible when Overlap exceeds what a chain of the requested shape
//     can hold (Overlap > Beacons, or fewer than Overlap fresh beacons remain
//     to share with the next scanner).
package synth
