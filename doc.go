// SPDX-License-Identifier: MIT

// Package beaconreg registers 3-D beacon scanners into one coordinate frame.
//
// Each scanner reports the integer positions of the beacons it can see,
// relative to itself, in an unknown orientation (one of the 48 signed axis
// permutations, 24 of them proper rotations). Two scanners that see at
// least twelve common beacons can be registered against each other; chaining
// those pairwise registrations places every scanner in the frame of a root.
//
// What
//
//	geom/        — Point, Orientation, Mapping and their algebra
//	scanner/     — the Scanner type, text parser and writer
//	fingerprint/ — rotation-invariant squared-distance signatures
//	overlap/     — shared-beacon detection from two fingerprints
//	correspond/  — beacon pairing and exact frame inference
//	framegraph/  — thread-safe graph of solved overlaps
//	resolve/     — traversal from the root producing global mappings
//	aggregate/   — merged beacon map, counts, scanner separations
//	synth/       — deterministic synthetic fixtures with ground truth
//	cmd/beaconreg — command line front end
//
// Pipeline
//
//	scanners ──Build──▶ fingerprints ──Detect──▶ candidates
//	        ──Solve──▶ matches ──Resolve──▶ mappings ──Merge──▶ beacon map
//
// Everything is exact integer arithmetic: distances stay squared, and a
// match is accepted only when its mapping carries every paired beacon onto
// its partner.
//
//	go install github.com/katalvlaran/beaconreg/cmd/beaconreg@latest
//	beaconreg generate --scanners 8 | beaconreg resolve --format yaml
package beaconreg
