// SPDX-License-Identifier: MIT

// Package geom defines the integer geometry shared by every stage of
// beacon registration: 3-D points, axis-aligned orientations (signed axis
// permutations) and rigid mappings between scanner frames.
//
// What
//
//   - Point: an immutable [3]int coordinate triple.
//   - Orientation: destination axis k takes source axis Axes[k], negated
//     when Neg[k] is set. 48 signed permutations exist, 24 of them proper
//     rotations (determinant +1).
//   - Mapping: Orientation followed by a translation Offset. A Mapping
//     converts coordinates from a "source" frame into a "destination" frame.
//
// Algebra
//
//	m.Apply(p)          = m.Offset + m.Orientation.Rotate(p)
//	m1.Compose(m2)      = the single Mapping equal to m1.Apply(m2.Apply(p))
//	m.Inverse()         = the Mapping undoing m
//	IdentityMapping()   = neutral element of Compose
//
// Composition is associative, which lets the resolver fold a chain of
// pairwise mappings into one global mapping per scanner.
//
// All arithmetic is exact integer arithmetic. Distances are squared and never
// passed through a square root.
//
// Complexity
//
//	Every operation is O(1). AllOrientations and ProperRotations allocate a
//	fresh slice of 48 and 24 values respectively.
package geom
