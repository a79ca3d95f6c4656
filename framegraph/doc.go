// SPDX-License-Identifier: MIT

// Package framegraph records which scanners were found to overlap and the
// solved match on every such edge.
//
// Vertices are scanner indices; an edge a–b carries the *correspond.Match
// mapping b's frame into a's, and the reversed match in the other direction.
// The resolver fills the graph while it walks outward from the root, so the
// graph holds the edges that were actually used to place each scanner.
//
// What
//
//   - AddScanner, AddOverlap, HasScanner, HasOverlap, Match
//   - Neighbors(id) in ascending order, Scanners(), Overlaps()
//   - Order() (scanners) and Size() (overlaps)
//   - Chain(path): fold the edge mappings along a path into one Mapping
//
// Concurrency
//
//	A single sync.RWMutex guards all state: reads share the lock, writes
//	take it exclusively.
//
// Errors
//
//   - ErrScannerNotFound, ErrSelfOverlap, ErrNilMatch, ErrBrokenPath
package framegraph
