// SPDX-License-Identifier: MIT

package fingerprint

import (
	"sort"

	"github.com/katalvlaran/beaconreg/geom"
)

// PairDistance is one edge of a scanner's complete distance graph:
// the squared distance D between beacons I and J, with I < J.
type PairDistance struct {
	D int64
	I int
	J int
}

// Fingerprint is the sorted distance signature of one scanner.
// It is immutable once built and safe for concurrent reads.
type Fingerprint struct {
	// Pairs is sorted ascending by D, then I, then J.
	Pairs []PairDistance

	// Matrix holds every squared distance, indexed by beacon index.
	Matrix *DistanceMatrix

	// Unique is true when no two pairs share a distance value.
	Unique bool
}

// Build computes the fingerprint of a beacon list.
// Stage 1: fill the symmetric distance matrix and the pair list.
// Stage 2: sort pairs by (D, I, J).
// Stage 3: flag whether distance values are all distinct.
// Complexity: O(n² log n) time, O(n²) memory.
func Build(points []geom.Point) *Fingerprint {
	n := len(points)
	fp := &Fingerprint{
		Pairs:  make([]PairDistance, 0, n*(n-1)/2),
		Matrix: newDistanceMatrix(n),
	}

	// Stage 1: every unordered pair once
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			d := geom.SquaredDist(points[i], points[j])
			fp.Matrix.setSym(i, j, d)
			fp.Pairs = append(fp.Pairs, PairDistance{D: d, I: i, J: j})
		}
	}

	// Stage 2: deterministic order
	sort.Slice(fp.Pairs, func(a, b int) bool {
		pa, pb := fp.Pairs[a], fp.Pairs[b]
		if pa.D != pb.D {
			return pa.D < pb.D
		}
		if pa.I != pb.I {
			return pa.I < pb.I
		}
		return pa.J < pb.J
	})

	// Stage 3: neighbours in sorted order share D iff a value repeats
	fp.Unique = true
	for k := 1; k < len(fp.Pairs); k++ {
		if fp.Pairs[k].D == fp.Pairs[k-1].D {
			fp.Unique = false
			break
		}
	}

	return fp
}

// Len returns the number of beacons the fingerprint was built from.
func (f *Fingerprint) Len() int {
	return f.Matrix.Size()
}

// Distances returns the sorted distance values without indices.
func (f *Fingerprint) Distances() []int64 {
	out := make([]int64, len(f.Pairs))
	for k, p := range f.Pairs {
		out[k] = p.D
	}
	return out
}

// Equal reports whether f and other hold the same distance multiset.
// Beacon indices are ignored, so a permuted copy of a scanner compares equal.
// Complexity: O(n²).
func (f *Fingerprint) Equal(other *Fingerprint) bool {
	if f == nil || other == nil {
		return f == other
	}
	if len(f.Pairs) != len(other.Pairs) {
		return false
	}
	for k := range f.Pairs {
		if f.Pairs[k].D != other.Pairs[k].D {
			return false
		}
	}
	return true
}
