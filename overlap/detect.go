// SPDX-License-Identifier: MIT

package overlap

import (
	"math/bits"

	"github.com/katalvlaran/beaconreg/fingerprint"
)

// Detector finds overlapping beacon sets between scanner fingerprints.
// A Detector is immutable and safe for concurrent use.
type Detector struct {
	minOverlap int // beacons required
	minEdges   int // minOverlap·(minOverlap−1)/2 distance edges required
}

// NewDetector applies opts over DefaultOptions.
// Returns ErrOptionViolation for invalid options.
func NewDetector(opts ...Option) (*Detector, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Detector{
		minOverlap: o.MinOverlap,
		minEdges:   o.MinOverlap * (o.MinOverlap - 1) / 2,
	}, nil
}

// MinOverlap returns the configured threshold.
func (d *Detector) MinOverlap() int {
	return d.minOverlap
}

// defaultDetector serves the package-level Detect.
var defaultDetector = &Detector{
	minOverlap: DefaultMinOverlap,
	minEdges:   DefaultMinOverlap * (DefaultMinOverlap - 1) / 2,
}

// Detect runs the default detector (12-beacon threshold) on a and b.
func Detect(a, b *fingerprint.Fingerprint) (*Candidate, bool) {
	return defaultDetector.Detect(a, b)
}

// Detect reports the beacons a and b have in common, or (nil, false) when the
// scanners do not share at least MinOverlap beacons. Most pairs of scanners
// do not overlap; that outcome is an ordinary result, not an error.
//
// Stage 1: merge-intersect the two sorted distance lists; fail fast when
// fewer than minEdges distances are shared.
// Stage 2: per side, prune to the single fully connected set of beacons whose
// edges all survived the intersection.
// Stage 3: accept only when both sides kept the same number (>= MinOverlap).
//
// Complexity: O(|A| + |B|) for the merge plus O(k·n) per pruning round on
// n <= 64 beacons.
func (d *Detector) Detect(a, b *fingerprint.Fingerprint) (*Candidate, bool) {
	if a == nil || b == nil {
		return nil, false
	}
	na, nb := a.Len(), b.Len()
	if na < d.minOverlap || nb < d.minOverlap || na > maxBeacons || nb > maxBeacons {
		return nil, false
	}

	// Stage 1
	var ea, eb []fingerprint.PairDistance
	if a.Unique && b.Unique {
		ea, eb = intersectUnique(a.Pairs, b.Pairs, d.minEdges)
	} else {
		ea, eb = intersectMulti(a.Pairs, b.Pairs)
	}
	if min(len(ea), len(eb)) < d.minEdges {
		return nil, false
	}

	// Stage 2
	va := clique(ea, na, d.minOverlap)
	vb := clique(eb, nb, d.minOverlap)

	// Stage 3
	ka, kb := bits.OnesCount64(va), bits.OnesCount64(vb)
	if ka < d.minOverlap || ka != kb {
		return nil, false
	}

	return &Candidate{
		A:      members(va),
		B:      members(vb),
		EdgesA: restrict(ea, va),
		EdgesB: restrict(eb, vb),
	}, true
}

// intersectUnique merges two D-sorted lists whose values are each distinct,
// keeping entries present on both sides. It stops as soon as fewer than need
// matches remain reachable.
func intersectUnique(a, b []fingerprint.PairDistance, need int) (ea, eb []fingerprint.PairDistance) {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		missing := need - len(ea)
		if len(a)-i < missing || len(b)-j < missing {
			break // cannot reach need any more
		}
		switch {
		case a[i].D < b[j].D:
			i++
		case a[i].D > b[j].D:
			j++
		default:
			ea = append(ea, a[i])
			eb = append(eb, b[j])
			i++
			j++
		}
	}
	return ea, eb
}

// intersectMulti merges two D-sorted lists that may repeat values. For every
// value present on both sides, all of its entries from both sides are kept.
func intersectMulti(a, b []fingerprint.PairDistance) (ea, eb []fingerprint.PairDistance) {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].D < b[j].D:
			i++
		case a[i].D > b[j].D:
			j++
		default:
			v := a[i].D
			for i < len(a) && a[i].D == v {
				ea = append(ea, a[i])
				i++
			}
			for j < len(b) && b[j].D == v {
				eb = append(eb, b[j])
				j++
			}
		}
	}
	return ea, eb
}

// clique returns the bitmask of beacons forming the single fully connected
// set of at least k vertices in the graph given by edges over n beacons.
//
// Each row holds the beacon's own bit plus its neighbours. The loop runs to a
// fixed point:
//   - drop every row with fewer than k bits (degree below k−1);
//   - intersect all surviving rows; a beacon outside that intersection is
//     not adjacent to every other survivor, so it cannot belong to the set.
//
// Bits are only ever cleared, so the loop terminates after at most n rounds.
// Returns 0 when nothing survives.
func clique(edges []fingerprint.PairDistance, n, k int) uint64 {
	rows := make([]uint64, n)
	for i := range rows {
		rows[i] = 1 << uint(i)
	}
	for _, e := range edges {
		rows[e.I] |= 1 << uint(e.J)
		rows[e.J] |= 1 << uint(e.I)
	}

	for {
		changed := false

		// degree pruning
		for i := range rows {
			if rows[i] != 0 && bits.OnesCount64(rows[i]) < k {
				rows[i] = 0
				mask := ^(uint64(1) << uint(i))
				for j := range rows {
					rows[j] &= mask
				}
				changed = true
			}
		}

		// intersection of survivors
		common, alive := ^uint64(0), false
		for _, r := range rows {
			if r != 0 {
				common &= r
				alive = true
			}
		}
		if !alive {
			return 0
		}
		for i := range rows {
			switch {
			case rows[i] == 0 || rows[i] == common:
			case common&(1<<uint(i)) == 0:
				rows[i] = 0
				changed = true
			default:
				rows[i] = common
				changed = true
			}
		}

		if !changed {
			return common
		}
	}
}

// members lists the set bits of mask in ascending order.
func members(mask uint64) []int {
	out := make([]int, 0, bits.OnesCount64(mask))
	for mask != 0 {
		i := bits.TrailingZeros64(mask)
		out = append(out, i)
		mask &= mask - 1
	}
	return out
}

// restrict keeps edges whose endpoints are both in mask, preserving order.
func restrict(edges []fingerprint.PairDistance, mask uint64) []fingerprint.PairDistance {
	out := make([]fingerprint.PairDistance, 0, len(edges))
	for _, e := range edges {
		if mask&(1<<uint(e.I)) != 0 && mask&(1<<uint(e.J)) != 0 {
			out = append(out, e)
		}
	}
	return out
}
