// SPDX-License-Identifier: MIT

package correspond

import (
	"fmt"

	"github.com/katalvlaran/beaconreg/fingerprint"
	"github.com/katalvlaran/beaconreg/geom"
	"github.com/katalvlaran/beaconreg/overlap"
)

// searcher holds the state of one backtracking run.
type searcher struct {
	fa, fb     *fingerprint.Fingerprint
	c          *overlap.Candidate
	pa         []geom.Point // a's overlap beacons in c.A order
	b          []geom.Point
	properOnly bool

	assign []int        // assign[k] is the b index paired with c.A[k]
	used   map[int]bool // b indices already assigned
	nodes  int          // partial assignments explored
	limit  int
}

// search pairs c.A with c.B by depth-first assignment. A b beacon may take
// position k only when its distances to every earlier assignment equal the
// matching distances in a. Each complete assignment is tested with infer;
// the first one that carries b onto a wins.
//
// Complexity: exponential in the worst case, bounded by SearchLimit nodes.
func (s *Solver) search(a, b []geom.Point, fa, fb *fingerprint.Fingerprint, c *overlap.Candidate) (*Match, error) {
	st := &searcher{
		fa:         fa,
		fb:         fb,
		c:          c,
		pa:         pick(a, c.A),
		b:          b,
		properOnly: s.opts.ProperOnly,
		assign:     make([]int, len(c.A)),
		used:       make(map[int]bool, len(c.B)),
		limit:      s.opts.SearchLimit,
	}

	m, found, err := st.place(0)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: no pairing of %d beacons fits a signed axis permutation",
			ErrInconsistentGeometry, len(c.A))
	}
	return &Match{
		A:       append([]int(nil), c.A...),
		B:       append([]int(nil), st.assign...),
		Mapping: m,
	}, nil
}

// place assigns position k and recurses.
func (st *searcher) place(k int) (geom.Mapping, bool, error) {
	if k == len(st.assign) {
		m, ok := infer(st.pa, pick(st.b, st.assign), st.properOnly)
		return m, ok, nil
	}

	for _, j := range st.c.B {
		if st.used[j] || !st.consistent(k, j) {
			continue
		}
		st.nodes++
		if st.nodes > st.limit {
			return geom.Mapping{}, false, fmt.Errorf("%w: search limit %d reached", ErrAmbiguousCorrespondence, st.limit)
		}

		st.assign[k] = j
		st.used[j] = true
		m, ok, err := st.place(k + 1)
		if err != nil || ok {
			return m, ok, err
		}
		st.used[j] = false
	}
	return geom.Mapping{}, false, nil
}

// consistent reports whether b beacon j at position k agrees with every
// earlier position on squared distance.
func (st *searcher) consistent(k, j int) bool {
	ai := st.c.A[k]
	for p := 0; p < k; p++ {
		if st.fa.Matrix.At(st.c.A[p], ai) != st.fb.Matrix.At(st.assign[p], j) {
			return false
		}
	}
	return true
}
