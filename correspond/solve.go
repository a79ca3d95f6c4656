// SPDX-License-Identifier: MIT

package correspond

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/beaconreg/fingerprint"
	"github.com/katalvlaran/beaconreg/geom"
	"github.com/katalvlaran/beaconreg/overlap"
)

// Solver pairs overlap candidates and infers frame mappings.
// A Solver is immutable and safe for concurrent use.
type Solver struct {
	opts Options
}

// NewSolver applies opts over DefaultOptions.
// Returns ErrOptionViolation for invalid options.
func NewSolver(opts ...Option) (*Solver, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Solver{opts: o}, nil
}

// Solve runs a default Solver.
func Solve(a, b []geom.Point, fa, fb *fingerprint.Fingerprint, c *overlap.Candidate) (*Match, error) {
	return (&Solver{opts: DefaultOptions()}).Solve(a, b, fa, fb, c)
}

// Solve pairs the beacons of candidate c (a's indices c.A, b's indices c.B)
// and returns the mapping from b's frame into a's.
//
// Fast path: when every distance inside the overlap is unique, walk a's
// candidates around the cycle 0→1→…→0, find each link's unique partner edge
// in b by binary search, and read off each b beacon as the endpoint shared by
// consecutive partner edges.
//
// Otherwise (coincident distances) a bounded backtracking search assigns b
// beacons position by position, keeping only assignments that agree with
// both distance matrices, and tests each complete assignment geometrically.
//
// Errors: ErrCandidateMismatch, ErrInconsistentGeometry,
// ErrAmbiguousCorrespondence.
func (s *Solver) Solve(a, b []geom.Point, fa, fb *fingerprint.Fingerprint, c *overlap.Candidate) (*Match, error) {
	if err := validate(a, b, fa, fb, c); err != nil {
		return nil, err
	}
	pa := pick(a, c.A)

	// fast path
	k := len(c.A)
	full := k * (k - 1) / 2
	if k >= 3 && len(c.EdgesA) == full && len(c.EdgesB) == full && c.UniqueDistances() {
		if order, ok := chainWalk(fa, c); ok {
			if m, ok := infer(pa, pick(b, order), s.opts.ProperOnly); ok {
				return &Match{A: append([]int(nil), c.A...), B: order, Mapping: m}, nil
			}
		}
	}

	// coincident distances, or the fast path disagreed with the geometry
	return s.search(a, b, fa, fb, c)
}

// validate rejects candidates that cannot belong to these scanners.
func validate(a, b []geom.Point, fa, fb *fingerprint.Fingerprint, c *overlap.Candidate) error {
	if c == nil || fa == nil || fb == nil {
		return fmt.Errorf("%w: nil candidate or fingerprint", ErrCandidateMismatch)
	}
	if len(c.A) != len(c.B) || len(c.A) < 2 {
		return fmt.Errorf("%w: sets of size %d and %d", ErrCandidateMismatch, len(c.A), len(c.B))
	}
	if fa.Len() != len(a) || fb.Len() != len(b) {
		return fmt.Errorf("%w: fingerprint built from other beacons", ErrCandidateMismatch)
	}
	for _, i := range c.A {
		if i < 0 || i >= len(a) {
			return fmt.Errorf("%w: index %d outside first scanner", ErrCandidateMismatch, i)
		}
	}
	for _, j := range c.B {
		if j < 0 || j >= len(b) {
			return fmt.Errorf("%w: index %d outside second scanner", ErrCandidateMismatch, j)
		}
	}
	return nil
}

// chainWalk resolves the b index of every a candidate from unique distances.
// Returns ok=false when a link has no partner or endpoints do not chain.
func chainWalk(fa *fingerprint.Fingerprint, c *overlap.Candidate) ([]int, bool) {
	k := len(c.A)
	eb := c.EdgesB

	// links[i] is b's edge matching a's edge (A[i], A[i+1 mod k])
	links := make([]fingerprint.PairDistance, k)
	for i := 0; i < k; i++ {
		d := fa.Matrix.At(c.A[i], c.A[(i+1)%k])
		idx := sort.Search(len(eb), func(x int) bool { return eb[x].D >= d })
		if idx == len(eb) || eb[idx].D != d {
			return nil, false
		}
		links[i] = eb[idx]
	}

	order := make([]int, k)
	seen := make(map[int]bool, k)
	for i := 0; i < k; i++ {
		prev, cur := links[(i+k-1)%k], links[i]
		switch {
		case prev.I == cur.I || prev.I == cur.J:
			order[i] = prev.I
		case prev.J == cur.I || prev.J == cur.J:
			order[i] = prev.J
		default:
			return nil, false
		}
		if seen[order[i]] {
			return nil, false
		}
		seen[order[i]] = true
	}
	return order, true
}

// pick gathers ps[idx[0]], ps[idx[1]], ...
func pick(ps []geom.Point, idx []int) []geom.Point {
	out := make([]geom.Point, len(idx))
	for k, i := range idx {
		out[k] = ps[i]
	}
	return out
}
