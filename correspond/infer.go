// SPDX-License-Identifier: MIT

package correspond

import (
	"github.com/katalvlaran/beaconreg/geom"
)

// allOptions has one bit per (source axis, sign) choice: bit 2·axis+neg.
const allOptions = 1<<6 - 1

// option returns the bit for reading source axis src, negated when neg.
func option(src int, neg bool) uint8 {
	b := uint(2 * src)
	if neg {
		b++
	}
	return 1 << b
}

// infer finds the orientation and offset carrying every pb[k] onto pa[k].
//
// Stage 1: for each destination axis keep the (source axis, sign) choices
// under which every delta from the anchor pair (pa[0], pb[0]) agrees.
// Stage 2: among the orientations those choices allow (proper ones first),
// derive the offset from the anchor and verify every pair exactly.
//
// Complexity: O(n) for Stage 1, O(48·n) worst case for Stage 2.
func infer(pa, pb []geom.Point, properOnly bool) (geom.Mapping, bool) {
	if len(pa) == 0 || len(pa) != len(pb) {
		return geom.Mapping{}, false
	}

	// Stage 1
	masks := [3]uint8{allOptions, allOptions, allOptions}
	for i := 1; i < len(pa); i++ {
		da := pa[i].Sub(pa[0])
		db := pb[i].Sub(pb[0])
		for axis := 0; axis < 3; axis++ {
			for src := 0; src < 3; src++ {
				if db[src] != da[axis] {
					masks[axis] &^= option(src, false)
				}
				if -db[src] != da[axis] {
					masks[axis] &^= option(src, true)
				}
			}
			if masks[axis] == 0 {
				return geom.Mapping{}, false
			}
		}
	}

	// Stage 2
	all := geom.AllOrientations()
	for _, wantProper := range []bool{true, false} {
		if !wantProper && properOnly {
			break
		}
		for _, o := range all {
			if o.Proper() != wantProper || !allowed(o, masks) {
				continue
			}
			m := geom.Mapping{Orientation: o, Offset: pa[0].Sub(o.Rotate(pb[0]))}
			if carries(m, pa, pb) {
				return m, true
			}
		}
	}
	return geom.Mapping{}, false
}

// allowed reports whether every destination axis of o survived Stage 1.
func allowed(o geom.Orientation, masks [3]uint8) bool {
	for axis := 0; axis < 3; axis++ {
		if masks[axis]&option(o.Axes[axis], o.Neg[axis]) == 0 {
			return false
		}
	}
	return true
}

// carries reports whether m.Apply(pb[k]) == pa[k] for every k.
func carries(m geom.Mapping, pa, pb []geom.Point) bool {
	for k := range pa {
		if m.Apply(pb[k]) != pa[k] {
			return false
		}
	}
	return true
}
