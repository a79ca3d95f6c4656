// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Orientation is a signed permutation of the three axes.
//
// Destination axis k receives source axis Axes[k], negated when Neg[k] is
// true. The zero value is NOT valid (all three destination axes would read
// source axis 0); use IdentityOrientation.
type Orientation struct {
	Axes [3]int  // for each destination axis, the source axis it reads
	Neg  [3]bool // for each destination axis, whether the source is negated
}

// IdentityOrientation returns the orientation that leaves every axis in place.
func IdentityOrientation() Orientation {
	return Orientation{Axes: [3]int{0, 1, 2}}
}

// Valid reports whether Axes is a permutation of {0,1,2}.
func (o Orientation) Valid() bool {
	var seen [3]bool
	for _, a := range o.Axes {
		if a < 0 || a > 2 || seen[a] {
			return false
		}
		seen[a] = true
	}
	return true
}

// Rotate applies the orientation to p without any translation.
// Complexity: O(1).
func (o Orientation) Rotate(p Point) Point {
	var out Point
	for axis := 0; axis < 3; axis++ {
		v := p[o.Axes[axis]]
		if o.Neg[axis] {
			v = -v
		}
		out[axis] = v
	}
	return out
}

// Compose returns the orientation equivalent to o.Rotate(inner.Rotate(p)).
// Complexity: O(1).
func (o Orientation) Compose(inner Orientation) Orientation {
	var out Orientation
	for axis := 0; axis < 3; axis++ {
		src := o.Axes[axis]
		out.Axes[axis] = inner.Axes[src]
		out.Neg[axis] = o.Neg[axis] != inner.Neg[src]
	}
	return out
}

// Inverse returns the orientation undoing o.
// Complexity: O(1).
func (o Orientation) Inverse() Orientation {
	var out Orientation
	for axis := 0; axis < 3; axis++ {
		out.Axes[o.Axes[axis]] = axis
		out.Neg[o.Axes[axis]] = o.Neg[axis]
	}
	return out
}

// Matrix returns the 3×3 matrix R with R·p == o.Rotate(p) for column vector p.
func (o Orientation) Matrix() *mat.Dense {
	data := make([]float64, 9)
	for axis := 0; axis < 3; axis++ {
		v := 1.0
		if o.Neg[axis] {
			v = -1.0
		}
		data[axis*3+o.Axes[axis]] = v
	}
	return mat.NewDense(3, 3, data)
}

// Proper reports whether o is a rotation (determinant +1) rather than a
// mirroring (determinant -1).
func (o Orientation) Proper() bool {
	return mat.Det(o.Matrix()) > 0
}

// String renders the orientation as signed axis names, e.g. "+y-x+z".
func (o Orientation) String() string {
	const names = "xyz"
	s := ""
	for axis := 0; axis < 3; axis++ {
		sign := "+"
		if o.Neg[axis] {
			sign = "-"
		}
		if o.Axes[axis] < 0 || o.Axes[axis] > 2 {
			return fmt.Sprintf("invalid%v", o.Axes)
		}
		s += sign + string(names[o.Axes[axis]])
	}
	return s
}

// permutations of three axes in lexicographic order.
var permutations = [6][3]int{
	{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
}

// AllOrientations enumerates the 48 signed axis permutations in a fixed order.
func AllOrientations() []Orientation {
	out := make([]Orientation, 0, 48)
	for _, perm := range permutations {
		for signs := 0; signs < 8; signs++ {
			out = append(out, Orientation{
				Axes: perm,
				Neg:  [3]bool{signs&1 != 0, signs&2 != 0, signs&4 != 0},
			})
		}
	}
	return out
}

// ProperRotations enumerates the 24 orientations with determinant +1.
func ProperRotations() []Orientation {
	all := AllOrientations()
	out := make([]Orientation, 0, 24)
	for _, o := range all {
		if o.Proper() {
			out = append(out, o)
		}
	}
	return out
}
