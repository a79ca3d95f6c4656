// SPDX-License-Identifier: MIT

package geom

import "fmt"

// Mapping converts coordinates from a source frame into a destination frame:
// rotate by Orientation, then translate by Offset.
//
// Offset is also the position of the source frame's origin expressed in the
// destination frame.
type Mapping struct {
	Offset      Point
	Orientation Orientation
}

// IdentityMapping returns the mapping that leaves every point unchanged.
func IdentityMapping() Mapping {
	return Mapping{Orientation: IdentityOrientation()}
}

// Apply converts p from the source frame into the destination frame.
// Complexity: O(1).
func (m Mapping) Apply(p Point) Point {
	return m.Orientation.Rotate(p).Add(m.Offset)
}

// ApplyAll converts every point in ps and returns a new slice.
// Complexity: O(len(ps)).
func (m Mapping) ApplyAll(ps []Point) []Point {
	out := make([]Point, len(ps))
	for i, p := range ps {
		out[i] = m.Apply(p)
	}
	return out
}

// Compose returns the single mapping equal to applying inner first and m
// second. If m maps B→A and inner maps C→B, the result maps C→A.
// Complexity: O(1).
func (m Mapping) Compose(inner Mapping) Mapping {
	return Mapping{
		Offset:      m.Orientation.Rotate(inner.Offset).Add(m.Offset),
		Orientation: m.Orientation.Compose(inner.Orientation),
	}
}

// Inverse returns the mapping from the destination frame back to the source.
// Complexity: O(1).
func (m Mapping) Inverse() Mapping {
	inv := m.Orientation.Inverse()
	return Mapping{
		Offset:      inv.Rotate(m.Offset).Neg(),
		Orientation: inv,
	}
}

// Pose returns m as a row-major 4×4 homogeneous transform
// (m00,m01,m02,m03, m10,...), the layout float pose consumers expect.
func (m Mapping) Pose() [16]float64 {
	var t [16]float64
	r := m.Orientation.Matrix()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			t[row*4+col] = r.At(row, col)
		}
		t[row*4+3] = float64(m.Offset[row])
	}
	t[15] = 1
	return t
}

// String renders the mapping as "<orientation> +(x,y,z)".
func (m Mapping) String() string {
	return fmt.Sprintf("%s +(%s)", m.Orientation, m.Offset)
}
